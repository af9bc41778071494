package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/logger"
	"github.com/brightcart/shopchat/internal/metrics"
	"github.com/brightcart/shopchat/internal/repository/rating"
)

// DefaultRating is served when a product has no recorded rating, so
// callers always get a usable number for an otherwise valid id.
const DefaultRating = 3.0

// RatingServer serves per-product ratings.
type RatingServer struct {
	store rating.Store
}

// NewRatingServer creates the rating handler set.
func NewRatingServer(store rating.Store) *RatingServer {
	return &RatingServer{store: store}
}

// Mount registers the rating routes.
func (s *RatingServer) Mount(r chi.Router) {
	r.Get("/rating/{id}", s.handleGet)
	r.Get("/ratings/count", s.handleCount)
}

func (s *RatingServer) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	value, found, err := s.store.Get(r.Context(), id)
	if err != nil {
		metrics.RatingLookupsTotal.WithLabelValues("error").Inc()
		logger.FromContext(r.Context()).Error("rating lookup failed",
			zap.String("vendor_product_number", id),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "rating lookup failed")
		return
	}
	if !found {
		value = DefaultRating
	}
	metrics.RatingLookupsTotal.WithLabelValues("success").Inc()

	writeJSON(w, r, http.StatusOK, map[string]any{
		"vendor_product_number": id,
		"rating":                value,
	})
}

func (s *RatingServer) handleCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.Count(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("rating count failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "rating count failed")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"count": count})
}
