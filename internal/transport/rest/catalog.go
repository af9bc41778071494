package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/domain"
	"github.com/brightcart/shopchat/internal/logger"
	"github.com/brightcart/shopchat/internal/repository/catalog"
)

// CatalogServer serves the product catalog: filtered listings and the
// enumerable attribute endpoints.
type CatalogServer struct {
	store *catalog.Store
}

// NewCatalogServer creates the catalog handler set.
func NewCatalogServer(store *catalog.Store) *CatalogServer {
	return &CatalogServer{store: store}
}

// Mount registers the catalog routes.
func (s *CatalogServer) Mount(r chi.Router) {
	r.Get("/products", s.handleProducts)
	r.Get("/product-types", s.handleListing(catalog.AttrProductType))
	r.Get("/product-subtypes", s.handleListing(catalog.AttrProductSubtype))
	r.Get("/brands", s.handleListing(catalog.AttrBrand))
	r.Get("/colors", s.handleListing(catalog.AttrColor))
	r.Get("/genders", s.handleListing(catalog.AttrGender))
	r.Get("/age-groups", s.handleListing(catalog.AttrAgeGroup))
}

func (s *CatalogServer) handleProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.SearchFilter{
		ProductType:    q.Get("product_type"),
		ProductSubtype: q.Get("product_subtype"),
		Brand:          q.Get("brand"),
		Color:          q.Get("color"),
		Gender:         q.Get("gender"),
		AgeGroup:       q.Get("age_group"),
		MinPrice:       parsePriceParam(r, "min_price"),
		MaxPrice:       parsePriceParam(r, "max_price"),
	}

	products := s.store.Filter(filter)
	writeJSON(w, r, http.StatusOK, products)
}

func (s *CatalogServer) handleListing(attr catalog.Attribute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values := s.store.Distinct(attr)
		if values == nil {
			values = []string{}
		}
		writeJSON(w, r, http.StatusOK, values)
	}
}

// parsePriceParam reads an optional float query parameter. A value
// that does not parse is ignored rather than rejected, so one bad
// constraint does not fail the whole listing.
func parsePriceParam(r *http.Request, name string) *float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logger.FromContext(r.Context()).Warn("ignoring unparsable price constraint",
			zap.String("param", name),
			zap.String("value", raw),
		)
		return nil
	}
	return &v
}
