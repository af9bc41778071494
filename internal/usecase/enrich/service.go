// Package enrich fans a product list out to the rating backend and
// merges the ratings in. Enrichment is best-effort per record: a
// failed or timed-out lookup leaves that single record without a
// rating and never disturbs its siblings.
package enrich

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/domain"
	"github.com/brightcart/shopchat/internal/metrics"
)

// DefaultLookupTimeout bounds each individual rating lookup.
const DefaultLookupTimeout = 5 * time.Second

// Service attaches ratings to product lists.
type Service struct {
	ratings RatingLookup
	timeout time.Duration
	logger  *zap.Logger
}

// New creates an enrichment service.
func New(ratings RatingLookup, logger *zap.Logger) *Service {
	return &Service{ratings: ratings, timeout: DefaultLookupTimeout, logger: logger}
}

// WithLookupTimeout configures the per-lookup deadline.
func (s *Service) WithLookupTimeout(d time.Duration) *Service {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// AttachRatings returns the input products with ratings merged in.
// The output has exactly the input's length and order. Lookups run
// concurrently, each under its own deadline; the method returns only
// after every lookup has finished or timed out. Each goroutine writes
// a single pre-assigned slot, so no further synchronization is needed.
func (s *Service) AttachRatings(ctx context.Context, products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))

	var wg sync.WaitGroup
	for i, p := range products {
		out[i] = p

		if p.VendorProductNumber == "" {
			metrics.RatingLookupsTotal.WithLabelValues("missing_id").Inc()
			s.logger.Warn("Product without vendor product number, passing through unenriched",
				zap.String("product_type", p.ProductType),
				zap.String("brand", p.Brand),
			)
			continue
		}

		wg.Add(1)
		go func(slot int, p domain.Product) {
			defer wg.Done()

			lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			rating, err := s.ratings.Get(lookupCtx, p.VendorProductNumber)
			if err != nil {
				metrics.RatingLookupsTotal.WithLabelValues("error").Inc()
				s.logger.Warn("Rating lookup failed, record stays unrated",
					zap.String("vendor_product_number", p.VendorProductNumber),
					zap.Error(err),
				)
				return
			}

			out[slot] = p.WithRating(rating)
			metrics.RatingLookupsTotal.WithLabelValues("success").Inc()
		}(i, p)
	}

	wg.Wait()
	return out
}
