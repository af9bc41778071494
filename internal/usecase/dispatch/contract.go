package dispatch

import (
	"context"

	"github.com/brightcart/shopchat/internal/domain"
)

// CatalogClient is the catalog backend boundary used by the orchestrator.
type CatalogClient interface {
	Products(ctx context.Context, params map[string]string) ([]domain.Product, error)
	Distinct(ctx context.Context, attribute string) ([]string, error)
}

// Enricher merges ratings into a product list. It degrades per record
// and never fails; see the enrich package.
type Enricher interface {
	AttachRatings(ctx context.Context, products []domain.Product) []domain.Product
}
