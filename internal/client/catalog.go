package client

import (
	"context"
	"time"

	"github.com/brightcart/shopchat/internal/domain"
)

// listingPaths maps the enumerable attribute name to its catalog endpoint.
var listingPaths = map[string]string{
	"product_types":    "/product-types",
	"product_subtypes": "/product-subtypes",
	"brands":           "/brands",
	"colors":           "/colors",
	"genders":          "/genders",
	"age_groups":       "/age-groups",
}

// Catalog is the typed client for the catalog backend.
type Catalog struct {
	httpClient
}

// NewCatalog creates a catalog client.
func NewCatalog(baseURL string, timeout time.Duration) *Catalog {
	return &Catalog{newHTTPClient(baseURL, timeout)}
}

// Products runs a filtered listing. Params carry only populated
// SearchFilter fields as query constraints.
func (c *Catalog) Products(ctx context.Context, params map[string]string) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.getJSON(ctx, "/products", params, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Distinct fetches the distinct values of one enumerable attribute.
// The attribute uses the dispatch naming (e.g. "brands", "age_groups").
func (c *Catalog) Distinct(ctx context.Context, attribute string) ([]string, error) {
	path, ok := listingPaths[attribute]
	if !ok {
		return nil, &domain.UpstreamError{Status: 404, Body: "unknown listing " + attribute}
	}
	var values []string
	if err := c.getJSON(ctx, path, nil, &values); err != nil {
		return nil, err
	}
	return values, nil
}
