// Package dispatch is the orchestrator: a single entry point that
// routes named operations to the catalog backend and the enricher and
// always answers with a result-or-error envelope. Upstream failures
// stop at this boundary; nothing propagates past Dispatch as an error
// or a panic.
package dispatch

import (
	"context"

	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/domain"
	"github.com/brightcart/shopchat/internal/metrics"
)

// The closed set of dispatchable operations.
const (
	MethodGetProducts        = "get_products"
	MethodGetProductTypes    = "get_product_types"
	MethodGetBrands          = "get_brands"
	MethodGetProductSubtypes = "get_product_subtypes"
	MethodGetColors          = "get_colors"
	MethodGetGenders         = "get_genders"
	MethodGetAgeGroups       = "get_age_groups"
	MethodClearContext       = "clear_context"
)

// listings maps enumeration methods to the result key their payload is
// wrapped under. The key doubles as the catalog listing name.
var listings = map[string]string{
	MethodGetProductTypes:    "product_types",
	MethodGetBrands:          "brands",
	MethodGetProductSubtypes: "product_subtypes",
	MethodGetColors:          "colors",
	MethodGetGenders:         "genders",
	MethodGetAgeGroups:       "age_groups",
}

// Service routes dispatch requests.
type Service struct {
	catalog CatalogClient
	enrich  Enricher
	logger  *zap.Logger
}

// New creates an orchestrator service.
func New(catalog CatalogClient, enrich Enricher, logger *zap.Logger) *Service {
	return &Service{catalog: catalog, enrich: enrich, logger: logger}
}

// Dispatch runs one named operation and returns its envelope. Unknown
// methods and upstream failures are request-scoped error envelopes.
func (s *Service) Dispatch(ctx context.Context, method string, params map[string]any) domain.Envelope {
	env := s.route(ctx, method, params)

	outcome := "ok"
	if env.IsError() {
		outcome = "error"
		s.logger.Warn("Dispatch failed",
			zap.String("method", method),
			zap.String("error", env.Error),
		)
	}
	metrics.DispatchTotal.WithLabelValues(method, outcome).Inc()
	return env
}

func (s *Service) route(ctx context.Context, method string, params map[string]any) domain.Envelope {
	if key, ok := listings[method]; ok {
		return s.listing(ctx, key)
	}

	switch method {
	case MethodGetProducts:
		return s.getProducts(ctx, params)
	case MethodClearContext:
		// No session state lives at this layer; the method only
		// acknowledges.
		return domain.OK(map[string]any{"message": "Context cleared successfully"})
	default:
		return domain.Fail("Unknown method: %s", method)
	}
}

func (s *Service) getProducts(ctx context.Context, params map[string]any) domain.Envelope {
	products, err := s.catalog.Products(ctx, domain.StringifyParams(params))
	if err != nil {
		return domain.Fail("%s", err.Error())
	}

	enriched := s.enrich.AttachRatings(ctx, products)
	return domain.OK(map[string]any{"products": enriched})
}

func (s *Service) listing(ctx context.Context, key string) domain.Envelope {
	values, err := s.catalog.Distinct(ctx, key)
	if err != nil {
		return domain.Fail("%s", err.Error())
	}
	if values == nil {
		values = []string{}
	}
	return domain.OK(map[string]any{key: values})
}
