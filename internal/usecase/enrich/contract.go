package enrich

import "context"

// RatingLookup fetches the rating for one vendor product number. The
// backend answers a default for unknown ids, so a nil error always
// comes with a usable rating.
type RatingLookup interface {
	Get(ctx context.Context, vendorProductNumber string) (float64, error)
}
