// Package rating holds the rating backend's pluggable store: a rating
// per vendor product number, served from memory (CSV load-once) or
// from redis.
package rating

import "context"

// Store looks up ratings by vendor product number. A miss is reported
// through found=false, not an error; errors are reserved for transport
// or storage failures.
type Store interface {
	Get(ctx context.Context, vendorProductNumber string) (rating float64, found bool, err error)
	Count(ctx context.Context) (int, error)
	Close()
}
