package rating

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/rueidis"
)

// RedisConfig holds connection parameters for the redis rating store.
type RedisConfig struct {
	Addrs     []string
	Username  string
	Password  string
	KeyPrefix string
}

// Redis serves ratings from plain string keys "<prefix><vendor id>".
type Redis struct {
	client rueidis.Client
	prefix string
}

var _ Store = (*Redis)(nil)

// NewRedis creates a redis-backed rating store.
func NewRedis(cfg RedisConfig) (*Redis, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Redis{client: client, prefix: cfg.KeyPrefix}, nil
}

// Get returns the rating stored under the vendor product number, or
// found=false on a missing key.
func (r *Redis) Get(ctx context.Context, vendorProductNumber string) (float64, bool, error) {
	cmd := r.client.B().Get().Key(r.prefix + vendorProductNumber).Build()
	raw, err := r.client.Do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get rating: %w", err)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse rating %q: %w", raw, err)
	}
	return value, true, nil
}

// Count scans the key prefix and returns the number of stored ratings.
func (r *Redis) Count(ctx context.Context) (int, error) {
	var count int
	var cursor uint64

	for {
		cmd := r.client.B().Scan().Cursor(cursor).Match(r.prefix + "*").Count(100).Build()
		res, err := r.client.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return 0, fmt.Errorf("scan ratings: %w", err)
		}
		count += len(res.Elements)
		cursor = res.Cursor
		if cursor == 0 {
			break
		}
	}

	return count, nil
}

// WaitForReady pings the database until it responds or the timeout expires.
func (r *Redis) WaitForReady(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		pingCtx, cancel := context.WithTimeout(ctx, time.Second)
		err := r.client.Do(pingCtx, r.client.B().Ping().Build()).Error()
		cancel()
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("database not ready after %s: %w", timeout, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
}

// Close shuts down the client.
func (r *Redis) Close() {
	r.client.Close()
}
