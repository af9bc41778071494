package enrich

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/domain"
)

// mockLookup serves fixed ratings and fails configured ids.
type mockLookup struct {
	mu      sync.Mutex
	ratings map[string]float64
	fail    map[string]bool
	block   map[string]bool // block until the lookup context is done
	calls   []string
}

func (m *mockLookup) Get(ctx context.Context, id string) (float64, error) {
	m.mu.Lock()
	m.calls = append(m.calls, id)
	blocked := m.block[id]
	failed := m.fail[id]
	rating := m.ratings[id]
	m.mu.Unlock()

	if blocked {
		<-ctx.Done()
		return 0, ctx.Err()
	}
	if failed {
		return 0, errors.New("lookup failed")
	}
	return rating, nil
}

func products(ids ...string) []domain.Product {
	out := make([]domain.Product, len(ids))
	for i, id := range ids {
		out[i] = domain.Product{VendorProductNumber: id, ProductType: "footwear"}
	}
	return out
}

func TestAttachRatings_LengthAndOrderInvariant(t *testing.T) {
	lookup := &mockLookup{
		ratings: map[string]float64{"p0": 4, "p1": 4.1, "p3": 4.3, "p4": 4.4, "p6": 4.6},
		fail:    map[string]bool{"p2": true, "p5": true},
	}
	svc := New(lookup, zap.NewNop())

	in := products("p0", "p1", "p2", "p3", "p4", "p5", "p6")
	out := svc.AttachRatings(context.Background(), in)

	if len(out) != len(in) {
		t.Fatalf("length changed: got %d, want %d", len(out), len(in))
	}
	for i, p := range out {
		if p.VendorProductNumber != in[i].VendorProductNumber {
			t.Errorf("order changed at %d: got %q, want %q", i, p.VendorProductNumber, in[i].VendorProductNumber)
		}
	}
	for _, i := range []int{2, 5} {
		if out[i].HasRating() {
			t.Errorf("position %d should lack a rating after its lookup failed", i)
		}
	}
	for _, i := range []int{0, 1, 3, 4, 6} {
		if !out[i].HasRating() {
			t.Errorf("position %d should carry a rating", i)
		}
	}
	if out[1].Rating != nil && *out[1].Rating != 4.1 {
		t.Errorf("rating at 1 = %v, want 4.1", *out[1].Rating)
	}
}

func TestAttachRatings_MissingIDPassesThrough(t *testing.T) {
	lookup := &mockLookup{ratings: map[string]float64{"p1": 5}}
	svc := New(lookup, zap.NewNop())

	in := []domain.Product{
		{ProductType: "footwear"}, // no vendor product number
		{VendorProductNumber: "p1"},
	}
	out := svc.AttachRatings(context.Background(), in)

	if out[0].HasRating() {
		t.Error("record without id must pass through unenriched")
	}
	if !out[1].HasRating() {
		t.Error("sibling with id must still be enriched")
	}

	lookup.mu.Lock()
	defer lookup.mu.Unlock()
	if len(lookup.calls) != 1 || lookup.calls[0] != "p1" {
		t.Errorf("expected a single lookup for p1, got %v", lookup.calls)
	}
}

func TestAttachRatings_SlowLookupDoesNotDelaySiblings(t *testing.T) {
	lookup := &mockLookup{
		ratings: map[string]float64{"fast": 4.2},
		block:   map[string]bool{"slow": true},
	}
	svc := New(lookup, zap.NewNop()).WithLookupTimeout(30 * time.Millisecond)

	start := time.Now()
	out := svc.AttachRatings(context.Background(), products("slow", "fast"))
	elapsed := time.Since(start)

	if out[0].HasRating() {
		t.Error("timed-out lookup must leave its record unrated")
	}
	if !out[1].HasRating() {
		t.Error("fast sibling must still be enriched")
	}
	// The join barrier waits for the slow lookup's own timeout, not longer.
	if elapsed > time.Second {
		t.Errorf("join took %s, expected to be bounded by the per-lookup timeout", elapsed)
	}
}

func TestAttachRatings_EmptyInput(t *testing.T) {
	svc := New(&mockLookup{}, zap.NewNop())
	out := svc.AttachRatings(context.Background(), nil)
	if len(out) != 0 {
		t.Errorf("expected empty output, got %v", out)
	}
}

func TestAttachRatings_DoesNotMutateInput(t *testing.T) {
	lookup := &mockLookup{ratings: map[string]float64{"p0": 4}}
	svc := New(lookup, zap.NewNop())

	in := products("p0")
	_ = svc.AttachRatings(context.Background(), in)

	if in[0].HasRating() {
		t.Error("input records must stay untouched")
	}
}
