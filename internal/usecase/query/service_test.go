package query

import (
	"context"
	"errors"
	"testing"

	"github.com/brightcart/shopchat/internal/domain"
)

type mockDispatcher struct {
	env        domain.Envelope
	err        error
	panicMsg   string
	lastMethod string
	lastParams map[string]any
}

func (m *mockDispatcher) Dispatch(_ context.Context, method string, params map[string]any) (domain.Envelope, error) {
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	m.lastMethod = method
	m.lastParams = params
	return m.env, m.err
}

type mockNarrator struct {
	text string
	err  error
}

func (m *mockNarrator) Narrate(context.Context, string) (string, error) {
	return m.text, m.err
}

func TestAnswer_StructuredUsesNarrator(t *testing.T) {
	narr := &mockNarrator{text: "I found a great pair of shoes for you."}
	svc := New(&mockDispatcher{}, narr)

	reply := svc.Answer(context.Background(), "red shoes", true)
	if reply.Error != "" {
		t.Fatalf("unexpected error: %q", reply.Error)
	}
	if reply.Result != narr.text {
		t.Errorf("result = %v, want narrator output", reply.Result)
	}
}

func TestAnswer_StructuredNarratorFailure(t *testing.T) {
	narr := &mockNarrator{err: errors.New("completion API error 500: upstream down")}
	svc := New(&mockDispatcher{}, narr)

	reply := svc.Answer(context.Background(), "red shoes", true)
	if reply.Error != "completion API error 500: upstream down" {
		t.Errorf("error = %q", reply.Error)
	}
	if reply.Result != nil {
		t.Errorf("result must be empty on failure, got %v", reply.Result)
	}
}

func TestAnswer_RawPayloadPassthrough(t *testing.T) {
	payload := map[string]any{
		"products": []domain.Product{{VendorProductNumber: "nk-1", Brand: "Nike"}},
	}
	disp := &mockDispatcher{env: domain.OK(payload)}
	svc := New(disp, &mockNarrator{})

	reply := svc.Answer(context.Background(), "nike shoes for men", false)
	if reply.Error != "" {
		t.Fatalf("unexpected error: %q", reply.Error)
	}
	if disp.lastMethod != "get_products" {
		t.Errorf("method = %q, want get_products", disp.lastMethod)
	}
	if disp.lastParams["brand"] != "Nike" {
		t.Errorf("extracted params not forwarded: %v", disp.lastParams)
	}
	got, ok := reply.Result.(map[string]any)
	if !ok {
		t.Fatalf("result type = %T", reply.Result)
	}
	if _, ok := got["products"]; !ok {
		t.Errorf("payload missing products key: %v", got)
	}
}

func TestAnswer_NoMatches(t *testing.T) {
	disp := &mockDispatcher{env: domain.OK(map[string]any{"products": []any{}})}
	svc := New(disp, &mockNarrator{})

	reply := svc.Answer(context.Background(), "purple submarines", false)
	if reply.Error != "" {
		t.Fatalf("unexpected error: %q", reply.Error)
	}
	if reply.Result != NoMatchesResult {
		t.Errorf("result = %v, want no-matches message", reply.Result)
	}
}

func TestAnswer_TransportErrorPropagates(t *testing.T) {
	disp := &mockDispatcher{err: &domain.UpstreamError{Status: 503, Body: "unavailable"}}
	svc := New(disp, &mockNarrator{})

	reply := svc.Answer(context.Background(), "red shoes", false)
	if reply.Error != "503: unavailable" {
		t.Errorf("error = %q, want upstream error text", reply.Error)
	}
}

func TestAnswer_EnvelopeErrorPropagates(t *testing.T) {
	disp := &mockDispatcher{env: domain.Fail("Unknown method: get_products")}
	svc := New(disp, &mockNarrator{})

	reply := svc.Answer(context.Background(), "red shoes", false)
	if reply.Error != "Unknown method: get_products" {
		t.Errorf("error = %q", reply.Error)
	}
}

func TestAnswer_PanicFoldedIntoReply(t *testing.T) {
	disp := &mockDispatcher{panicMsg: "boom"}
	svc := New(disp, &mockNarrator{})

	reply := svc.Answer(context.Background(), "red shoes", false)
	if reply.Error != "internal error while processing the query" {
		t.Errorf("error = %q", reply.Error)
	}
}
