package narrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/brightcart/shopchat/internal/domain"
	"github.com/brightcart/shopchat/internal/usecase/synthesize"
)

type mockDispatcher struct {
	env        domain.Envelope
	err        error
	lastMethod string
	lastParams map[string]any
}

func (m *mockDispatcher) Dispatch(_ context.Context, method string, params map[string]any) (domain.Envelope, error) {
	m.lastMethod = method
	m.lastParams = params
	return m.env, m.err
}

type mockGenerator struct {
	text       string
	err        error
	lastPrompt string
}

func (m *mockGenerator) Generate(_ context.Context, _, prompt string) (string, error) {
	m.lastPrompt = prompt
	return m.text, m.err
}

type staticRetriever struct{ text string }

func (s staticRetriever) Context(string, int) string { return s.text }

func TestNarrate_EndToEnd(t *testing.T) {
	price := domain.Float(80)
	disp := &mockDispatcher{
		env: domain.OK(map[string]any{
			"products": []domain.Product{
				{VendorProductNumber: "nk-1", ProductType: "footwear", Brand: "Nike", Gender: "Male", Price: price},
			},
		}),
	}
	svc := New(disp, nil, nil, 0)

	out, err := svc.Narrate(context.Background(), "nike running shoes for men under $100")
	if err != nil {
		t.Fatalf("Narrate: %v", err)
	}

	if disp.lastMethod != "get_products" {
		t.Errorf("method = %q, want get_products", disp.lastMethod)
	}
	if disp.lastParams["brand"] != "Nike" || disp.lastParams["product_type"] != "footwear" || disp.lastParams["gender"] != "Male" {
		t.Errorf("unexpected params: %v", disp.lastParams)
	}
	if disp.lastParams["max_price"] != 100.0 {
		t.Errorf("max_price = %v, want 100", disp.lastParams["max_price"])
	}

	for _, want := range []string{"footwear", "Nike", "Male", "$80"} {
		if !strings.Contains(out, want) {
			t.Errorf("answer missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "rating") {
		t.Errorf("answer mentions a rating that was never supplied:\n%s", out)
	}
}

func TestNarrate_DispatchTransportError(t *testing.T) {
	disp := &mockDispatcher{err: errors.New("connection refused")}
	svc := New(disp, nil, nil, 0)

	out, err := svc.Narrate(context.Background(), "red shoes")
	if err != nil {
		t.Fatalf("Narrate: %v", err)
	}
	if out != FetchFailedMessage {
		t.Errorf("out = %q, want fetch-failed message", out)
	}
}

func TestNarrate_DispatchEnvelopeError(t *testing.T) {
	disp := &mockDispatcher{env: domain.Fail("Unknown method: get_products")}
	svc := New(disp, nil, nil, 0)

	out, err := svc.Narrate(context.Background(), "red shoes")
	if err != nil {
		t.Fatalf("Narrate: %v", err)
	}
	if out != FetchFailedMessage {
		t.Errorf("out = %q, want fetch-failed message", out)
	}
}

func TestNarrate_NoMatches(t *testing.T) {
	disp := &mockDispatcher{env: domain.OK(map[string]any{"products": []any{}})}
	svc := New(disp, nil, nil, 0)

	out, err := svc.Narrate(context.Background(), "purple submarines")
	if err != nil {
		t.Fatalf("Narrate: %v", err)
	}
	if out != synthesize.NoMatchesMessage {
		t.Errorf("out = %q, want no-matches message", out)
	}
}

func TestNarrate_GeneratorRewrite(t *testing.T) {
	disp := &mockDispatcher{
		env: domain.OK(map[string]any{
			"products": []domain.Product{{VendorProductNumber: "w-1", ProductType: "watch", Brand: "Fossil"}},
		}),
	}
	gen := &mockGenerator{text: "Here's a lovely Fossil watch for you!"}
	svc := New(disp, gen, staticRetriever{text: "Relevant products:\n1. watch - Fossil"}, 3)

	out, err := svc.Narrate(context.Background(), "fossil watch")
	if err != nil {
		t.Fatalf("Narrate: %v", err)
	}
	if out != gen.text {
		t.Errorf("out = %q, want generator output", out)
	}
	if !strings.Contains(gen.lastPrompt, "Customer question: fossil watch") {
		t.Errorf("prompt missing query:\n%s", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "Relevant products:") {
		t.Errorf("prompt missing retrieval context:\n%s", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "Draft answer:") {
		t.Errorf("prompt missing draft:\n%s", gen.lastPrompt)
	}
}

func TestNarrate_GeneratorFailureFallsBackToDraft(t *testing.T) {
	disp := &mockDispatcher{
		env: domain.OK(map[string]any{
			"products": []domain.Product{{VendorProductNumber: "w-1", ProductType: "watch", Brand: "Fossil"}},
		}),
	}
	gen := &mockGenerator{err: errors.New("completion API error 429: rate limited")}
	svc := New(disp, gen, nil, 0)

	out, err := svc.Narrate(context.Background(), "fossil watch")
	if err != nil {
		t.Fatalf("Narrate: %v", err)
	}
	if !strings.Contains(out, "I found one product that matches your search:") {
		t.Errorf("expected deterministic draft fallback:\n%s", out)
	}
}
