// Package narrator turns a free-text product query into a natural
// language answer. It extracts a filter from the query, fetches the
// matching products through the dispatch endpoint, drafts a
// deterministic summary and, when a generator is configured, rewrites
// the draft conversationally. Generation failures fall back to the
// draft so the answer path never depends on the completion API.
package narrator

import (
	"context"

	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/domain"
	"github.com/brightcart/shopchat/internal/extract"
	"github.com/brightcart/shopchat/internal/logger"
	"github.com/brightcart/shopchat/internal/usecase/dispatch"
	"github.com/brightcart/shopchat/internal/usecase/synthesize"
)

// FetchFailedMessage is returned when the product lookup itself fails.
const FetchFailedMessage = "Sorry, I couldn't fetch the products at this time."

// Dispatcher executes a dispatch method against the gateway.
type Dispatcher interface {
	Dispatch(ctx context.Context, method string, params map[string]any) (domain.Envelope, error)
}

// ContextProvider supplies retrieval context lines for a query.
type ContextProvider interface {
	Context(query string, k int) string
}

// Service composes extraction, dispatch and synthesis into a single
// answer pipeline.
type Service struct {
	dispatcher Dispatcher
	generator  Generator
	retriever  ContextProvider
	topK       int
}

// New creates a narrator. generator and retriever may be nil, in which
// case the deterministic summary is returned as-is.
func New(dispatcher Dispatcher, generator Generator, retriever ContextProvider, topK int) *Service {
	if topK <= 0 {
		topK = 3
	}
	return &Service{
		dispatcher: dispatcher,
		generator:  generator,
		retriever:  retriever,
		topK:       topK,
	}
}

// Narrate answers a free-text query with a natural language summary of
// the matching products.
func (s *Service) Narrate(ctx context.Context, query string) (string, error) {
	log := logger.FromContext(ctx)

	filter := extract.Extract(query)

	env, err := s.dispatcher.Dispatch(ctx, dispatch.MethodGetProducts, filter.Params())
	if err != nil {
		log.Warn("product dispatch failed", zap.Error(err))
		return FetchFailedMessage, nil
	}
	if env.IsError() {
		log.Warn("product dispatch returned error", zap.String("error", env.Error))
		return FetchFailedMessage, nil
	}

	products := domain.ProductsFromPayload(env.Result["products"])
	draft := synthesize.Summarize(products, query)

	if s.generator == nil {
		return draft, nil
	}

	retrievalContext := ""
	if s.retriever != nil {
		retrievalContext = s.retriever.Context(query, s.topK)
	}

	text, err := s.generator.Generate(ctx, systemPrompt, buildPrompt(query, draft, retrievalContext, products))
	if err != nil {
		log.Warn("generation failed, falling back to draft", zap.Error(err))
		return draft, nil
	}
	return text, nil
}
