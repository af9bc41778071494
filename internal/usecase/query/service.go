// Package query is the top of the answer pipeline: it resolves a
// free-text product question either into a structured product payload
// or, for structured queries, into a natural language answer.
package query

import (
	"context"

	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/domain"
	"github.com/brightcart/shopchat/internal/extract"
	"github.com/brightcart/shopchat/internal/logger"
	"github.com/brightcart/shopchat/internal/usecase/dispatch"
)

// NoMatchesResult is the answer for a query that resolved cleanly but
// matched nothing.
const NoMatchesResult = "I couldn't find any products matching your search. Could you please try a different search?"

// Dispatcher executes a dispatch method against the gateway.
type Dispatcher interface {
	Dispatch(ctx context.Context, method string, params map[string]any) (domain.Envelope, error)
}

// Narrator produces a natural language answer for a query.
type Narrator interface {
	Narrate(ctx context.Context, query string) (string, error)
}

// Service resolves product queries.
type Service struct {
	dispatcher Dispatcher
	narrator   Narrator
}

// New creates a query service.
func New(dispatcher Dispatcher, narrator Narrator) *Service {
	return &Service{dispatcher: dispatcher, narrator: narrator}
}

// Answer resolves a query. When structured is set, the answer is a
// conversational summary; otherwise it is the raw product payload.
// Answer never panics: any failure inside the pipeline is folded into
// the reply's error field.
func (s *Service) Answer(ctx context.Context, query string, structured bool) (reply domain.Reply) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error("query pipeline panicked", zap.Any("panic", r))
			reply = domain.ReplyFail("internal error while processing the query")
		}
	}()

	if structured {
		text, err := s.narrator.Narrate(ctx, query)
		if err != nil {
			log.Warn("narration failed", zap.Error(err))
			return domain.ReplyFail("%s", err.Error())
		}
		return domain.ReplyOK(text)
	}

	filter := extract.Extract(query)

	env, err := s.dispatcher.Dispatch(ctx, dispatch.MethodGetProducts, filter.Params())
	if err != nil {
		log.Warn("product dispatch failed", zap.Error(err))
		return domain.ReplyFail("%s", err.Error())
	}
	if env.IsError() {
		log.Warn("product dispatch returned error", zap.String("error", env.Error))
		return domain.ReplyFail("%s", env.Error)
	}

	if productCount(env.Result["products"]) == 0 {
		return domain.ReplyOK(NoMatchesResult)
	}
	return domain.ReplyOK(env.Result)
}

// productCount handles both in-process ([]domain.Product) and
// wire-decoded ([]any) payload shapes.
func productCount(v any) int {
	switch t := v.(type) {
	case []domain.Product:
		return len(t)
	case []any:
		return len(t)
	default:
		return 0
	}
}
