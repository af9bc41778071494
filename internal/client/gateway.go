package client

import (
	"context"
	"time"

	"github.com/brightcart/shopchat/internal/domain"
)

// Gateway is the typed client for the orchestrator's /mcp endpoint.
// It satisfies the query service's Dispatcher contract.
type Gateway struct {
	httpClient
}

// NewGateway creates a gateway client.
func NewGateway(baseURL string, timeout time.Duration) *Gateway {
	return &Gateway{newHTTPClient(baseURL, timeout)}
}

type dispatchRequest struct {
	Method string         `json:"method"`
	Params map[string]any `json:"params"`
}

// Dispatch sends one named operation to the gateway. A transport
// failure is an error; a dispatch-level failure comes back inside the
// envelope.
func (c *Gateway) Dispatch(ctx context.Context, method string, params map[string]any) (domain.Envelope, error) {
	if params == nil {
		params = map[string]any{}
	}
	var env domain.Envelope
	if err := c.postJSON(ctx, "/mcp", dispatchRequest{Method: method, Params: params}, &env); err != nil {
		return domain.Envelope{}, err
	}
	return env, nil
}
