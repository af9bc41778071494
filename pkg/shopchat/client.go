package shopchat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNoGateway is returned by dispatch operations when the client was
// built without WithGatewayURL.
var ErrNoGateway = errors.New("shopchat: gateway URL not configured")

// APIError is a service-level failure: the request reached the service
// but the pipeline answered with an error.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return "shopchat: " + e.Message }

// Client talks to the shopchat services.
type Client struct {
	queryURL   string
	gatewayURL string
	http       *http.Client
}

// New creates a client for the query service at queryURL.
func New(queryURL string, opts ...Option) *Client {
	cfg := clientConfig{timeout: 30 * time.Second}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		queryURL:   queryURL,
		gatewayURL: cfg.gatewayURL,
		http:       hc,
	}
}

type processRequest struct {
	Query        string `json:"query"`
	IsStructured bool   `json:"is_structured"`
}

type reply struct {
	Result any    `json:"result"`
	Error  string `json:"error"`
}

// Ask resolves a free-text query into a natural language answer.
func (c *Client) Ask(ctx context.Context, query string) (string, error) {
	result, err := c.process(ctx, query, true)
	if err != nil {
		return "", err
	}
	text, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("shopchat: unexpected answer type %T", result)
	}
	return text, nil
}

// Search resolves a free-text query into the raw result: a product
// payload, or a plain message when nothing matched.
func (c *Client) Search(ctx context.Context, query string) (any, error) {
	return c.process(ctx, query, false)
}

func (c *Client) process(ctx context.Context, query string, structured bool) (any, error) {
	var out reply
	err := c.post(ctx, c.queryURL+"/process", processRequest{Query: query, IsStructured: structured}, &out)
	if err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, &APIError{Message: out.Error}
	}
	return out.Result, nil
}

type dispatchRequest struct {
	Method string         `json:"method"`
	Params map[string]any `json:"params"`
}

type envelope struct {
	Result map[string]any `json:"result"`
	Error  string         `json:"error"`
}

// Dispatch runs a named gateway method directly. Requires
// WithGatewayURL.
func (c *Client) Dispatch(ctx context.Context, method string, params map[string]any) (map[string]any, error) {
	if c.gatewayURL == "" {
		return nil, ErrNoGateway
	}
	if params == nil {
		params = map[string]any{}
	}

	var out envelope
	err := c.post(ctx, c.gatewayURL+"/mcp", dispatchRequest{Method: method, Params: params}, &out)
	if err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, &APIError{Message: out.Error}
	}
	return out.Result, nil
}

// ClearContext resets the conversation context on the gateway.
func (c *Client) ClearContext(ctx context.Context) error {
	_, err := c.Dispatch(ctx, "clear_context", nil)
	return err
}

func (c *Client) post(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("shopchat: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("shopchat: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("shopchat: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &APIError{Message: fmt.Sprintf("%d: %s", resp.StatusCode, string(b))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("shopchat: decode response: %w", err)
	}
	return nil
}
