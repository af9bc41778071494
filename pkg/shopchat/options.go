package shopchat

import (
	"net/http"
	"time"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	gatewayURL string
	httpClient *http.Client
	timeout    time.Duration
}

// WithGatewayURL sets the gateway base URL, enabling direct method
// dispatch (Dispatch, ClearContext).
func WithGatewayURL(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.gatewayURL = url
	})
}

// WithHTTPClient sets a custom HTTP client. Overrides WithTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithTimeout sets the request timeout. Defaults to 30 seconds.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.timeout = d
	})
}
