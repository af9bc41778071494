package domain

import "fmt"

// Envelope is the uniform result-or-error wrapper returned by every
// orchestrator operation. Exactly one of Result/Error is populated;
// the constructors below are the only way the dispatch layer builds
// one, which keeps the invariant structural rather than conventional.
type Envelope struct {
	Result map[string]any `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// OK wraps a successful payload.
func OK(payload map[string]any) Envelope {
	return Envelope{Result: payload}
}

// Fail wraps an error message.
func Fail(format string, args ...any) Envelope {
	return Envelope{Error: fmt.Sprintf(format, args...)}
}

// IsError reports whether the envelope carries an error.
func (e Envelope) IsError() bool { return e.Error != "" }

// Reply is the query service's outward answer. Result may be a plain
// string (a synthesized or fixed message) or a structured payload;
// exactly one of Result/Error is populated.
type Reply struct {
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ReplyOK wraps a successful query result.
func ReplyOK(result any) Reply { return Reply{Result: result} }

// ReplyFail wraps a query-level error message.
func ReplyFail(format string, args ...any) Reply {
	return Reply{Error: fmt.Sprintf(format, args...)}
}
