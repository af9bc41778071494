package domain

import "fmt"

// UpstreamError carries the HTTP status and body of a failed backend
// call. Its message matches the "<status>: <body>" shape the dispatch
// envelope exposes to callers.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Body)
}
