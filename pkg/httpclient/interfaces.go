// Package httpclient abstracts the HTTP transport used by the SDK so callers
// can inject fakes or different backends. The default backend is resty.
package httpclient

import (
	"context"
	"net/http"
)

// Request describes one outgoing HTTP call. Body, when non-nil, is an
// already-serialized JSON payload.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// Response is the raw outcome of a completed HTTP call, before any
// normalization.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs HTTP calls on behalf of the client. Implementations must
// honor context cancelation, apply their configured per-call timeout uniformly
// and release pooled connections on Close.
type Transport interface {
	Do(ctx context.Context, req Request) (*Response, error)

	Close() error
}
