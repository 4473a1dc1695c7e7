package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyTransport adapts resty.Client to the httpclient.Transport interface.
// It owns one long-lived connection pool shared by all calls; the pool is
// released by Close.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport creates a RestyTransport with the specified per-call
// timeout. A zero timeout disables the deadline.
func NewRestyTransport(timeout time.Duration) *RestyTransport {
	c := resty.New()
	c.SetTimeout(timeout)

	return &RestyTransport{client: c}
}

// Do performs the HTTP request described by req and returns its raw response.
// Non-2xx statuses are not an error at this layer; callers inspect the status
// on the returned Response.
func (t *RestyTransport) Do(ctx context.Context, req Request) (*Response, error) {
	r := t.client.R().SetContext(ctx)
	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// Close releases idle pooled connections held by the underlying http.Client.
func (t *RestyTransport) Close() error {
	t.client.GetClient().CloseIdleConnections()

	return nil
}

// Ensure RestyTransport conforms to the Transport interface at compile time.
var _ Transport = (*RestyTransport)(nil)
