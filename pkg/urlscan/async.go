package urlscan

import "context"

// Result is the outcome of one asynchronous operation. Exactly one of
// Response and Err is meaningful.
type Result struct {
	Response *Response
	Err      error
}

// AsyncClient offers the same operations as Client without blocking the
// caller: each method starts the call in its own goroutine and returns a
// channel that delivers exactly one Result and is then closed. Calls are
// independently cancelable through their context and share no mutable state
// beyond the transport's connection pool.
type AsyncClient struct {
	client *Client
}

// NewAsync constructs an AsyncClient from the same options as New.
func NewAsync(opts Options) (*AsyncClient, error) {
	client, err := New(opts)
	if err != nil {
		return nil, err
	}

	return &AsyncClient{client: client}, nil
}

// Close releases the transport's pooled connections. In-flight calls are not
// interrupted; cancel their contexts instead.
func (a *AsyncClient) Close() error {
	return a.client.Close()
}

// dispatch runs call in a goroutine and hands back its result channel. The
// channel is buffered so the goroutine never blocks on a reader that went
// away.
func (a *AsyncClient) dispatch(ctx context.Context, call func(context.Context) (*Response, error)) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		resp, err := call(ctx)
		out <- Result{Response: resp, Err: err}
	}()

	return out
}

// Scan submits a URL for scanning. See Client.Scan for the upstream quota
// semantics.
func (a *AsyncClient) Scan(ctx context.Context, req ScanRequest) <-chan Result {
	return a.dispatch(ctx, func(ctx context.Context) (*Response, error) {
		return a.client.Scan(ctx, req)
	})
}

// GetScan fetches a single scan by its UUID.
func (a *AsyncClient) GetScan(ctx context.Context, scanID string) <-chan Result {
	return a.dispatch(ctx, func(ctx context.Context) (*Response, error) {
		return a.client.GetScan(ctx, scanID)
	})
}

// Screenshot fetches a scan's screenshot at the given resolution.
func (a *AsyncClient) Screenshot(ctx context.Context, scanID string, resolution Resolution) <-chan Result {
	return a.dispatch(ctx, func(ctx context.Context) (*Response, error) {
		return a.client.Screenshot(ctx, scanID, resolution)
	})
}

// HAR fetches a scan's HAR file.
func (a *AsyncClient) HAR(ctx context.Context, scanID string) <-chan Result {
	return a.dispatch(ctx, func(ctx context.Context) (*Response, error) {
		return a.client.HAR(ctx, scanID)
	})
}

// Search queries completed scans with the present filters.
func (a *AsyncClient) Search(ctx context.Context, filter SearchFilter) <-chan Result {
	return a.dispatch(ctx, func(ctx context.Context) (*Response, error) {
		return a.client.Search(ctx, filter)
	})
}
