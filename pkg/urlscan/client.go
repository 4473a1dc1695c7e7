package urlscan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cloudflarescan/internal/config"
	"cloudflarescan/pkg/httpclient"
	"cloudflarescan/pkg/logger"
	"cloudflarescan/pkg/metrics"
	"cloudflarescan/pkg/serrors"

	"go.uber.org/zap"
)

// Options holds the configuration for a Client. Empty credentials fall back
// to the environment (CLOUDFLARE_API_KEY, CLOUDFLARE_ACCOUNT_ID); the result
// is resolved once at construction and immutable afterwards.
type Options struct {
	// APIKey is the Cloudflare API key sent as a bearer token on every request.
	APIKey string
	// AccountID is the Cloudflare account whose scanner endpoints are addressed.
	AccountID string
	// Timeout is the fixed per-call timeout applied uniformly to all
	// operations. Zero falls back to CLOUDFLARE_TIMEOUT (default 60s).
	Timeout time.Duration
	// Transport overrides the HTTP transport. When nil a resty-backed
	// transport with the resolved timeout is created and owned by the client.
	Transport httpclient.Transport
	// Metrics, when non-nil, records request counts and durations.
	Metrics *metrics.RequestMetrics
}

// Client talks to the Cloudflare URL Scanner API. All methods block until the
// call completes or the context is canceled; the client is safe for
// concurrent use. Close releases the transport's pooled connections.
type Client struct {
	accountID string
	apiKey    string
	builder   *URLBuilder
	transport httpclient.Transport
	metrics   *metrics.RequestMetrics
}

// New constructs a Client from the provided options, resolving missing
// credentials and timeout from the environment. A still-missing account ID or
// API key is a serrors.ErrInvalidConfig error; credentials are never
// re-validated per call.
func New(opts Options) (*Client, error) {
	if opts.APIKey == "" || opts.AccountID == "" || opts.Timeout == 0 {
		cfg, err := config.FromEnv()
		if err != nil {
			return nil, fmt.Errorf("could not resolve configuration: %w", err)
		}
		if opts.APIKey == "" {
			opts.APIKey = cfg.APIKey
		}
		if opts.AccountID == "" {
			opts.AccountID = cfg.AccountID
		}
		if opts.Timeout == 0 {
			opts.Timeout = cfg.Timeout
		}
	}

	if opts.APIKey == "" {
		return nil, serrors.With(serrors.ErrInvalidConfig, "missing Cloudflare API key")
	}
	if opts.AccountID == "" {
		return nil, serrors.With(serrors.ErrInvalidConfig, "missing Cloudflare account ID")
	}

	transport := opts.Transport
	if transport == nil {
		transport = httpclient.NewRestyTransport(opts.Timeout)
	}

	return &Client{
		accountID: opts.AccountID,
		apiKey:    opts.APIKey,
		builder:   NewURLBuilder(opts.AccountID),
		transport: transport,
		metrics:   opts.Metrics,
	}, nil
}

// String identifies the client by account. The API key is never included.
func (c *Client) String() string {
	return "urlscan.Client(accountID=" + c.accountID + ")"
}

// Close releases the transport's pooled connections. The client must not be
// used afterwards.
func (c *Client) Close() error {
	return c.transport.Close()
}

// headers builds the fixed request headers attached to every call.
func (c *Client) headers() map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + c.apiKey,
	}
}

// do is the shared per-operation core: it invokes the transport on an already
// built URL and wraps the raw result. Upstream rejections (non-2xx statuses,
// rate limits) are not errors here; they flow through the Response so callers
// inspect Succeeded and Errors.
func (c *Client) do(ctx context.Context, operation, method, rawURL string, body []byte) (*Response, error) {
	logger.Debug(ctx, "calling url scanner API",
		zap.String("operation", operation),
		zap.String("method", method),
		zap.String("url", rawURL))

	start := time.Now()
	raw, err := c.transport.Do(ctx, httpclient.Request{
		Method:  method,
		URL:     rawURL,
		Headers: c.headers(),
		Body:    body,
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransport, err, "%s request failed", operation)
	}
	c.metrics.Observe(operation, raw.StatusCode, time.Since(start))

	logger.Debug(ctx, "url scanner API responded",
		zap.String("operation", operation),
		zap.Int("status", raw.StatusCode))

	return NewResponse(raw.StatusCode, raw.Header, raw.Body), nil
}

// Scan submits a URL for scanning. Accounts are limited upstream to one new
// scan every 10 seconds and a monthly quota; exceeding either arrives as a
// normal Response with Succeeded()==false rather than an error. The scan
// completes asynchronously; poll GetScan with the returned ScanID.
func (c *Client) Scan(ctx context.Context, req ScanRequest) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not marshal scan request: %w", err)
	}

	return c.do(ctx, "scan", http.MethodPost, c.builder.ScanSubmitURL(), body)
}

// GetScan fetches a single scan by its UUID. Upstream addresses single scans
// through the search endpoint filtered on scanId.
func (c *Client) GetScan(ctx context.Context, scanID string) (*Response, error) {
	return c.do(ctx, "get_scan", http.MethodGet, c.builder.ScanURL(SearchFilter{ScanID: &scanID}), nil)
}

// Screenshot fetches a scan's screenshot at the given resolution
// (desktop/mobile/tablet). The response body is binary image data.
func (c *Client) Screenshot(ctx context.Context, scanID string, resolution Resolution) (*Response, error) {
	return c.do(ctx, "screenshot", http.MethodGet, c.builder.ScreenshotURL(scanID, resolution), nil)
}

// HAR fetches a scan's HAR file, a structured log of all network requests
// made while rendering the page.
func (c *Client) HAR(ctx context.Context, scanID string) (*Response, error) {
	return c.do(ctx, "har", http.MethodGet, c.builder.HARURL(scanID), nil)
}

// Search queries completed scans with the present filters. Completed scans
// appear in results a few minutes after finishing; pagination continues via
// SearchFilter.NextCursor.
func (c *Client) Search(ctx context.Context, filter SearchFilter) (*Response, error) {
	return c.do(ctx, "search", http.MethodGet, c.builder.ScanURL(filter), nil)
}
