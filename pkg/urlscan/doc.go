// Package urlscan is a Go client for the Cloudflare URL Scanner API. It
// submits URLs for scanning, retrieves scan results, screenshots and HAR
// files, and searches previously completed scans.
//
// # Client Creation
//
// Credentials can be passed explicitly or resolved from the environment
// (CLOUDFLARE_API_KEY, CLOUDFLARE_ACCOUNT_ID). The API key is sent as a
// bearer token on every request.
//
//	client, err := urlscan.New(urlscan.Options{
//	    APIKey:    "...",
//	    AccountID: "...",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := client.Scan(ctx, urlscan.ScanRequest{URL: "https://example.com"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !resp.Succeeded() {
//	    errs, _ := resp.Errors()
//	    log.Fatalf("scan rejected: %v", errs)
//	}
//	id, _ := resp.ScanID()
//
// Scans complete asynchronously on the Cloudflare side, sometimes after
// several minutes; poll GetScan until the result is available. Submissions
// are capped upstream at one new scan every 10 seconds plus a monthly quota;
// the client does not throttle locally.
//
// # Error Handling
//
// Failures carry semantic kinds from cloudflarescan/pkg/serrors and can be
// classified with errors.Is:
//
//   - serrors.ErrInvalidConfig: missing account ID or API key at construction.
//   - serrors.ErrParse: a response body that is not valid JSON, reported by
//     Response.JSON and the accessors built on it.
//   - serrors.ErrTransport: network, connection or timeout failure; the
//     transport's own error remains reachable through errors.Is/As.
//
// API-level rejections (rate limits, unknown scan IDs) are not Go errors:
// they arrive as a normal *Response whose Succeeded method reports false and
// whose Errors method lists the upstream complaints.
package urlscan
