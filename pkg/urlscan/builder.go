package urlscan

import (
	"net/url"
	"strconv"
	"time"
)

const (
	apiScheme = "https"
	apiHost   = "api.cloudflare.com"
)

// SearchFilter holds the optional query filters accepted by the scan search
// endpoint. Every field is optional: a nil pointer means the filter is not
// supplied and produces no query key at all, while a pointer to a zero value
// (including an empty string) is a present filter and is emitted.
//
// Fetching a single scan by ID is not a separate route upstream; it is the
// same endpoint addressed with only ScanID set.
type SearchFilter struct {
	// ScanID selects one specific scan by its UUID.
	ScanID *string
	// AccountScans restricts results to scans created by the account.
	AccountScans *bool
	// DateStart keeps scans requested after this time (inclusive).
	DateStart *time.Time
	// DateEnd keeps scans requested before this time (inclusive).
	DateEnd *time.Time
	// Hostname filters by hostname of any request made by the webpage.
	Hostname *string
	// IP filters by IP address (IPv4 or IPv6) of any request made by the webpage.
	IP *string
	// Limit caps the number of objects in the response.
	Limit *int
	// NextCursor is the opaque pagination cursor from a previous search response.
	NextCursor *string
	// PageHostname filters by the main page hostname.
	PageHostname *string
	// PageIP filters by the main page IP address.
	PageIP *string
	// PagePath filters by exact match URL path of the main page (suffix search supported upstream).
	PagePath *string
	// PageURL filters by exact match to the scanned URL after redirects.
	PageURL *string
	// Path filters by URL path of any request made by the webpage.
	Path *string
	// URL filters by exact match URL of any request made by the webpage.
	URL *string
}

// query renders exactly the present filters into URL query values. Dates are
// formatted as RFC 3339, numbers in plain decimal.
func (f SearchFilter) query() url.Values {
	q := url.Values{}
	set := func(key string, v *string) {
		if v != nil {
			q.Set(key, *v)
		}
	}
	setTime := func(key string, v *time.Time) {
		if v != nil {
			q.Set(key, v.Format(time.RFC3339))
		}
	}

	set("scanId", f.ScanID)
	if f.AccountScans != nil {
		q.Set("account_scans", strconv.FormatBool(*f.AccountScans))
	}
	setTime("date_start", f.DateStart)
	setTime("date_end", f.DateEnd)
	set("hostname", f.Hostname)
	set("ip", f.IP)
	if f.Limit != nil {
		q.Set("limit", strconv.Itoa(*f.Limit))
	}
	set("next_cursor", f.NextCursor)
	set("page_hostname", f.PageHostname)
	set("page_ip", f.PageIP)
	set("page_path", f.PagePath)
	set("page_url", f.PageURL)
	set("path", f.Path)
	set("url", f.URL)

	return q
}

// Ptr returns a pointer to v. It keeps SearchFilter literals short.
func Ptr[T any](v T) *T { return &v }

// URLBuilder deterministically produces absolute URLs for the URL Scanner
// endpoints of one account. It performs no I/O and holds no mutable state.
type URLBuilder struct {
	accountID string
}

// NewURLBuilder constructs a URLBuilder for the given account.
func NewURLBuilder(accountID string) *URLBuilder {
	return &URLBuilder{accountID: accountID}
}

// basePath is the scan endpoint path for the builder's account.
func (b *URLBuilder) basePath() string {
	return "/client/v4/accounts/" + b.accountID + "/urlscanner/scan"
}

// ScanSubmitURL returns the URL scans are POSTed to. It carries no query
// string.
func (b *URLBuilder) ScanSubmitURL() string {
	u := url.URL{Scheme: apiScheme, Host: apiHost, Path: b.basePath()}

	return u.String()
}

// ScanURL returns the search URL with exactly the present filters encoded in
// the query string. With a zero SearchFilter it returns the bare endpoint.
func (b *URLBuilder) ScanURL(f SearchFilter) string {
	u := url.URL{Scheme: apiScheme, Host: apiHost, Path: b.basePath()}
	u.RawQuery = f.query().Encode()

	return u.String()
}

// ScreenshotURL returns the URL of a scan's screenshot at the given
// resolution. The resolution is passed through unvalidated; unknown values
// are rejected upstream.
func (b *URLBuilder) ScreenshotURL(scanID string, resolution Resolution) string {
	u := url.URL{Scheme: apiScheme, Host: apiHost, Path: b.basePath() + "/" + scanID + "/screenshot"}
	q := url.Values{}
	q.Set("resolution", string(resolution))
	u.RawQuery = q.Encode()

	return u.String()
}

// HARURL returns the URL of a scan's HAR file.
func (b *URLBuilder) HARURL(scanID string) string {
	u := url.URL{Scheme: apiScheme, Host: apiHost, Path: b.basePath() + "/" + scanID + "/har"}

	return u.String()
}
