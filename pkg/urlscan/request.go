package urlscan

import "encoding/json"

// Resolution is a screenshot resolution accepted by the scan submit endpoint.
type Resolution string

const (
	ResolutionDesktop Resolution = "desktop"
	ResolutionMobile  Resolution = "mobile"
	ResolutionTablet  Resolution = "tablet"
)

// Visibility is the upstream-defined privacy level of a scan.
type Visibility string

const (
	VisibilityPublic   Visibility = "Public"
	VisibilityUnlisted Visibility = "Unlisted"
)

// ScanRequest describes one scan submission. URL is required; every other
// field is optional and omitted from the request body entirely when unset
// (never emitted as null).
type ScanRequest struct {
	// URL is the target to scan.
	URL string
	// ScreenshotResolutions selects which screenshots to take; order is preserved.
	ScreenshotResolutions []Resolution
	// CustomUserAgent overrides the user agent used when scanning the URL.
	CustomUserAgent string
	// Visibility sets the privacy level of the scan.
	Visibility Visibility
}

// MarshalJSON serializes the request into the wire shape of the submit
// endpoint: a custom user agent is nested as customHeaders["user-agent"].
func (r ScanRequest) MarshalJSON() ([]byte, error) {
	body := struct {
		URL                    string            `json:"url"`
		ScreenshotsResolutions []Resolution      `json:"screenshotsResolutions,omitempty"`
		CustomHeaders          map[string]string `json:"customHeaders,omitempty"`
		Visibility             Visibility        `json:"visibility,omitempty"`
	}{
		URL:                    r.URL,
		ScreenshotsResolutions: r.ScreenshotResolutions,
		Visibility:             r.Visibility,
	}
	if r.CustomUserAgent != "" {
		body.CustomHeaders = map[string]string{"user-agent": r.CustomUserAgent}
	}

	return json.Marshal(body)
}
