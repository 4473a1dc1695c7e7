package urlscan_test

import (
	"encoding/json"
	"testing"

	"cloudflarescan/pkg/urlscan"

	"github.com/stretchr/testify/require"
)

func TestScanRequest_MarshalJSON_minimal(t *testing.T) {
	b, err := json.Marshal(urlscan.ScanRequest{URL: "https://example.com"})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	require.Len(t, got, 1, "absent optional fields must be omitted entirely, got %s", b)
	require.Equal(t, "https://example.com", got["url"])
}

func TestScanRequest_MarshalJSON_full(t *testing.T) {
	b, err := json.Marshal(urlscan.ScanRequest{
		URL:                   "https://example.com",
		ScreenshotResolutions: []urlscan.Resolution{urlscan.ResolutionTablet, urlscan.ResolutionDesktop},
		CustomUserAgent:       "probe/1.0",
		Visibility:            urlscan.VisibilityUnlisted,
	})
	require.NoError(t, err)

	//nolint: lll
	require.JSONEq(t, `{
		"url": "https://example.com",
		"screenshotsResolutions": ["tablet", "desktop"],
		"customHeaders": {"user-agent": "probe/1.0"},
		"visibility": "Unlisted"
	}`, string(b))
}

func TestScanRequest_MarshalJSON_resolutionOrderPreserved(t *testing.T) {
	b, err := json.Marshal(urlscan.ScanRequest{
		URL:                   "https://example.com",
		ScreenshotResolutions: []urlscan.Resolution{urlscan.ResolutionMobile, urlscan.ResolutionDesktop, urlscan.ResolutionTablet},
	})
	require.NoError(t, err)

	var got struct {
		Resolutions []string `json:"screenshotsResolutions"`
	}
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, []string{"mobile", "desktop", "tablet"}, got.Resolutions)
}

func TestScanRequest_MarshalJSON_noNullValues(t *testing.T) {
	b, err := json.Marshal(urlscan.ScanRequest{URL: "https://example.com"})
	require.NoError(t, err)
	require.NotContains(t, string(b), "null")
}
