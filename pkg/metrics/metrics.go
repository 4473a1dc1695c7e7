// Package metrics provides optional Prometheus instrumentation for the SDK.
// Metrics are only collected when the host application constructs a
// RequestMetrics against its own Registerer and passes it to the client.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// RequestMetrics records per-operation request counts and durations for calls
// made against the URL Scanner API. A nil *RequestMetrics is valid and records
// nothing.
type RequestMetrics struct {
	// requests counts finished requests, labeled by operation and HTTP status.
	requests *prometheus.CounterVec
	// duration observes request latency in seconds, labeled by operation.
	duration *prometheus.HistogramVec
}

// NewRequestMetrics constructs a RequestMetrics and registers its collectors
// against the provided Registerer.
func NewRequestMetrics(reg prometheus.Registerer) *RequestMetrics {
	factory := promauto.With(reg)

	return &RequestMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cloudflarescan",
			Name:      "requests_total",
			Help:      "Finished requests against the Cloudflare URL Scanner API.",
		}, []string{"operation", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cloudflarescan",
			Name:      "request_duration_seconds",
			Help:      "Latency of requests against the Cloudflare URL Scanner API.",
			Buckets:   DefaultBuckets,
		}, []string{"operation"}),
	}
}

// Observe records one finished request with its HTTP status and elapsed time.
func (m *RequestMetrics) Observe(operation string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
