package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Upstream Metrics (the randomusers endpoint)
	UpstreamFetchesTotal  *prometheus.CounterVec
	UpstreamFetchErrors   *prometheus.CounterVec
	UpstreamFetchDuration prometheus.Histogram

	// History Metrics
	HistoryWritesTotal *prometheus.CounterVec
	HistoryReadsTotal  *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// HTTP Metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint", "status"},
		),

		HTTPRequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 7),
			},
			[]string{"method", "endpoint"},
		),

		HTTPResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 7),
			},
			[]string{"method", "endpoint", "status"},
		),

		// Upstream Metrics
		UpstreamFetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_fetches_total",
				Help: "Total number of fetches against the random-users endpoint",
			},
			[]string{"result"},
		),

		UpstreamFetchErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_fetch_errors_total",
				Help: "Total number of failed fetches by error type",
			},
			[]string{"error_type"},
		),

		UpstreamFetchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "upstream_fetch_duration_seconds",
				Help:    "Random-users fetch latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		// History Metrics
		HistoryWritesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "history_writes_total",
				Help: "Total number of fetch-history writes",
			},
			[]string{"status"},
		),

		HistoryReadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "history_reads_total",
				Help: "Total number of fetch-history reads",
			},
			[]string{"status"},
		),
	}
}
