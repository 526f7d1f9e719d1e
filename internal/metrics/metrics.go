package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pricefetcher_http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"method", "path", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pricefetcher_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	QuoteFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pricefetcher_quote_fetches_total",
		Help: "Total number of quote fetches by provider and outcome",
	}, []string{"provider", "outcome"})
)

// RecordFetch increments the fetch counter with outcome success or error.
func RecordFetch(provider string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	QuoteFetches.WithLabelValues(provider, outcome).Inc()
}
