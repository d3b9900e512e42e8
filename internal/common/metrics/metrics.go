// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)

	HandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "handler_errors_total",
			Help: "Total number of handler failures by error code",
		},
		[]string{"handler", "error_code"},
	)

	OfferClicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "offer_clicks_total",
			Help: "Partner redirect attempts by result",
		},
		[]string{"result"},
	)

	OfferURLCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "offer_url_cache_total",
			Help: "Partner URL cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)
