package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Upstream catalog metrics
var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_upstream_requests_total",
			Help: "Total number of requests sent to the catalog API.",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_upstream_request_duration_seconds",
			Help:    "Latency of catalog API requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// HTTP API metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served.",
		},
		[]string{"route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests served.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// Router metrics
var (
	NavigationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "router_navigations_total",
			Help: "Total number of navigations by resolved route and outcome.",
		},
		[]string{"route", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
		HTTPRequestsTotal,
		HTTPRequestDuration,
		NavigationsTotal,
	)
}
