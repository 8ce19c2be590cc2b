package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jetcharter_http_requests_total",
		Help: "The total number of HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jetcharter_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	UpstreamFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jetcharter_upstream_fallbacks_total",
		Help: "The total number of responses served from canned data because an upstream failed",
	}, []string{"upstream"})

	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jetcharter_cache_hits_total",
		Help: "The total number of upstream responses served from cache",
	}, []string{"upstream"})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jetcharter_bookings_created_total",
		Help: "The total number of charter requests accepted",
	})

	NotificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jetcharter_notifications_sent_total",
		Help: "The total number of booking notifications delivered",
	})
)
