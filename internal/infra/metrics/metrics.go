package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "construlab_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "construlab_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	Estimates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "construlab_estimates_total",
		Help: "Estimates computed, by kind (area, slab, box).",
	}, []string{"kind"})

	Reports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "construlab_reports_total",
		Help: "Reports generated, by format.",
	}, []string{"format"})

	WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "construlab_stripe_webhook_events_total",
		Help: "Stripe webhook events received, by type.",
	}, []string{"type"})
)
