package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backend_request_duration_seconds",
		Help:    "Latency of calls to the inventory backend",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource", "method", "status"})

	BackendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backend_requests_total",
		Help: "Total number of calls to the inventory backend by envelope status",
	}, []string{"resource", "method", "status"})

	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "validation_failures_total",
		Help: "Total number of payloads rejected before reaching the backend",
	}, []string{"resource"})

	ResourceMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resource_mutations_total",
		Help: "Total number of create/edit/delete submissions",
	}, []string{"resource", "mode", "outcome"})

	SignInsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signins_total",
		Help: "Total number of sign-in attempts",
	}, []string{"outcome"})

	SignOutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signouts_total",
		Help: "Total number of sign-outs",
	})

	SessionRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "session_refresh_total",
		Help: "Total number of access token refresh attempts",
	}, []string{"outcome"})

	EventDeliveryFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "event_delivery_failures_total",
		Help: "Total number of mutation events the broker did not accept",
	})

	ActivityRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "activity_recorded_total",
		Help: "Total number of activity log rows written",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
