// Package metrics exposes Prometheus instrumentation for the request pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks completed backend calls by endpoint path and outcome.
	// Outcome is "ok" or the normalized error kind.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plateful_client_requests_total",
			Help: "Completed backend calls by path and outcome",
		},
		[]string{"path", "outcome"},
	)

	// RequestDuration tracks backend call latency in seconds by endpoint path.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "plateful_client_request_duration_seconds",
			Help:    "Backend call duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"path"},
	)

	// SessionExpiries tracks unauthorized responses that invalidated the
	// active credential.
	SessionExpiries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plateful_client_session_expiries_total",
			Help: "Unauthorized responses that cleared the active credential",
		},
	)
)

// ObserveRequest records one completed call.
func ObserveRequest(path, outcome string, seconds float64) {
	RequestsTotal.WithLabelValues(path, outcome).Inc()
	RequestDuration.WithLabelValues(path).Observe(seconds)
}
