// Package metrics defines Prometheus metrics for mws-go.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mws"

// API call metrics, labeled by MWS action name.
var (
	APICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_calls_total",
		Help:      "Total number of MWS API calls.",
	}, []string{"action"})

	APIErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_errors_total",
		Help:      "Total number of failed MWS API calls.",
	}, []string{"action"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of MWS API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action"})
)

// Quota metrics, fed from the x-mws-quota-* response headers.
var (
	QuotaMax = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "quota_max",
		Help:      "Request quota ceiling reported by MWS.",
	}, []string{"action"})

	QuotaRemaining = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "quota_remaining",
		Help:      "Remaining request quota reported by MWS.",
	}, []string{"action"})
)
