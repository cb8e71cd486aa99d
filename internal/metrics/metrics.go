// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MarkingSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marking_saves_total",
			Help: "Total number of saved marking submissions",
		},
		[]string{"role"},
	)

	StatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_transitions_total",
			Help: "Total number of applicant status transitions",
		},
		[]string{"status"},
	)

	PanelTotalHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "panel_total_score",
			Help:    "Distribution of panel ranking totals",
			Buckets: prometheus.LinearBuckets(0, 5, 11),
		},
		[]string{"job"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
