// Package metrics exposes Prometheus instrumentation for the attendance
// verification pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsTotal counts verification runs by terminal status.
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "veriface_attendance_runs_total",
		Help: "Verification runs by terminal status.",
	}, []string{"status"})

	// OutcomesTotal counts per-participant outcomes by status.
	OutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "veriface_attendance_outcomes_total",
		Help: "Participant outcomes by status.",
	}, []string{"status"})

	// ComparisonDuration observes the latency of face comparison calls.
	ComparisonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "veriface_comparison_duration_seconds",
		Help:    "Latency of face comparison requests.",
		Buckets: prometheus.DefBuckets,
	})

	// NotificationsTotal counts absence notifications by result.
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "veriface_notifications_total",
		Help: "Absence notifications by result.",
	}, []string{"result"})
)
