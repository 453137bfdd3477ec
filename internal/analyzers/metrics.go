package analyzers

import (
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/metrics"
)

const (
	streamLogLines = "log_lines"

	modeSequential = "sequential"
	modeParallel   = "parallel"
)

var (
	metricRunsCompletedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "runs_completed_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRunDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "run_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"mode"},
	)
)
