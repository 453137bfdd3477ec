package streams

import (
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/metrics"
)

var (
	streamLogLines               = "log_lines"
	metricMessagesPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "messages_published_total",
		},
		[]string{"stream_id"},
	)

	metricLinesConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "lines_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
