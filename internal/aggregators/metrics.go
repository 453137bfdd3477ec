package aggregators

import (
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/metrics"
)

// metricURLGroupCreatedTotal counts the number of new URL groups created.
//
// This metric is incremented the first time a (method, pattern) pair is seen
// in a run, not on every accumulated record. The method label makes it easy
// to spot a misbehaving client flooding the analyzer with unique endpoints
// for one verb.
var (
	metricURLGroupCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "url_group_created_total",
		},
		[]string{"method"},
	)
)
