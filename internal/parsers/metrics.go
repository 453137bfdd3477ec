package parsers

import (
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/metrics"
)

const (
	outcomeOK             = "ok"
	outcomeNoMatch        = "no_match"
	outcomeMethodFiltered = "method_filtered"
	outcomeStatusFiltered = "status_filtered"
)

var metricLinesParsedTotal = metrics.NewCounterVec(metrics.CounterOpts{
	Namespace: metrics.Namespace,
	Subsystem: metrics.SubParse,
	Name:      "lines_parsed_total",
	Help:      "Number of scanned log lines by parse outcome.",
}, []string{metrics.FieldOutcome})
