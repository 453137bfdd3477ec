package models

import "time"

// Summary is the ranked, size-bounded view built by Aggregator.Finalize.
// Groups holds at most the configured top-N groups by total time descending;
// the grand totals and the Seen counters always reflect every group and URL
// observed, not only the retained ones.
type Summary struct {
	Groups        []GroupReport `json:"groups"`
	TotalRequests int64         `json:"totalRequests"`
	TotalTimeMS   int64         `json:"totalTimeMs"`
	GroupsSeen    int           `json:"groupsSeen"`
	URLsSeen      int           `json:"urlsSeen"`
}

// GroupReport is one ranked aggregation bucket. URLs holds at most the
// configured top-M urls of the group; Count and TotalTimeMS cover all of
// them regardless of truncation.
type GroupReport struct {
	Method      string      `json:"method"`
	Pattern     string      `json:"pattern"`
	Count       int64       `json:"count"`
	TotalTimeMS int64       `json:"totalTimeMs"`
	AvgTimeMS   float64     `json:"avgTimeMs"`
	URLs        []URLReport `json:"urls"`
	URLsSeen    int         `json:"urlsSeen"`
}

// URLReport is one exact URL inside a group. TimesMS is sorted ascending so
// min, median and max can be read off it directly.
type URLReport struct {
	URL         string  `json:"url"`
	Count       int64   `json:"count"`
	TotalTimeMS int64   `json:"totalTimeMs"`
	AvgTimeMS   float64 `json:"avgTimeMs"`
	TimesMS     []int64 `json:"timesMs"`
}

// RunMeta describes one analysis run for report headers and logs.
type RunMeta struct {
	ReportID       string        `json:"reportId"`
	Source         string        `json:"source"`
	GeneratedAt    time.Time     `json:"generatedAt"`
	Elapsed        time.Duration `json:"elapsedNs"`
	LinesRead      int64         `json:"linesRead"`
	RecordsMatched int64         `json:"recordsMatched"`
	BelowMin       int64         `json:"belowMin"`
	MinMsecs       int64         `json:"minMsecs"`
}

// Report is the complete renderer input: run metadata plus the summary.
type Report struct {
	Meta    RunMeta  `json:"meta"`
	Summary *Summary `json:"summary"`
}
