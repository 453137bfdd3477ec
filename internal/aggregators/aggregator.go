package aggregators

import (
	"sort"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/classifiers"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/models"
)

// Aggregator folds request records into per-group, per-URL statistics and
// turns them into a ranked summary. It is not safe for concurrent use; the
// parallel pipeline gives each worker its own Aggregator and merges the
// shards afterwards.
type Aggregator struct {
	classifier classifiers.URLClassifier
	groups     map[models.URLGroupKey]*models.URLGroupStats
}

func New(classifier classifiers.URLClassifier) *Aggregator {
	return &Aggregator{
		classifier: classifier,
		groups:     make(map[models.URLGroupKey]*models.URLGroupStats),
	}
}

// Accumulate records one request under its (method, pattern) group. Filtering
// of below-threshold requests is the caller's job; every record handed in
// counts.
func (a *Aggregator) Accumulate(rec *models.RequestRecord) {
	key := models.URLGroupKey{
		Method:  rec.Method,
		Pattern: a.classifier.Classify(rec.URLPath),
	}
	group, ok := a.groups[key]
	if !ok {
		group = models.NewURLGroupStats()
		a.groups[key] = group
		metricURLGroupCreatedTotal.WithLabelValues(key.Method).Inc()
	}
	group.Add(rec.URL, rec.RespTimeMS)
}

// Merge folds other's groups into a. Merging shard aggregators in any order
// produces the same totals as accumulating every record into one Aggregator.
// other must not be used afterwards; its per-URL state is shared with a.
func (a *Aggregator) Merge(other *Aggregator) {
	for key, otherGroup := range other.groups {
		group, ok := a.groups[key]
		if !ok {
			a.groups[key] = otherGroup
			continue
		}
		group.Merge(otherGroup)
	}
}

// Finalize builds the ranked summary. Groups are ordered by total time
// descending; within a group, URLs likewise. Ties break on (method, pattern)
// for groups and on the URL string within a group, so two runs over the same
// records finalize identically no matter how the work was sharded.
//
// limitGroups and limitURLsPerGroup cap how much of the ranking is retained;
// a non-positive limit keeps everything. Truncation only trims the view: the
// grand totals and the per-group counts always cover all accumulated records.
// Finalize reads the accumulated state without consuming it and may be called
// again after further Accumulate calls.
func (a *Aggregator) Finalize(limitGroups, limitURLsPerGroup int) *models.Summary {
	summary := &models.Summary{
		Groups:     make([]models.GroupReport, 0, len(a.groups)),
		GroupsSeen: len(a.groups),
	}

	for key, group := range a.groups {
		summary.TotalRequests += group.Count
		summary.TotalTimeMS += group.TotalTimeMS
		summary.URLsSeen += len(group.PerURL)
		summary.Groups = append(summary.Groups, buildGroupReport(key, group, limitURLsPerGroup))
	}

	sort.Slice(summary.Groups, func(i, j int) bool {
		gi, gj := summary.Groups[i], summary.Groups[j]
		if gi.TotalTimeMS != gj.TotalTimeMS {
			return gi.TotalTimeMS > gj.TotalTimeMS
		}
		if gi.Method != gj.Method {
			return gi.Method < gj.Method
		}
		return gi.Pattern < gj.Pattern
	})
	if limitGroups > 0 && len(summary.Groups) > limitGroups {
		summary.Groups = summary.Groups[:limitGroups]
	}

	return summary
}

func buildGroupReport(key models.URLGroupKey, group *models.URLGroupStats, limitURLs int) models.GroupReport {
	report := models.GroupReport{
		Method:      key.Method,
		Pattern:     key.Pattern,
		Count:       group.Count,
		TotalTimeMS: group.TotalTimeMS,
		AvgTimeMS:   float64(group.TotalTimeMS) / float64(group.Count),
		URLsSeen:    len(group.PerURL),
	}

	urls := make([]models.URLReport, 0, len(group.PerURL))
	for url, stats := range group.PerURL {
		times := make([]int64, len(stats.ResponseTimes))
		copy(times, stats.ResponseTimes)
		sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
		urls = append(urls, models.URLReport{
			URL:         url,
			Count:       stats.Count,
			TotalTimeMS: stats.TotalTimeMS,
			AvgTimeMS:   float64(stats.TotalTimeMS) / float64(stats.Count),
			TimesMS:     times,
		})
	}
	sort.Slice(urls, func(i, j int) bool {
		if urls[i].TotalTimeMS != urls[j].TotalTimeMS {
			return urls[i].TotalTimeMS > urls[j].TotalTimeMS
		}
		return urls[i].URL < urls[j].URL
	})
	if limitURLs > 0 && len(urls) > limitURLs {
		urls = urls[:limitURLs]
	}
	report.URLs = urls

	return report
}
