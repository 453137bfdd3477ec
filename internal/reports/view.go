package reports

import (
	"strconv"
	"strings"
	"time"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/models"
)

// reportView flattens a models.Report into display-ready values shared by the
// html and text renderers. Numbers that need consistent formatting (averages,
// the response-time list) are pre-rendered here so both outputs agree.
type reportView struct {
	Source         string
	GeneratedAt    string
	Elapsed        string
	LinesRead      int64
	RecordsMatched int64
	BelowMin       int64
	MinMsecs       int64
	TotalRequests  int64
	TotalTimeMS    int64
	GroupsShown    int
	GroupsSeen     int
	Groups         []groupView
}

type groupView struct {
	Method      string
	Pattern     string
	Count       int64
	TotalTimeMS int64
	AvgTimeMS   string
	URLsShown   int
	URLsSeen    int
	URLs        []urlView
}

type urlView struct {
	URL         string
	Count       int64
	TotalTimeMS int64
	AvgTimeMS   string
	TimesMS     string
}

func buildView(report *models.Report) *reportView {
	summary := report.Summary

	view := &reportView{
		Source:         report.Meta.Source,
		GeneratedAt:    report.Meta.GeneratedAt.Format(time.RFC3339),
		Elapsed:        report.Meta.Elapsed.Round(time.Millisecond).String(),
		LinesRead:      report.Meta.LinesRead,
		RecordsMatched: report.Meta.RecordsMatched,
		BelowMin:       report.Meta.BelowMin,
		MinMsecs:       report.Meta.MinMsecs,
		TotalRequests:  summary.TotalRequests,
		TotalTimeMS:    summary.TotalTimeMS,
		GroupsShown:    len(summary.Groups),
		GroupsSeen:     summary.GroupsSeen,
		Groups:         make([]groupView, 0, len(summary.Groups)),
	}

	for _, group := range summary.Groups {
		gv := groupView{
			Method:      group.Method,
			Pattern:     group.Pattern,
			Count:       group.Count,
			TotalTimeMS: group.TotalTimeMS,
			AvgTimeMS:   fmtAvg(group.AvgTimeMS),
			URLsShown:   len(group.URLs),
			URLsSeen:    group.URLsSeen,
			URLs:        make([]urlView, 0, len(group.URLs)),
		}
		for _, url := range group.URLs {
			gv.URLs = append(gv.URLs, urlView{
				URL:         url.URL,
				Count:       url.Count,
				TotalTimeMS: url.TotalTimeMS,
				AvgTimeMS:   fmtAvg(url.AvgTimeMS),
				TimesMS:     joinTimes(url.TimesMS),
			})
		}
		view.Groups = append(view.Groups, gv)
	}

	return view
}

func fmtAvg(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

func joinTimes(times []int64) string {
	parts := make([]string, len(times))
	for i, t := range times {
		parts[i] = strconv.FormatInt(t, 10)
	}
	return strings.Join(parts, ", ")
}
