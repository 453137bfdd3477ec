package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/analyzers"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/classifiers"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/models"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/parsers"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/configs"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	requestsPerEndpoint = 4000 // log lines generated per endpoint/ID combination
	idsPerEndpoint      = 4    // numeric IDs used per endpoint; all collapse into one group
	minMsecs            = 200  // analysis threshold; the noise endpoint sits below it
)

// endpoints whose numeric segment must collapse into one group each.
var endpoints = []struct {
	method string
	format string // format string taking the numeric ID
	msecs  int64  // response time for every request of this endpoint
}{
	{"POST", "/trips/%d/add_waypoint/", 900},
	{"GET", "/trips/%d/", 500},
	{"GET", "/users/%d/profile/", 300},
}

// ### End - fixed configs

// main runs the e2e scenario: 001_basic_access_log_report
//
// This scenario tests the full parse -> classify -> aggregate pipeline in
// process, comparing a sequential run against a partitioned 4-worker run.
//
// What it tests:
//   - uWSGI access-log grammar parsing, including non-request lines mixed in
//   - Numeric path segments collapsing into one group per endpoint
//   - The minimum-response-time threshold dropping fast requests entirely
//   - Conservation: group counts and totals equal the sum of their URLs
//   - Ranking by total time descending with deterministic order
//   - Sequential and partitioned runs producing identical summaries
//
// Expected results:
//   - Exactly 3 URL groups, one per endpoint, ranked POST /trips/(\d+)/add_waypoint/
//     first (highest total time)
//   - Each group counts requestsPerEndpoint * idsPerEndpoint requests
//   - The below-threshold endpoint appears in no group but is counted as matched
func main() {
	var failures int

	fail := func(format string, args ...any) {
		failures++
		fmt.Fprintf(os.Stderr, "FAIL: "+format+"\n", args...)
	}

	logText, totalLines, matchedLines, belowMin := generateLog()

	sequential := runAnalysis(1, logText, fail)
	parallel := runAnalysis(4, logText, fail)

	for _, run := range []*models.Report{sequential, parallel} {
		if run == nil {
			continue
		}
		checkCounters(run, totalLines, matchedLines, belowMin, fail)
		checkGroups(run, fail)
		checkConservation(run, fail)
	}

	if sequential != nil && parallel != nil {
		checkRunsAgree(sequential.Summary, parallel.Summary, fail)
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "scenario failed with %d failure(s)\n", failures)
		os.Exit(1)
	}
	fmt.Println("PASS: 001_basic_access_log_report")
}

// generateLog builds a deterministic access log with request lines for every
// endpoint, a below-threshold endpoint and interleaved non-request noise.
func generateLog() (log string, totalLines, matched, belowMin int64) {
	var b strings.Builder

	writeRequest := func(method, url string, msecs int64) {
		fmt.Fprintf(&b,
			"[pid: 27011|app: 0|req: 1/1] 10.8.1.1 () {40 vars in 777 bytes} [Fri Sep 12 10:44:37 2014] %s %s => generated 1053 bytes in %d msecs (HTTP/1.1 200) 4 headers in 282 bytes\n",
			method, url, msecs)
		totalLines++
		matched++
	}

	for round := 0; round < requestsPerEndpoint; round++ {
		for _, ep := range endpoints {
			for id := 1; id <= idsPerEndpoint; id++ {
				writeRequest(ep.method, fmt.Sprintf(ep.format, 1000000+id), ep.msecs)
			}
		}

		// One fast request per round: matched but dropped by the threshold.
		writeRequest("GET", "/healthcheck/", 10)
		belowMin++

		// Non-request noise the parser must skip silently.
		b.WriteString("Fri Sep 12 10:44:38 2014 - worker 3 respawned\n")
		totalLines++
	}

	return b.String(), totalLines, matched, belowMin
}

func runAnalysis(workers int, logText string, fail func(string, ...any)) *models.Report {
	classifier, err := classifiers.New(nil)
	if err != nil {
		fail("building classifier: %v", err)
		return nil
	}

	service := analyzers.NewAnalysisService(
		parsers.New(nil, nil),
		classifier,
		configs.AnalyzeConfig{MinMsecs: minMsecs, Workers: workers},
		configs.ReportConfig{TopURLGroups: 100, TopURLsPerGroup: 100},
	)

	report, err := service.Analyze(context.Background(), strings.NewReader(logText), fmt.Sprintf("synthetic (%d workers)", workers))
	if err != nil {
		fail("analysis with %d workers: %v", workers, err)
		return nil
	}
	return report
}

func checkCounters(report *models.Report, totalLines, matched, belowMin int64, fail func(string, ...any)) {
	if report.Meta.LinesRead != totalLines {
		fail("%s: lines read = %d, want %d", report.Meta.Source, report.Meta.LinesRead, totalLines)
	}
	if report.Meta.RecordsMatched != matched {
		fail("%s: records matched = %d, want %d", report.Meta.Source, report.Meta.RecordsMatched, matched)
	}
	if report.Meta.BelowMin != belowMin {
		fail("%s: below-min records = %d, want %d", report.Meta.Source, report.Meta.BelowMin, belowMin)
	}
}

func checkGroups(report *models.Report, fail func(string, ...any)) {
	summary := report.Summary

	if len(summary.Groups) != len(endpoints) {
		fail("%s: got %d groups, want %d", report.Meta.Source, len(summary.Groups), len(endpoints))
		return
	}

	wantCount := int64(requestsPerEndpoint * idsPerEndpoint)
	wantOrder := []string{`/trips/(\d+)/add_waypoint/`, `/trips/(\d+)/`, `/users/(\d+)/profile/`}

	for i, group := range summary.Groups {
		if group.Pattern != wantOrder[i] {
			fail("%s: group %d pattern = %q, want %q", report.Meta.Source, i, group.Pattern, wantOrder[i])
		}
		if group.Count != wantCount {
			fail("%s: group %q count = %d, want %d", report.Meta.Source, group.Pattern, group.Count, wantCount)
		}
		if len(group.URLs) != idsPerEndpoint {
			fail("%s: group %q has %d urls, want %d", report.Meta.Source, group.Pattern, len(group.URLs), idsPerEndpoint)
		}
	}
}

// checkConservation verifies that group totals equal the sum over their URLs
// and that the grand totals equal the sum over all groups.
func checkConservation(report *models.Report, fail func(string, ...any)) {
	summary := report.Summary

	var grandCount, grandTime int64
	for _, group := range summary.Groups {
		var urlCount, urlTime int64
		for _, url := range group.URLs {
			urlCount += url.Count
			urlTime += url.TotalTimeMS
			if int64(len(url.TimesMS)) != url.Count {
				fail("%s: url %q retains %d times for %d requests", report.Meta.Source, url.URL, len(url.TimesMS), url.Count)
			}
		}
		if urlCount != group.Count || urlTime != group.TotalTimeMS {
			fail("%s: group %q totals (%d, %d) != url sums (%d, %d)",
				report.Meta.Source, group.Pattern, group.Count, group.TotalTimeMS, urlCount, urlTime)
		}
		grandCount += group.Count
		grandTime += group.TotalTimeMS
	}

	if grandCount != summary.TotalRequests || grandTime != summary.TotalTimeMS {
		fail("%s: grand totals (%d, %d) != group sums (%d, %d)",
			report.Meta.Source, summary.TotalRequests, summary.TotalTimeMS, grandCount, grandTime)
	}
}

// checkRunsAgree verifies the partitioned run finalized to exactly the same
// summary as the sequential one.
func checkRunsAgree(sequential, parallel *models.Summary, fail func(string, ...any)) {
	if sequential.TotalRequests != parallel.TotalRequests || sequential.TotalTimeMS != parallel.TotalTimeMS {
		fail("sequential and parallel grand totals differ: (%d, %d) vs (%d, %d)",
			sequential.TotalRequests, sequential.TotalTimeMS, parallel.TotalRequests, parallel.TotalTimeMS)
		return
	}
	if len(sequential.Groups) != len(parallel.Groups) {
		fail("sequential and parallel group counts differ: %d vs %d", len(sequential.Groups), len(parallel.Groups))
		return
	}
	for i := range sequential.Groups {
		s, p := sequential.Groups[i], parallel.Groups[i]
		if s.Method != p.Method || s.Pattern != p.Pattern || s.Count != p.Count || s.TotalTimeMS != p.TotalTimeMS {
			fail("group %d differs between runs: %s %s (%d, %d) vs %s %s (%d, %d)",
				i, s.Method, s.Pattern, s.Count, s.TotalTimeMS, p.Method, p.Pattern, p.Count, p.TotalTimeMS)
		}
	}
}
