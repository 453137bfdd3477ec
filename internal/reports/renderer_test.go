package reports

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/models"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *models.Report {
	return &models.Report{
		Meta: models.RunMeta{
			ReportID:       "01SAMPLEREPORTID",
			Source:         "access.log",
			GeneratedAt:    time.Date(2014, 9, 12, 10, 44, 37, 0, time.UTC),
			Elapsed:        1500 * time.Millisecond,
			LinesRead:      10,
			RecordsMatched: 4,
			BelowMin:       1,
			MinMsecs:       200,
		},
		Summary: &models.Summary{
			Groups: []models.GroupReport{
				{
					Method:      "POST",
					Pattern:     `/trips/(\d+)/add_waypoint/`,
					Count:       3,
					TotalTimeMS: 4613,
					AvgTimeMS:   4613.0 / 3,
					URLsSeen:    2,
					URLs: []models.URLReport{
						{
							URL:         "/trips/2387949771/add_waypoint/",
							Count:       2,
							TotalTimeMS: 3579,
							AvgTimeMS:   1789.5,
							TimesMS:     []int64{812, 2767},
						},
						{
							URL:         "/trips/9000000001/add_waypoint/",
							Count:       1,
							TotalTimeMS: 1034,
							AvgTimeMS:   1034,
							TimesMS:     []int64{1034},
						},
					},
				},
			},
			TotalRequests: 3,
			TotalTimeMS:   4613,
			GroupsSeen:    1,
			URLsSeen:      2,
		},
	}
}

func TestForFormat(t *testing.T) {
	t.Parallel()

	for _, format := range []string{FormatHTML, FormatJSON, FormatText, "HTML", "Text"} {
		renderer, err := ForFormat(format)
		require.NoError(t, err, "format %q", format)
		assert.NotNil(t, renderer)
	}

	_, err := ForFormat("xml")
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeUnsupportedFormat, svcErr.Code)
}

func TestHTMLRenderer_Render(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewHTMLRenderer().Render(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "access.log")
	// The pattern contains regex metacharacters and must arrive escaped but
	// readable.
	assert.Contains(t, out, `/trips/(\d+)/add_waypoint/`)
	assert.Contains(t, out, "812, 2767")
	assert.Contains(t, out, "1537.7", "group average formatted to one decimal")
}

func TestHTMLRenderer_RenderEmptySummary(t *testing.T) {
	t.Parallel()

	report := sampleReport()
	report.Summary = &models.Summary{}

	var buf bytes.Buffer
	require.NoError(t, NewHTMLRenderer().Render(&buf, report))
	assert.Contains(t, buf.String(), "No requests above the threshold.")
}

func TestJSONRenderer_RenderRoundTrips(t *testing.T) {
	t.Parallel()

	report := sampleReport()

	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer().Render(&buf, report))

	var decoded models.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *report, decoded)
}

func TestTextRenderer_Render(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "uwsgi-sloth report: access.log")
	assert.Contains(t, out, `POST /trips/(\d+)/add_waypoint/`)
	assert.Contains(t, out, "3 requests, 4613 ms total")
	assert.Contains(t, out, "/trips/2387949771/add_waypoint/")
}

func TestTextRenderer_RenderEmptySummary(t *testing.T) {
	t.Parallel()

	report := sampleReport()
	report.Summary = &models.Summary{}

	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(&buf, report))
	assert.Contains(t, buf.String(), "no requests above the threshold")
}

func TestBuildView_FormatsNumbers(t *testing.T) {
	t.Parallel()

	view := buildView(sampleReport())

	require.Len(t, view.Groups, 1)
	group := view.Groups[0]
	assert.Equal(t, "1537.7", group.AvgTimeMS)
	require.Len(t, group.URLs, 2)
	assert.Equal(t, "1789.5", group.URLs[0].AvgTimeMS)
	assert.Equal(t, "812, 2767", group.URLs[0].TimesMS)
	assert.Equal(t, "2014-09-12T10:44:37Z", view.GeneratedAt)
	assert.Equal(t, "1.5s", view.Elapsed)
}
