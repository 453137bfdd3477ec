package reports

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/models"
)

type textRenderer struct{}

// NewTextRenderer returns the renderer behind the "text" format, meant for
// reading in a terminal. Styling goes through the color package; whether the
// escape codes are actually emitted is the caller's call via color.NoColor.
func NewTextRenderer() Renderer {
	return &textRenderer{}
}

var (
	textTitle   = color.New(color.Bold)
	textHeading = color.New(color.FgCyan, color.Bold)
	textMuted   = color.New(color.Faint)
)

func (r *textRenderer) Render(w io.Writer, report *models.Report) error {
	view := buildView(report)

	// Rendering goes through a buffer so a broken pipe surfaces as one
	// write error instead of a torn report.
	var buf bytes.Buffer

	textTitle.Fprintf(&buf, "uwsgi-sloth report: %s\n", view.Source)
	textMuted.Fprintf(&buf, "generated %s, elapsed %s\n", view.GeneratedAt, view.Elapsed)
	textMuted.Fprintf(&buf, "lines read %d, requests matched %d, below %d ms: %d\n",
		view.LinesRead, view.RecordsMatched, view.MinMsecs, view.BelowMin)
	fmt.Fprintf(&buf, "aggregated requests %d, total time %d ms, url groups %d of %d\n\n",
		view.TotalRequests, view.TotalTimeMS, view.GroupsShown, view.GroupsSeen)

	for _, group := range view.Groups {
		textHeading.Fprintf(&buf, "%s %s\n", group.Method, group.Pattern)
		fmt.Fprintf(&buf, "  %d requests, %d ms total, %s ms avg\n", group.Count, group.TotalTimeMS, group.AvgTimeMS)

		tw := tabwriter.NewWriter(&buf, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  url\tcount\ttotal(ms)\tavg(ms)\ttimes(ms)")
		for _, url := range group.URLs {
			fmt.Fprintf(tw, "  %s\t%d\t%d\t%s\t%s\n",
				url.URL, url.Count, url.TotalTimeMS, url.AvgTimeMS, url.TimesMS)
		}
		tw.Flush()

		if group.URLsShown < group.URLsSeen {
			textMuted.Fprintf(&buf, "  showing %d of %d urls\n", group.URLsShown, group.URLsSeen)
		}
		fmt.Fprintln(&buf)
	}

	if len(view.Groups) == 0 {
		fmt.Fprintln(&buf, "no requests above the threshold")
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errRenderFailed(err)
	}
	return nil
}
