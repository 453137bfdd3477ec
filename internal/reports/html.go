package reports

import (
	"html/template"
	"io"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/models"
)

type htmlRenderer struct{}

// NewHTMLRenderer returns the renderer behind the default "html" format. The
// page is self-contained with no external assets, so it can be mailed around
// or dropped behind any static file server as-is.
func NewHTMLRenderer() Renderer {
	return &htmlRenderer{}
}

func (r *htmlRenderer) Render(w io.Writer, report *models.Report) error {
	if err := reportTemplate.Execute(w, buildView(report)); err != nil {
		return errRenderFailed(err)
	}
	return nil
}

var reportTemplate = template.Must(template.New("uwsgi-sloth-report").Parse(reportTemplateHTML))

const reportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>uwsgi-sloth report</title>
  <style>
    body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; margin: 2rem auto; max-width: 1100px; padding: 0 1rem; color: #1f2933; }
    h1 { font-size: 1.5rem; margin-bottom: 0.5rem; }
    .meta { color: #52606d; font-size: 0.9rem; margin-bottom: 0.75rem; }
    .meta span { margin-right: 1.25rem; white-space: nowrap; }
    .group { border: 1px solid #d9e2ec; border-radius: 6px; margin-bottom: 1rem; overflow: hidden; }
    .group-header { background: #f0f4f8; padding: 0.6rem 1rem; display: flex; justify-content: space-between; flex-wrap: wrap; gap: 0.5rem; }
    .group-header code { font-size: 0.95rem; }
    .group-stats { color: #52606d; font-size: 0.9rem; }
    .method { display: inline-block; min-width: 3.5rem; font-weight: 600; color: #2b6cb0; }
    table { width: 100%; border-collapse: collapse; font-size: 0.9rem; }
    th, td { text-align: left; padding: 0.4rem 1rem; border-top: 1px solid #e4ebf2; }
    th { color: #52606d; font-weight: 600; }
    td.num, th.num { text-align: right; }
    td.times { color: #829ab1; font-size: 0.8rem; word-break: break-all; }
    .truncated { color: #9aa5b1; font-size: 0.8rem; padding: 0.4rem 1rem; }
  </style>
</head>
<body>
  <h1>uwsgi-sloth report</h1>
  <div class="meta">
    <span>source: {{ .Source }}</span>
    <span>generated: {{ .GeneratedAt }}</span>
    <span>elapsed: {{ .Elapsed }}</span>
  </div>
  <div class="meta">
    <span>lines read: {{ .LinesRead }}</span>
    <span>requests matched: {{ .RecordsMatched }}</span>
    <span>below {{ .MinMsecs }} ms: {{ .BelowMin }}</span>
    <span>aggregated requests: {{ .TotalRequests }}</span>
    <span>total time: {{ .TotalTimeMS }} ms</span>
    <span>url groups: {{ .GroupsShown }} of {{ .GroupsSeen }}</span>
  </div>
{{ range .Groups }}  <div class="group">
    <div class="group-header">
      <div><span class="method">{{ .Method }}</span> <code>{{ .Pattern }}</code></div>
      <div class="group-stats">{{ .Count }} requests, {{ .TotalTimeMS }} ms total, {{ .AvgTimeMS }} ms avg</div>
    </div>
    <table>
      <tr><th>url</th><th class="num">count</th><th class="num">total (ms)</th><th class="num">avg (ms)</th><th>times (ms)</th></tr>
{{ range .URLs }}      <tr>
        <td><code>{{ .URL }}</code></td>
        <td class="num">{{ .Count }}</td>
        <td class="num">{{ .TotalTimeMS }}</td>
        <td class="num">{{ .AvgTimeMS }}</td>
        <td class="times">{{ .TimesMS }}</td>
      </tr>
{{ end }}    </table>
{{ if lt .URLsShown .URLsSeen }}    <div class="truncated">showing {{ .URLsShown }} of {{ .URLsSeen }} urls</div>
{{ end }}  </div>
{{ else }}  <p>No requests above the threshold.</p>
{{ end }}</body>
</html>
`
