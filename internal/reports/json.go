package reports

import (
	"encoding/json"
	"io"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/models"
)

type jsonRenderer struct{}

// NewJSONRenderer returns the renderer behind the "json" format: the report
// model serialized verbatim, for piping into jq or downstream tooling.
func NewJSONRenderer() Renderer {
	return &jsonRenderer{}
}

func (r *jsonRenderer) Render(w io.Writer, report *models.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errRenderFailed(err)
	}
	return nil
}
