package reports

import (
	"io"
	"strings"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/models"
)

const (
	FormatHTML = "html"
	FormatJSON = "json"
	FormatText = "text"
)

//go:generate mockgen -source=renderer.go -destination=./mocks/renderer_mock.go -package=mocks

// Renderer writes one finished report in a single output format.
type Renderer interface {
	Render(w io.Writer, report *models.Report) error
}

// ForFormat returns the renderer for format. The format usually arrives
// pre-validated from config, but callers wiring renderers directly get the
// same stable error the config layer would produce.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatHTML:
		return NewHTMLRenderer(), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	case FormatText:
		return NewTextRenderer(), nil
	default:
		return nil, errUnsupportedFormat(format)
	}
}
