package reports

import (
	"fmt"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/svcerrors"
)

// Renderer errors
const (
	codeUnsupportedFormat = "RPT_1000"

	codeRenderFailed = "RPT_9000"
)

// errUnsupportedFormat returns an error for formats no renderer implements.
func errUnsupportedFormat(format string) *svcerrors.ServiceError {
	return svcerrors.NewConfigError(codeUnsupportedFormat, fmt.Sprintf("unsupported report format: %q", format), nil)
}

// errRenderFailed returns an error when writing the rendered report fails.
func errRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeRenderFailed, fmt.Errorf("renderReportFailed: %w", cause))
}
