package stores

import (
	"fmt"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/svcerrors"
)

// ReportStore errors
const (
	codeInvalidReportPath = "STO_1000"
	codeSaveReportFailed  = "STO_1001"
)

// errInvalidReportPath returns an error for output paths that cannot name a
// file.
func errInvalidReportPath(path string) *svcerrors.ServiceError {
	return svcerrors.NewConfigError(codeInvalidReportPath, fmt.Sprintf("invalid report output path: %q", path), nil)
}

// errSaveReportFailed returns an error when writing the report file fails.
func errSaveReportFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInputError(codeSaveReportFailed, fmt.Sprintf("failed to write report to %q: %v", path, cause), cause)
}
