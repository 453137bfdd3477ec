package analyzers

import (
	"fmt"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/svcerrors"
)

// AnalysisService errors
const (
	codeInputMissing     = "ANA_1000"
	codeAnalysisCanceled = "ANA_1001"
	codeReadInputFailed  = "ANA_1002"
)

// errInputMissing returns an error when Analyze is handed no input reader.
func errInputMissing() *svcerrors.ServiceError {
	return svcerrors.NewInputError(codeInputMissing, "input reader is required", nil)
}

// errAnalysisCanceled returns an error when the run is canceled before the
// whole input has been consumed.
func errAnalysisCanceled(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInputError(codeAnalysisCanceled, "analysis canceled before end of input", cause)
}

// errReadInputFailed returns an error when reading the access log fails.
func errReadInputFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInputError(codeReadInputFailed, fmt.Sprintf("reading access log failed: %v", cause), cause)
}
