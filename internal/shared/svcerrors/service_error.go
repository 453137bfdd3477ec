package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryConfig   = "config"
	categoryInput    = "input"
	categoryInternal = "internal"
)

// Exit codes by category: configuration problems are usage errors, input
// problems mean the source could not be read, everything else is internal.
const (
	exitCodeInternal = 1
	exitCodeConfig   = 2
	exitCodeInput    = 3
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// NewConfigError creates a new ServiceError with category config.
func NewConfigError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryConfig,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: exitCodeConfig,
	}
}

// NewInputError creates a new ServiceError with category input.
func NewInputError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInput,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: exitCodeInput,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
		ExitCode: exitCodeInternal,
	}
}

// NewInternalErrorUndefined creates a new internal ServiceError for errors
// that no component claimed with its own code.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message,
// and cause. It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // config, input or internal
	Code     string // service-owned stable code (e.g. ANA_1000)
	Message  string // human-readable, safe for terminal output
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit code
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
