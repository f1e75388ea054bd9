package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigSource     ErrorCode = "CONFIG_SOURCE"
	ErrConfigSyntax     ErrorCode = "CONFIG_SYNTAX"
	ErrNoRules          ErrorCode = "NO_RULES"
	ErrAllRulesDisabled ErrorCode = "ALL_RULES_DISABLED"

	// Run errors, only detectable after the whole input was consumed
	ErrEmptyInput ErrorCode = "EMPTY_INPUT"
	ErrNoMatch    ErrorCode = "NO_MATCH"

	// Output placement errors
	ErrOutputExists ErrorCode = "OUTPUT_EXISTS"
	ErrOutputMove   ErrorCode = "OUTPUT_MOVE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// Process exit statuses
const (
	ExitOK         = 0
	ExitError      = 1
	ExitConfig     = 2
	ExitEmptyInput = 3
	ExitNoMatch    = 4
)

// TextminatorError represents a structured error with code and details
type TextminatorError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TextminatorError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TextminatorError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TextminatorError) Is(target error) bool {
	var targetErr *TextminatorError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TextminatorError with the given code and message
func New(code ErrorCode, message string) *TextminatorError {
	return &TextminatorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TextminatorError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TextminatorError {
	return &TextminatorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TextminatorError.
// Callers must not pass a nil error through an error-typed return.
func Wrap(err error, code ErrorCode, message string) *TextminatorError {
	if err == nil {
		return nil
	}
	return &TextminatorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TextminatorError {
	if err == nil {
		return nil
	}
	return &TextminatorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TextminatorError) WithDetail(key string, value interface{}) *TextminatorError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tmErr *TextminatorError
	if errors.As(err, &tmErr) {
		return tmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TextminatorError
func GetErrorCode(err error) ErrorCode {
	var tmErr *TextminatorError
	if errors.As(err, &tmErr) {
		return tmErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TextminatorError
func GetErrorDetails(err error) map[string]interface{} {
	var tmErr *TextminatorError
	if errors.As(err, &tmErr) {
		return tmErr.Details
	}
	return nil
}

// ExitCode translates an error into the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch GetErrorCode(err) {
	case ErrConfigSource, ErrConfigSyntax, ErrNoRules, ErrAllRulesDisabled:
		return ExitConfig
	case ErrEmptyInput:
		return ExitEmptyInput
	case ErrNoMatch:
		return ExitNoMatch
	default:
		return ExitError
	}
}
