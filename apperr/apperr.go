package apperr

import (
	"errors"
	"fmt"
	"strings"
)

const (
	CodeInvalidConfig = "invalid_config"
	CodeConfigParse   = "config_parse"
	CodeConfigRead    = "config_read"
)

// Error represents a structured configuration error.
type Error struct {
	Code    string
	Message string
	// Issues lists individual problems, one per violated rule.
	Issues []string
	Cause  error
}

// New creates a new Error.
func New(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Invalid creates a CodeInvalidConfig error carrying issues.
func Invalid(issues []string) *Error {
	return &Error{
		Code:    CodeInvalidConfig,
		Message: "invalid configuration",
		Issues:  issues,
	}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if len(e.Issues) > 0 {
		msg += ": " + strings.Join(e.Issues, "; ")
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the root cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// As extracts an *Error if present.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Is reports whether err carries an *Error with code.
func Is(err error, code string) bool {
	appErr := As(err)
	return appErr != nil && appErr.Code == code
}
