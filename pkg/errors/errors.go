// Package errors provides the coded error type used across appcenter-devices.
//
// Every error that leaves a command carries an ErrorCode so callers and tests can
// tell a missing parameter from a transport or filesystem failure without
// matching on message text. Errors wrapped without a message keep the wrapped
// error's text verbatim.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// A required parameter (api token, owner name, app name) was not supplied
	ErrParameterMissing ErrorCode = "PARAMETER_MISSING"

	// Network failure or non-2xx response from App Center
	ErrTransport ErrorCode = "TRANSPORT"

	// Writing the devices file failed
	ErrFilesystem ErrorCode = "FILESYSTEM"

	// Non-fatal notice; never returned from a command, only reported
	ErrAdvisory ErrorCode = "ADVISORY"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface.
// The code is not part of the text: messages reach the user as-is.
func (e *Error) Error() string {
	switch {
	case e.Wrapped != nil && e.Message == "":
		return e.Wrapped.Error()
	case e.Wrapped != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	default:
		return e.Message
	}
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a code and message
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Tag attaches a code to err without changing its text.
// Errors that already carry a code are returned unchanged.
func Tag(err error, code ErrorCode) error {
	if err == nil {
		return nil
	}
	var coded *Error
	if errors.As(err, &coded) {
		return err
	}
	return Wrap(err, code, "")
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}


// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if it has none
func GetErrorCode(err error) ErrorCode {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if it has none
func GetErrorDetails(err error) map[string]interface{} {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Details
	}
	return nil
}
