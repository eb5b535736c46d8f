// Package errors provides carp's structured error type.
//
// Every error raised by carp code carries an ErrorCode so callers and tests
// can branch on the failure category without matching message text.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Comparison errors
	ErrMissingCandidate ErrorCode = "MISSING_CANDIDATE"
	ErrUnsupportedType  ErrorCode = "UNSUPPORTED_TYPE"
	ErrTypeMismatch     ErrorCode = "TYPE_MISMATCH"

	// Operator interaction
	ErrInvalidOperatorInput ErrorCode = "INVALID_OPERATOR_INPUT"
	ErrInputClosed          ErrorCode = "INPUT_CLOSED"
	ErrAborted              ErrorCode = "ABORTED"
	ErrViewerFailed         ErrorCode = "VIEWER_FAILED"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileMove   ErrorCode = "FILE_MOVE"
	ErrFileRemove ErrorCode = "FILE_REMOVE"
)

// CarpError represents a structured error with code and details
type CarpError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CarpError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CarpError) Unwrap() error {
	return e.Wrapped
}

// Is matches any CarpError carrying the same code.
func (e *CarpError) Is(target error) bool {
	var targetErr *CarpError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CarpError with the given code and message
func New(code ErrorCode, message string) *CarpError {
	return &CarpError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CarpError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CarpError {
	return &CarpError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CarpError. It returns nil for a nil
// err.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &CarpError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &CarpError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CarpError) WithDetail(key string, value interface{}) *CarpError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var carpErr *CarpError
	if errors.As(err, &carpErr) {
		return carpErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CarpError
func GetErrorCode(err error) ErrorCode {
	var carpErr *CarpError
	if errors.As(err, &carpErr) {
		return carpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CarpError
func GetErrorDetails(err error) map[string]interface{} {
	var carpErr *CarpError
	if errors.As(err, &carpErr) {
		return carpErr.Details
	}
	return nil
}

// Message returns the operator-facing message of err: the outermost
// CarpError message without its code, or err.Error() for other errors.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var carpErr *CarpError
	if errors.As(err, &carpErr) {
		return carpErr.Message
	}
	return err.Error()
}

// Describe joins the messages of err's chain: each CarpError contributes
// its message, and the first non-CarpError ends the chain with its text.
func Describe(err error) string {
	var parts []string
	for err != nil {
		carpErr, ok := err.(*CarpError)
		if !ok {
			parts = append(parts, err.Error())
			break
		}
		parts = append(parts, carpErr.Message)
		err = carpErr.Wrapped
	}
	return strings.Join(parts, ": ")
}
