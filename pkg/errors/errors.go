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

	// Spec document errors
	ErrSpecLoad      ErrorCode = "SPEC_LOAD"
	ErrSpecParse     ErrorCode = "SPEC_PARSE"
	ErrSchemaInvalid ErrorCode = "SCHEMA_INVALID"

	// Substitution errors
	ErrMissingVar ErrorCode = "SUBSTITUTE_MISSING_KEY"

	// Filesystem errors
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// TreegenError represents a structured error with code and details
type TreegenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TreegenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TreegenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TreegenError) Is(target error) bool {
	var targetErr *TreegenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TreegenError with the given code and message
func New(code ErrorCode, message string) *TreegenError {
	return &TreegenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TreegenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TreegenError {
	return &TreegenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TreegenError
func Wrap(err error, code ErrorCode, message string) *TreegenError {
	if err == nil {
		return nil
	}
	return &TreegenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TreegenError {
	if err == nil {
		return nil
	}
	return &TreegenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TreegenError) WithDetail(key string, value interface{}) *TreegenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tgErr *TreegenError
	if errors.As(err, &tgErr) {
		return tgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TreegenError
func GetErrorCode(err error) ErrorCode {
	var tgErr *TreegenError
	if errors.As(err, &tgErr) {
		return tgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TreegenError
func GetErrorDetails(err error) map[string]interface{} {
	var tgErr *TreegenError
	if errors.As(err, &tgErr) {
		return tgErr.Details
	}
	return nil
}
