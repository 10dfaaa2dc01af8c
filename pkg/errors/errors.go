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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Environment errors
	ErrMissingVariable   ErrorCode = "MISSING_VARIABLE"
	ErrDuplicateVariable ErrorCode = "DUPLICATE_VARIABLE"
	ErrDecode            ErrorCode = "DECODE_ERROR"

	// Template errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
	ErrLink      ErrorCode = "LINK_ERROR"
	ErrBackup    ErrorCode = "BACKUP_ERROR"

	// Repository errors
	ErrCloneFailed ErrorCode = "CLONE_FAILED"
)

// DotlinkError represents a structured error with code and details
type DotlinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotlinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotlinkError) Unwrap() error {
	return e.Wrapped
}

// Is matches any DotlinkError carrying the same code
func (e *DotlinkError) Is(target error) bool {
	var targetErr *DotlinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotlinkError with the given code and message
func New(code ErrorCode, message string) *DotlinkError {
	return &DotlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotlinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotlinkError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a DotlinkError
func Wrap(err error, code ErrorCode, message string) *DotlinkError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotlinkError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *DotlinkError) WithDetail(key string, value interface{}) *DotlinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dotlinkErr *DotlinkError
	if errors.As(err, &dotlinkErr) {
		return dotlinkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotlinkError
func GetErrorCode(err error) ErrorCode {
	var dotlinkErr *DotlinkError
	if errors.As(err, &dotlinkErr) {
		return dotlinkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotlinkError
func GetErrorDetails(err error) map[string]interface{} {
	var dotlinkErr *DotlinkError
	if errors.As(err, &dotlinkErr) {
		return dotlinkErr.Details
	}
	return nil
}
