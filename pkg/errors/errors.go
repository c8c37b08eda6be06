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
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrInvalidPattern ErrorCode = "INVALID_PATTERN"

	// File access errors
	ErrFileNotFound     ErrorCode = "FILE_NOT_FOUND"
	ErrFileLocked       ErrorCode = "FILE_LOCKED"
	ErrFileAccess       ErrorCode = "FILE_ACCESS"
	ErrRenameFailed     ErrorCode = "RENAME_FAILED"
	ErrRenameCollision  ErrorCode = "RENAME_COLLISION"
	ErrInvalidTarget    ErrorCode = "INVALID_TARGET"
	ErrInvalidDirectory ErrorCode = "INVALID_DIRECTORY"

	// Watcher errors
	ErrWatcherSetup ErrorCode = "WATCHER_SETUP"
)

// Category groups error codes by how the watch loop treats them.
type Category string

const (
	CategoryUnknown       Category = "unknown"
	CategoryConfiguration Category = "configuration"
	CategoryFileAccess    Category = "file_access"
	CategoryWatcherSetup  Category = "watcher_setup"
)

var categories = map[ErrorCode]Category{
	ErrConfigNotFound:   CategoryConfiguration,
	ErrConfigLoad:       CategoryConfiguration,
	ErrConfigParse:      CategoryConfiguration,
	ErrConfigInvalid:    CategoryConfiguration,
	ErrInvalidPattern:   CategoryConfiguration,
	ErrFileNotFound:     CategoryFileAccess,
	ErrFileLocked:       CategoryFileAccess,
	ErrFileAccess:       CategoryFileAccess,
	ErrRenameFailed:     CategoryFileAccess,
	ErrRenameCollision:  CategoryFileAccess,
	ErrInvalidTarget:    CategoryFileAccess,
	ErrInvalidDirectory: CategoryFileAccess,
	ErrWatcherSetup:     CategoryWatcherSetup,
}

// HandlerError represents a structured error with code and details
type HandlerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HandlerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HandlerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HandlerError) Is(target error) bool {
	var targetErr *HandlerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HandlerError with the given code and message
func New(code ErrorCode, message string) *HandlerError {
	return &HandlerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HandlerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HandlerError {
	return &HandlerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HandlerError
func Wrap(err error, code ErrorCode, message string) *HandlerError {
	if err == nil {
		return nil
	}
	return &HandlerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HandlerError {
	if err == nil {
		return nil
	}
	return &HandlerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HandlerError) WithDetail(key string, value interface{}) *HandlerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HandlerError
func GetErrorCode(err error) ErrorCode {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HandlerError
func GetErrorDetails(err error) map[string]interface{} {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr.Details
	}
	return nil
}

// CategoryOf returns the category of the outermost HandlerError in err's chain.
func CategoryOf(err error) Category {
	if c, ok := categories[GetErrorCode(err)]; ok {
		return c
	}
	return CategoryUnknown
}
