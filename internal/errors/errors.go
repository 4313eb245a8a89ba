package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a resource was not found upstream.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeUnauthorized indicates the upstream rejected the caller's
	// credentials (missing/expired bearer token or a bad re-entered password).
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeDecodeFailed indicates bytes that could not be interpreted as an image.
	ErrCodeDecodeFailed ErrorCode = "decode_failed"
	// ErrCodeUnsupportedType indicates an upload whose MIME type is not an image.
	ErrCodeUnsupportedType ErrorCode = "unsupported_type"
	// ErrCodeSizeExceeded indicates an image payload over the configured ceiling.
	ErrCodeSizeExceeded ErrorCode = "size_exceeded"
	// ErrCodeUpstream indicates an unexpected response from the events API.
	ErrCodeUpstream ErrorCode = "upstream"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError represents a structured application error with a code, message, and
// optional cause. It supports error wrapping and unwrapping for use with
// errors.Is and errors.As, so consumers can pattern-match exhaustively on the
// closed code set instead of probing loosely-typed shapes.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// DecodeFailed creates a new DecodeFailed error.
func DecodeFailed(message string) *AppError {
	return &AppError{Code: ErrCodeDecodeFailed, Message: message}
}

// UnsupportedType creates a new UnsupportedType error.
func UnsupportedType(message string) *AppError {
	return &AppError{Code: ErrCodeUnsupportedType, Message: message}
}

// UnsupportedTypef creates a new UnsupportedType error with formatted message.
func UnsupportedTypef(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeUnsupportedType, Message: fmt.Sprintf(format, args...)}
}

// SizeExceeded creates a new SizeExceeded error.
func SizeExceeded(message string) *AppError {
	return &AppError{Code: ErrCodeSizeExceeded, Message: message}
}

// SizeExceededf creates a new SizeExceeded error with formatted message.
func SizeExceededf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeSizeExceeded, Message: fmt.Sprintf(format, args...)}
}

// Upstream creates a new Upstream error.
func Upstream(message string) *AppError {
	return &AppError{Code: ErrCodeUpstream, Message: message}
}

// Upstreamf creates a new Upstream error with formatted message.
func Upstreamf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeUpstream, Message: fmt.Sprintf(format, args...)}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool {
	return isCode(err, ErrCodeUnauthorized)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsDecodeFailed checks if an error is a DecodeFailed error.
func IsDecodeFailed(err error) bool {
	return isCode(err, ErrCodeDecodeFailed)
}

// IsUnsupportedType checks if an error is an UnsupportedType error.
func IsUnsupportedType(err error) bool {
	return isCode(err, ErrCodeUnsupportedType)
}

// IsSizeExceeded checks if an error is a SizeExceeded error.
func IsSizeExceeded(err error) bool {
	return isCode(err, ErrCodeSizeExceeded)
}

// IsUpstream checks if an error is an Upstream error.
func IsUpstream(err error) bool {
	return isCode(err, ErrCodeUpstream)
}

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool {
	return isCode(err, ErrCodeInternal)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not an AppError or no field set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
