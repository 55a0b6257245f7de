// Package errors defines the application error taxonomy and its mapping to
// HTTP status codes and business error codes.
package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches by error identity, so detail-carrying copies produced by
// WithDetails still compare equal to their predefined error.
func (e *BaseError) Is(target error) bool {
	base, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.httpCode == base.httpCode && e.errorCode == base.errorCode && e.message == base.message
}

// WithDetails returns a copy of the error carrying detailed information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Credential errors
	ErrDuplicateUser = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_USER",
		"username is already taken",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid username or password",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"invalid or expired access token",
		"",
	)

	// Plan store errors
	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"travel plan not found",
		"",
	)

	// Provider errors. The 500-class pair covers the plan and map gateways;
	// the speech pipeline has its own 400-class errors below because a
	// misconfigured or failing speech provider is surfaced to the client as
	// a bad request, matching the voice-input contract.
	ErrProviderUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"PROVIDER_UNAVAILABLE",
		"external provider is not configured",
		"",
	)

	ErrProviderFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROVIDER_ERROR",
		"external provider request failed",
		"",
	)

	ErrSpeechUnavailable = NewBaseError(
		http.StatusBadRequest,
		"PROVIDER_UNAVAILABLE",
		"speech recognition endpoint is not configured",
		"",
	)

	ErrTranscriptionFailed = NewBaseError(
		http.StatusBadRequest,
		"TRANSCRIPTION_FAILED",
		"speech recognition request failed",
		"",
	)

	ErrUnrecognizedResponseShape = NewBaseError(
		http.StatusBadRequest,
		"UNRECOGNIZED_RESPONSE_SHAPE",
		"speech provider response did not include transcription text",
		"",
	)

	// Document errors
	ErrSchemaViolation = NewBaseError(
		http.StatusBadRequest,
		"SCHEMA_VIOLATION",
		"travel plan document is malformed",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Configuration errors
	ErrConfigurationMissing = NewBaseError(
		http.StatusInternalServerError,
		"CONFIGURATION_MISSING",
		"required configuration is missing",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// StorageError represents a storage backend failure, implementing the
// AppError interface. For the remote backend it carries the upstream HTTP
// status so callers can log the real cause.
type StorageError struct {
	err            error
	upstreamStatus int
	details        string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// NewUpstreamStorageError creates a storage error carrying the status code
// returned by the remote backend.
func NewUpstreamStorageError(status int, details string) AppError {
	return &StorageError{
		err:            errors.Errorf("remote backend returned status %d", status),
		upstreamStatus: status,
		details:        details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage backend request failed").Error()
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_ERROR"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	if e.upstreamStatus != 0 {
		return fmt.Sprintf("storage backend request failed with status %d", e.upstreamStatus)
	}

	return "storage backend request failed"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}

// UpstreamStatus returns the HTTP status reported by the remote backend,
// or zero for local backend failures.
func (e *StorageError) UpstreamStatus() int {
	return e.upstreamStatus
}
