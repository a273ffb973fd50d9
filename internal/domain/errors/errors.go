// Package errors defines the application error taxonomy. Every error that is
// allowed to reach a client is an AppError carrying its HTTP status.
package errors

import (
	"net/http"

	"evently/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}

	return e.message
}

// Unwrap exposes the underlying cause, if any.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches any BaseError with the same business code, so copies produced by
// WithMessage or WithCause still satisfy errors.Is against the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// WithMessage returns a copy of the error with a different user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	cp := *e
	cp.message = message

	return &cp
}

// WithCause returns a copy of the error that records cause for logging.
// The cause is never rendered to clients.
func (e *BaseError) WithCause(cause error) *BaseError {
	cp := *e
	cp.cause = cause

	return &cp
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please enter all fields",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Please enter a valid email address",
	)

	ErrPasswordTooLong = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_LONG",
		"Password must be at most 72 bytes",
	)

	// Identity-related errors
	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"User already exists",
	)

	ErrIdentityWithoutCredential = NewBaseError(
		http.StatusInternalServerError,
		"IDENTITY_WITHOUT_CREDENTIAL",
		"Identity has no usable sign-in method",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
	)

	ErrExternalOnly = NewBaseError(
		http.StatusBadRequest,
		"EXTERNAL_ONLY",
		"This email is registered via Google. Please use Google login.",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Server error during registration",
	)

	// Token-related errors
	ErrNoToken = NewBaseError(
		http.StatusUnauthorized,
		"NO_TOKEN",
		"Not authorized, no token",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Not authorized, token failed",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Not authorized, token failed",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Not authorized, token expired",
	)

	// OAuth-related errors
	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"Google authentication failed",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Invalid or expired OAuth state",
	)

	// Event-related errors
	ErrInvalidEventID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EVENT_ID",
		"Invalid event ID",
	)

	ErrEventValidation = NewBaseError(
		http.StatusBadRequest,
		"EVENT_VALIDATION_FAILED",
		"Please provide event name, date, time, and location.",
	)

	ErrInvalidEventDate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EVENT_DATE",
		"Invalid event date",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"Invalid event category",
	)

	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"Event not found",
	)

	ErrEventForbidden = NewBaseError(
		http.StatusForbidden,
		"EVENT_FORBIDDEN",
		"Not authorized to access this event",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server error",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error for logging.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Server error"
}
