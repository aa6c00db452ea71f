// Package errors defines the application error taxonomy surfaced to the
// HTTP boundary. Every AppError maps onto one RFC 7807 problem detail.
package errors

import (
	"fmt"
	"net/http"

	"backlot/internal/errors"
)

// Problem type URIs, one per failure kind.
const (
	TypeNotFound      = "https://api.backlot.dev/errors/not-found"
	TypeAlreadyExists = "https://api.backlot.dev/errors/conflict"
	TypeValidation    = "https://api.backlot.dev/errors/validation"
	TypeForbidden     = "https://api.backlot.dev/errors/forbidden"
	TypeUnauthorized  = "https://api.backlot.dev/errors/unauthorized"
	TypeInternal      = "https://api.backlot.dev/errors/internal"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int          // HTTP status code
	ProblemType() string    // RFC 7807 "type" URI
	Title() string          // RFC 7807 "title"
	Detail() string         // RFC 7807 "detail"
	FieldErrors() []string  // field-level validation messages, may be nil
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode    int
	problemType string
	title       string
	detail      string
	fieldErrors []string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, problemType, title, detail string) *BaseError {
	return &BaseError{
		httpCode:    httpCode,
		problemType: problemType,
		title:       title,
		detail:      detail,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.detail == "" {
		return e.title
	}

	return e.title + ": " + e.detail
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ProblemType returns the RFC 7807 type URI.
func (e *BaseError) ProblemType() string {
	return e.problemType
}

// Title returns the short human-readable summary.
func (e *BaseError) Title() string {
	return e.title
}

// Detail returns the occurrence-specific explanation.
func (e *BaseError) Detail() string {
	return e.detail
}

// FieldErrors returns field-level validation messages.
func (e *BaseError) FieldErrors() []string {
	return e.fieldErrors
}

// WithDetail returns a copy of the error with an occurrence-specific detail.
func (e *BaseError) WithDetail(detail string) *BaseError {
	cloned := *e
	cloned.detail = detail

	return &cloned
}

// NewNotFound reports that an operation required an entity that does not exist.
func NewNotFound(resource string, id int64) *BaseError {
	return NewBaseError(
		http.StatusNotFound,
		TypeNotFound,
		"Resource not found",
		fmt.Sprintf("%s with id %d not found", resource, id),
	)
}

// NewAlreadyExists reports that a uniqueness invariant would be violated.
func NewAlreadyExists(resource, key string) *BaseError {
	return NewBaseError(
		http.StatusConflict,
		TypeAlreadyExists,
		"Resource already exists",
		fmt.Sprintf("%s with name %s already exists", resource, key),
	)
}

// NewValidation reports transport-record validation failures, one message
// per rejected field.
func NewValidation(fieldErrors []string) *BaseError {
	return &BaseError{
		httpCode:    http.StatusBadRequest,
		problemType: TypeValidation,
		title:       "Validation failed",
		detail:      "One or more fields are invalid",
		fieldErrors: fieldErrors,
	}
}

// NewUnauthorized reports a missing or invalid credential. oauthCode is the
// non-sensitive upstream OAuth error code; pass "" when there is none.
func NewUnauthorized(detail, oauthCode string) *BaseError {
	if oauthCode != "" {
		detail = fmt.Sprintf("%s (oauth error: %s)", detail, oauthCode)
	}

	return NewBaseError(
		http.StatusUnauthorized,
		TypeUnauthorized,
		"Authentication required",
		detail,
	)
}

// Predefined error values.
var (
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		TypeForbidden,
		"Access denied",
		"You are not allowed to access this resource",
	)

	// ErrInternal never leaks implementation detail to the caller.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		TypeInternal,
		"Internal server error",
		"An unexpected error occurred. Please try again later.",
	)
)

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface. The driver text stays server-side; callers see a
// generic internal problem.
type DatabaseExecuteError struct {
	err     error
	context string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, context string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		context: context,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.context).Error()
}

// Unwrap exposes the underlying driver error for errors.Is checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ProblemType returns the RFC 7807 type URI.
func (e *DatabaseExecuteError) ProblemType() string {
	return TypeInternal
}

// Title returns the short human-readable summary.
func (e *DatabaseExecuteError) Title() string {
	return "Internal server error"
}

// Detail returns a generic explanation; driver text is never exposed.
func (e *DatabaseExecuteError) Detail() string {
	return "A storage operation failed"
}

// FieldErrors returns nil; database errors carry no field information.
func (e *DatabaseExecuteError) FieldErrors() []string {
	return nil
}
