package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message, safe to send to clients.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, never serialized.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// --- Taxonomy constructors ---

// Conflict signals a duplicate identity. The source API reports duplicate
// signups as 400, so the status is BadRequest rather than 409.
func Conflict(message string) *AppError {
	return New(ErrCodeConflict, message, http.StatusBadRequest)
}

// NotFound signals an unknown user, token, or record.
func NotFound(message string) *AppError {
	return New(ErrCodeNotFound, message, http.StatusNotFound)
}

// InvalidCredentials signals a login failure. Unknown email and wrong
// password surface identically so the response cannot be used to enumerate
// accounts.
func InvalidCredentials() *AppError {
	return New(ErrCodeInvalidCredentials, "Invalid Credentials", http.StatusNotFound)
}

// Invalid signals a code or token mismatch on a still-live record.
func Invalid(message string) *AppError {
	return New(ErrCodeInvalid, message, http.StatusBadRequest)
}

// Expired signals that a record's TTL has elapsed.
func Expired(message string) *AppError {
	return New(ErrCodeExpired, message, http.StatusBadRequest)
}

// Unauthenticated signals that no session could be resolved.
func Unauthenticated() *AppError {
	return New(ErrCodeUnauthenticated, "Unauthenticated", http.StatusUnauthorized)
}

// Validation signals a malformed or incomplete request body.
func Validation(message string) *AppError {
	return New(ErrCodeInvalidInput, message, http.StatusBadRequest)
}

// Internal wraps an unexpected failure. The client message is generic; the
// cause is kept for logging only.
func Internal(message string, cause error) *AppError {
	return New(ErrCodeInternal, message, http.StatusInternalServerError).WithCause(cause)
}
