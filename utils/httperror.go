package utils

import (
	"errors"
	"net/http"
)

// HTTPError is a request-terminating failure carrying the status code the
// client should receive. Services return these; the error handler middleware
// turns them into the error envelope.
type HTTPError struct {
	Status  int
	Message string
	// Fields holds per-field validation messages for 422 responses.
	Fields map[string]string
	// Err is the underlying cause, kept for logging only.
	Err error
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewBadRequest reports a malformed or premature request.
func NewBadRequest(message string) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: message}
}

// NewUnauthorized reports missing, invalid or expired credentials.
func NewUnauthorized(message string) *HTTPError {
	return &HTTPError{Status: http.StatusUnauthorized, Message: message}
}

// NewNotFound reports a missing entity.
func NewNotFound(message string) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Message: message}
}

// NewConflict reports a uniqueness violation.
func NewConflict(message string) *HTTPError {
	return &HTTPError{Status: http.StatusConflict, Message: message}
}

// NewValidation reports field validation failures as a 422 with a field map.
func NewValidation(fields map[string]string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation error",
		Fields:  fields,
	}
}

// NewUnprocessable reports a 422 without a field map, e.g. file constraint violations.
func NewUnprocessable(message string) *HTTPError {
	return &HTTPError{Status: http.StatusUnprocessableEntity, Message: message}
}

// NewInternal wraps an unexpected failure. The cause is logged, never sent to clients.
func NewInternal(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: "Internal server error",
		Err:     err,
	}
}

// AsHTTPError coerces any error into an HTTPError, treating unknown errors as internal.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return NewInternal(err)
}
