package apperr

import "net/http"

// DefaultMessage is returned for persistence lookups that come back empty
// when the caller did not supply its own message.
const DefaultMessage = "something went wrong"

// Error is the single error type carried across the application: a message
// destined for the response envelope plus the HTTP status it maps to.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string { return e.Message }

// New builds an Error with an explicit status. A zero status means internal
// server error, matching the propagation policy for unexpected failures.
func New(message string, status int) *Error {
	if message == "" {
		message = DefaultMessage
	}
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{Message: message, Status: status}
}

// Validation marks a missing body or missing required field.
func Validation(message string) *Error {
	return New(message, http.StatusBadRequest)
}

// Auth marks a credential mismatch.
func Auth(message string) *Error {
	return New(message, http.StatusUnauthorized)
}

// NotFound marks an empty persistence result the caller required to exist.
// The status is caller-chosen; most call sites keep the 500 default.
func NotFound(message string, status int) *Error {
	return New(message, status)
}

// Internal marks an unexpected failure in a delegated component.
func Internal(message string) *Error {
	return New(message, http.StatusInternalServerError)
}
