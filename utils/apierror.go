package utils

import "net/http"

// APIError is an error that knows which HTTP status it should surface as.
// Services return these; controllers unwrap them with errors.As and fall back
// to 500 for anything else.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewValidationError reports malformed input (422).
func NewValidationError(message string) *APIError {
	return &APIError{Status: http.StatusUnprocessableEntity, Message: message}
}

// NewUnauthorizedError reports a missing, invalid, or expired credential (401).
func NewUnauthorizedError(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

// NewForbiddenError reports an authenticated caller the policy denies (403).
func NewForbiddenError(message string) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: message}
}

// NewNotFoundError reports an absent resource, or one deliberately disguised
// as absent to hide its existence (404).
func NewNotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

// NewConflictError reports a uniqueness violation (400).
func NewConflictError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}
