// Package errors provides custom error types for catalog operations.
package errors

import "net/http"

// Error is a domain error that carries the HTTP status code it renders with.
// Anything that is not an *Error is translated to 500 by the REST layer.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// NewNotFound creates a missing-resource error (404).
func NewNotFound(message string) *Error {
	return &Error{StatusCode: http.StatusNotFound, Message: message}
}

// NewValidation creates a client-input error (400).
func NewValidation(message string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Message: message}
}

var ErrProductNotFound = NewNotFound("Product not found")
