// Package faults defines the client-side error taxonomy. Every failure a
// screen action can surface is one of these four types; none are retried and
// none are recoverable mid-flow.
package faults

import (
	"fmt"

	"creditdesk/internal/errors"
)

// AppError is the interface all typed faults implement. Code is a stable
// machine-readable identifier, Message is the one-shot notification text
// shown to the end user.
type AppError interface {
	error
	Code() string
	Message() string
}

// NetworkError means the transport failed before any HTTP status was
// received (connection refused, DNS failure, timeout).
type NetworkError struct {
	Op  string // logical operation, e.g. "list users"
	Err error
}

func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Code() string { return "NETWORK_ERROR" }

func (e *NetworkError) Message() string {
	return "Could not reach the server. Check your connection and try again."
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError means the server answered with a non-success HTTP status.
type ServerError struct {
	Op     string
	Status int
}

func NewServerError(op string, status int) *ServerError {
	return &ServerError{Op: op, Status: status}
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned status %d during %s", e.Status, e.Op)
}

func (e *ServerError) Code() string { return "SERVER_ERROR" }

func (e *ServerError) Message() string {
	return fmt.Sprintf("The server rejected the request (status %d).", e.Status)
}

// EncodingError means the response body could not be interpreted as the
// expected JSON or binary image data.
type EncodingError struct {
	Op  string
	Err error
}

func NewEncodingError(op string, err error) *EncodingError {
	return &EncodingError{Op: op, Err: err}
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("could not decode %s response: %v", e.Op, e.Err)
}

func (e *EncodingError) Code() string { return "ENCODING_ERROR" }

func (e *EncodingError) Message() string {
	return "The server sent a response this app could not understand."
}

func (e *EncodingError) Unwrap() error { return e.Err }

// ValidationError means caller-side input was rejected before any request
// was issued.
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

func (e *ValidationError) Code() string { return "VALIDATION_ERROR" }

func (e *ValidationError) Message() string { return e.Reason }

// UserMessage returns the one-shot notification text for err. Untyped errors
// fall back to a generic message rather than leaking internals to the user.
func UserMessage(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return "Something went wrong. Please try again."
}
