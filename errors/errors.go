package errors

import (
	"errors"
	"fmt"
)

// Error represents a toolkit operation error with context about the
// operation that failed. It wraps the underlying error with a code and the
// operation name for better debugging.
type Error struct {
	// Code classifies the failure.
	Code ErrorCode

	// Op is the operation that failed (e.g., "rest.get", "ioevents.createProvider").
	Op string

	// Err is the underlying error from the transport or other source.
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the given code, operation, and message.
func New(code ErrorCode, op, message string) *Error {
	return &Error{
		Code: code,
		Op:   op,
		Err:  errors.New(message),
	}
}

// Wrap creates a new Error wrapping an underlying error.
func Wrap(code ErrorCode, op string, err error) *Error {
	return &Error{
		Code: code,
		Op:   op,
		Err:  err,
	}
}

// GetCode extracts the ErrorCode from an error chain.
// Returns CodeUnknown when no *Error is present in the chain.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
