// Package errors provides structured error types for the antennas tools.
//
// The core packages (antenna, graph) return plain sentinel errors. This
// package sits at the boundary: the CLI and the HTTP API classify those
// errors into machine-readable codes and user-facing messages.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *NOT_FOUND: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidCoordinate, "bad position %q", s)
//	if errors.Is(err, errors.ErrCodeInvalidCoordinate) {
//	    // Handle validation error
//	}
//
//	// Classify an error from the graph package
//	coded := errors.Classify(err)
//	status := coded.Code.HTTPStatus()
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/matzehuels/antennas/pkg/antenna"
	"github.com/matzehuels/antennas/pkg/graph"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidCoordinate Code = "INVALID_COORDINATE"
	ErrCodeInvalidFrequency  Code = "INVALID_FREQUENCY"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound          Code = "NOT_FOUND"
	ErrCodeVertexNotFound    Code = "VERTEX_NOT_FOUND"
	ErrCodeFrequencyNotFound Code = "FREQUENCY_NOT_FOUND"
	ErrCodeFileNotFound      Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// HTTPStatus maps the code to the status the API answers with.
func (c Code) HTTPStatus() int {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidCoordinate, ErrCodeInvalidFrequency,
		ErrCodeInvalidFormat, ErrCodeInvalidPath:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeVertexNotFound, ErrCodeFrequencyNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil && e.Cause.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// classes maps core sentinel errors to codes, checked in order.
var classes = []struct {
	target error
	code   Code
}{
	{graph.ErrVertexNotFound, ErrCodeVertexNotFound},
	{graph.ErrFrequencyNotFound, ErrCodeFrequencyNotFound},
	{graph.ErrNegativeCoordinate, ErrCodeInvalidCoordinate},
	{graph.ErrInvalidLimit, ErrCodeInvalidInput},
	{graph.ErrNilGraph, ErrCodeInvalidInput},
	{graph.ErrNilVertex, ErrCodeInvalidInput},
	{graph.ErrSelfLoop, ErrCodeInvalidInput},
	{antenna.ErrInvalidFrequency, ErrCodeInvalidFrequency},
	{antenna.ErrEmptyFrequency, ErrCodeInvalidFrequency},
	{fs.ErrNotExist, ErrCodeFileNotFound},
}

// Classify returns err as an *Error. Errors that already carry a code are
// returned unchanged; known sentinel errors from the core packages get
// their matching code; anything else becomes INTERNAL_ERROR. Classify(nil)
// returns nil.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	for _, c := range classes {
		if errors.Is(err, c.target) {
			return Wrap(c.code, err, "%s", err.Error())
		}
	}
	return Wrap(ErrCodeInternal, err, "%s", err.Error())
}
