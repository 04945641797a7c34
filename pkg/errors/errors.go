// Package errors provides structured error types for sbgn2sif.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Fatal Conditions
//
// Only two conditions abort a conversion run:
//   - [ErrCodeMalformedDocument]: the input cannot be read as an SBGN-ML
//     map/glyph/arc hierarchy at all
//   - [ErrCodeNoEdges]: extraction produced zero edges, so there is nothing
//     to simplify
//
// Per-item problems (duplicate glyph ids, dangling arcs, malformed
// annotations) are warnings collected by the extractor, never errors.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedDocument, "root element is %q", name)
//	if errors.Is(err, errors.ErrCodeMalformedDocument) {
//	    // Handle unreadable input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedDocument, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeMalformedDocument Code = "MALFORMED_DOCUMENT"
	ErrCodeNoEdges           Code = "NO_EDGES"
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeFileNotFound      Code = "FILE_NOT_FOUND"

	// Output errors
	ErrCodeRender Code = "RENDER_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
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

// MalformedDocument reports an input that cannot be decoded into the
// map/glyph/arc hierarchy.
func MalformedDocument(cause error, format string, args ...any) *Error {
	return Wrap(ErrCodeMalformedDocument, cause, format, args...)
}

// NoEdges reports an extraction that produced nothing to simplify.
func NoEdges() *Error {
	return New(ErrCodeNoEdges, "no edges found, network cannot be simplified")
}
