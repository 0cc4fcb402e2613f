// Package errors provides structured error types for circuitsvg.
//
// Only call-level failures become errors: a missing board or panel, an
// unknown viewport target, a bad grid ratio, bad options. Problems with a
// single element are never errors; the aggregators record them as skips
// and carry on.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Caller mistakes in options or input
//   - *_NOT_FOUND: A referenced element or file does not exist
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidView, "unknown view: %s", view)
//	if errors.Is(err, errors.ErrCodeInvalidView) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidView       Code = "INVALID_VIEW"
	ErrCodeInvalidGrid       Code = "INVALID_GRID"
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	ErrCodeInvalidPath       Code = "INVALID_PATH"
	ErrCodeInvalidColor      Code = "INVALID_COLOR"

	// Missing geometry / resource errors
	ErrCodeNoBoardOrPanel         Code = "NO_BOARD_OR_PANEL"
	ErrCodeViewportTargetNotFound Code = "VIEWPORT_TARGET_NOT_FOUND"
	ErrCodeNotFound               Code = "NOT_FOUND"
	ErrCodeFileNotFound           Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// ErrNoBoardOrPanel is returned when texture bounds are requested for a
// collection with no parseable board or panel.
func ErrNoBoardOrPanel() *Error {
	return New(ErrCodeNoBoardOrPanel, "no pcb_board or pcb_panel with valid geometry")
}

// ErrViewportTargetNotFound is returned when a viewport target names an id
// that is not in the collection. kind is the element type that was searched.
func ErrViewportTargetNotFound(kind, id string) *Error {
	return New(ErrCodeViewportTargetNotFound, "viewport target %s %q not found", kind, id)
}
