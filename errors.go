// Package myragen generates typed accessor classes from Myra UI layout
// documents. The generation pipeline lives under compiler/; this package holds
// the errors shared by every stage.
package myragen

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common failure cases.
var (
	// ErrMalformedLayout is returned when a layout document cannot be parsed
	// into a widget tree.
	ErrMalformedLayout = errors.New("myragen: malformed layout document")

	// ErrInvalidIdentifier is returned when a widget identifier cannot be
	// expressed in the target language.
	ErrInvalidIdentifier = errors.New("myragen: invalid widget identifier")

	// ErrUnexpected is returned when a generation pass fails outside of the
	// per-document processing loop.
	ErrUnexpected = errors.New("myragen: unexpected generator failure")
)

// UnexpectedError wraps a value recovered from a panic during generation.
type UnexpectedError struct {
	value any
}

// Error returns the error string.
func (e *UnexpectedError) Error() string {
	if err, ok := e.value.(error); ok {
		return fmt.Sprintf("myragen: generator panicked: %v", err)
	}
	return fmt.Sprintf("myragen: generator panicked: %v", e.value)
}

// Unwrap returns the recovered value if it is an error.
func (e *UnexpectedError) Unwrap() error {
	err, _ := e.value.(error)
	return err
}

// Is reports whether the target error matches ErrUnexpected.
func (e *UnexpectedError) Is(err error) bool {
	return err == ErrUnexpected
}

// Value returns the recovered value.
func (e *UnexpectedError) Value() any {
	return e.value
}

// NewUnexpectedError returns a new UnexpectedError for a recovered value.
func NewUnexpectedError(v any) *UnexpectedError {
	return &UnexpectedError{value: v}
}

// IsUnexpected returns true if the error is an UnexpectedError.
func IsUnexpected(err error) bool {
	if err == nil {
		return false
	}
	var e *UnexpectedError
	return errors.As(err, &e) || errors.Is(err, ErrUnexpected)
}

// IsMalformedLayout returns true if the error reports a layout document that
// could not be parsed.
func IsMalformedLayout(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrMalformedLayout)
}

// IsInvalidIdentifier returns true if the error reports an identifier that the
// target language cannot declare.
func IsInvalidIdentifier(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrInvalidIdentifier)
}
