package load

import (
	"errors"
	"strconv"
	"strings"

	"github.com/syssam/myragen"
)

// ParseError reports a layout document that is not well-formed markup.
type ParseError struct {
	Path  string // path of the document.
	Line  int    // 1-based line, or 0 if unknown.
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("myragen: parse error")
	if e.Path != "" {
		b.WriteString(" in ")
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		b.WriteString(" (line ")
		b.WriteString(strconv.Itoa(e.Line))
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ParseError.
func (e *ParseError) Is(target error) bool {
	return target == myragen.ErrMalformedLayout
}

// NewParseError creates a new ParseError.
func NewParseError(path string, line int, cause error) *ParseError {
	return &ParseError{
		Path:  path,
		Line:  line,
		Cause: cause,
	}
}

// IsParseError reports whether the error is a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
