// Package input reads the plain-text files both programs consume: the
// alignment configuration, song files, forest grids and weather forecasts,
// plus an optional HCL run configuration.
//
// Every malformed or missing file, line or field is reported as a
// *FormatError, and errors.Is(err, ErrInputFormat) matches all of them.
package input

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInputFormat is matched by every *FormatError.
	ErrInputFormat = errors.New("input: malformed or missing input")

	errMissingDayFlag = errors.New("expected <day>:<flag> after the label")
)

// FormatError describes a problem with an input file.
// Line is 1-based; 0 means the problem is not tied to a single line.
type FormatError struct {
	Path string
	Line int
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	var sb strings.Builder
	sb.WriteString("input: ")
	sb.WriteString(e.Path)
	if e.Line > 0 {
		fmt.Fprintf(&sb, ":%d", e.Line)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Msg)
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap exposes the underlying cause (I/O error, parse error, sentinel).
func (e *FormatError) Unwrap() error { return e.Err }

// Is makes every FormatError match ErrInputFormat.
func (e *FormatError) Is(target error) bool { return target == ErrInputFormat }

// formatErr builds a *FormatError.
func formatErr(path string, line int, err error, format string, args ...any) error {
	return &FormatError{Path: path, Line: line, Msg: fmt.Sprintf(format, args...), Err: err}
}
