package csvmd

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrInputNotFound indicates the input path does not exist or is not a
	// regular file.
	ErrInputNotFound = errors.New("input not found")

	// ErrParse indicates malformed delimiter-separated input.
	ErrParse = errors.New("parse error")

	// ErrEmptyInput indicates the input held no records.
	ErrEmptyInput = errors.New("empty input")

	// ErrOutputWrite indicates the destination could not be written.
	ErrOutputWrite = errors.New("output write error")

	// ErrValidation indicates an invalid option or config value.
	ErrValidation = errors.New("validation error")
)

// ParseError describes where malformed input was found. Line and Column are
// 1-based; Column counts bytes. It matches both ErrParse and the underlying
// reader error under errors.Is.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse error: %v", e.Err)
	}
	return fmt.Sprintf("parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
