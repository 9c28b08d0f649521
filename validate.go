package csvmd

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validate checks that c describes a usable conversion.
func (c Config) Validate() error {
	if err := ValidateDelimiter(c.Delimiter); err != nil {
		return err
	}
	if _, err := ParseAlignment(string(c.Align)); err != nil {
		return err
	}
	if c.MaxCellWidth < 0 {
		return fmt.Errorf("max cell width must be non-negative, got %d: %w", c.MaxCellWidth, ErrValidation)
	}
	// A cell must keep at least one column next to the ellipsis.
	if c.MaxCellWidth == 1 {
		return fmt.Errorf("max cell width must be 0 or at least 2, got 1: %w", ErrValidation)
	}
	return nil
}

// ValidateDelimiter reports whether r can separate fields.
func ValidateDelimiter(r rune) error {
	switch {
	case r == 0:
		return fmt.Errorf("delimiter must not be empty: %w", ErrValidation)
	case r == '"', r == '\r', r == '\n':
		return fmt.Errorf("delimiter %q is reserved: %w", r, ErrValidation)
	case r == utf8.RuneError, !utf8.ValidRune(r):
		return fmt.Errorf("delimiter %q is not a valid character: %w", r, ErrValidation)
	}
	return nil
}

var delimiterNames = map[string]rune{
	`\t`:        '\t',
	"tab":       '\t',
	"comma":     ',',
	"semicolon": ';',
	"pipe":      '|',
	"space":     ' ',
}

// ParseDelimiter converts a user-supplied delimiter into a rune. It accepts a
// single character or one of the names tab, comma, semicolon, pipe, space,
// and the escape \t.
func ParseDelimiter(s string) (rune, error) {
	if r, ok := delimiterNames[strings.ToLower(s)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q: %w", s, ErrValidation)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if err := ValidateDelimiter(r); err != nil {
		return 0, err
	}
	return r, nil
}
