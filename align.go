package csvmd

import (
	"fmt"
	"strings"
)

// Alignment is the column alignment written into the separator row.
type Alignment string

const (
	AlignNone   Alignment = ""
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// ParseAlignment converts a user-supplied name into an Alignment.
// Empty and "none" both mean no alignment marker.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AlignNone, nil
	case "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignNone, fmt.Errorf("unknown alignment %q: %w", s, ErrValidation)
	}
}

// String returns the flag spelling of a.
func (a Alignment) String() string {
	if a == AlignNone {
		return "none"
	}
	return string(a)
}
