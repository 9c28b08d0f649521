package csvmd

// Theme defines semantic color mappings using ANSI color indices (0-15)
// for the terminal preview. A negative index means no color.
type Theme struct {
	Header int // Header row text
	Border int // Table borders
	Muted  int // Padding cells added to short rows
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Header: 5,
		Border: 8,
		Muted:  8,
	}
}
