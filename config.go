package csvmd

// Config holds the conversion settings shared by the CLI and config files.
type Config struct {
	Delimiter    rune
	Align        Alignment
	Pretty       bool // pad cells to column width
	MaxCellWidth int  // 0 = unlimited
	StripANSI    bool
	Check        bool // re-parse output and verify it
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{Delimiter: ','}
}
