package csvmd

import (
	"bufio"
	"fmt"
	"io"
)

// RecordReader parses delimiter-separated input into records.
// Implementations return a *ParseError for malformed input.
type RecordReader interface {
	ReadRecords(r io.Reader) ([]Record, error)
}

// Formatter renders a table as output lines without trailing newlines.
type Formatter interface {
	Format(t Table) ([]string, error)
}

// Converter turns delimiter-separated input into Markdown table output.
type Converter struct {
	reader    RecordReader
	formatter Formatter
}

// NewConverter creates a new Converter with the given reader and formatter.
func NewConverter(reader RecordReader, formatter Formatter) *Converter {
	return &Converter{reader: reader, formatter: formatter}
}

// Read parses all of r into a Table. It returns ErrEmptyInput when r holds
// no records.
func (c *Converter) Read(r io.Reader) (Table, error) {
	records, err := c.reader.ReadRecords(r)
	if err != nil {
		return Table{}, err
	}
	return NewTable(records)
}

// Format renders t into output lines.
func (c *Converter) Format(t Table) ([]string, error) {
	return c.formatter.Format(t)
}

// Convert reads all of r and writes the formatted table to w, one line per
// record plus the separator line. Nothing is written unless parsing and
// formatting both succeed.
func (c *Converter) Convert(r io.Reader, w io.Writer) error {
	t, err := c.Read(r)
	if err != nil {
		return err
	}
	lines, err := c.Format(t)
	if err != nil {
		return err
	}
	return WriteLines(w, lines)
}

// WriteLines writes each line followed by a newline. Failures wrap
// ErrOutputWrite.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("%w: %w", ErrOutputWrite, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %w", ErrOutputWrite, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	return nil
}
