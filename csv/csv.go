// Package csv reads delimiter-separated text into csvmd records using
// encoding/csv.
package csv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/csvmd"
)

// Interface compliance check.
var _ csvmd.RecordReader = (*Reader)(nil)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Reader is a csvmd.RecordReader for delimiter-separated text. The zero
// value reads comma-separated input.
type Reader struct {
	// Delimiter separates fields. Zero means comma.
	Delimiter rune

	// StripANSI removes ANSI escape sequences from every field.
	StripANSI bool

	// LazyQuotes tolerates quotes in unquoted fields and bare quotes in
	// quoted fields instead of reporting a parse error.
	LazyQuotes bool

	// TrimLeadingSpace ignores leading white space in a field.
	TrimLeadingSpace bool
}

// NewReader returns a Reader configured from cfg.
func NewReader(cfg csvmd.Config) *Reader {
	return &Reader{
		Delimiter: cfg.Delimiter,
		StripANSI: cfg.StripANSI,
	}
}

// ReadRecords reads every record from r. Records may differ in length.
// Blank lines are skipped and a leading UTF-8 byte order mark is dropped.
// Malformed input yields a *csvmd.ParseError and no records.
func (rd *Reader) ReadRecords(r io.Reader) ([]csvmd.Record, error) {
	delim := rd.Delimiter
	if delim == 0 {
		delim = ','
	}
	if err := csvmd.ValidateDelimiter(delim); err != nil {
		return nil, err
	}

	cr := csv.NewReader(skipBOM(r))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = rd.LazyQuotes
	cr.TrimLeadingSpace = rd.TrimLeadingSpace

	var records []csvmd.Record
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapError(err)
		}
		if rd.StripANSI {
			for i, f := range fields {
				fields[i] = ansi.Strip(f)
			}
		}
		records = append(records, csvmd.Record(fields))
	}
	return records, nil
}

func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, bom) {
		_, _ = br.Discard(len(bom))
	}
	return br
}

func wrapError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &csvmd.ParseError{Line: pe.Line, Column: pe.Column, Err: pe.Err}
	}
	return fmt.Errorf("read input: %w", err)
}
