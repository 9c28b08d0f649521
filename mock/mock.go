// Package mock provides test doubles for csvmd interfaces using function fields.
package mock

import (
	"io"

	"github.com/fwojciec/csvmd"
)

// Interface compliance checks.
var (
	_ csvmd.RecordReader = (*RecordReader)(nil)
	_ csvmd.Formatter    = (*Formatter)(nil)
)

// RecordReader is a test double for csvmd.RecordReader.
// Set ReadRecordsFn before calling ReadRecords.
type RecordReader struct {
	ReadRecordsFn func(r io.Reader) ([]csvmd.Record, error)
}

// ReadRecords delegates to ReadRecordsFn.
func (m *RecordReader) ReadRecords(r io.Reader) ([]csvmd.Record, error) {
	return m.ReadRecordsFn(r)
}

// Formatter is a test double for csvmd.Formatter.
// Set FormatFn before calling Format.
type Formatter struct {
	FormatFn func(t csvmd.Table) ([]string, error)
}

// Format delegates to FormatFn.
func (m *Formatter) Format(t csvmd.Table) ([]string, error) {
	return m.FormatFn(t)
}
