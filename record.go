package csvmd

// Record is one row of field values.
type Record []string

// Table is a header record followed by zero or more body records.
// Body records are not required to match the header's length.
type Table struct {
	Header Record
	Rows   []Record
}

// NewTable splits records into a header and body. The first record is the
// header. It returns ErrEmptyInput when records is empty.
func NewTable(records []Record) (Table, error) {
	if len(records) == 0 {
		return Table{}, ErrEmptyInput
	}
	return Table{Header: records[0], Rows: records[1:]}, nil
}

// Width returns the number of header fields.
func (t Table) Width() int {
	return len(t.Header)
}

// Len returns the number of body rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Normalize returns a copy of t whose body rows are padded with empty cells
// or truncated to the header width.
func (t Table) Normalize() Table {
	width := t.Width()
	rows := make([]Record, len(t.Rows))
	for i, row := range t.Rows {
		out := make(Record, width)
		copy(out, row)
		rows[i] = out
	}
	header := make(Record, width)
	copy(header, t.Header)
	return Table{Header: header, Rows: rows}
}
