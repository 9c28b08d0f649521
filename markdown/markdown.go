// Package markdown renders csvmd tables as GitHub-flavored Markdown table
// syntax.
package markdown

import (
	"fmt"
	"strings"

	"github.com/fwojciec/csvmd"
)

// Interface compliance check.
var _ csvmd.Formatter = (*Formatter)(nil)

// Formatter is a csvmd.Formatter producing one Markdown line per record plus
// a separator line after the header. Body rows are padded with empty cells or
// truncated to the header width, so every line has the same cell count.
type Formatter struct {
	Align        csvmd.Alignment
	Pretty       bool // pad cells to their column's display width
	MaxCellWidth int  // truncate wider cells with an ellipsis; 0 = unlimited
}

// NewFormatter returns a Formatter configured from cfg.
func NewFormatter(cfg csvmd.Config) *Formatter {
	return &Formatter{
		Align:        cfg.Align,
		Pretty:       cfg.Pretty,
		MaxCellWidth: cfg.MaxCellWidth,
	}
}

// Format renders t. The header line comes first, then the separator, then
// one line per body row.
func (f *Formatter) Format(t csvmd.Table) ([]string, error) {
	if t.Width() == 0 {
		return nil, fmt.Errorf("header has no fields: %w", csvmd.ErrEmptyInput)
	}
	t = t.Normalize()

	header := f.cells(t.Header)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = f.cells(row)
	}

	var widths []int
	if f.Pretty {
		widths = columnWidths(header, rows, f.Align)
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, f.line(header, widths))
	lines = append(lines, separator(t.Width(), widths, f.Align))
	for _, row := range rows {
		lines = append(lines, f.line(row, widths))
	}
	return lines, nil
}

// cells flattens, truncates, then escapes each field. Truncating before
// escaping keeps a \| pair from being split.
func (f *Formatter) cells(rec csvmd.Record) []string {
	out := make([]string, len(rec))
	for i, v := range rec {
		v = csvmd.FlattenCell(v)
		if f.MaxCellWidth > 0 {
			v = Truncate(v, f.MaxCellWidth)
		}
		out[i] = csvmd.EscapeCell(v)
	}
	return out
}

func (f *Formatter) line(cells []string, widths []int) string {
	if widths != nil {
		padded := make([]string, len(cells))
		for i, c := range cells {
			padded[i] = pad(c, widths[i], f.Align)
		}
		cells = padded
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

func separator(n int, widths []int, align csvmd.Alignment) string {
	cells := make([]string, n)
	for i := range cells {
		w := markerWidth(align)
		if widths != nil {
			w = widths[i]
		}
		cells[i] = marker(w, align)
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// marker returns a separator cell w columns wide.
func marker(w int, align csvmd.Alignment) string {
	switch align {
	case csvmd.AlignLeft:
		return ":" + strings.Repeat("-", w-1)
	case csvmd.AlignRight:
		return strings.Repeat("-", w-1) + ":"
	case csvmd.AlignCenter:
		return ":" + strings.Repeat("-", w-2) + ":"
	default:
		return strings.Repeat("-", w)
	}
}

// markerWidth is the narrowest separator cell for align: three dashes plus
// any colons.
func markerWidth(align csvmd.Alignment) int {
	switch align {
	case csvmd.AlignLeft, csvmd.AlignRight:
		return 4
	case csvmd.AlignCenter:
		return 5
	default:
		return 3
	}
}
