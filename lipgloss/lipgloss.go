// Package lipgloss renders csvmd tables as bordered, styled terminal output
// using lipgloss.
package lipgloss

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/csvmd"
)

// Render returns t as a bordered table styled with theme. Rows are padded or
// truncated to the header width, and padding cells are drawn muted. A width
// greater than zero caps the table width; otherwise it fits the content.
func Render(t csvmd.Table, theme csvmd.Theme, width int) string {
	if t.Width() == 0 {
		return ""
	}
	norm := t.Normalize()

	// Remember which cells were added by padding so they can be muted.
	padded := make([]int, len(t.Rows))
	rows := make([][]string, len(norm.Rows))
	for i, row := range norm.Rows {
		padded[i] = len(t.Rows[i])
		rows[i] = cells(row)
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(ansiColor(theme.Header)).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	muted := cell.Foreground(ansiColor(theme.Muted)).Faint(true)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ansiColor(theme.Border))).
		Headers(cells(norm.Header)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row >= 0 && row < len(padded) && col >= padded[row]:
				return muted
			default:
				return cell
			}
		})
	if width > 0 {
		tbl = tbl.Width(width)
	}
	return tbl.String()
}

func cells(rec csvmd.Record) []string {
	out := make([]string, len(rec))
	for i, v := range rec {
		out[i] = csvmd.FlattenCell(v)
	}
	return out
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
