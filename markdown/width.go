package markdown

import (
	"strings"

	"github.com/fwojciec/csvmd"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// Fixed condition so output does not depend on the user's locale.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Width returns the display width of s in terminal columns.
func Width(s string) int {
	return cond.StringWidth(s)
}

// Truncate shortens s to at most limit display columns, cutting on a grapheme
// cluster boundary and ending with an ellipsis. Strings that already fit are
// returned unchanged.
func Truncate(s string, limit int) string {
	if limit <= 0 || uniseg.StringWidth(s) <= limit {
		return s
	}
	budget := limit - uniseg.StringWidth(ellipsis)
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > budget {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String() + ellipsis
}

func columnWidths(header []string, rows [][]string, align csvmd.Alignment) []int {
	widths := make([]int, len(header))
	for i := range widths {
		widths[i] = markerWidth(align)
	}
	measure := func(cells []string) {
		for i, c := range cells {
			if w := Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	return widths
}

func pad(s string, width int, align csvmd.Alignment) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case csvmd.AlignRight:
		return strings.Repeat(" ", gap) + s
	case csvmd.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
