package csvmd

import "strings"

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// FlattenCell replaces every line break in s with a single space, since a
// Markdown table cell cannot span lines.
func FlattenCell(s string) string {
	return newlineReplacer.Replace(s)
}

// EscapeCell makes s safe to place between pipes in a Markdown table row.
// Line breaks become spaces and literal pipes become \|.
func EscapeCell(s string) string {
	return strings.ReplaceAll(FlattenCell(s), "|", `\|`)
}
