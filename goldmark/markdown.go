// Package goldmark reads Markdown tables back into csvmd tables using
// goldmark and its GFM table extension.
package goldmark

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/csvmd"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// ErrNoTable indicates the Markdown source holds no table.
var ErrNoTable = errors.New("no table found")

const ellipsis = "…"

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// ParseTable parses source and returns the first table in it. Cell values
// are the trimmed cell source with \| unescaped to |.
func ParseTable(source []byte) (csvmd.Table, error) {
	doc := md.Parser().Parse(text.NewReader(source))

	var tbl *east.Table
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*east.Table); ok && entering {
			tbl = t
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return csvmd.Table{}, err
	}
	if tbl == nil {
		return csvmd.Table{}, ErrNoTable
	}

	var t csvmd.Table
	for c := tbl.FirstChild(); c != nil; c = c.NextSibling() {
		switch row := c.(type) {
		case *east.TableHeader:
			t.Header = rowCells(row, source)
		case *east.TableRow:
			t.Rows = append(t.Rows, rowCells(row, source))
		}
	}
	return t, nil
}

// Check parses source and verifies it holds want: the same number of rows,
// every row as wide as want's header, and matching cell values. Cells cut
// short with an ellipsis match any value they are a prefix of.
func Check(source []byte, want csvmd.Table) error {
	got, err := ParseTable(source)
	if err != nil {
		return err
	}
	want = want.Normalize()
	if got.Len() != want.Len() {
		return fmt.Errorf("table has %d body rows, want %d: %w", got.Len(), want.Len(), csvmd.ErrValidation)
	}
	if err := checkRow(0, got.Header, want.Header); err != nil {
		return err
	}
	for i := range want.Rows {
		if err := checkRow(i+1, got.Rows[i], want.Rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func checkRow(n int, got, want csvmd.Record) error {
	if len(got) != len(want) {
		return fmt.Errorf("row %d has %d cells, want %d: %w", n, len(got), len(want), csvmd.ErrValidation)
	}
	for i := range want {
		if !cellMatches(got[i], want[i]) {
			return fmt.Errorf("row %d cell %d is %q, want %q: %w", n, i+1, got[i], want[i], csvmd.ErrValidation)
		}
	}
	return nil
}

func cellMatches(got, want string) bool {
	want = strings.TrimSpace(csvmd.FlattenCell(want))
	if got == want {
		return true
	}
	if prefix, ok := strings.CutSuffix(got, ellipsis); ok {
		return strings.HasPrefix(want, strings.TrimSpace(prefix))
	}
	return false
}

func rowCells(row ast.Node, source []byte) csvmd.Record {
	var rec csvmd.Record
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if cell, ok := c.(*east.TableCell); ok {
			rec = append(rec, cellText(cell, source))
		}
	}
	return rec
}

func cellText(cell *east.TableCell, source []byte) string {
	var buf bytes.Buffer
	lines := cell.Lines()
	if lines.Len() > 0 {
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(source))
		}
	} else {
		collectInline(cell, source, &buf)
	}
	return strings.ReplaceAll(strings.TrimSpace(buf.String()), `\|`, "|")
}

// collectInline recursively collects raw inline text from a node's children.
func collectInline(node ast.Node, source []byte, buf *bytes.Buffer) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(source))
			if n.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(n.Value)
		case *ast.AutoLink:
			buf.Write(n.URL(source))
		case *ast.RawHTML:
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				buf.Write(seg.Value(source))
			}
		default:
			collectInline(n, source, buf)
		}
	}
}
