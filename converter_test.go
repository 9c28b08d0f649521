package csvmd_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fwojciec/csvmd"
	"github.com/fwojciec/csvmd/csv"
	"github.com/fwojciec/csvmd/markdown"
	"github.com/fwojciec/csvmd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errWriter struct{ err error }

func (w errWriter) Write(p []byte) (int, error) { return 0, w.err }

func staticReader(records ...csvmd.Record) *mock.RecordReader {
	return &mock.RecordReader{
		ReadRecordsFn: func(r io.Reader) ([]csvmd.Record, error) {
			return records, nil
		},
	}
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted lines with trailing newlines", func(t *testing.T) {
		t.Parallel()
		var got csvmd.Table
		formatter := &mock.Formatter{
			FormatFn: func(table csvmd.Table) ([]string, error) {
				got = table
				return []string{"line1", "line2"}, nil
			},
		}
		conv := csvmd.NewConverter(staticReader(csvmd.Record{"h"}, csvmd.Record{"v"}), formatter)

		var buf bytes.Buffer
		require.NoError(t, conv.Convert(strings.NewReader(""), &buf))
		assert.Equal(t, "line1\nline2\n", buf.String())
		assert.Equal(t, csvmd.Record{"h"}, got.Header)
		assert.Equal(t, []csvmd.Record{{"v"}}, got.Rows)
	})

	t.Run("empty input writes nothing", func(t *testing.T) {
		t.Parallel()
		formatter := &mock.Formatter{}
		conv := csvmd.NewConverter(staticReader(), formatter)

		var buf bytes.Buffer
		err := conv.Convert(strings.NewReader(""), &buf)
		assert.ErrorIs(t, err, csvmd.ErrEmptyInput)
		assert.Empty(t, buf.String())
	})

	t.Run("parse error writes nothing", func(t *testing.T) {
		t.Parallel()
		reader := &mock.RecordReader{
			ReadRecordsFn: func(r io.Reader) ([]csvmd.Record, error) {
				return nil, &csvmd.ParseError{Line: 1, Column: 3, Err: errors.New("bare quote")}
			},
		}
		conv := csvmd.NewConverter(reader, &mock.Formatter{})

		var buf bytes.Buffer
		err := conv.Convert(strings.NewReader(""), &buf)
		assert.ErrorIs(t, err, csvmd.ErrParse)
		assert.Empty(t, buf.String())
	})

	t.Run("formatter error is returned", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("format failed")
		formatter := &mock.Formatter{
			FormatFn: func(csvmd.Table) ([]string, error) { return nil, wantErr },
		}
		conv := csvmd.NewConverter(staticReader(csvmd.Record{"h"}), formatter)
		err := conv.Convert(strings.NewReader(""), io.Discard)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("write failure wraps ErrOutputWrite", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("disk full")
		formatter := &mock.Formatter{
			FormatFn: func(csvmd.Table) ([]string, error) { return []string{"x"}, nil },
		}
		conv := csvmd.NewConverter(staticReader(csvmd.Record{"h"}), formatter)
		err := conv.Convert(strings.NewReader(""), errWriter{err: cause})
		assert.ErrorIs(t, err, csvmd.ErrOutputWrite)
		assert.ErrorIs(t, err, cause)
	})
}

func TestConvert_Scenarios(t *testing.T) {
	t.Parallel()

	convert := func(t *testing.T, input string, cfg csvmd.Config) (string, error) {
		t.Helper()
		conv := csvmd.NewConverter(csv.NewReader(cfg), markdown.NewFormatter(cfg))
		var buf bytes.Buffer
		err := conv.Convert(strings.NewReader(input), &buf)
		return buf.String(), err
	}

	t.Run("comma separated", func(t *testing.T) {
		t.Parallel()
		got, err := convert(t, "Name,Age\nJohn,25\n", csvmd.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, "| Name | Age |\n| --- | --- |\n| John | 25 |\n", got)
	})

	t.Run("tab separated", func(t *testing.T) {
		t.Parallel()
		cfg := csvmd.DefaultConfig()
		cfg.Delimiter = '\t'
		got, err := convert(t, "A\tB\n1\t2\n", cfg)
		require.NoError(t, err)
		assert.Equal(t, "| A | B |\n| --- | --- |\n| 1 | 2 |\n", got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		got, err := convert(t, "", csvmd.DefaultConfig())
		assert.ErrorIs(t, err, csvmd.ErrEmptyInput)
		assert.Empty(t, got)
	})

	t.Run("pipe in field is escaped", func(t *testing.T) {
		t.Parallel()
		got, err := convert(t, "col\na|b\n", csvmd.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, "| col |\n| --- |\n| a\\|b |\n", got)
	})

	t.Run("semicolon separated without trailing newline", func(t *testing.T) {
		t.Parallel()
		cfg := csvmd.DefaultConfig()
		cfg.Delimiter = ';'
		got, err := convert(t, "Name;Age;City\nJohn;30;New York\nJane;25;Los Angeles", cfg)
		require.NoError(t, err)
		want := "| Name | Age | City |\n| --- | --- | --- |\n| John | 30 | New York |\n| Jane | 25 | Los Angeles |\n"
		assert.Equal(t, want, got)
	})

	t.Run("uneven rows are padded and truncated", func(t *testing.T) {
		t.Parallel()
		got, err := convert(t, "Name,Age,City\nJohn,30\nJane,25,Los Angeles,USA", csvmd.DefaultConfig())
		require.NoError(t, err)
		want := "| Name | Age | City |\n| --- | --- | --- |\n| John | 30 |  |\n| Jane | 25 | Los Angeles |\n"
		assert.Equal(t, want, got)
	})

	t.Run("quoted newline becomes space", func(t *testing.T) {
		t.Parallel()
		got, err := convert(t, "a,b\n\"x\ny\",z\n", csvmd.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, "| a | b |\n| --- | --- |\n| x y | z |\n", got)
	})

	t.Run("unbalanced quote fails without output", func(t *testing.T) {
		t.Parallel()
		got, err := convert(t, "a,b\n\"open,z\n", csvmd.DefaultConfig())
		assert.ErrorIs(t, err, csvmd.ErrParse)
		assert.Empty(t, got)
	})

	t.Run("line count is record count plus one", func(t *testing.T) {
		t.Parallel()
		input := "h1,h2\n1,2\n3,4\n5,6\n"
		got, err := convert(t, input, csvmd.DefaultConfig())
		require.NoError(t, err)
		records := strings.Count(input, "\n")
		assert.Equal(t, records+1, strings.Count(got, "\n"))
	})
}

func TestWriteLines(t *testing.T) {
	t.Parallel()

	t.Run("no lines writes nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, csvmd.WriteLines(&buf, nil))
		assert.Empty(t, buf.String())
	})

	t.Run("flush failure wraps ErrOutputWrite", func(t *testing.T) {
		t.Parallel()
		err := csvmd.WriteLines(errWriter{err: io.ErrClosedPipe}, []string{"a"})
		assert.ErrorIs(t, err, csvmd.ErrOutputWrite)
		assert.ErrorIs(t, err, io.ErrClosedPipe)
	})
}
