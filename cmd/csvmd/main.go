// Command csvmd converts delimiter-separated text into a Markdown table.
//
// Usage:
//
//	csvmd [flags] [input]
//
// With no input, or input "-", csvmd reads standard input.
//
// Flags:
//
//	-o, --output string     Output file (default: standard output)
//	-d, --delimiter string  Field delimiter: a single character, \t, tab, comma, semicolon, pipe, space (default ",")
//	-align string           Separator alignment: none, left, center, right
//	-pretty                 Pad cells so columns line up
//	-max-width int          Truncate cells wider than this many columns (0 = no limit)
//	-strip-ansi             Remove ANSI escape sequences from fields
//	-check                  Re-parse the generated Markdown and verify it
//	-preview                Print a styled terminal table instead of Markdown
//	-config string          YAML config file (default: .csvmd.yaml if present)
//	-print-config           Print the effective config as YAML and exit
//	-v, --verbose           Log progress to standard error
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/csvmd"
	"github.com/fwojciec/csvmd/csv"
	"github.com/fwojciec/csvmd/fs"
	"github.com/fwojciec/csvmd/goldmark"
	"github.com/fwojciec/csvmd/lipgloss"
	"github.com/fwojciec/csvmd/markdown"
	"github.com/fwojciec/csvmd/yaml"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "csvmd: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	level := log.WarnLevel
	if opts.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(stderr, log.Options{
		Prefix: "csvmd",
		Level:  level,
	})

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger.Debug("config resolved",
		"delimiter", string(cfg.Delimiter),
		"align", cfg.Align,
		"pretty", cfg.Pretty,
		"max_width", cfg.MaxCellWidth,
		"strip_ansi", cfg.StripANSI,
		"check", cfg.Check)

	if opts.printConfig {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return writeStdout(stdout, data)
	}

	in, source, err := openInput(opts.input, stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	conv := csvmd.NewConverter(csv.NewReader(cfg), markdown.NewFormatter(cfg))
	table, err := conv.Read(in)
	if err != nil {
		return err
	}
	logger.Debug("read table", "source", source, "rows", table.Len(), "cols", table.Width())

	if opts.preview {
		return writeStdout(stdout, []byte(lipgloss.Render(table, csvmd.DefaultTheme(), 0)+"\n"))
	}

	lines, err := conv.Format(table)
	if err != nil {
		return err
	}
	if cfg.Check {
		if err := goldmark.Check([]byte(strings.Join(lines, "\n")), table); err != nil {
			return fmt.Errorf("check output: %w", err)
		}
		logger.Debug("output verified")
	}

	var buf bytes.Buffer
	if err := csvmd.WriteLines(&buf, lines); err != nil {
		return err
	}
	if opts.output == "" {
		if err := writeStdout(stdout, buf.Bytes()); err != nil {
			return err
		}
		logger.Debug("wrote table", "dest", "stdout", "lines", len(lines))
		return nil
	}
	if err := fs.WriteFile(opts.output, buf.Bytes()); err != nil {
		return err
	}
	logger.Debug("wrote table", "dest", opts.output, "lines", len(lines))
	return nil
}

// openInput returns the reader for path and a name for log messages.
// Empty path and "-" mean stdin, which is never closed.
func openInput(path string, stdin io.Reader) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), "stdin", nil
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

// writeStdout writes data to w. A reader that closes early, like head, is
// not an error.
func writeStdout(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	if err == nil || isBrokenPipe(err) {
		return nil
	}
	return fmt.Errorf("%w: %w", csvmd.ErrOutputWrite, err)
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
