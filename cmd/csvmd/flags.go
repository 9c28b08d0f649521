package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/csvmd"
	"github.com/fwojciec/csvmd/yaml"
)

const defaultConfigPath = ".csvmd.yaml"

// options holds parsed command-line flags. set records which config flags
// were given explicitly, keyed by their long name.
type options struct {
	input       string
	output      string
	configPath  string
	delimiter   string
	align       string
	pretty      bool
	maxWidth    int
	stripANSI   bool
	check       bool
	preview     bool
	printConfig bool
	verbose     bool
	set         map[string]bool
}

// aliases maps short flag names to their long form.
var aliases = map[string]string{
	"o": "output",
	"d": "delimiter",
	"v": "verbose",
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	opts := options{set: make(map[string]bool)}

	fset := flag.NewFlagSet("csvmd", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprintln(fset.Output(), "Usage: csvmd [flags] [input]")
		fset.PrintDefaults()
	}
	fset.StringVar(&opts.output, "o", "", "Output file (default: standard output)")
	fset.StringVar(&opts.output, "output", "", "Output file (default: standard output)")
	fset.StringVar(&opts.delimiter, "d", ",", "Field delimiter")
	fset.StringVar(&opts.delimiter, "delimiter", ",", "Field delimiter")
	fset.StringVar(&opts.align, "align", "none", "Separator alignment: none, left, center, right")
	fset.BoolVar(&opts.pretty, "pretty", false, "Pad cells so columns line up")
	fset.IntVar(&opts.maxWidth, "max-width", 0, "Truncate cells wider than this many columns (0 = no limit)")
	fset.BoolVar(&opts.stripANSI, "strip-ansi", false, "Remove ANSI escape sequences from fields")
	fset.BoolVar(&opts.check, "check", false, "Re-parse the generated Markdown and verify it")
	fset.BoolVar(&opts.preview, "preview", false, "Print a styled terminal table instead of Markdown")
	fset.StringVar(&opts.configPath, "config", "", "YAML config file (default: "+defaultConfigPath+" if present)")
	fset.BoolVar(&opts.printConfig, "print-config", false, "Print the effective config as YAML and exit")
	fset.BoolVar(&opts.verbose, "v", false, "Log progress to standard error")
	fset.BoolVar(&opts.verbose, "verbose", false, "Log progress to standard error")

	// Allow flags after the positional input, as in "csvmd in.csv -o out.md".
	var positional []string
	for {
		if err := fset.Parse(args); err != nil {
			return options{}, err
		}
		args = fset.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
	if len(positional) > 1 {
		return options{}, fmt.Errorf("expected at most one input, got %d: %w", len(positional), csvmd.ErrValidation)
	}
	if len(positional) == 1 {
		opts.input = positional[0]
	}

	fset.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := aliases[name]; ok {
			name = long
		}
		opts.set[name] = true
	})

	if opts.preview && opts.output != "" {
		return options{}, fmt.Errorf("-preview cannot be combined with -o: %w", csvmd.ErrValidation)
	}
	return opts, nil
}

// loadConfig builds the effective config: defaults, then the config file,
// then flags given on the command line.
func loadConfig(opts options) (csvmd.Config, error) {
	cfg := csvmd.DefaultConfig()

	path := opts.configPath
	if path == "" {
		path = defaultConfigPath
	}
	fileCfg, err := yaml.Load(path)
	switch {
	case err == nil:
		cfg = fileCfg
	case errors.Is(err, os.ErrNotExist) && opts.configPath == "":
		// Default config file doesn't exist; use built-in defaults.
	default:
		return csvmd.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return applyFlags(cfg, opts)
}

func applyFlags(cfg csvmd.Config, opts options) (csvmd.Config, error) {
	if opts.set["delimiter"] {
		r, err := csvmd.ParseDelimiter(opts.delimiter)
		if err != nil {
			return csvmd.Config{}, err
		}
		cfg.Delimiter = r
	}
	if opts.set["align"] {
		a, err := csvmd.ParseAlignment(opts.align)
		if err != nil {
			return csvmd.Config{}, err
		}
		cfg.Align = a
	}
	if opts.set["pretty"] {
		cfg.Pretty = opts.pretty
	}
	if opts.set["max-width"] {
		cfg.MaxCellWidth = opts.maxWidth
	}
	if opts.set["strip-ansi"] {
		cfg.StripANSI = opts.stripANSI
	}
	if opts.set["check"] {
		cfg.Check = opts.check
	}
	if err := cfg.Validate(); err != nil {
		return csvmd.Config{}, err
	}
	return cfg, nil
}
