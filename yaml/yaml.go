// Package yaml loads csvmd configuration files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/csvmd"
	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a config file. Pointer fields distinguish
// unset keys from zero values.
type document struct {
	Delimiter    *string `yaml:"delimiter"`
	Align        *string `yaml:"align"`
	Pretty       *bool   `yaml:"pretty"`
	MaxCellWidth *int    `yaml:"max_cell_width"`
	StripANSI    *bool   `yaml:"strip_ansi"`
	Check        *bool   `yaml:"check"`
}

// Unmarshal decodes a config document. Keys that are absent keep their
// csvmd.DefaultConfig values; unknown keys are rejected.
func Unmarshal(data []byte) (csvmd.Config, error) {
	cfg := csvmd.DefaultConfig()

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return csvmd.Config{}, fmt.Errorf("decode config: %w: %w", csvmd.ErrValidation, err)
	}

	if doc.Delimiter != nil {
		r, err := csvmd.ParseDelimiter(*doc.Delimiter)
		if err != nil {
			return csvmd.Config{}, err
		}
		cfg.Delimiter = r
	}
	if doc.Align != nil {
		a, err := csvmd.ParseAlignment(*doc.Align)
		if err != nil {
			return csvmd.Config{}, err
		}
		cfg.Align = a
	}
	if doc.Pretty != nil {
		cfg.Pretty = *doc.Pretty
	}
	if doc.MaxCellWidth != nil {
		cfg.MaxCellWidth = *doc.MaxCellWidth
	}
	if doc.StripANSI != nil {
		cfg.StripANSI = *doc.StripANSI
	}
	if doc.Check != nil {
		cfg.Check = *doc.Check
	}

	if err := cfg.Validate(); err != nil {
		return csvmd.Config{}, err
	}
	return cfg, nil
}

// Load reads a config file from path.
func Load(path string) (csvmd.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return csvmd.Config{}, fmt.Errorf("read config: %w", err)
	}
	return Unmarshal(data)
}

// Marshal encodes cfg as a config document.
func Marshal(cfg csvmd.Config) ([]byte, error) {
	delim := string(cfg.Delimiter)
	if cfg.Delimiter == '\t' {
		delim = "tab"
	}
	align := cfg.Align.String()
	doc := document{
		Delimiter:    &delim,
		Align:        &align,
		Pretty:       &cfg.Pretty,
		MaxCellWidth: &cfg.MaxCellWidth,
		StripANSI:    &cfg.StripANSI,
		Check:        &cfg.Check,
	}
	return yaml.Marshal(doc)
}
