// Package fs opens csvmd inputs and writes outputs on the local filesystem.
package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/csvmd"
)

// Open opens the input file at path. A missing path or a directory yields
// csvmd.ErrInputNotFound.
func Open(path string) (io.ReadCloser, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%s: %w", path, csvmd.ErrInputNotFound)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", csvmd.ErrInputNotFound, err)
	case info.IsDir():
		return nil, fmt.Errorf("%s is a directory: %w", path, csvmd.ErrInputNotFound)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", csvmd.ErrInputNotFound, err)
	}
	return f, nil
}

// WriteFile writes data to path through a temporary file in the same
// directory, so a failed write leaves any existing file untouched. The
// directory must already exist. Failures wrap csvmd.ErrOutputWrite.
func WriteFile(path string, data []byte) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%s is a directory: %w", path, csvmd.ErrOutputWrite)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", csvmd.ErrOutputWrite, err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name) // best-effort cleanup
		return fmt.Errorf("%w: write temp file: %w", csvmd.ErrOutputWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("%w: close temp file: %w", csvmd.ErrOutputWrite, err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return fmt.Errorf("%w: %w", csvmd.ErrOutputWrite, err)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("%w: rename temp file: %w", csvmd.ErrOutputWrite, err)
	}
	return nil
}
