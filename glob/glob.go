// Package glob provides the filename pattern expansion consumed by the
// parser.
package glob

import (
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Expander expands a single pattern into zero or more literal paths.  When
// no path matches, the literal pattern comes back as a singleton unless the
// expander was configured otherwise; only a lower-level fault is an error.
type Expander interface {
	Expand(pattern string) ([]string, error)
}

type Options struct {
	// NullGlob drops patterns that match nothing instead of falling back
	// to the literal pattern.
	NullGlob bool

	// Home overrides the directory substituted for a ‘~’ prefix.  Empty
	// means the current user's home directory.
	Home string
}

// FS is an Expander backed by a filesystem.
type FS struct {
	fs   afero.Fs
	opts Options
}

func New(fsys afero.Fs, opts Options) *FS {
	if opts.Home == "" {
		opts.Home, _ = os.UserHomeDir()
	}
	return &FS{fs: fsys, opts: opts}
}

// Expand performs tilde-prefix substitution followed by wildcard matching.
func (f *FS) Expand(pattern string) ([]string, error) {
	pattern = f.expandTilde(pattern)

	if !strings.ContainsAny(pattern, "*?[") {
		return []string{pattern}, nil
	}

	xs, err := afero.Glob(f.fs, pattern)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		if f.opts.NullGlob {
			return nil, nil
		}
		return []string{pattern}, nil
	}
	return xs, nil
}

func (f *FS) expandTilde(pattern string) string {
	if f.opts.Home == "" {
		return pattern
	}
	if pattern == "~" {
		return f.opts.Home
	}
	if strings.HasPrefix(pattern, "~/") {
		return f.opts.Home + pattern[1:]
	}
	return pattern
}
