// Package fs is a thin wrapper around potential file-systems. By default, it is an abstraction over the `os` package
// from the standard library.
package fs

import (
	"os"
	"sort"

	"github.com/yargevad/filepathx"

	"github.com/aggdata/projectrun/internal/errors"
)

// Local is a local file-system. It wraps the default `os` package
type Local struct{}

// Glob returns the names of all files matching pattern, in lexical order. Unlike `filepath.Glob`, it supports `**` to
// match any number of nested directories.
func (l Local) Glob(pattern string) ([]string, error) {
	matches, err := filepathx.Glob(pattern)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sort.Strings(matches)

	return matches, nil
}

// Stat returns file information about the named file
func (l Local) Stat(name string) (os.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return info, nil
}
