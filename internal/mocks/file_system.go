package mocks

import (
	"os"

	"github.com/aggdata/projectrun/internal/errors"
)

// FileSystem is a mocked implementation of 'cli.FileSystem'.
type FileSystem struct {
	MockGlob func(pattern string) ([]string, error)
	MockStat func(name string) (os.FileInfo, error)
}

// Glob either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Glob(pattern string) ([]string, error) {
	if f.MockGlob != nil {
		return f.MockGlob(pattern)
	}

	return nil, errors.NewInternalError("MockGlob was not configured")
}

// Stat either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Stat(name string) (os.FileInfo, error) {
	if f.MockStat != nil {
		return f.MockStat(name)
	}

	return nil, errors.NewInternalError("MockStat was not configured")
}
