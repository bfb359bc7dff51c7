// Package cli holds the main business logic in our CLI. This is mainly:
// 1. Locating and running a project script as a sub-process.
// 2. User-friendly reporting of the script's outcome.
// However, this package _does not_ implement the actual terminal UI. That part is handled by `cmd/projectrun`.
package cli

import (
	"go.uber.org/zap"
)

// Service is the main CLI service.
type Service struct {
	Log        *zap.SugaredLogger
	FileSystem FileSystem
	TaskRunner TaskRunner
}
