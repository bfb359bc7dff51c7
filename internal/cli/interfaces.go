package cli

import (
	"context"
	"os"

	"github.com/aggdata/projectrun/internal/exec"
)

// FileSystem is an abstraction over file-systems. This is implemented by `fs.Local` and can also be used for mocking.
type FileSystem interface {
	Glob(pattern string) ([]string, error)
	Stat(name string) (os.FileInfo, error)
}

// TaskRunner is an abstraction over various task-runners / execution environments.
// They are expected to implement the `exec.Command` interface in turn, which is mapped to the Command type from
// `os/exec`
type TaskRunner interface {
	NewCommand(ctx context.Context, cfg exec.CommandConfig) (exec.Command, error)
	GetExitStatusFromError(error) (int, error)
	IsExecutableNotFound(error) bool
}
