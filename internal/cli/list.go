package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/aggdata/projectrun/internal/errors"
)

// ListScripts prints the names of all scripts in the script directory, one per line. Scripts in nested directories
// are printed with their relative directory, e.g. `nightly/build_daily`.
func (s Service) ListScripts(_ context.Context, cfg ListConfig) error {
	info, err := s.FileSystem.Stat(cfg.ScriptDirectory)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.NewConfigurationError("script directory %q does not exist", cfg.ScriptDirectory)
		}

		return errors.NewSystemError("unable to access script directory %q: %s", cfg.ScriptDirectory, err)
	}

	if !info.IsDir() {
		return errors.NewConfigurationError("script directory %q is not a directory", cfg.ScriptDirectory)
	}

	matches, err := s.FileSystem.Glob(filepath.Join(cfg.ScriptDirectory, "**", "*"+scriptExtension))
	if err != nil {
		return errors.NewSystemError("unable to list scripts in %q: %s", cfg.ScriptDirectory, err)
	}

	if len(matches) == 0 {
		s.Log.Debugf("No scripts found in %q", cfg.ScriptDirectory)
		return nil
	}

	for _, match := range matches {
		name, err := filepath.Rel(cfg.ScriptDirectory, match)
		if err != nil {
			return errors.NewInternalError("unable to determine script name of %q: %s", match, err)
		}

		s.Log.Infoln(filepath.ToSlash(strings.TrimSuffix(name, scriptExtension)))
	}

	return nil
}
