package cli

import (
	"path/filepath"

	"github.com/aggdata/projectrun/internal/errors"
	"github.com/aggdata/projectrun/internal/fs"
)

const (
	// ScriptNameEnvVar is the environment variable holding the name of the script to run.
	ScriptNameEnvVar = "PROJECT_RUN"

	// DefaultScriptDirectory is the directory scripts are looked up in, relative to the working directory.
	DefaultScriptDirectory = "agg_data_storage_dbt/project_run_scripts"

	// DefaultShell is the interpreter scripts are run with.
	DefaultShell = "bash"

	scriptExtension = ".sh"
)

// RunConfig holds the configuration for running a single script (used by `RunScript` and `Launch`)
type RunConfig struct {
	ScriptName      string
	ScriptDirectory string
	Shell           string
}

// ScriptPath returns the path of the script, relative to the working directory.
func (rc RunConfig) ScriptPath() string {
	return filepath.Join(rc.ScriptDirectory, rc.ScriptName+scriptExtension)
}

// Validate checks that the script can be located. It does not check whether the script exists.
func (rc RunConfig) Validate() error {
	if rc.ScriptName == "" {
		return errors.NewConfigurationError("%s environment variable is not set.", ScriptNameEnvVar)
	}

	if !fs.IsLocal(rc.ScriptName) {
		return errors.NewConfigurationError(
			"script name %q resolves to a path outside of the script directory %q",
			rc.ScriptName,
			rc.ScriptDirectory,
		)
	}

	if rc.Shell == "" {
		return errors.NewConfigurationError("no shell configured to run %q with", rc.ScriptPath())
	}

	return nil
}

// ListConfig holds the configuration for listing available scripts (used by `ListScripts`)
type ListConfig struct {
	ScriptDirectory string
}
