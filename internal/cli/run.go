package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aggdata/projectrun/internal/errors"
	"github.com/aggdata/projectrun/internal/exec"
)

const (
	stdoutHeader = "=== STDOUT ==="
	stderrHeader = "=== STDERR ==="
)

// RunScript runs the configured script and prints its outcome. Any outcome other than a successful script run is
// returned as an `errors.ExecutionError` carrying the exit code the CLI should terminate with.
func (s Service) RunScript(ctx context.Context, cfg RunConfig) error {
	var outcome Outcome

	if err := cfg.Validate(); err != nil {
		outcome = Outcome{Kind: ConfigurationFailure, Err: err}
	} else {
		s.Log.Infof("▶️ Running script: %s", cfg.ScriptPath())
		outcome = s.Launch(ctx, cfg)
	}

	s.Report(outcome)

	if outcome.Kind == Succeeded {
		return nil
	}

	return errors.NewExecutionError(outcome.ExitCode(), "script run ended with outcome %q", outcome.Kind)
}

// Launch runs the configured script through the configured shell and waits for it to finish. Both output streams are
// buffered in full. Launch never prints the outcome itself, see `Report`.
func (s Service) Launch(ctx context.Context, cfg RunConfig) Outcome {
	if err := cfg.Validate(); err != nil {
		return Outcome{Kind: ConfigurationFailure, Err: err}
	}

	scriptPath := cfg.ScriptPath()
	invocationID := uuid.NewString()

	info, err := s.FileSystem.Stat(scriptPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Outcome{
				Kind:       ScriptNotFound,
				ScriptPath: scriptPath,
				Err:        errors.NewNotFoundError(scriptPath, "script %q does not exist", scriptPath),
			}
		}

		return Outcome{
			Kind:       Unexpected,
			ScriptPath: scriptPath,
			Err:        errors.NewSystemError("unable to access %q: %s", scriptPath, err),
		}
	}

	if info.IsDir() {
		return Outcome{
			Kind:       ScriptNotFound,
			ScriptPath: scriptPath,
			Err:        errors.NewNotFoundError(scriptPath, "%q is a directory", scriptPath),
		}
	}

	stdout := new(strings.Builder)
	stderr := new(strings.Builder)

	cmd, err := s.TaskRunner.NewCommand(ctx, exec.CommandConfig{
		Name:   cfg.Shell,
		Args:   []string{scriptPath},
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		return Outcome{
			Kind:       Unexpected,
			ScriptPath: scriptPath,
			Err:        errors.NewSystemError("unable to spawn sub-process: %s", err),
		}
	}

	s.Log.Debugf("Executing %q with %q (invocation %s)", scriptPath, cfg.Shell, invocationID)
	startedAt := time.Now()

	if err := cmd.Start(); err != nil {
		if s.TaskRunner.IsExecutableNotFound(err) {
			return Outcome{
				Kind:       ScriptNotFound,
				ScriptPath: scriptPath,
				Err:        errors.NewNotFoundError(scriptPath, "shell %q not found: %s", cfg.Shell, err),
			}
		}

		return Outcome{
			Kind:       Unexpected,
			ScriptPath: scriptPath,
			Err:        errors.NewSystemError("unable to execute sub-command: %s", err),
		}
	}

	waitErr := cmd.Wait()
	s.Log.Debugf("Finished executing %q after %s (invocation %s)", scriptPath, time.Since(startedAt), invocationID)

	outcome := Outcome{
		Kind:       Succeeded,
		ScriptPath: scriptPath,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
	}

	if waitErr != nil {
		code, err := s.TaskRunner.GetExitStatusFromError(waitErr)
		if err != nil {
			return Outcome{
				Kind:       Unexpected,
				ScriptPath: scriptPath,
				Err:        errors.NewSystemError("Error during program execution: %s", waitErr),
			}
		}

		outcome.Kind = Failed
		outcome.Code = code
		outcome.Err = errors.NewExecutionError(code, "script exited with non-zero exit code %d", code)
	}

	return outcome
}

// Report prints the outcome of a script run.
func (s Service) Report(outcome Outcome) {
	switch outcome.Kind {
	case ConfigurationFailure:
		s.Log.Infof("❌ %s", outcome.Err)
	case ScriptNotFound:
		s.Log.Debugf("%s", outcome.Err)
		s.Log.Infof("❌ Script not found: %s", outcome.ScriptPath)
	case Unexpected:
		s.Log.Infoln("❌ Unexpected error:", outcome.Err.Error())
	case Succeeded, Failed:
		s.Log.Infoln(stdoutHeader)
		s.Log.Infoln(outcome.Stdout)
		s.Log.Infoln(stderrHeader)
		s.Log.Infoln(outcome.Stderr)

		if outcome.Kind == Succeeded {
			s.Log.Infoln("✅ Script executed successfully.")
		} else {
			s.Log.Infof("❌ Script failed with exit code %d", outcome.Code)
		}
	}
}
