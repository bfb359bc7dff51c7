package cli

// OutcomeKind tags the result of launching a script.
type OutcomeKind int

const (
	// Succeeded means the script ran and exited with 0.
	Succeeded OutcomeKind = iota
	// Failed means the script ran and exited with a non-zero exit code.
	Failed
	// ConfigurationFailure means the script could not be determined. Nothing was spawned.
	ConfigurationFailure
	// ScriptNotFound means either the script or the shell to run it with does not exist.
	ScriptNotFound
	// Unexpected covers every other failure while spawning or waiting on the script.
	Unexpected
)

func (k OutcomeKind) String() string {
	switch k {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case ConfigurationFailure:
		return "configuration failure"
	case ScriptNotFound:
		return "script not found"
	case Unexpected:
		return "unexpected error"
	default:
		return "unknown"
	}
}

// Outcome is the result of launching a script. Stdout and Stderr are only populated once the script actually ran,
// i.e. for the `Succeeded` and `Failed` kinds.
type Outcome struct {
	Kind       OutcomeKind
	ScriptPath string
	Stdout     string
	Stderr     string
	// Code is the exit code reported by the script. It is -1 if the script was terminated by a signal.
	Code int
	Err  error
}

// ExitCode is the exit code the CLI should terminate with. Scripts that failed without a usable exit code, as well as
// every other failure kind, map to 1.
func (o Outcome) ExitCode() int {
	switch o.Kind {
	case Succeeded:
		return 0
	case Failed:
		if o.Code > 0 {
			return o.Code
		}

		return 1
	default:
		return 1
	}
}
