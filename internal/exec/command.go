package exec

// Command is a sub-process that was configured but not started yet. It mirrors the subset of `exec.Cmd` that the
// launcher relies on: start it, then block until it exited.
type Command interface {
	Start() error
	Wait() error
}
