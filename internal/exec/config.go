package exec

import "io"

// CommandConfig configures a command for execution. Env holds additional `KEY=value` pairs that are appended to the
// environment of the current process; an empty Env inherits it unchanged.
type CommandConfig struct {
	Args   []string
	Env    []string
	Name   string
	Stderr io.Writer
	Stdout io.Writer
}
