// Package projectrun holds build metadata for the projectrun CLI.
package projectrun

// Version is the version of the CLI. It is overwritten at build time via `-ldflags "-X ..."`.
var Version = "development"
