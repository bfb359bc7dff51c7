package main

import (
	"github.com/spf13/cobra"

	"github.com/aggdata/projectrun/internal/cli"
	"github.com/aggdata/projectrun/internal/errors"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the scripts that can be run",
	Long:  descriptionList,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.WithStack(service.ListScripts(cmd.Context(), cli.ListConfig{
			ScriptDirectory: config.ScriptDirectory,
		}))
	},
}
