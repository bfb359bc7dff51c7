package main

import (
	"github.com/spf13/cobra"

	"github.com/aggdata/projectrun"
	"github.com/aggdata/projectrun/internal/cli"
	"github.com/aggdata/projectrun/internal/errors"
	"github.com/aggdata/projectrun/internal/exec"
	"github.com/aggdata/projectrun/internal/fs"
	"github.com/aggdata/projectrun/internal/logging"
)

var (
	cliArgs CliArgs
	config  Config
	service cli.Service

	rootCmd = &cobra.Command{
		Use:               "projectrun [script-name]",
		Short:             "Run one of the project's shell scripts and report its outcome",
		Long:              descriptionProjectRun,
		Args:              cobra.MaximumNArgs(1),
		Version:           projectrun.Version,
		PersistentPreRunE: initCLIService,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.WithStack(service.RunScript(cmd.Context(), config.runConfig()))
		},
		SilenceErrors: true, // Errors are manually printed in 'main'
		SilenceUsage:  true, // Disables usage text on error
	}
)

func configureRootCmd(cmd *cobra.Command, cliArgs *CliArgs) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&cliArgs.configFilePath, "config-file", "", "the config file for projectrun")
	flags.StringVar(
		&cliArgs.scriptDirectory,
		"script-directory",
		cli.DefaultScriptDirectory,
		"the directory scripts are looked up in (env: PROJECT_RUN_SCRIPT_DIRECTORY)",
	)
	flags.StringVar(&cliArgs.shell, "shell", cli.DefaultShell, "the shell scripts are run with (env: PROJECT_RUN_SHELL)")
	flags.BoolVar(&cliArgs.debug, "debug", false, "enable debug output (env: PROJECT_RUN_DEBUG)")

	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.CompletionOptions.DisableDefaultCmd = true
}

func initCLIService(cmd *cobra.Command, args []string) error {
	cliArgs.positionalArgs = args

	cfg, err := InitConfig(cmd, cliArgs)
	if err != nil {
		return errors.WithStack(err)
	}

	config = cfg

	service = cli.Service{
		Log:        logging.New(cfg.Debug),
		FileSystem: fs.Local{},
		TaskRunner: exec.Local{},
	}

	service.Log.Debugf("Resolved configuration: %+v", cfg)

	return nil
}
