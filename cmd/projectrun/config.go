package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v7"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aggdata/projectrun/internal/cli"
	"github.com/aggdata/projectrun/internal/errors"
)

// Config is the internal representation of the configuration.
type Config struct {
	ScriptName      string `mapstructure:"-"`
	ScriptDirectory string `mapstructure:"script-directory"`
	Shell           string `mapstructure:"shell"`
	Debug           bool   `mapstructure:"debug"`
}

// EnvConfig holds the configuration that can be supplied via environment variables.
type EnvConfig struct {
	ScriptName      string `env:"PROJECT_RUN"`
	ScriptDirectory string `env:"PROJECT_RUN_SCRIPT_DIRECTORY"`
	Shell           string `env:"PROJECT_RUN_SHELL"`
	Debug           bool   `env:"PROJECT_RUN_DEBUG"`
}

// CliArgs holds the raw flags & arguments passed on the command line.
type CliArgs struct {
	configFilePath  string
	debug           bool
	positionalArgs  []string
	scriptDirectory string
	shell           string
}

const (
	configDirectory = ".projectrun"
	configFileName  = "config"
)

var configFileExtensions = []string{"yaml", "yml"}

func defaultConfig() Config {
	return Config{
		ScriptDirectory: cli.DefaultScriptDirectory,
		Shell:           cli.DefaultShell,
	}
}

func (cfg Config) runConfig() cli.RunConfig {
	return cli.RunConfig{
		ScriptName:      cfg.ScriptName,
		ScriptDirectory: cfg.ScriptDirectory,
		Shell:           cfg.Shell,
	}
}

// findInParentDir starts at the current working directory and walk up to the root, trying
// to find the specified fileName
func findInParentDir(fileName string) (string, error) {
	var match string
	var walk func(string, string) error

	walk = func(base, root string) error {
		if base == root {
			return errors.WithStack(os.ErrNotExist)
		}

		match = path.Join(base, fileName)

		info, err := os.Stat(match)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.WithStack(err)
		}

		if info != nil {
			return nil
		}

		return walk(filepath.Dir(base), root)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.WithStack(err)
	}

	volumeName := filepath.VolumeName(pwd)
	if volumeName == "" {
		volumeName = string(os.PathSeparator)
	}

	if err := walk(pwd, volumeName); err != nil {
		return "", errors.WithStack(err)
	}

	return match, nil
}

func findConfigFile() (string, error) {
	possibleConfigFilePaths := make([]string, 0, len(configFileExtensions))

	for _, extension := range configFileExtensions {
		configFilePath, err := findInParentDir(
			filepath.Join(configDirectory, fmt.Sprintf("%s.%s", configFileName, extension)),
		)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return "", errors.NewConfigurationError("unable to search for a configuration file: %s", err)
			}

			continue
		}

		possibleConfigFilePaths = append(possibleConfigFilePaths, configFilePath)
	}

	if len(possibleConfigFilePaths) > 1 {
		return "", errors.NewConfigurationError(
			"found multiple configuration files: %s. Please remove all but one or pick one with '--config-file'",
			strings.Join(possibleConfigFilePaths, ", "),
		)
	}

	if len(possibleConfigFilePaths) == 0 {
		return "", nil
	}

	return possibleConfigFilePaths[0], nil
}

func readConfigFile(cfg Config, configFilePath string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(configFilePath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return cfg, errors.NewConfigurationError("unable to read config file %q: %s", configFilePath, err)
	}

	var fileCfg Config
	if err := v.UnmarshalExact(&fileCfg); err != nil {
		return cfg, errors.NewConfigurationError("unable to parse config file %q: %s", configFilePath, err)
	}

	if fileCfg.ScriptDirectory != "" {
		cfg.ScriptDirectory = fileCfg.ScriptDirectory
	}

	if fileCfg.Shell != "" {
		cfg.Shell = fileCfg.Shell
	}

	cfg.Debug = cfg.Debug || fileCfg.Debug

	return cfg, nil
}

// InitConfig reads our configuration from the system.
// Environment variables take precedence over a config file.
// Flags and positional arguments take precedence over all other options.
func InitConfig(cmd *cobra.Command, cliArgs CliArgs) (Config, error) {
	cfg := defaultConfig()

	configFilePath := cliArgs.configFilePath
	if configFilePath == "" {
		var err error

		configFilePath, err = findConfigFile()
		if err != nil {
			return cfg, errors.WithStack(err)
		}
	}

	if configFilePath != "" {
		var err error

		cfg, err = readConfigFile(cfg, configFilePath)
		if err != nil {
			return cfg, errors.WithStack(err)
		}
	}

	var envCfg EnvConfig
	if err := env.Parse(&envCfg); err != nil {
		return cfg, errors.NewConfigurationError("unable to parse environment variables: %s", err)
	}

	cfg.ScriptName = envCfg.ScriptName

	if envCfg.ScriptDirectory != "" {
		cfg.ScriptDirectory = envCfg.ScriptDirectory
	}

	if envCfg.Shell != "" {
		cfg.Shell = envCfg.Shell
	}

	cfg.Debug = cfg.Debug || envCfg.Debug

	return bindRootCmdFlags(cfg, cmd, cliArgs), nil
}

func bindRootCmdFlags(cfg Config, cmd *cobra.Command, cliArgs CliArgs) Config {
	flags := cmd.Flags()

	if flags.Changed("script-directory") {
		cfg.ScriptDirectory = cliArgs.scriptDirectory
	}

	if flags.Changed("shell") {
		cfg.Shell = cliArgs.shell
	}

	if flags.Changed("debug") {
		cfg.Debug = cliArgs.debug
	}

	if len(cliArgs.positionalArgs) > 0 {
		cfg.ScriptName = cliArgs.positionalArgs[0]
	}

	return cfg
}
