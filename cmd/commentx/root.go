package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/phyten/commentx/internal/config"
	"github.com/phyten/commentx/internal/logging"
	"github.com/phyten/commentx/internal/syntax"
	"github.com/phyten/commentx/internal/termcolor"
)

// environment is everything a command reads from the process. Tests swap it
// for a hermetic one.
type environment struct {
	vars  map[string]string
	stdin io.Reader
	cwd   string
	open  func(string) error
}

func (e environment) getenv(key string) string { return e.vars[key] }

func defaultEnvironment() environment {
	cwd, _ := os.Getwd()
	return environment{
		vars:  termcolor.EnvMap(os.Environ()),
		stdin: os.Stdin,
		cwd:   cwd,
	}
}

// app is the state shared by every subcommand once configuration has been
// resolved.
type app struct {
	env        environment
	configPath string
	settings   config.Settings
	registry   *syntax.Registry
	logger     log.Logger
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultEnvironment())
}

func newRootCommand(env environment) *cobra.Command {
	a := &app{env: env, logger: log.NewNopLogger()}
	cmd := &cobra.Command{
		Use:           "commentx",
		Short:         "Find and extract source code comments",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: search .commentx.{yaml,toml,json})")
	cmd.PersistentFlags().String("log-level", "", "log level: debug|info|warn|error|none")
	cmd.PersistentFlags().String("log-format", "", "log format: logfmt|json")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.prepare(cmd)
	}

	cmd.AddCommand(newExtractCommand(a))
	cmd.AddCommand(newSelectionCommand(a))
	cmd.AddCommand(newLangsCommand(a))
	cmd.AddCommand(newOpenCommand(a))
	cmd.AddCommand(newServeCommand(a))
	return cmd
}

// prepare layers defaults < config file < environment < flags.
func (a *app) prepare(cmd *cobra.Command) error {
	path, source, err := config.Find(a.env.cwd, a.configPath, a.env.getenv("XDG_CONFIG_HOME"), a.env.getenv("HOME"))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var fileCfg config.Config
	if path != "" {
		if fileCfg, err = config.Load(path); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}
	envCfg, err := config.FromEnv(a.env.getenv)
	if err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	flagCfg, err := flagLayer(cmd.Flags())
	if err != nil {
		return usageError{err}
	}
	settings, err := config.Normalize(config.Merge(config.DefaultSettings(), fileCfg, envCfg, flagCfg))
	if err != nil {
		return err
	}
	registry, err := settings.Registry()
	if err != nil {
		return fmt.Errorf("languages: %w", err)
	}
	logger, err := logging.New(cmd.ErrOrStderr(), settings.Log.Level, settings.Log.Format)
	if err != nil {
		return err
	}
	a.settings = settings
	a.registry = registry
	a.logger = logger
	if path != "" {
		level.Debug(logger).Log("msg", "config loaded", "path", path, "source", source)
	}
	return nil
}
