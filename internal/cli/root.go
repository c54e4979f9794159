// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SwayamPurwar/portfolio-term/internal/config"
	"github.com/SwayamPurwar/portfolio-term/internal/logging"
)

// Version information (can be overridden at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// app holds the global flags and what PersistentPreRunE builds from them.
type app struct {
	configPath string
	logLevel   string
	logFile    string

	cfg *config.Config
	log *zap.Logger
}

// Execute runs the portfolio-term command tree.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "portfolio-term",
		Short: "Swayam's portfolio, as a terminal",
		Long: `portfolio-term is a portfolio site you browse from the command line.

Open the terminal with ` + "`" + ` and type 'help'. Type 'ai' to talk to S.A.M.

Run without arguments to start the interface.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !Interactive() {
				return a.runPlain(cmd)
			}
			return a.runTUI(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ~/.portfolio-term/config.toml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFile, "log-file", "", "log file (default ~/.portfolio-term/portfolio-term.log)")
	root.AddCommand(
		a.plainCmd(),
		a.execCmd(),
		a.pageCmd(),
		a.configCmd(),
		versionCmd(),
	)
	root.SetVersionTemplate(versionText())
	return root
}

// setup loads the config and builds the logger for every subcommand.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, err := a.resolveConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		if _, err := logging.ParseLevel(a.logLevel); err != nil {
			return err
		}
		cfg.Logging.Level = a.logLevel
	}
	if a.logFile != "" {
		cfg.Logging.File = a.logFile
	}
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = config.DefaultLogFile()
	}

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{logFile},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.log = log
	config.SetGlobal(cfg)
	log.Debug("starting",
		zap.String("command", cmd.Name()),
		zap.String("config", path),
		zap.String("version", Version))
	return nil
}

func (a *app) resolveConfigPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.Path()
}
