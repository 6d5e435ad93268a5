// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package commands

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vulntor/eventkit/pkg/appctx"
	"github.com/vulntor/eventkit/pkg/config"
	"github.com/vulntor/eventkit/pkg/logging"
	"github.com/vulntor/eventkit/pkg/version"
)

const cliExecutable = "eventkit"

// verbosityLevels maps repeated -v flags to log levels.
var verbosityLevels = []string{"", "info", "debug", "trace"}

// NewCommand constructs the top-level eventkit CLI command, wiring global
// flags, configuration loading and logging setup.
func NewCommand() *cobra.Command {
	var (
		configFile     string
		verbosityCount int
	)

	cmd := &cobra.Command{
		Use:     cliExecutable,
		Short:   "Query datasets with event-aware collections",
		Version: version.Info(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.InitGlobalConfig()
			manager := config.NewManager()
			if err := manager.Load(cmd.Flags(), configFile); err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			cfg := manager.Get()
			level := cfg.Log.Level
			if verbosityCount > 0 {
				level = verbosityLevels[min(verbosityCount, len(verbosityLevels)-1)]
			}
			logging.SetLogWriter(cmd.ErrOrStderr())
			if err := logging.ConfigureGlobalLogging(level, cfg.Log.Format); err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			logger := logging.NewLogger(cliExecutable, zerolog.GlobalLevel()).
				With().Str("command", cmd.Name()).Logger()
			logger.Debug().
				Str("config", configFile).
				Str("log_level", level).
				Msg("configuration loaded")

			ctx := appctx.WithConfig(cmd.Context(), manager)
			ctx = appctx.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			if root := cmd.Root(); root != nil && root != cmd {
				root.SetContext(ctx)
			}
			return nil
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	cmd.PersistentFlags().CountVarP(&verbosityCount, "verbosity", "v", "Increase logging verbosity (repeatable)")

	config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewQueryCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// loggerFor returns the command logger tagged with scope.
func loggerFor(cmd *cobra.Command, scope string) zerolog.Logger {
	return appctx.Logger(cmd.Context()).With().Str("scope", scope).Logger()
}

// reportedError marks an error that a formatter already printed.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

func reported(err error) error {
	return reportedError{err}
}

// IsReported reports whether err was already printed by a command.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
