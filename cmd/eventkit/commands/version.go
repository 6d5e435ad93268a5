// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vulntor/eventkit/cmd/eventkit/internal/format"
	"github.com/vulntor/eventkit/pkg/appctx"
	"github.com/vulntor/eventkit/pkg/version"
)

// NewVersionCommand returns the version command.
func NewVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if short {
				_, err := fmt.Fprintln(out, info.Version)
				return err
			}

			cfg := appctx.CurrentConfig(cmd.Context())
			if format.ParseMode(cfg.Output.Format) == format.ModeJSON {
				f := format.New(out, cmd.ErrOrStderr(), format.ModeJSON, cfg.Output.Quiet, false)
				return f.PrintJSON(info)
			}

			fmt.Fprintf(out, "%s version: %s\n", cliExecutable, info.Version)
			fmt.Fprintf(out, "Commit: %s\n", info.Commit)
			fmt.Fprintf(out, "Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
			fmt.Fprintf(out, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			if info.Prerelease {
				fmt.Fprintln(out, "Channel: prerelease")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number")

	return cmd
}
