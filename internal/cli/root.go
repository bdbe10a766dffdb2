// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == outputJSON {
			_ = NewJSONErrorResponse(rootCmd.Name(), err).Print(os.Stdout)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		output     string
	)

	rootCmd := &cobra.Command{
		Use:   "daynight",
		Short: "Day/night color slider for the terminal",
		Long: "daynight paints the terminal with a color interpolated from a night-to-day\n" +
			"palette. A slider picks the position, a toggle switches between night and\n" +
			"day, and the state is remembered between runs.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return validateOutputFormat(output)
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ~/.daynight/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", outputText, "Output format (text, json)")

	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newStateCmd())
	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if jsonMode(cmd) {
				return printJSON(cmd, map[string]string{
					"version":    Version,
					"git_commit": GitCommit,
					"build_date": BuildDate,
				})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "daynight %s (commit: %s, built: %s)\n", Version, GitCommit, BuildDate)
			return err
		},
	}
}
