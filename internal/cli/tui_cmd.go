// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeranaias/daynight-tui/internal/ui/app"
	"github.com/jeranaias/daynight-tui/internal/ui/styles"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive widget (default)",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if jsonMode(cmd) {
		return fmt.Errorf("the TUI has no JSON output; use 'daynight render' or 'daynight state show'")
	}

	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	store, err := rt.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	state, warning, err := rt.loadState(store)
	if err != nil {
		return err
	}

	final, err := app.Run(cmd.Context(), app.Options{
		Config:  rt.cfg,
		Engine:  rt.engine,
		Store:   store,
		State:   state,
		Logger:  rt.logger,
		Theme:   styles.NewTheme(),
		Warning: warning,
	}, rt.cfgPath)
	if err != nil {
		return err
	}

	if IsTerminal(cmd.OutOrStdout()) {
		fmt.Fprintln(cmd.OutOrStdout(), final.State())
	}
	return nil
}
