// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeranaias/daynight-tui/internal/daynight"
	"github.com/jeranaias/daynight-tui/internal/storage"
)

// stateData is the JSON form of the stored state.
type stateData struct {
	State   daynight.State `json:"state"`
	Frame   daynight.Frame `json:"frame"`
	Backend string         `json:"backend"`
	Path    string         `json:"path,omitempty"`
	Warning string         `json:"warning,omitempty"`
}

func newStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show or change the stored state",
	}
	cmd.AddCommand(newStateShowCmd())
	cmd.AddCommand(newStateResetCmd())
	cmd.AddCommand(newStateSetCmd())
	return cmd
}

func newStateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored state and its frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, func(rt *runtime, store storage.Store, state daynight.State, warning string) error {
				return printState(cmd, rt, state, warning)
			})
		},
	}
}

func newStateResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the stored state with the configured defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, func(rt *runtime, store storage.Store, _ daynight.State, _ string) error {
				state := rt.cfg.DefaultState()
				if err := saveState(rt, store, state, "reset"); err != nil {
					return err
				}
				return printState(cmd, rt, state, "")
			})
		},
	}
}

func newStateSetCmd() *cobra.Command {
	var (
		value int
		dark  bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the stored slider value and/or mode",
		Example: "  daynight state set --value 73\n" +
			"  daynight state set --dark=false",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			valueSet := cmd.Flags().Changed("value")
			darkSet := cmd.Flags().Changed("dark")
			if !valueSet && !darkSet {
				return fmt.Errorf("nothing to set: pass --value and/or --dark")
			}
			if valueSet {
				if err := checkValue(value); err != nil {
					return err
				}
			}

			return withStore(cmd, func(rt *runtime, store storage.Store, state daynight.State, _ string) error {
				if valueSet {
					state = rt.engine.Slide(state, value)
				}
				if darkSet {
					state.Dark = dark
				}
				if err := saveState(rt, store, state, "set"); err != nil {
					return err
				}
				return printState(cmd, rt, state, "")
			})
		},
	}

	cmd.Flags().IntVar(&value, "value", 0, "Slider value (0-100)")
	cmd.Flags().BoolVar(&dark, "dark", false, "Night mode")
	return cmd
}

// withStore opens the runtime and store, loads the state and calls fn.
func withStore(cmd *cobra.Command, fn func(rt *runtime, store storage.Store, state daynight.State, warning string) error) error {
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
	return fn(rt, store, state, warning)
}

func saveState(rt *runtime, store storage.Store, state daynight.State, action string) error {
	if err := storage.SaveState(store, state); err != nil {
		rt.logger.Error().Err(err).Str("action", action).Msg("failed to persist state")
		return fmt.Errorf("failed to save state: %w", err)
	}
	rt.logger.Info().
		Str("action", action).
		Bool("dark", state.Dark).
		Int("raw", state.Raw).
		Msg("state saved")
	return nil
}

func printState(cmd *cobra.Command, rt *runtime, state daynight.State, warning string) error {
	path := ""
	if b, err := storage.ParseBackend(rt.cfg.Storage.Backend); err == nil && b.Persistent() {
		path, _ = rt.cfg.StatePath()
	}
	data := stateData{
		State:   state,
		Frame:   rt.engine.Render(state),
		Backend: rt.cfg.Storage.Backend,
		Path:    path,
		Warning: warning,
	}
	if jsonMode(cmd) {
		return printJSON(cmd, data)
	}

	w := cmd.OutOrStdout()
	st := newOutputStyles(w)
	if warning != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), st.Warning.Render("Warning: "+warning))
	}
	fmt.Fprintln(w, st.Title.Render(state.String()))
	printFrame(w, st, data.Frame)
	fmt.Fprintln(w, st.Field("backend", data.Backend))
	if path != "" {
		fmt.Fprintln(w, st.Field("path", path))
	}
	return nil
}
