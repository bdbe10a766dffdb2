// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeranaias/daynight-tui/internal/daynight"
)

func newRenderCmd() *cobra.Command {
	var dark bool

	cmd := &cobra.Command{
		Use:   "render VALUE",
		Short: "Print the frame for a slider value without touching stored state",
		Example: "  daynight render 73\n" +
			"  daynight render 73 --dark --output json",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parseValue(args[0])
			if err != nil {
				return err
			}

			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			frame := rt.engine.Render(daynight.State{Dark: dark, Raw: raw})
			if jsonMode(cmd) {
				return printJSON(cmd, frame)
			}
			printFrame(cmd.OutOrStdout(), newOutputStyles(cmd.OutOrStdout()), frame)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "Render in night mode")
	return cmd
}

// parseValue parses a slider value in [0, 100].
func parseValue(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: must be an integer", s)
	}
	return v, checkValue(v)
}

func checkValue(v int) error {
	if v < daynight.MinValue || v > daynight.MaxValue {
		return fmt.Errorf("invalid value %d: must be between %d and %d", v, daynight.MinValue, daynight.MaxValue)
	}
	return nil
}
