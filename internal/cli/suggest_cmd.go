// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeranaias/daynight-tui/internal/daynight"
	"github.com/jeranaias/daynight-tui/internal/solar"
)

// now is replaced in tests.
var now = time.Now

// suggestData is the JSON form of `suggest`.
type suggestData struct {
	solar.Suggestion
	State   daynight.State `json:"state"`
	Applied bool           `json:"applied"`
}

func newSuggestCmd() *cobra.Command {
	var (
		lat, lon float64
		apply    bool
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a value from the sun's current elevation",
		Long: "Computes the sun's elevation at the configured (or given) location and\n" +
			"maps it onto 0-100 between location.night_elevation and location.day_elevation.",
		Example: "  daynight suggest --lat 52.52 --lon 13.40\n" +
			"  daynight suggest --apply",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			loc := rt.cfg.Location
			if cmd.Flags().Changed("lat") {
				loc.Latitude = lat
			}
			if cmd.Flags().Changed("lon") {
				loc.Longitude = lon
			}
			if loc.Latitude < -90 || loc.Latitude > 90 {
				return fmt.Errorf("invalid latitude %v: must be between -90 and 90", loc.Latitude)
			}
			if loc.Longitude < -180 || loc.Longitude > 180 {
				return fmt.Errorf("invalid longitude %v: must be between -180 and 180", loc.Longitude)
			}

			s := solar.Suggest(now(), loc.Latitude, loc.Longitude, loc.NightElevation, loc.DayElevation)
			data := suggestData{
				Suggestion: s,
				State:      rt.engine.Policy().StateFor(s.Value),
			}
			rt.logger.Info().
				Float64("elevation", s.Elevation).
				Int("value", s.Value).
				Msg("suggestion computed")

			if apply {
				store, err := rt.openStore()
				if err != nil {
					return err
				}
				defer store.Close()
				if err := saveState(rt, store, data.State, "suggest"); err != nil {
					return err
				}
				data.Applied = true
			}

			if jsonMode(cmd) {
				return printJSON(cmd, data)
			}

			w := cmd.OutOrStdout()
			st := newOutputStyles(w)
			fmt.Fprintln(w, st.Field("elevation", fmt.Sprintf("%.1f°", s.Elevation)))
			fmt.Fprintln(w, st.Field("value", fmt.Sprintf("%d", s.Value)))
			fmt.Fprintln(w, st.Field("state", data.State.String()))
			printFrame(w, st, rt.engine.Render(data.State))
			if data.Applied {
				fmt.Fprintln(w, st.Success.Render("Saved."))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in degrees (default from config)")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude in degrees (default from config)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Store the suggested state")
	return cmd
}
