// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/daynight-tui/internal/palette"
)

// =============================================================================
// STATUS COLORS
// =============================================================================

// Rose - Persistence and reload errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, e.g. malformed stored values replaced by defaults
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Emerald - Confirmations such as a config reload
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// FRAME COLORS
// =============================================================================

// Color converts a palette color to a lipgloss color.
func Color(c palette.RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Mix blends a toward b by t in [0, 1]. Used for borders and the empty part
// of the slider track so they stay visible on any background.
func Mix(a, b palette.RGB, t float64) palette.RGB {
	pal, err := palette.New([]palette.KeyColor{{Stop: 0, Color: a}, {Stop: 100, Color: b}})
	if err != nil {
		return a
	}
	return pal.Interpolate(t * 100)
}
