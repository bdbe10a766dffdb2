// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"

	"github.com/jeranaias/daynight-tui/internal/ui/styles"
)

// ToggleButton shows the night/day mode. It is pressed while night is active.
type ToggleButton struct {
	Dark  bool
	theme *styles.Theme
}

// NewToggleButton creates a toggle in the given mode.
func NewToggleButton(theme *styles.Theme, dark bool) *ToggleButton {
	return &ToggleButton{Dark: dark, theme: theme}
}

// SetDark updates the mode.
func (b *ToggleButton) SetDark(dark bool) {
	b.Dark = dark
}

// AriaPressed mirrors the button's aria-pressed attribute: "true" or "false".
func (b *ToggleButton) AriaPressed() string {
	return strconv.FormatBool(b.Dark)
}

// Label is the unstyled button text.
func (b *ToggleButton) Label() string {
	if b.Dark {
		return "[*] Night"
	}
	return "[ ] Night"
}

// View renders the button.
func (b *ToggleButton) View() string {
	if b.Dark {
		return b.theme.ButtonPressed.Render(b.Label())
	}
	return b.theme.Button.Render(b.Label())
}
