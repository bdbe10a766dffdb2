// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "github.com/jeranaias/daynight-tui/internal/ui/styles"

// ValueDisplay shows the raw slider value as text, e.g. "73%".
type ValueDisplay struct {
	Text  string
	theme *styles.Theme
}

// NewValueDisplay creates an empty display.
func NewValueDisplay(theme *styles.Theme) *ValueDisplay {
	return &ValueDisplay{theme: theme}
}

// SetText replaces the displayed text.
func (v *ValueDisplay) SetText(text string) {
	v.Text = text
}

// View renders the value.
func (v *ValueDisplay) View() string {
	return v.theme.Value.Render(v.Text)
}
