// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the widget.
type KeyMap struct {
	Toggle   key.Binding
	Left     key.Binding
	Right    key.Binding
	BigLeft  key.Binding
	BigRight key.Binding
	Min      key.Binding
	Max      key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
// Space is bound to the toggle and never reaches anything else.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "t"),
			key.WithHelp("space/t", "night/day"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "darker side"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "lighter side"),
		),
		BigLeft: key.NewBinding(
			key.WithKeys("pgdown", "shift+left"),
			key.WithHelp("PgDn/S-left", "big step down"),
		),
		BigRight: key.NewBinding(
			key.WithKeys("pgup", "shift+right"),
			key.WithHelp("PgUp/S-right", "big step up"),
		),
		Min: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "0%"),
		),
		Max: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "100%"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/C-c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Slider
		{k.Left, k.Right, k.BigLeft, k.BigRight},
		// Jumps
		{k.Min, k.Max},
		// Mode and app
		{k.Toggle, k.Help, k.Quit},
	}
}
