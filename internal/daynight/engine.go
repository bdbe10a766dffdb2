// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package daynight

import (
	"strconv"

	"github.com/jeranaias/daynight-tui/internal/palette"
)

// Frame is everything a view needs to draw one state.
type Frame struct {
	Background palette.RGB `json:"background"`
	Text       palette.RGB `json:"text"`
	// Display is the slider value as the user sees it, e.g. "73%".
	Display string `json:"display"`
	// Pressed mirrors the toggle's aria-pressed attribute.
	Pressed   string `json:"pressed"`
	Dark      bool   `json:"dark"`
	Raw       int    `json:"raw"`
	Effective int    `json:"effective"`
}

// Engine applies a palette, a policy and a text color strategy to states.
type Engine struct {
	palette palette.Palette
	policy  Policy
	text    palette.TextColorFunc
}

// NewEngine builds an Engine. A nil text func uses the fixed 50% threshold
// with the default light/dark text colors.
func NewEngine(pal palette.Palette, policy Policy, text palette.TextColorFunc) *Engine {
	if text == nil {
		text = palette.Threshold(50, palette.LightText, palette.DarkText)
	}
	if policy == "" {
		policy = PolicyReinterpret
	}
	return &Engine{palette: pal, policy: policy, text: text}
}

// Policy returns the engine's policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Palette returns the engine's palette.
func (e *Engine) Palette() palette.Palette {
	return e.palette
}

// Slide moves the slider to raw, clamped to [0, 100].
func (e *Engine) Slide(s State, raw int) State {
	s.Raw = Clamp(raw)
	return s
}

// Nudge moves the slider by delta.
func (e *Engine) Nudge(s State, delta int) State {
	return e.Slide(s, s.Raw+delta)
}

// Toggle flips between night and day.
func (e *Engine) Toggle(s State) State {
	return e.policy.Toggle(s)
}

// Effective returns the value the color function sees for s.
func (e *Engine) Effective(s State) int {
	return e.policy.Effective(s)
}

// Render computes the frame for s.
func (e *Engine) Render(s State) Frame {
	raw := Clamp(s.Raw)
	eff := e.policy.Effective(s)
	bg := e.palette.Interpolate(float64(eff))
	return Frame{
		Background: bg,
		Text:       e.text(float64(eff), bg),
		Display:    strconv.Itoa(raw) + "%",
		Pressed:    strconv.FormatBool(s.Dark),
		Dark:       s.Dark,
		Raw:        raw,
		Effective:  eff,
	}
}
