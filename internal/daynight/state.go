// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package daynight

import (
	"fmt"
	"strings"
)

// Slider bounds.
const (
	MinValue = 0
	MaxValue = 100
)

// State is the complete mutable widget state.
type State struct {
	Dark bool `json:"isDark"`
	Raw  int  `json:"sliderValue"`
}

// Clamp limits v to [MinValue, MaxValue].
func Clamp(v int) int {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}

// Mode returns "night" or "day".
func (s State) Mode() string {
	if s.Dark {
		return "night"
	}
	return "day"
}

func (s State) String() string {
	return fmt.Sprintf("%s %d%%", s.Mode(), s.Raw)
}

// Policy decides how the mode and the slider position combine.
type Policy string

const (
	// PolicyReinterpret keeps the slider still and mirrors it in night mode.
	PolicyReinterpret Policy = "reinterpret"
	// PolicySnap moves the slider to the mode's end on toggle.
	PolicySnap Policy = "snap"
)

// ParsePolicy accepts "reinterpret" or "snap" in any case.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyReinterpret, PolicySnap:
		return p, nil
	default:
		return "", fmt.Errorf("unknown policy %q (use reinterpret or snap)", s)
	}
}

// Effective returns the value fed to the color function.
func (p Policy) Effective(s State) int {
	raw := Clamp(s.Raw)
	if p == PolicySnap {
		return raw
	}
	if s.Dark {
		return MaxValue - raw
	}
	return raw
}

// Toggle flips the mode and applies the policy to the slider.
func (p Policy) Toggle(s State) State {
	s.Dark = !s.Dark
	if p == PolicySnap {
		if s.Dark {
			s.Raw = MinValue
		} else {
			s.Raw = MaxValue
		}
	}
	return s
}

// StateFor returns a state whose effective value is effective. The mode is
// night below the midpoint and day from it on.
func (p Policy) StateFor(effective int) State {
	effective = Clamp(effective)
	dark := effective < (MinValue+MaxValue)/2
	if dark && p != PolicySnap {
		return State{Dark: true, Raw: MaxValue - effective}
	}
	return State{Dark: dark, Raw: effective}
}
