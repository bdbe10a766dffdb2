// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/daynight-tui/internal/daynight"
	"github.com/jeranaias/daynight-tui/internal/ui/styles"
)

// minSliderWidth keeps the thumb distinguishable on tiny terminals.
const minSliderWidth = 10

// Slider renders the raw slider position.
type Slider struct {
	Value int // Raw value, 0..100
	Width int // Track width in cells, including the thumb
	theme *styles.Theme
}

// NewSlider creates a slider at 0.
func NewSlider(theme *styles.Theme) *Slider {
	return &Slider{Width: 40, theme: theme}
}

// SetValue moves the thumb, clamped to 0..100.
func (s *Slider) SetValue(v int) {
	s.Value = daynight.Clamp(v)
}

// SetWidth updates the track width.
func (s *Slider) SetWidth(width int) {
	if width < minSliderWidth {
		width = minSliderWidth
	}
	s.Width = width
}

// Track returns the unstyled track, e.g. "=====O-----".
func (s *Slider) Track() string {
	filled, empty := styles.TrackSegments(s.Width, float64(s.Value))
	return strings.Repeat(styles.TrackFull, filled) +
		styles.TrackThumb +
		strings.Repeat(styles.TrackEmpty, empty)
}

// View renders the styled track between "0" and "100" labels.
func (s *Slider) View() string {
	filled, empty := styles.TrackSegments(s.Width, float64(s.Value))
	t := s.theme

	var sb strings.Builder
	sb.WriteString(t.TrackEmpty.Render("0 "))
	sb.WriteString(t.TrackFilled.Render(strings.Repeat(styles.TrackFull, filled)))
	sb.WriteString(t.TrackThumb.Render(styles.TrackThumb))
	sb.WriteString(t.TrackEmpty.Render(strings.Repeat(styles.TrackEmpty, empty)))
	sb.WriteString(t.TrackEmpty.Render(" 100"))
	return sb.String()
}
