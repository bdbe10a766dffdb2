// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/daynight-tui/internal/daynight"
	"github.com/jeranaias/daynight-tui/internal/palette"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability once and is re-colored from
// each frame with Apply.
type Theme struct {
	// Terminal capabilities
	HasTrueColor bool
	ColorProfile termenv.Profile
	renderer     *lipgloss.Renderer

	// Layout dimensions
	Width  int
	Height int

	// Current frame colors
	Background palette.RGB
	Text       palette.RGB

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App   lipgloss.Style
	Title lipgloss.Style

	// ==========================================================================
	// CONTROL STYLES
	// ==========================================================================

	TrackFilled   lipgloss.Style
	TrackEmpty    lipgloss.Style
	TrackThumb    lipgloss.Style
	Button        lipgloss.Style
	ButtonPressed lipgloss.Style
	Value         lipgloss.Style

	// ==========================================================================
	// PANEL STYLES
	// ==========================================================================

	Panel lipgloss.Style

	// ==========================================================================
	// FOOTER STYLES
	// ==========================================================================

	Help        lipgloss.Style
	Status      lipgloss.Style
	StatusOK    lipgloss.Style
	StatusWarn  lipgloss.Style
	StatusError lipgloss.Style
}

// NewTheme creates a theme for the current terminal, colored with the
// default night frame.
func NewTheme() *Theme {
	profile := termenv.ColorProfile()
	return NewThemeWithProfile(profile)
}

// NewThemeWithProfile creates a theme for an explicit color profile.
func NewThemeWithProfile(profile termenv.Profile) *Theme {
	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(profile)
	t := &Theme{
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
		renderer:     r,
	}
	t.Apply(daynight.NewEngine(palette.Default(), daynight.PolicyReinterpret, nil).
		Render(daynight.State{Dark: true, Raw: 50}))
	return t
}

// SetSize updates the layout dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
	t.initStyles()
}

// Apply re-colors every style from the frame.
func (t *Theme) Apply(f daynight.Frame) {
	t.Background = f.Background
	t.Text = f.Text
	t.initStyles()
}

// initStyles builds all styles from the current colors and size.
func (t *Theme) initStyles() {
	r := t.renderer
	bg := Color(t.Background)
	fg := Color(t.Text)
	border := Color(Mix(t.Background, t.Text, 0.4))
	muted := Color(Mix(t.Background, t.Text, 0.6))

	t.App = r.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(1, 2)
	if t.Width > 0 {
		t.App = t.App.Width(t.Width)
	}
	if t.Height > 0 {
		t.App = t.App.Height(t.Height)
	}

	t.Title = r.NewStyle().
		Bold(true).
		Foreground(fg).
		Background(bg)

	// Slider
	t.TrackFilled = r.NewStyle().Foreground(fg).Background(bg)
	t.TrackEmpty = r.NewStyle().Foreground(border).Background(bg)
	t.TrackThumb = r.NewStyle().Bold(true).Foreground(fg).Background(bg)

	// Toggle button
	t.Button = r.NewStyle().
		Foreground(fg).
		Background(bg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		BorderBackground(bg).
		Padding(0, 2)

	t.ButtonPressed = t.Button.
		Bold(true).
		BorderForeground(fg)

	t.Value = r.NewStyle().
		Bold(true).
		Foreground(fg).
		Background(bg)

	// Panels
	t.Panel = r.NewStyle().
		Foreground(fg).
		Background(bg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		BorderBackground(bg).
		Padding(0, 1)

	// Footer
	t.Help = r.NewStyle().Foreground(muted).Background(bg)
	t.Status = r.NewStyle().Foreground(muted).Background(bg).Italic(true)
	t.StatusOK = r.NewStyle().Foreground(Emerald).Background(bg)
	t.StatusWarn = r.NewStyle().Foreground(Amber).Background(bg)
	t.StatusError = r.NewStyle().Foreground(Rose).Background(bg).Bold(true)
}

// Renderer returns the renderer the styles are built with.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}
