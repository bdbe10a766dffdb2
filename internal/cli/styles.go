// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styling for CLI output.
//
// Styles are built per writer so that piped output and tests get plain
// text while terminals get colors.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/daynight-tui/internal/daynight"
	"github.com/jeranaias/daynight-tui/internal/ui/styles"
)

// outputStyles holds the styles for one writer.
type outputStyles struct {
	renderer *lipgloss.Renderer
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
}

func newOutputStyles(w io.Writer) *outputStyles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(ColorProfile(w))
	return &outputStyles{
		renderer: r,
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:    r.NewStyle().Foreground(lipgloss.Color("245")).Width(12),
		Value:    r.NewStyle().Foreground(lipgloss.Color("252")),
		Warning:  r.NewStyle().Foreground(styles.Amber),
		Success:  r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
}

// Swatch renders the frame's display text on its background in its text
// color. Plain output gets the text only.
func (s *outputStyles) Swatch(f daynight.Frame, width int) string {
	return s.renderer.NewStyle().
		Background(styles.Color(f.Background)).
		Foreground(styles.Color(f.Text)).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render(f.Display)
}

// Field renders one "label  value" line.
func (s *outputStyles) Field(label, value string) string {
	return s.Label.Render(label) + s.Value.Render(value)
}

// printFrame writes the text form of a frame.
func printFrame(w io.Writer, st *outputStyles, f daynight.Frame) {
	mode := "day"
	if f.Dark {
		mode = "night"
	}
	lines := []string{
		st.Swatch(f, 24),
		st.Field("mode", fmt.Sprintf("%s (aria-pressed=%s)", mode, f.Pressed)),
		st.Field("slider", f.Display),
		st.Field("effective", fmt.Sprintf("%d", f.Effective)),
		st.Field("background", fmt.Sprintf("%s  %s", f.Background.Hex(), f.Background.CSS())),
		st.Field("text", fmt.Sprintf("%s  %s", f.Text.Hex(), f.Text.CSS())),
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}
