// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/daynight-tui/internal/ui/styles"
	"github.com/jeranaias/daynight-tui/internal/util"
)

// Panel is a bordered box of text colored with the frame's text color.
type Panel struct {
	Title string
	Body  string
	Width int // Outer width including border and padding
	theme *styles.Theme
}

// panelChrome is the border plus horizontal padding.
const panelChrome = 4

// NewPanel creates a panel.
func NewPanel(theme *styles.Theme, title, body string) *Panel {
	return &Panel{Title: title, Body: body, Width: 30, theme: theme}
}

// SetWidth updates the outer width.
func (p *Panel) SetWidth(width int) {
	if width < panelChrome+1 {
		width = panelChrome + 1
	}
	p.Width = width
}

// Lines returns the panel content fitted to the inner width: the centered
// title followed by the body lines, each truncated with an ellipsis.
func (p *Panel) Lines() []string {
	inner := p.Width - panelChrome
	var lines []string
	if p.Title != "" {
		lines = append(lines, util.Center(util.TruncateWidth(p.Title, inner), inner))
	}
	if p.Body != "" {
		for _, line := range strings.Split(p.Body, "\n") {
			lines = append(lines, util.TruncateWidth(line, inner))
		}
	}
	return lines
}

// View renders the panel.
func (p *Panel) View() string {
	// lipgloss Width includes padding but not the border.
	return p.theme.Panel.
		Width(p.Width - 2).
		Render(strings.Join(p.Lines(), "\n"))
}
