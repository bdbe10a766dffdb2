// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/jeranaias/daynight-tui/internal/palette"
)

// sampleValues are the effective values listed under the key colors.
var sampleValues = []int{0, 5, 10, 20, 35, 50, 73, 100}

// paletteData is the JSON form of the palette.
type paletteData struct {
	Policy   string             `json:"policy"`
	Contrast string             `json:"contrast"`
	Stops    []palette.KeyColor `json:"stops"`
	Samples  []paletteSample    `json:"samples"`
}

type paletteSample struct {
	Effective  int         `json:"effective"`
	Background palette.RGB `json:"background"`
	Text       palette.RGB `json:"text"`
}

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Show the key colors and sample interpolations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			data := buildPaletteData(rt)
			if jsonMode(cmd) {
				return printJSON(cmd, data)
			}

			md := paletteMarkdown(data)
			w := cmd.OutOrStdout()
			if IsTerminal(w) {
				md = renderMarkdown(md, TerminalWidth(w))
			}
			_, err = fmt.Fprint(w, md)
			return err
		},
	}
}

func buildPaletteData(rt *runtime) paletteData {
	data := paletteData{
		Policy:   string(rt.engine.Policy()),
		Contrast: rt.cfg.Palette.Contrast,
		Stops:    rt.engine.Palette().Stops(),
	}
	for _, v := range sampleValues {
		f := rt.engine.Render(rt.engine.Policy().StateFor(v))
		data.Samples = append(data.Samples, paletteSample{
			Effective:  f.Effective,
			Background: f.Background,
			Text:       f.Text,
		})
	}
	return data
}

func paletteMarkdown(data paletteData) string {
	var sb strings.Builder
	sb.WriteString("# Palette\n\n")
	fmt.Fprintf(&sb, "Policy **%s**, text contrast **%s**.\n\n", data.Policy, data.Contrast)

	sb.WriteString("## Key colors\n\n")
	sb.WriteString("| Stop | Color | RGB |\n")
	sb.WriteString("|-----:|-------|-----|\n")
	for _, s := range data.Stops {
		fmt.Fprintf(&sb, "| %v%% | `%s` | %s |\n", s.Stop, s.Color.Hex(), s.Color.CSS())
	}

	sb.WriteString("\n## Samples\n\n")
	sb.WriteString("| Effective | Background | Text |\n")
	sb.WriteString("|----------:|------------|------|\n")
	for _, s := range data.Samples {
		fmt.Fprintf(&sb, "| %d%% | `%s` | `%s` |\n", s.Effective, s.Background.Hex(), s.Text.Hex())
	}
	return sb.String()
}

// renderMarkdown renders markdown content for terminal display.
// Returns the original content if rendering fails.
func renderMarkdown(content string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
