// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the daynight TUI.

Most colors are not fixed: the whole view is painted with the background and
text color of the current daynight.Frame, and Theme.Apply rebuilds every
style whenever the frame changes. Only status messages use the fixed accent
colors in colors.go.

# Theme System (theme.go)

	theme := styles.NewTheme()
	theme.Apply(engine.Render(state))
	view := theme.App.Render(body)

When the terminal reports true color, frame colors are emitted as 24-bit
escapes; otherwise lipgloss degrades them to the closest palette entry.

# Slider Track (track.go)

TrackSegments splits a track width into filled and empty cells around a
one-cell thumb.
*/
package styles
