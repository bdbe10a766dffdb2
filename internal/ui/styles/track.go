// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "math"

// Slider track characters.
var (
	TrackFull  = "="
	TrackEmpty = "-"
	TrackThumb = "O"
)

// TrackSegments splits a track of width cells for a value in [0, 100] into
// filled cells, the thumb, and empty cells: filled + 1 + empty == width.
// width below 1 yields zeros and no thumb.
func TrackSegments(width int, percent float64) (filled, empty int) {
	if width <= 0 {
		return 0, 0
	}
	if math.IsNaN(percent) || percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	cells := width - 1
	filled = int(math.Round(float64(cells) * percent / 100))
	return filled, cells - filled
}
