// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package palette

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPalette is wrapped by every error New returns.
var ErrInvalidPalette = errors.New("invalid palette")

// =============================================================================
// DEFAULT KEY COLORS
// =============================================================================

var (
	Night   = MustParseHex("#0f131c")
	Dawn    = MustParseHex("#16132b")
	Morning = MustParseHex("#9fb3bf")
	Day     = MustParseHex("#fffdfa")
)

// DefaultStops is the night -> dawn -> morning -> day calibration table.
var DefaultStops = []KeyColor{
	{Stop: 0, Color: Night},
	{Stop: 10, Color: Dawn},
	{Stop: 35, Color: Morning},
	{Stop: 100, Color: Day},
}

// =============================================================================
// PALETTE
// =============================================================================

// KeyColor anchors a color at a percentage in [0, 100].
type KeyColor struct {
	Stop  float64 `toml:"stop" json:"stop"`
	Color RGB     `toml:"color" json:"color"`
}

// StopError describes why a stop table was rejected.
type StopError struct {
	Index  int
	Reason string
}

func (e *StopError) Error() string {
	if e.Index < 0 {
		return e.Reason
	}
	return fmt.Sprintf("stop %d: %s", e.Index, e.Reason)
}

// Palette is an immutable, validated key-color table.
// The zero value has no stops and interpolates to black.
type Palette struct {
	stops []KeyColor
}

// New validates stops and returns a Palette over a private copy of them.
// Stops must be strictly increasing, start at 0 and end at 100.
func New(stops []KeyColor) (Palette, error) {
	if err := ValidateStops(stops); err != nil {
		return Palette{}, err
	}
	cp := make([]KeyColor, len(stops))
	copy(cp, stops)
	return Palette{stops: cp}, nil
}

// Default returns the built-in four-stop palette.
func Default() Palette {
	p, err := New(DefaultStops)
	if err != nil {
		panic(err)
	}
	return p
}

// ValidateStops reports the first problem found in a stop table.
func ValidateStops(stops []KeyColor) error {
	if len(stops) < 2 {
		return fmt.Errorf("%w: %w", ErrInvalidPalette,
			&StopError{Index: -1, Reason: fmt.Sprintf("need at least 2 stops, got %d", len(stops))})
	}
	for i, s := range stops {
		if math.IsNaN(s.Stop) || s.Stop < 0 || s.Stop > 100 {
			return fmt.Errorf("%w: %w", ErrInvalidPalette,
				&StopError{Index: i, Reason: fmt.Sprintf("position %v outside [0, 100]", s.Stop)})
		}
		if i > 0 && s.Stop <= stops[i-1].Stop {
			return fmt.Errorf("%w: %w", ErrInvalidPalette,
				&StopError{Index: i, Reason: fmt.Sprintf("position %v does not increase past %v", s.Stop, stops[i-1].Stop)})
		}
	}
	if stops[0].Stop != 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPalette,
			&StopError{Index: 0, Reason: "first stop must be at 0"})
	}
	if last := len(stops) - 1; stops[last].Stop != 100 {
		return fmt.Errorf("%w: %w", ErrInvalidPalette,
			&StopError{Index: last, Reason: "last stop must be at 100"})
	}
	return nil
}

// Stops returns a copy of the stop table.
func (p Palette) Stops() []KeyColor {
	cp := make([]KeyColor, len(p.stops))
	copy(cp, p.stops)
	return cp
}

// Interpolate returns the color at value.
//
// Values below the first stop (and NaN) clamp to the first color, values
// above the last stop clamp to the last color. Inside the range the first
// segment with lower <= value <= upper wins, which makes every stop exact.
func (p Palette) Interpolate(value float64) RGB {
	n := len(p.stops)
	if n == 0 {
		return RGB{}
	}
	first, last := p.stops[0], p.stops[n-1]
	if math.IsNaN(value) || value <= first.Stop {
		return first.Color
	}
	if value >= last.Stop {
		return last.Color
	}

	lower, upper := first, last
	for i := 0; i < n-1; i++ {
		if value >= p.stops[i].Stop && value <= p.stops[i+1].Stop {
			lower, upper = p.stops[i], p.stops[i+1]
			break
		}
	}

	ratio := (value - lower.Stop) / (upper.Stop - lower.Stop)
	return lerp(lower.Color, upper.Color, ratio)
}
