// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package palette

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#rgb" or "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !isHexDigits(s) || (len(s) != 3 && len(s) != 6) {
		return RGB{}, fmt.Errorf("invalid hex color %q: want #rgb or #rrggbb", "#"+s)
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// MustParseHex is ParseHex for package-level tables. It panics on bad input.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic("palette.MustParseHex: " + err.Error())
	}
	return c
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS returns the color as "rgb(r, g, b)".
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// MarshalText encodes the color as "#rrggbb" for JSON/TOML output.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts anything ParseHex accepts.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Luminance returns the WCAG relative luminance in [0, 1].
func (c RGB) Luminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in [1, 21].
func ContrastRatio(a, b RGB) float64 {
	l1 := a.Luminance()
	l2 := b.Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// lerp blends two colors channel-wise. t is not clamped; callers pass [0, 1].
func lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
