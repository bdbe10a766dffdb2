// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package palette

import (
	"fmt"
	"strings"
)

// Default text colors.
var (
	LightText = MustParseHex("#ffffff")
	DarkText  = MustParseHex("#0f131c")
)

// TextColorFunc picks a text color for a background produced at effective.
type TextColorFunc func(effective float64, background RGB) RGB

// Contrast names a text color strategy.
type Contrast string

const (
	// ContrastThreshold switches at a fixed effective value.
	ContrastThreshold Contrast = "threshold"
	// ContrastLuminance picks the candidate with the higher WCAG contrast ratio.
	ContrastLuminance Contrast = "luminance"
)

// ParseContrast accepts "threshold" or "luminance" in any case.
func ParseContrast(s string) (Contrast, error) {
	switch c := Contrast(strings.ToLower(strings.TrimSpace(s))); c {
	case ContrastThreshold, ContrastLuminance:
		return c, nil
	default:
		return "", fmt.Errorf("unknown contrast strategy %q (use threshold or luminance)", s)
	}
}

// Threshold returns light below the threshold and dark at or above it.
func Threshold(threshold float64, light, dark RGB) TextColorFunc {
	return func(effective float64, _ RGB) RGB {
		if effective < threshold {
			return light
		}
		return dark
	}
}

// Luminance ignores the effective value and compares contrast ratios against
// the actual background. Ties go to dark.
func Luminance(light, dark RGB) TextColorFunc {
	return func(_ float64, background RGB) RGB {
		if ContrastRatio(light, background) > ContrastRatio(dark, background) {
			return light
		}
		return dark
	}
}

// TextColor builds the TextColorFunc for a strategy.
func TextColor(c Contrast, threshold float64, light, dark RGB) TextColorFunc {
	if c == ContrastLuminance {
		return Luminance(light, dark)
	}
	return Threshold(threshold, light, dark)
}
