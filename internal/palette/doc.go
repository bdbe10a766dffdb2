// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package palette implements the day/night color model.
//
// A Palette is an ordered table of key colors ("stops") covering the
// percentage range [0, 100]. Interpolate blends the two stops that bracket a
// value channel by channel in sRGB, rounding each channel to the nearest
// integer, so every stop is reproduced exactly at its own position.
//
// # Key Types
//
//   - RGB: an 8-bit sRGB triple
//   - KeyColor: a stop position plus its color
//   - Palette: a validated, strictly increasing stop table
//   - TextColorFunc: picks a readable text color for a background
//
// # Usage
//
//	pal := palette.Default()
//	bg := pal.Interpolate(73)
//	fg := palette.Threshold(50, palette.LightText, palette.DarkText)(73, bg)
//	fmt.Println(bg.CSS(), fg.Hex())
package palette
