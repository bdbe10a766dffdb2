// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package solar derives a day/night value from the sun's elevation.
package solar

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Suggestion is the value suggested for one place and time.
type Suggestion struct {
	Time      time.Time `json:"time"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	// Elevation of the sun in degrees above the horizon.
	Elevation float64 `json:"elevation"`
	// Value is the effective value, 0 at or below the night elevation and
	// 100 at or above the day elevation.
	Value int `json:"value"`
}

// Progress maps an elevation onto [0, 1] between night and day.
func Progress(elevation, night, day float64) float64 {
	switch {
	case elevation <= night:
		return 0
	case elevation >= day:
		return 1
	default:
		return (elevation - night) / (day - night)
	}
}

// Suggest computes the suggestion at now for the given location.
func Suggest(now time.Time, lat, lon, night, day float64) Suggestion {
	elevation := sunrise.Elevation(lat, lon, now)
	return Suggestion{
		Time:      now,
		Latitude:  lat,
		Longitude: lon,
		Elevation: elevation,
		Value:     int(math.Round(Progress(elevation, night, day) * 100)),
	}
}
