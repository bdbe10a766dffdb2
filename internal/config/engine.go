// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/jeranaias/daynight-tui/internal/daynight"
	"github.com/jeranaias/daynight-tui/internal/palette"
	"github.com/jeranaias/daynight-tui/internal/storage"
)

// Stops parses and validates the configured key colors.
func (c *Config) Stops() ([]palette.KeyColor, error) {
	stops := make([]palette.KeyColor, 0, len(c.Palette.Stops))
	for i, s := range c.Palette.Stops {
		rgb, err := palette.ParseHex(s.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", palette.ErrInvalidPalette, &palette.StopError{Index: i, Reason: err.Error()})
		}
		stops = append(stops, palette.KeyColor{Stop: s.Stop, Color: rgb})
	}
	if err := palette.ValidateStops(stops); err != nil {
		return nil, err
	}
	return stops, nil
}

// Engine builds the color engine described by the palette section.
func (c *Config) Engine() (*daynight.Engine, error) {
	stops, err := c.Stops()
	if err != nil {
		return nil, err
	}
	pal, err := palette.New(stops)
	if err != nil {
		return nil, err
	}
	policy, err := daynight.ParsePolicy(c.Palette.Policy)
	if err != nil {
		return nil, err
	}
	contrast, err := palette.ParseContrast(c.Palette.Contrast)
	if err != nil {
		return nil, err
	}
	light, err := palette.ParseHex(c.Palette.TextLight)
	if err != nil {
		return nil, fmt.Errorf("text_light: %w", err)
	}
	dark, err := palette.ParseHex(c.Palette.TextDark)
	if err != nil {
		return nil, fmt.Errorf("text_dark: %w", err)
	}

	text := palette.TextColor(contrast, c.Palette.Threshold, light, dark)
	return daynight.NewEngine(pal, policy, text), nil
}

// DefaultState is the state used when nothing has been persisted.
func (c *Config) DefaultState() daynight.State {
	return daynight.State{
		Dark: c.State.DefaultDark,
		Raw:  daynight.Clamp(c.State.DefaultValue),
	}
}

// OpenStore opens the configured state store.
func (c *Config) OpenStore() (storage.Store, error) {
	backend, err := storage.ParseBackend(c.Storage.Backend)
	if err != nil {
		return nil, err
	}
	path := ""
	if backend.Persistent() {
		if path, err = c.StatePath(); err != nil {
			return nil, err
		}
	}
	return storage.Open(backend, path)
}
