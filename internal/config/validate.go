// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jeranaias/daynight-tui/internal/daynight"
	"github.com/jeranaias/daynight-tui/internal/palette"
	"github.com/jeranaias/daynight-tui/internal/storage"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Fields lists the failing field names, in order.
func (e ValidateErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, err := range e {
		fields = append(fields, err.Field)
	}
	return fields
}

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true,
	"error": true, "fatal": true, "panic": true, "disabled": true,
}

// Validate validates the configuration and returns ValidateErrors.
func (c *Config) Validate() error {
	var errs ValidateErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	// ==========================================================================
	// Palette
	// ==========================================================================

	if _, err := daynight.ParsePolicy(c.Palette.Policy); err != nil {
		add("palette.policy", "%v", err)
	}
	if _, err := palette.ParseContrast(c.Palette.Contrast); err != nil {
		add("palette.contrast", "%v", err)
	}
	if math.IsNaN(c.Palette.Threshold) || c.Palette.Threshold < 0 || c.Palette.Threshold > 100 {
		add("palette.threshold", "must be between 0 and 100, got %v", c.Palette.Threshold)
	}
	if _, err := palette.ParseHex(c.Palette.TextLight); err != nil {
		add("palette.text_light", "%v", err)
	}
	if _, err := palette.ParseHex(c.Palette.TextDark); err != nil {
		add("palette.text_dark", "%v", err)
	}
	if _, err := c.Stops(); err != nil {
		var stopErr *palette.StopError
		if errors.As(err, &stopErr) && stopErr.Index >= 0 {
			add(fmt.Sprintf("palette.stops[%d]", stopErr.Index), "%s", stopErr.Reason)
		} else {
			add("palette.stops", "%v", err)
		}
	}

	// ==========================================================================
	// State
	// ==========================================================================

	if c.State.DefaultValue < daynight.MinValue || c.State.DefaultValue > daynight.MaxValue {
		add("state.default_value", "must be between 0 and 100, got %d", c.State.DefaultValue)
	}
	if c.State.Step < 1 || c.State.Step > 100 {
		add("state.step", "must be between 1 and 100, got %d", c.State.Step)
	}
	if c.State.BigStep < c.State.Step || c.State.BigStep > 100 {
		add("state.big_step", "must be between step (%d) and 100, got %d", c.State.Step, c.State.BigStep)
	}

	// ==========================================================================
	// Storage / Log / Location
	// ==========================================================================

	if _, err := storage.ParseBackend(c.Storage.Backend); err != nil {
		add("storage.backend", "%v", err)
	}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		add("log.level", "invalid level '%s', must be one of: debug, info, warn, error, disabled", c.Log.Level)
	}
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		add("location.latitude", "must be between -90 and 90, got %v", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		add("location.longitude", "must be between -180 and 180, got %v", c.Location.Longitude)
	}
	if c.Location.NightElevation >= c.Location.DayElevation {
		add("location.night_elevation", "must be below day_elevation (%v), got %v",
			c.Location.DayElevation, c.Location.NightElevation)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
