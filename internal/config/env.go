// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"strings"
)

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - DAYNIGHT_POLICY: overrides palette.policy
//   - DAYNIGHT_CONTRAST: overrides palette.contrast
//   - DAYNIGHT_STORAGE: overrides storage.backend
//   - DAYNIGHT_STATE_PATH: overrides storage.path
//   - DAYNIGHT_LOG_LEVEL: overrides log.level
//   - DAYNIGHT_DARK: "1"/"true" or "0"/"false", overrides state.default_dark
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("DAYNIGHT_POLICY"); v != "" {
		c.Palette.Policy = v
	}
	if v := os.Getenv("DAYNIGHT_CONTRAST"); v != "" {
		c.Palette.Contrast = v
	}
	if v := os.Getenv("DAYNIGHT_STORAGE"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("DAYNIGHT_STATE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("DAYNIGHT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("DAYNIGHT_DARK"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true":
			c.State.DefaultDark = true
		case "0", "false":
			c.State.DefaultDark = false
		}
	}
}
