// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for daynight.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, validation and live reload.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - PaletteConfig: Key colors, effective-value policy and text contrast
//   - StorageConfig: Where the widget state is persisted
//   - Watcher: fsnotify-based reload of the config file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (DAYNIGHT_*)
//   - ~/.daynight/config.toml
//   - ~/.daynight/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Build the color engine:
//
//	eng, err := cfg.Engine()
package config
