// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import "github.com/jeranaias/daynight-tui/internal/config"

// ConfigReloadedMsg carries a config re-read from disk by the watcher.
// Err is set when the new file could not be loaded; Config is nil then.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}
