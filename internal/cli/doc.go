// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the daynight command-line interface.
//
// The root command runs the TUI. Subcommands render single frames, inspect
// and edit the persisted state, show the palette and config, suggest a value
// from the sun's position, and run a line-mode REPL:
//
//	daynight                      # TUI
//	daynight render 73            # frame for day mode at 73%
//	daynight render 73 --dark     # frame for night mode at 73%
//	daynight state show|reset|set
//	daynight palette
//	daynight config show|path|init
//	daynight suggest --lat 52.5 --lon 13.4 --apply
//	daynight repl
//	daynight version
//
// All commands accept --config to load a specific file and --output json
// for machine-readable output.
package cli
