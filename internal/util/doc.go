// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the daynight packages.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync + rename
//
// Display Width:
//   - StringWidth: terminal column width (wide runes count as 2)
//   - TruncateWidth: cut a string to a column budget with an ellipsis
//   - Center: pad a string to a column width, centered
//
// # Usage
//
//	// Persist state without ever leaving a half-written file behind
//	err := util.AtomicWriteFile(path, data, 0600)
//
//	// Fit a panel label into a slot
//	label := util.TruncateWidth(name, 24)
package util
