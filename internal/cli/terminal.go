// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for daynight CLI output.
//
// Commands write to cmd.OutOrStdout(), which is a buffer in tests and a
// pipe when output is redirected. Colors, markdown rendering and syntax
// highlighting are only used when that writer is a real terminal.

package cli

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsTerminal returns true if w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// =============================================================================
// TERMINAL WIDTH DETECTION
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback width when detection fails
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the minimum width we'll use for wrapping
	MinTerminalWidth = 40
)

// TerminalWidth returns the width of w, or DefaultTerminalWidth when w is
// not a terminal.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

// ColorsEnabled returns true if colored output should be written to w.
// Respects NO_COLOR and FORCE_COLOR. See https://no-color.org/.
func ColorsEnabled(w io.Writer) bool {
	// NO_COLOR takes precedence (any non-empty value disables colors)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	// FORCE_COLOR overrides TTY detection
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return IsTerminal(w)
}

// ColorProfile returns the termenv profile to use for w.
// Returns Ascii (no colors) for non-TTY output or when NO_COLOR is set.
func ColorProfile(w io.Writer) termenv.Profile {
	if !ColorsEnabled(w) {
		return termenv.Ascii
	}
	if !IsTerminal(w) {
		// FORCE_COLOR into a pipe: assume a modern terminal downstream.
		return termenv.TrueColor
	}
	return termenv.ColorProfile()
}
