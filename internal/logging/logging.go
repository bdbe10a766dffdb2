// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging provides the zerolog logger shared by the TUI and CLI.
//
// The TUI owns the terminal, so records go to a JSON-lines file rather than
// stdout. Every record carries the session id of the current run.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Logger wraps a zerolog.Logger with its output and a sampler for
// high-frequency events. Use a pointer; the sampler must not be copied.
type Logger struct {
	zerolog.Logger

	// Session identifies one run of the program.
	Session string

	out       io.Closer
	sometimes rate.Sometimes
}

// New returns a logger writing JSON lines to w at level.
// An empty level means info.
func New(w io.Writer, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	session := uuid.NewString()
	l := &Logger{
		Logger: zerolog.New(w).Level(lvl).With().
			Timestamp().
			Str("session", session).
			Logger(),
		Session:   session,
		sometimes: rate.Sometimes{First: 1, Interval: 250 * time.Millisecond},
	}
	if c, ok := w.(io.Closer); ok {
		l.out = c
	}
	return l, nil
}

// Open appends to the log file at path, creating it (and its directory)
// with owner-only permissions.
func Open(path, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if lvl == zerolog.Disabled {
		return Nop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, level)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// ParseLevel accepts zerolog level names; empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// Sampled runs fn at most once per sampling interval. The first call
// always runs.
func (l *Logger) Sampled(fn func(l *zerolog.Logger)) {
	l.sometimes.Do(func() { fn(&l.Logger) })
}

// Slide records a slider movement at debug level, sampled.
func (l *Logger) Slide(raw, effective int) {
	l.Sampled(func(z *zerolog.Logger) {
		z.Debug().Int("raw", raw).Int("effective", effective).Msg("slide")
	})
}

// Close closes the underlying file, if any.
func (l *Logger) Close() error {
	if l.out == nil {
		return nil
	}
	return l.out.Close()
}
