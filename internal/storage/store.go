// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Persisted keys.
const (
	KeyDark   = "isDark"
	KeySlider = "sliderValue"
)

// Sentinel errors.
var (
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrClosed         = errors.New("store is closed")
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key. ok is false when the key was never set.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Close releases the store. Further calls return ErrClosed.
	Close() error
}

// BatchStore is a Store that writes several keys at once: either every value
// is stored or none is.
type BatchStore interface {
	Store
	SetMany(values map[string]string) error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
	// BackendNone keeps state for the current run only.
	BackendNone Backend = "none"
)

// ParseBackend accepts a backend name in any case.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendFile, BackendSQLite, BackendMemory, BackendNone:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q (use file, sqlite, memory or none)", ErrUnknownBackend, s)
	}
}

// Persistent reports whether the backend survives a restart.
func (b Backend) Persistent() bool {
	return b == BackendFile || b == BackendSQLite
}

// Open creates the store for backend. path is ignored by memory and none.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendFile:
		fs, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case BackendSQLite:
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	case BackendMemory, BackendNone:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
