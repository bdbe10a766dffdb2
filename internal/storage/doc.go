// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists the day/night widget state.
//
// Persistence is a flat string key-value store with exactly two keys in use:
// "isDark" ("true"/"false") and "sliderValue" (a decimal integer). The keys
// are read once at startup and written after every update.
//
// # Key Types
//
//   - Store: the key-value interface every backend implements
//   - MemoryStore: in-process map, used by tests and the "none" backend
//   - FileStore: a JSON object written atomically on every Set
//   - SQLiteStore: a single kv table in a pure Go SQLite database
//   - MalformedValueError: a persisted value that could not be parsed
//
// # Usage
//
//	store, err := storage.Open(storage.BackendFile, path)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	state, err := storage.LoadState(store, defaults) // err is advisory
//	...
//	err = storage.SaveState(store, state)
//
// # Storage Location
//
// The CLI keeps state in ~/.daynight/state.json (file) or
// ~/.daynight/state.db (sqlite) unless configured otherwise.
package storage
