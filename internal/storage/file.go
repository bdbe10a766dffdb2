// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/jeranaias/daynight-tui/internal/util"
)

// FileStore keeps all keys in one JSON object on disk.
// Every Set or SetMany rewrites the file atomically with 0600 permissions.
type FileStore struct {
	path   string
	mu     sync.Mutex
	values map[string]string
	closed bool
}

// OpenFile loads path if it exists. A missing file is an empty store; the
// file is created on the first Set.
func OpenFile(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("file store needs a path")
	}
	fs := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fs, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	if len(data) == 0 {
		return fs, nil
	}
	if err := json.Unmarshal(data, &fs.values); err != nil {
		return nil, fmt.Errorf("failed to decode state file %s: %w", path, err)
	}
	return fs, nil
}

// Path returns the backing file.
func (f *FileStore) Path() string {
	return f.path
}

// Get implements Store.
func (f *FileStore) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", false, ErrClosed
	}
	v, ok := f.values[key]
	return v, ok, nil
}

// Set implements Store.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	prev, had := f.values[key]
	f.values[key] = value
	if err := f.flush(); err != nil {
		if had {
			f.values[key] = prev
		} else {
			delete(f.values, key)
		}
		return err
	}
	return nil
}

// SetMany implements BatchStore with a single rewrite of the file.
func (f *FileStore) SetMany(values map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	prev := make(map[string]string, len(f.values))
	for k, v := range f.values {
		prev[k] = v
	}
	for k, v := range values {
		f.values[k] = v
	}
	if err := f.flush(); err != nil {
		f.values = prev
		return err
	}
	return nil
}

func (f *FileStore) flush() error {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := util.AtomicWriteFile(f.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// Close implements Store.
func (f *FileStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
