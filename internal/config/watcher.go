// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// ReloadFunc receives the reloaded config, or the error that prevented it.
type ReloadFunc func(cfg *Config, err error)

// Watcher reloads a config file when it changes on disk.
//
// The parent directory is watched rather than the file so that editors that
// save by rename still trigger a reload. Bursts of events are debounced.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload ReloadFunc
	watcher  *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
	wg    sync.WaitGroup
}

// NewWatcher creates a watcher for path. Call Run to start it.
func NewWatcher(path string, debounce time.Duration, onReload ReloadFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onReload: onReload,
		watcher:  fw,
	}, nil
}

// Run processes events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer func() {
		w.mu.Lock()
		w.stopTimer()
		w.mu.Unlock()
		w.wg.Wait()
		w.watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.onReload(nil, fmt.Errorf("watch error: %w", err))
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopTimer()
	w.wg.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()
		w.onReload(LoadFromPath(w.path))
	})
}

// stopTimer cancels a pending reload. Callers hold w.mu.
func (w *Watcher) stopTimer() {
	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.timer = nil
}
