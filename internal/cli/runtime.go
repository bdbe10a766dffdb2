// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/daynight-tui/internal/config"
	"github.com/jeranaias/daynight-tui/internal/daynight"
	"github.com/jeranaias/daynight-tui/internal/logging"
	"github.com/jeranaias/daynight-tui/internal/storage"
)

// runtime is what a command needs, resolved from flags and config.
type runtime struct {
	cfg *config.Config
	// cfgPath is the file the config came from; empty for built-in defaults.
	cfgPath string
	engine  *daynight.Engine
	logger  *logging.Logger
}

// loadRuntime loads the config named by --config (or the default location),
// builds the engine and opens the log file.
func loadRuntime(cmd *cobra.Command) (*runtime, error) {
	explicit, _ := cmd.Root().PersistentFlags().GetString("config")

	cfg, cfgPath, err := loadConfig(explicit)
	if err != nil {
		return nil, err
	}

	engine, err := cfg.Engine()
	if err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}

	logger := logging.Nop()
	if logPath, err := cfg.LogPath(); err == nil {
		if l, err := logging.Open(logPath, cfg.Log.Level); err == nil {
			logger = l
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
		}
	}
	logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("config", cfgPath).
		Msg("command started")

	return &runtime{cfg: cfg, cfgPath: cfgPath, engine: engine, logger: logger}, nil
}

// loadConfig returns the config and the file it was read from.
func loadConfig(explicit string) (*config.Config, string, error) {
	if explicit != "" {
		cfg, err := config.LoadFromPath(explicit)
		if err != nil {
			return nil, "", err
		}
		return cfg, explicit, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}
	for _, pathFn := range []func() (string, error){config.ConfigPathTOML, config.ConfigPathJSON} {
		if p, err := pathFn(); err == nil {
			if _, statErr := os.Stat(p); statErr == nil {
				return cfg, p, nil
			}
		}
	}
	return cfg, "", nil
}

// openStore opens the configured state store.
func (r *runtime) openStore() (storage.Store, error) {
	store, err := r.cfg.OpenStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}
	return store, nil
}

// loadState reads the persisted state. Malformed values are replaced by
// their defaults; the returned warning describes them and is also logged.
func (r *runtime) loadState(store storage.Store) (daynight.State, string, error) {
	state, err := storage.LoadState(store, r.cfg.DefaultState())
	if err == nil {
		return state, "", nil
	}

	if !storage.OnlyMalformed(err) {
		return state, "", fmt.Errorf("failed to load state: %w", err)
	}
	r.logger.Warn().Err(err).Msg("stored state replaced by defaults")
	return state, "ignored malformed stored value: " + strings.ReplaceAll(err.Error(), "\n", "; "), nil
}

// close releases the logger.
func (r *runtime) close() {
	r.logger.Close()
}
