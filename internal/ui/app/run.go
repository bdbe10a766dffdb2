// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/daynight-tui/internal/config"
)

// Run starts the TUI and blocks until it exits. When configPath names an
// existing file and ui.watch_config is set, edits to it are applied live.
func Run(ctx context.Context, opts Options, configPath string) (Model, error) {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if configPath != "" && m.cfg.UI.WatchConfig {
		if _, statErr := os.Stat(configPath); statErr == nil {
			w, werr := config.NewWatcher(configPath, 0, func(cfg *config.Config, err error) {
				p.Send(ConfigReloadedMsg{Config: cfg, Err: err})
			})
			if werr != nil {
				m.logger.Warn().Err(werr).Str("path", configPath).Msg("config watch disabled")
			} else {
				wctx, cancel := context.WithCancel(ctx)
				defer cancel()
				go w.Run(wctx)
			}
		}
	}

	m.logger.Info().
		Str("mode", m.state.Mode()).
		Int("raw", m.state.Raw).
		Str("policy", string(m.engine.Policy())).
		Msg("tui started")

	final, err := p.Run()
	if err != nil {
		return m, fmt.Errorf("tui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return m, nil
	}
	fm.logger.Info().Str("state", fm.state.String()).Msg("tui stopped")
	return fm, nil
}
