// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the Bubble Tea program for the day/night widget.
//
// All state transitions happen synchronously in Update: every key that
// changes the state re-renders the frame and writes the state to the store
// before Update returns. The config watcher only talks to the program
// through ConfigReloadedMsg.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/daynight-tui/internal/config"
	"github.com/jeranaias/daynight-tui/internal/daynight"
	"github.com/jeranaias/daynight-tui/internal/logging"
	"github.com/jeranaias/daynight-tui/internal/palette"
	"github.com/jeranaias/daynight-tui/internal/storage"
	"github.com/jeranaias/daynight-tui/internal/ui/components"
	"github.com/jeranaias/daynight-tui/internal/ui/styles"
)

// statusLevel picks the style of the status line.
type statusLevel int

const (
	statusInfo statusLevel = iota
	statusOK
	statusWarn
	statusError
)

// Options wires a Model to its collaborators.
type Options struct {
	Config *config.Config
	Engine *daynight.Engine
	Store  storage.Store
	State  daynight.State
	Logger *logging.Logger
	Theme  *styles.Theme
	// Warning is shown in the status line at startup, e.g. when a stored
	// value was malformed and replaced by its default.
	Warning string
}

// Model is the main Bubble Tea model for the application.
type Model struct {
	cfg    *config.Config
	engine *daynight.Engine
	store  storage.Store
	logger *logging.Logger

	state daynight.State
	frame daynight.Frame

	// Theme and components
	theme  *styles.Theme
	keys   KeyMap
	help   help.Model
	slider *components.Slider
	toggle *components.ToggleButton
	value  *components.ValueDisplay
	panels []*components.Panel

	width  int
	height int

	status      string
	statusLevel statusLevel
}

// New creates the model and renders the initial frame. Nothing is
// persisted until the first state change.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	engine := opts.Engine
	if engine == nil {
		engine = daynight.NewEngine(palette.Default(), daynight.PolicyReinterpret, nil)
	}
	store := opts.Store
	if store == nil {
		store = storage.NewMemoryStore()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}

	m := Model{
		cfg:    cfg,
		engine: engine,
		store:  store,
		logger: logger,
		state:  daynight.State{Dark: opts.State.Dark, Raw: daynight.Clamp(opts.State.Raw)},
		theme:  theme,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		slider: components.NewSlider(theme),
		toggle: components.NewToggleButton(theme, opts.State.Dark),
		value:  components.NewValueDisplay(theme),
	}
	if opts.Warning != "" {
		m.setStatus(statusWarn, opts.Warning)
	}
	m.buildPanels()
	m.render()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current widget state.
func (m Model) State() daynight.State {
	return m.state
}

// Frame returns the most recently rendered frame.
func (m Model) Frame() daynight.Frame {
	return m.frame
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width - 4
	m.layout()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step, big := m.cfg.State.Step, m.cfg.State.BigStep

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.apply(m.engine.Toggle(m.state))
		m.logger.Info().
			Str("mode", m.state.Mode()).
			Int("raw", m.state.Raw).
			Int("effective", m.frame.Effective).
			Msg("toggle")

	case key.Matches(msg, m.keys.Left):
		m.slide(m.engine.Nudge(m.state, -step))
	case key.Matches(msg, m.keys.Right):
		m.slide(m.engine.Nudge(m.state, step))
	case key.Matches(msg, m.keys.BigLeft):
		m.slide(m.engine.Nudge(m.state, -big))
	case key.Matches(msg, m.keys.BigRight):
		m.slide(m.engine.Nudge(m.state, big))
	case key.Matches(msg, m.keys.Min):
		m.slide(m.engine.Slide(m.state, daynight.MinValue))
	case key.Matches(msg, m.keys.Max):
		m.slide(m.engine.Slide(m.state, daynight.MaxValue))
	}
	return m, nil
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Msg("config reload failed")
		m.setStatus(statusError, "config reload failed: "+msg.Err.Error())
		return m, nil
	}
	engine, err := msg.Config.Engine()
	if err != nil {
		m.logger.Warn().Err(err).Msg("config reload rejected")
		m.setStatus(statusError, "config reload failed: "+err.Error())
		return m, nil
	}

	m.cfg = msg.Config
	m.engine = engine
	m.buildPanels()
	m.render()
	m.layout()
	m.logger.Info().
		Str("policy", string(engine.Policy())).
		Str("contrast", msg.Config.Palette.Contrast).
		Msg("config reloaded")
	m.setStatus(statusOK, "config reloaded")
	return m, nil
}

// slide applies a slider movement.
func (m *Model) slide(next daynight.State) {
	if next == m.state {
		return
	}
	m.apply(next)
	m.logger.Slide(m.state.Raw, m.frame.Effective)
}

// apply installs next, re-renders, and persists.
func (m *Model) apply(next daynight.State) {
	m.state = next
	m.render()
	m.persist()
}

// persist writes the state. Failures are reported but never stop the loop.
func (m *Model) persist() {
	if err := storage.SaveState(m.store, m.state); err != nil {
		m.logger.Error().Err(err).Msg("failed to persist state")
		m.setStatus(statusError, "could not save state: "+err.Error())
		return
	}
	if m.statusLevel == statusError {
		m.setStatus(statusInfo, "")
	}
}

// render recomputes the frame and pushes it into the theme and components.
func (m *Model) render() {
	m.frame = m.engine.Render(m.state)
	m.theme.Apply(m.frame)
	m.slider.SetValue(m.frame.Raw)
	m.toggle.SetDark(m.frame.Dark)
	m.value.SetText(m.frame.Display)
	m.refreshPanels()
	m.styleHelp()
}

func (m *Model) setStatus(level statusLevel, text string) {
	m.statusLevel = level
	m.status = text
}

// =============================================================================
// PANELS
// =============================================================================

func (m *Model) buildPanels() {
	m.panels = make([]*components.Panel, 0, len(m.cfg.UI.Panels))
	for _, name := range m.cfg.UI.Panels {
		m.panels = append(m.panels, components.NewPanel(m.theme, name, ""))
	}
	m.refreshPanels()
}

// refreshPanels fills the live panels from the current frame.
func (m *Model) refreshPanels() {
	for _, p := range m.panels {
		p.Body = m.panelBody(p.Title)
	}
}

func (m *Model) panelBody(name string) string {
	f := m.frame
	switch strings.ToLower(name) {
	case "mode":
		return fmt.Sprintf("%s\neffective %d%%", m.state.Mode(), f.Effective)
	case "colors":
		return fmt.Sprintf("bg   %s\ntext %s", f.Background.Hex(), f.Text.Hex())
	case "policy":
		return fmt.Sprintf("%s\n%s", m.engine.Policy(), m.cfg.Palette.Contrast)
	default:
		return ""
	}
}

// =============================================================================
// LAYOUT & VIEW
// =============================================================================

// layout sizes the components for the current window.
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	inner := m.width - 4 // App padding
	m.slider.SetWidth(inner - 12)
	if n := len(m.panels); n > 0 {
		w := inner / n
		if w > 28 {
			w = 28
		}
		for _, p := range m.panels {
			p.SetWidth(w)
		}
	}
}

func (m *Model) styleHelp() {
	t := m.theme
	m.help.Styles.ShortKey = t.Help.Bold(true)
	m.help.Styles.ShortDesc = t.Help
	m.help.Styles.ShortSeparator = t.Help
	m.help.Styles.FullKey = t.Help.Bold(true)
	m.help.Styles.FullDesc = t.Help
	m.help.Styles.FullSeparator = t.Help
	m.help.Styles.Ellipsis = t.Help
}

// View implements tea.Model.
func (m Model) View() string {
	t := m.theme

	title := m.cfg.UI.Title
	if title == "" {
		title = "day / night"
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Center,
		m.toggle.View(),
		"  ",
		m.value.View(),
	)

	sections := []string{
		t.Title.Render(title),
		"",
		m.slider.View(),
		"",
		controls,
	}

	if len(m.panels) > 0 {
		views := make([]string, 0, len(m.panels))
		for _, p := range m.panels {
			views = append(views, p.View())
		}
		sections = append(sections, "", lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}

	if m.status != "" {
		style := t.Status
		switch m.statusLevel {
		case statusOK:
			style = t.StatusOK
		case statusWarn:
			style = t.StatusWarn
		case statusError:
			style = t.StatusError
		}
		sections = append(sections, "", style.Render(m.status))
	}

	if m.cfg.UI.ShowHelp {
		sections = append(sections, "", m.help.View(m.keys))
	}

	return t.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
