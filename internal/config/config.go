// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/daynight-tui/internal/daynight"
	"github.com/jeranaias/daynight-tui/internal/palette"
	"github.com/jeranaias/daynight-tui/internal/storage"
	"github.com/jeranaias/daynight-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete daynight configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Color model
	Palette PaletteConfig `toml:"palette" json:"palette"`

	// Initial widget state and slider steps
	State StateConfig `toml:"state" json:"state"`

	// Persistence
	Storage StorageConfig `toml:"storage" json:"storage"`

	// Terminal UI
	UI UIConfig `toml:"ui" json:"ui"`

	// Logging
	Log LogConfig `toml:"log" json:"log"`

	// Location for `daynight suggest`
	Location LocationConfig `toml:"location" json:"location"`
}

// PaletteConfig describes the color model.
type PaletteConfig struct {
	// Policy is how the mode combines with the slider: "reinterpret" or "snap".
	Policy string `toml:"policy" json:"policy"`
	// Contrast picks the text color strategy: "threshold" or "luminance".
	Contrast string `toml:"contrast" json:"contrast"`
	// Threshold is the effective value at which text turns dark (threshold strategy).
	Threshold float64 `toml:"threshold" json:"threshold"`
	// TextLight and TextDark are the two candidate text colors.
	TextLight string `toml:"text_light" json:"text_light"`
	TextDark  string `toml:"text_dark" json:"text_dark"`
	// Stops is the key-color table, strictly increasing from 0 to 100.
	Stops []StopConfig `toml:"stops" json:"stops"`
}

// StopConfig is one key color.
type StopConfig struct {
	Stop  float64 `toml:"stop" json:"stop"`
	Color string  `toml:"color" json:"color"`
}

// StateConfig seeds the widget when nothing is persisted.
type StateConfig struct {
	DefaultDark  bool `toml:"default_dark" json:"default_dark"`
	DefaultValue int  `toml:"default_value" json:"default_value"`
	// Step and BigStep are the slider increments for arrow and page keys.
	Step    int `toml:"step" json:"step"`
	BigStep int `toml:"big_step" json:"big_step"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Backend is "file", "sqlite", "memory" or "none".
	Backend string `toml:"backend" json:"backend"`
	// Path overrides the default state location (empty = ~/.daynight/state.{json,db}).
	Path string `toml:"path" json:"path"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	Title string `toml:"title" json:"title"`
	// Panels are boxes whose text follows the computed text color. "mode",
	// "colors" and "policy" show live values; anything else is shown as is.
	Panels      []string `toml:"panels" json:"panels"`
	ShowHelp    bool     `toml:"show_help" json:"show_help"`
	WatchConfig bool     `toml:"watch_config" json:"watch_config"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error, disabled.
	Level string `toml:"level" json:"level"`
	// Path overrides the log file (empty = ~/.daynight/daynight.log).
	Path string `toml:"path" json:"path"`
}

// LocationConfig is used to derive a value from the sun's elevation.
type LocationConfig struct {
	Latitude  float64 `toml:"latitude" json:"latitude"`
	Longitude float64 `toml:"longitude" json:"longitude"`
	// Elevations (degrees) mapped to 0% and 100%.
	NightElevation float64 `toml:"night_elevation" json:"night_elevation"`
	DayElevation   float64 `toml:"day_elevation" json:"day_elevation"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	stops := make([]StopConfig, 0, len(palette.DefaultStops))
	for _, kc := range palette.DefaultStops {
		stops = append(stops, StopConfig{Stop: kc.Stop, Color: kc.Color.Hex()})
	}

	return &Config{
		Version: "1.0.0",

		Palette: PaletteConfig{
			Policy:    string(daynight.PolicyReinterpret),
			Contrast:  string(palette.ContrastThreshold),
			Threshold: 50,
			TextLight: palette.LightText.Hex(),
			TextDark:  palette.DarkText.Hex(),
			Stops:     stops,
		},

		State: StateConfig{
			DefaultDark:  true,
			DefaultValue: 50,
			Step:         1,
			BigStep:      10,
		},

		Storage: StorageConfig{
			Backend: string(storage.BackendFile),
		},

		UI: UIConfig{
			Title:       "day / night",
			Panels:      []string{"mode", "colors"},
			ShowHelp:    true,
			WatchConfig: true,
		},

		Log: LogConfig{
			Level: "info",
		},

		Location: LocationConfig{
			NightElevation: -6, // civil twilight
			DayElevation:   30,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the daynight configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".daynight"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// StatePath returns where the configured backend keeps state.
func (c *Config) StatePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if strings.EqualFold(c.Storage.Backend, string(storage.BackendSQLite)) {
		return filepath.Join(dir, "state.db"), nil
	}
	return filepath.Join(dir, "state.json"), nil
}

// LogPath returns the log file location.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "daynight.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			return LoadFromPath(tomlPath)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			return LoadFromPath(jsonPath)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	// Stops in the file replace the defaults instead of merging element-wise.
	cfg.Palette.Stops = nil

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	// Palette
	if cfg.Palette.Policy == "" {
		cfg.Palette.Policy = defaults.Palette.Policy
	}
	if cfg.Palette.Contrast == "" {
		cfg.Palette.Contrast = defaults.Palette.Contrast
	}
	if cfg.Palette.TextLight == "" {
		cfg.Palette.TextLight = defaults.Palette.TextLight
	}
	if cfg.Palette.TextDark == "" {
		cfg.Palette.TextDark = defaults.Palette.TextDark
	}
	if len(cfg.Palette.Stops) == 0 {
		cfg.Palette.Stops = defaults.Palette.Stops
	}

	// State
	if cfg.State.Step == 0 {
		cfg.State.Step = defaults.State.Step
	}
	if cfg.State.BigStep == 0 {
		cfg.State.BigStep = defaults.State.BigStep
	}

	// Storage
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = defaults.Storage.Backend
	}

	// Log
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes cfg as TOML with a short header, atomically and 0600.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# daynight configuration file\n")
	buf.WriteString("# palette.policy: reinterpret (mode mirrors the slider) | snap (toggle moves the slider)\n")
	buf.WriteString("# palette.contrast: threshold | luminance\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config encode error: %v>", err)
	}
	return buf.String()
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Palette.Stops = append([]StopConfig(nil), c.Palette.Stops...)
	cp.UI.Panels = append([]string(nil), c.UI.Panels...)
	return &cp
}
