// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/daynight-tui/internal/daynight"
	"github.com/jeranaias/daynight-tui/internal/palette"
	"github.com/jeranaias/daynight-tui/internal/storage"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

// =============================================================================
// DEFAULTS
// =============================================================================

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	eng, err := cfg.Engine()
	require.NoError(t, err)
	assert.Equal(t, daynight.PolicyReinterpret, eng.Policy())
	assert.Equal(t, palette.Default().Stops(), eng.Palette().Stops())
	assert.Equal(t, daynight.State{Dark: true, Raw: 50}, cfg.DefaultState())
}

func TestDefault_ReturnsFreshStops(t *testing.T) {
	a := Default()
	a.Palette.Stops[0].Color = "#ffffff"
	assert.Equal(t, "#0f131c", Default().Palette.Stops[0].Color)
}

// =============================================================================
// LOADING
// =============================================================================

func TestLoadFromPath_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[palette]
policy = "snap"
contrast = "luminance"

[[palette.stops]]
stop = 0
color = "#000000"

[[palette.stops]]
stop = 100
color = "#ffffff"

[state]
default_dark = false
default_value = 73

[storage]
backend = "sqlite"

[ui]
panels = ["forecast", "notes"]
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "snap", cfg.Palette.Policy)
	assert.Len(t, cfg.Palette.Stops, 2)
	assert.False(t, cfg.State.DefaultDark)
	assert.Equal(t, 73, cfg.State.DefaultValue)
	assert.Equal(t, []string{"forecast", "notes"}, cfg.UI.Panels)

	// Unset values keep their defaults.
	assert.Equal(t, 1, cfg.State.Step)
	assert.Equal(t, "#ffffff", cfg.Palette.TextLight)
	assert.True(t, cfg.UI.ShowHelp)

	eng, err := cfg.Engine()
	require.NoError(t, err)
	assert.Equal(t, daynight.PolicySnap, eng.Policy())
	assert.Equal(t, palette.RGB{R: 128, G: 128, B: 128}, eng.Palette().Interpolate(50))
}

func TestLoadFromPath_TOMLWithoutStopsUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[state]\ndefault_value = 10\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Palette.Stops, 4)
	assert.True(t, cfg.State.DefaultDark)
}

func TestLoadFromPath_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{"palette": {"policy": "reinterpret", "threshold": 40}, "storage": {"backend": "none"}}`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 40.0, cfg.Palette.Threshold)
	assert.Equal(t, "none", cfg.Storage.Backend)
	assert.Len(t, cfg.Palette.Stops, 4)
}

func TestLoadFromPath_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromPath(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "[palette\npolicy=")
	_, err = LoadFromPath(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.toml")
	writeFile(t, invalid, "[palette]\npolicy = \"mirror\"\n")
	_, err = LoadFromPath(invalid)
	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{"palette.policy"}, verrs.Fields())
}

func TestLoad_PrefersTOMLThenJSONThenDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().State, cfg.State)

	writeFile(t, filepath.Join(home, ".daynight", "config.json"), `{"state": {"default_value": 20}}`)
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.State.DefaultValue)

	writeFile(t, filepath.Join(home, ".daynight", "config.toml"), "[state]\ndefault_value = 30\n")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.State.DefaultValue)
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestValidate_CollectsFieldErrors(t *testing.T) {
	cfg := Default()
	cfg.Palette.Contrast = "wcag"
	cfg.Palette.Threshold = 120
	cfg.Palette.TextDark = "black"
	cfg.Palette.Stops[2].Stop = 5
	cfg.State.DefaultValue = 101
	cfg.State.Step = 0
	cfg.Storage.Backend = "redis"
	cfg.Log.Level = "loud"
	cfg.Location.Latitude = 100
	cfg.Location.NightElevation = 40

	err := cfg.Validate()
	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	assert.ElementsMatch(t, []string{
		"palette.contrast",
		"palette.threshold",
		"palette.text_dark",
		"palette.stops[2]",
		"state.default_value",
		"state.step",
		"storage.backend",
		"log.level",
		"location.latitude",
		"location.night_elevation",
	}, verrs.Fields())
	assert.Contains(t, err.Error(), "palette.stops[2]")
}

func TestValidate_BadStopColor(t *testing.T) {
	cfg := Default()
	cfg.Palette.Stops[1].Color = "dawn"

	var verrs ValidateErrors
	require.True(t, errors.As(cfg.Validate(), &verrs))
	assert.Equal(t, []string{"palette.stops[1]"}, verrs.Fields())

	_, err := cfg.Engine()
	assert.ErrorIs(t, err, palette.ErrInvalidPalette)
}

func TestValidate_MistypedHexColors(t *testing.T) {
	cfg := Default()
	cfg.Palette.Stops[3].Color = "#fffdfa-junk"
	cfg.Palette.TextDark = "#0f131"
	cfg.Palette.TextLight = "#1234567"

	var verrs ValidateErrors
	require.True(t, errors.As(cfg.Validate(), &verrs))
	assert.ElementsMatch(t, []string{
		"palette.stops[3]",
		"palette.text_dark",
		"palette.text_light",
	}, verrs.Fields())
}

func TestValidate_TooFewStops(t *testing.T) {
	cfg := Default()
	cfg.Palette.Stops = cfg.Palette.Stops[:1]

	var verrs ValidateErrors
	require.True(t, errors.As(cfg.Validate(), &verrs))
	assert.Equal(t, []string{"palette.stops"}, verrs.Fields())
}

func TestValidateErrors_Empty(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidateErrors(nil).Error())
}

// =============================================================================
// ENVIRONMENT / PATHS
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DAYNIGHT_POLICY", "snap")
	t.Setenv("DAYNIGHT_CONTRAST", "luminance")
	t.Setenv("DAYNIGHT_STORAGE", "sqlite")
	t.Setenv("DAYNIGHT_STATE_PATH", "/tmp/dn.db")
	t.Setenv("DAYNIGHT_LOG_LEVEL", "debug")
	t.Setenv("DAYNIGHT_DARK", "0")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "snap", cfg.Palette.Policy)
	assert.Equal(t, "luminance", cfg.Palette.Contrast)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/dn.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.State.DefaultDark)

	path, err := cfg.StatePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dn.db", path)
}

func TestStatePath_DependsOnBackend(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg := Default()
	path, err := cfg.StatePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".daynight", "state.json"), path)

	cfg.Storage.Backend = "sqlite"
	path, err = cfg.StatePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".daynight", "state.db"), path)

	logPath, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".daynight", "daynight.log"), logPath)
}

func TestOpenStore(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = "file"
	cfg.Storage.Path = filepath.Join(t.TempDir(), "state.json")

	s, err := cfg.OpenStore()
	require.NoError(t, err)
	defer s.Close()
	assert.IsType(t, &storage.FileStore{}, s)

	cfg.Storage.Backend = "none"
	s2, err := cfg.OpenStore()
	require.NoError(t, err)
	assert.IsType(t, &storage.MemoryStore{}, s2)
}

// =============================================================================
// SAVE
// =============================================================================

func TestSaveTOML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.Palette.Policy = "snap"
	cfg.UI.Panels = []string{"clock"}

	require.NoError(t, SaveTOML(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Palette, loaded.Palette)
	assert.Equal(t, cfg.UI, loaded.UI)
	assert.Contains(t, cfg.String(), `policy = "snap"`)
}

func TestClone_IsDeep(t *testing.T) {
	cfg := Default()
	cfg.UI.Panels = []string{"a"}
	cp := cfg.Clone()
	cp.Palette.Stops[0].Color = "#123456"
	cp.UI.Panels[0] = "b"

	assert.Equal(t, "#0f131c", cfg.Palette.Stops[0].Color)
	assert.Equal(t, "a", cfg.UI.Panels[0])
}

// =============================================================================
// SAVE
// =============================================================================

func TestSave_WritesDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	t.Setenv("DAYNIGHT_POLICY", "")

	cfg := Default()
	cfg.Palette.Policy = "snap"
	require.NoError(t, Save(cfg))

	path, err := ConfigPathTOML()
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "snap", loaded.Palette.Policy)
}
