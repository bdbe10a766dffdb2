// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and clears overrides so no real config
// or state is touched.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("NO_COLOR", "1")
	for _, k := range []string{
		"DAYNIGHT_POLICY", "DAYNIGHT_CONTRAST", "DAYNIGHT_STORAGE",
		"DAYNIGHT_STATE_PATH", "DAYNIGHT_LOG_LEVEL", "DAYNIGHT_DARK",
	} {
		t.Setenv(k, "")
	}
	return home
}

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// decodeData runs a --output json command and decodes the envelope's data.
func decodeData(t *testing.T, v interface{}, args ...string) {
	t.Helper()
	out, _, err := runCLI(t, append(args, "--output", "json")...)
	require.NoError(t, err)

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &env), out)
	require.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, v))
}

type frameJSON struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Display    string `json:"display"`
	Pressed    string `json:"pressed"`
	Dark       bool   `json:"dark"`
	Raw        int    `json:"raw"`
	Effective  int    `json:"effective"`
}

type stateJSON struct {
	State struct {
		Dark bool `json:"isDark"`
		Raw  int  `json:"sliderValue"`
	} `json:"state"`
	Frame   frameJSON `json:"frame"`
	Backend string    `json:"backend"`
	Path    string    `json:"path"`
	Warning string    `json:"warning"`
}

// =============================================================================
// ROOT
// =============================================================================

func TestRoot_InvalidOutput(t *testing.T) {
	isolate(t)
	_, _, err := runCLI(t, "version", "--output", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "daynight "+Version)

	var v map[string]string
	decodeData(t, &v, "version")
	assert.Equal(t, Version, v["version"])
}

// =============================================================================
// RENDER
// =============================================================================

func TestRender_DaySide(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "render", "73")
	require.NoError(t, err)
	assert.Contains(t, out, "73%")
	assert.Contains(t, out, "#d7dee1")
	assert.Contains(t, out, "rgb(215, 222, 225)")
	assert.Contains(t, out, "aria-pressed=false")
}

func TestRender_NightJSON(t *testing.T) {
	isolate(t)
	var f frameJSON
	decodeData(t, &f, "render", "73", "--dark")

	assert.Equal(t, "73%", f.Display)
	assert.Equal(t, "true", f.Pressed)
	assert.Equal(t, 27, f.Effective)
	assert.Equal(t, "#ffffff", f.Text)
}

func TestRender_DoesNotPersist(t *testing.T) {
	home := isolate(t)
	_, _, err := runCLI(t, "render", "10")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(home, ".daynight", "state.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRender_InvalidValue(t *testing.T) {
	isolate(t)
	for _, arg := range []string{"101", "-1", "half"} {
		_, _, err := runCLI(t, "render", "--", arg)
		assert.Error(t, err, arg)
	}
}

func TestRender_WithConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bw.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[palette]
policy = "snap"

[[palette.stops]]
stop = 0
color = "#000000"

[[palette.stops]]
stop = 100
color = "#ffffff"
`), 0600))

	var f frameJSON
	decodeData(t, &f, "--config", path, "render", "50", "--dark")
	assert.Equal(t, 50, f.Effective)
	assert.Equal(t, "#808080", f.Background)
}

func TestRender_InvalidConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[palette.stops]]\nstop = 0\ncolor = \"#000\"\n"), 0600))

	_, _, err := runCLI(t, "--config", path, "render", "50")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette.stops")
}

// =============================================================================
// STATE
// =============================================================================

func TestState_ShowDefaults(t *testing.T) {
	home := isolate(t)
	var s stateJSON
	decodeData(t, &s, "state", "show")

	assert.True(t, s.State.Dark)
	assert.Equal(t, 50, s.State.Raw)
	assert.Equal(t, "file", s.Backend)
	assert.Equal(t, filepath.Join(home, ".daynight", "state.json"), s.Path)
	assert.Empty(t, s.Warning)
}

func TestState_SetThenShow(t *testing.T) {
	home := isolate(t)
	_, _, err := runCLI(t, "state", "set", "--value", "73", "--dark=false")
	require.NoError(t, err)

	var s stateJSON
	decodeData(t, &s, "state", "show")
	assert.False(t, s.State.Dark)
	assert.Equal(t, 73, s.State.Raw)
	assert.Equal(t, "#d7dee1", s.Frame.Background)
	assert.Equal(t, "73%", s.Frame.Display)

	data, err := os.ReadFile(filepath.Join(home, ".daynight", "state.json"))
	require.NoError(t, err)
	var kv map[string]string
	require.NoError(t, json.Unmarshal(data, &kv))
	assert.Equal(t, map[string]string{"isDark": "false", "sliderValue": "73"}, kv)
}

func TestState_SetValidation(t *testing.T) {
	isolate(t)
	_, _, err := runCLI(t, "state", "set")
	assert.Error(t, err)

	_, _, err = runCLI(t, "state", "set", "--value", "150")
	assert.Error(t, err)
}

func TestState_MalformedFallsBackToDefaults(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".daynight")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"),
		[]byte(`{"isDark":"maybe","sliderValue":"73"}`), 0600))

	out, stderr, err := runCLI(t, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning")
	assert.Contains(t, stderr, "isDark")
	assert.Contains(t, out, "night 73%")
}

func TestState_Reset(t *testing.T) {
	isolate(t)
	_, _, err := runCLI(t, "state", "set", "--value", "5", "--dark=false")
	require.NoError(t, err)

	_, _, err = runCLI(t, "state", "reset")
	require.NoError(t, err)

	var s stateJSON
	decodeData(t, &s, "state", "show")
	assert.True(t, s.State.Dark)
	assert.Equal(t, 50, s.State.Raw)
}

func TestState_SQLiteBackend(t *testing.T) {
	home := isolate(t)
	t.Setenv("DAYNIGHT_STORAGE", "sqlite")

	_, _, err := runCLI(t, "state", "set", "--value", "20")
	require.NoError(t, err)

	var s stateJSON
	decodeData(t, &s, "state", "show")
	assert.Equal(t, 20, s.State.Raw)
	assert.Equal(t, "sqlite", s.Backend)
	assert.Equal(t, filepath.Join(home, ".daynight", "state.db"), s.Path)
}

// =============================================================================
// PALETTE
// =============================================================================

func TestPalette_Markdown(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "palette")
	require.NoError(t, err)
	assert.Contains(t, out, "# Palette")
	assert.Contains(t, out, "| 35% | `#9fb3bf` | rgb(159, 179, 191) |")
	assert.Contains(t, out, "| 73% | `#d7dee1` | `#0f131c` |")
}

func TestPalette_JSON(t *testing.T) {
	isolate(t)
	var p struct {
		Policy string `json:"policy"`
		Stops  []struct {
			Stop  float64 `json:"stop"`
			Color string  `json:"color"`
		} `json:"stops"`
		Samples []struct {
			Effective  int    `json:"effective"`
			Background string `json:"background"`
			Text       string `json:"text"`
		} `json:"samples"`
	}
	decodeData(t, &p, "palette")

	assert.Equal(t, "reinterpret", p.Policy)
	require.Len(t, p.Stops, 4)
	assert.Equal(t, "#16132b", p.Stops[1].Color)
	require.Len(t, p.Samples, len(sampleValues))
	assert.Equal(t, 5, p.Samples[1].Effective)
	assert.Equal(t, "#131324", p.Samples[1].Background)
}

// =============================================================================
// CONFIG
// =============================================================================

func TestConfig_InitShowPath(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, ".daynight", "config.toml")

	var paths configPaths
	decodeData(t, &paths, "config", "path")
	assert.Equal(t, path, paths.Config)
	assert.False(t, paths.Loaded)

	out, _, err := runCLI(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	_, _, err = runCLI(t, "config", "init")
	assert.Error(t, err)
	_, _, err = runCLI(t, "config", "init", "--force")
	assert.NoError(t, err)

	decodeData(t, &paths, "config", "path")
	assert.True(t, paths.Loaded)

	out, _, err = runCLI(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `policy = "reinterpret"`)
	assert.Contains(t, out, "[palette]")
}

func TestHighlight_ProducesEscapes(t *testing.T) {
	out := highlight("[palette]\npolicy = \"snap\"\n", "toml")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "snap")
}

// =============================================================================
// SUGGEST
// =============================================================================

func TestSuggest_ApplyAtNoon(t *testing.T) {
	isolate(t)
	orig := now
	now = func() time.Time { return time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = orig })

	var s struct {
		Elevation float64 `json:"elevation"`
		Value     int     `json:"value"`
		Applied   bool    `json:"applied"`
		State     struct {
			Dark bool `json:"isDark"`
			Raw  int  `json:"sliderValue"`
		} `json:"state"`
	}
	decodeData(t, &s, "suggest", "--lat", "0", "--lon", "0", "--apply")
	assert.Greater(t, s.Elevation, 60.0)
	assert.Equal(t, 100, s.Value)
	assert.True(t, s.Applied)
	assert.False(t, s.State.Dark)

	var st stateJSON
	decodeData(t, &st, "state", "show")
	assert.False(t, st.State.Dark)
	assert.Equal(t, 100, st.State.Raw)
}

func TestSuggest_InvalidLatitude(t *testing.T) {
	isolate(t)
	_, _, err := runCLI(t, "suggest", "--lat", "95")
	assert.Error(t, err)
}
