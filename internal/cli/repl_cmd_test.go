// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/daynight-tui/internal/config"
	"github.com/jeranaias/daynight-tui/internal/daynight"
	"github.com/jeranaias/daynight-tui/internal/logging"
	"github.com/jeranaias/daynight-tui/internal/storage"
)

func newTestSession(t *testing.T, policy string) (*replSession, storage.Store, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Palette.Policy = policy
	eng, err := cfg.Engine()
	require.NoError(t, err)

	store := storage.NewMemoryStore()
	var out bytes.Buffer
	return &replSession{
		rt:    &runtime{cfg: cfg, engine: eng, logger: logging.Nop()},
		store: store,
		state: cfg.DefaultState(),
		out:   &out,
		st:    newOutputStyles(&out),
	}, store, &out
}

func storedState(t *testing.T, store storage.Store) daynight.State {
	t.Helper()
	s, err := storage.LoadState(store, daynight.State{})
	require.NoError(t, err)
	return s
}

func TestRepl_SlideToggleAndPersist(t *testing.T) {
	sess, store, out := newTestSession(t, "reinterpret")

	require.NoError(t, sess.exec("73"))
	assert.Equal(t, daynight.State{Dark: true, Raw: 73}, sess.state)
	assert.Contains(t, out.String(), "night 73%")

	require.NoError(t, sess.exec("toggle"))
	assert.Equal(t, daynight.State{Dark: false, Raw: 73}, storedState(t, store))
	assert.Contains(t, out.String(), "bg #d7dee1")

	require.NoError(t, sess.exec("+5"))
	require.NoError(t, sess.exec("-20"))
	assert.Equal(t, 58, sess.state.Raw)
	assert.Equal(t, 58, storedState(t, store).Raw)
}

func TestRepl_SnapToggle(t *testing.T) {
	sess, store, _ := newTestSession(t, "snap")

	require.NoError(t, sess.exec("t"))
	assert.Equal(t, daynight.State{Dark: false, Raw: 100}, storedState(t, store))
}

func TestRepl_Commands(t *testing.T) {
	sess, store, out := newTestSession(t, "reinterpret")

	require.NoError(t, sess.exec(""))
	require.NoError(t, sess.exec("help"))
	assert.Contains(t, out.String(), "Commands:")

	require.NoError(t, sess.exec("show"))
	_, ok, err := store.Get(storage.KeyDark)
	require.NoError(t, err)
	assert.False(t, ok, "show must not persist")

	assert.True(t, errors.Is(sess.exec("quit"), errQuit))
	assert.True(t, errors.Is(sess.exec("EXIT"), errQuit))
}

func TestRepl_InvalidInput(t *testing.T) {
	sess, _, _ := newTestSession(t, "reinterpret")
	before := sess.state

	for _, in := range []string{"150", "dusk", "+x"} {
		assert.Error(t, sess.exec(in), in)
	}
	assert.Equal(t, before, sess.state)
}
