// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/daynight-tui/internal/daynight"
)

// MalformedValueError reports a persisted value that could not be parsed.
// The field falls back to its default.
type MalformedValueError struct {
	Key   string
	Value string
	Err   error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed %s %q: %v", e.Key, e.Value, e.Err)
}

func (e *MalformedValueError) Unwrap() error {
	return e.Err
}

// LoadState reads the persisted state, starting from defaults.
//
// The returned state is always usable. The error, if any, joins every
// MalformedValueError and read failure encountered; callers log it and go on.
// sliderValue outside [0, 100] is clamped, not rejected.
func LoadState(store Store, defaults daynight.State) (daynight.State, error) {
	state := defaults
	state.Raw = daynight.Clamp(state.Raw)
	var errs []error

	if v, ok, err := store.Get(KeyDark); err != nil {
		errs = append(errs, err)
	} else if ok {
		dark, perr := parseBool(v)
		if perr != nil {
			errs = append(errs, &MalformedValueError{Key: KeyDark, Value: v, Err: perr})
		} else {
			state.Dark = dark
		}
	}

	if v, ok, err := store.Get(KeySlider); err != nil {
		errs = append(errs, err)
	} else if ok {
		raw, perr := strconv.Atoi(strings.TrimSpace(v))
		if perr != nil {
			errs = append(errs, &MalformedValueError{Key: KeySlider, Value: v, Err: perr})
		} else {
			state.Raw = daynight.Clamp(raw)
		}
	}

	return state, errors.Join(errs...)
}

// OnlyMalformed reports whether err, as returned by LoadState, consists of
// MalformedValueErrors alone. A nil err is not malformed.
func OnlyMalformed(err error) bool {
	if err == nil {
		return false
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !OnlyMalformed(e) {
				return false
			}
		}
		return true
	}
	var malformed *MalformedValueError
	return errors.As(err, &malformed)
}

// SaveState writes both keys. A BatchStore writes them together; any other
// Store gets two Set calls.
func SaveState(store Store, state daynight.State) error {
	dark := strconv.FormatBool(state.Dark)
	raw := strconv.Itoa(daynight.Clamp(state.Raw))

	if batch, ok := store.(BatchStore); ok {
		return batch.SetMany(map[string]string{KeyDark: dark, KeySlider: raw})
	}
	if err := store.Set(KeyDark, dark); err != nil {
		return err
	}
	return store.Set(KeySlider, raw)
}

// parseBool only accepts the two spellings the widget writes.
func parseBool(v string) (bool, error) {
	switch strings.TrimSpace(v) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errors.New(`want "true" or "false"`)
	}
}
