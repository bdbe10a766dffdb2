// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package palette

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#0f131c", RGB{15, 19, 28}, false},
		{"0f131c", RGB{15, 19, 28}, false},
		{"#fff", RGB{255, 255, 255}, false},
		{"  #FFFDFA ", RGB{255, 253, 250}, false},
		{"#12345", RGB{}, true},
		{"#1234567", RGB{}, true},
		{"#fffdfa-junk", RGB{}, true},
		{"#0f131", RGB{}, true},
		{"##fff", RGB{}, true},
		{"#zzzzzz", RGB{}, true},
		{"", RGB{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestRGB_Formatting(t *testing.T) {
	c := RGB{15, 19, 28}
	assert.Equal(t, "#0f131c", c.Hex())
	assert.Equal(t, "#0f131c", c.String())
	assert.Equal(t, "rgb(15, 19, 28)", c.CSS())
}

func TestRGB_TextMarshaling(t *testing.T) {
	data, err := json.Marshal(KeyColor{Stop: 35, Color: Morning})
	require.NoError(t, err)
	assert.JSONEq(t, `{"stop":35,"color":"#9fb3bf"}`, string(data))

	var kc KeyColor
	require.NoError(t, json.Unmarshal([]byte(`{"stop":10,"color":"#16132b"}`), &kc))
	assert.Equal(t, Dawn, kc.Color)

	assert.Error(t, json.Unmarshal([]byte(`{"stop":10,"color":"nope"}`), &kc))
}

func TestContrastRatio(t *testing.T) {
	black := RGB{0, 0, 0}
	white := RGB{255, 255, 255}

	assert.InDelta(t, 21.0, ContrastRatio(black, white), 0.01)
	assert.InDelta(t, 21.0, ContrastRatio(white, black), 0.01)
	assert.InDelta(t, 1.0, ContrastRatio(Morning, Morning), 1e-9)
}
