// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package solar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		elevation float64
		want      float64
	}{
		{-20, 0},
		{-6, 0},
		{12, 0.5},
		{30, 1},
		{75, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Progress(tt.elevation, -6, 30), 1e-9, "elevation %v", tt.elevation)
	}
}

func TestSuggest_NoonAndMidnightAtEquator(t *testing.T) {
	noon := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	s := Suggest(noon, 0, 0, -6, 30)
	assert.Greater(t, s.Elevation, 60.0)
	assert.Equal(t, 100, s.Value)
	assert.Equal(t, noon, s.Time)

	midnight := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	s = Suggest(midnight, 0, 0, -6, 30)
	assert.Less(t, s.Elevation, -60.0)
	assert.Equal(t, 0, s.Value)
}
