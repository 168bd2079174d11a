package units

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmr-tortoise/kinetiq/internal/model"
)

// TestToKgFromKg verifies the conversion round-trip in both units.
func TestToKgFromKg(t *testing.T) {
	// kg is the identity in both directions.
	assert.Equal(t, 100.0, ToKg(100, model.UnitKg))
	assert.Equal(t, 100.0, FromKg(100, model.UnitKg))

	// 220.46226218 lb is exactly 100 kg under the package constant.
	assert.InDelta(t, 100.0, ToKg(220.46226218, model.UnitLb), 1e-9)
	assert.InDelta(t, 220.46226218, FromKg(100, model.UnitLb), 1e-9)

	// Round trip preserves the value.
	assert.InDelta(t, 185.0, FromKg(ToKg(185, model.UnitLb), model.UnitLb), 1e-9)
}

// TestRoundToIncrement verifies snapping to arbitrary increments, including
// the degenerate non-positive increment.
func TestRoundToIncrement(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		inc  float64
		want float64
	}{
		{"already on grid", 187.5, 2.5, 187.5},
		{"rounds up", 186.3, 2.5, 187.5},
		{"rounds down", 186.2, 2.5, 185.0},
		{"kg grid", 61.1, 1.25, 61.25},
		{"non-positive increment is identity", 186.3, 0, 186.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundToIncrement(tt.x, tt.inc), 1e-6)
		})
	}
}

// TestNormalizeDisplayWeight verifies the display granularity: nearest
// 0.5 lb, nearest 0.25 kg.
func TestNormalizeDisplayWeight(t *testing.T) {
	assert.InDelta(t, 185.0, NormalizeDisplayWeight(184.999999, model.UnitLb), 1e-9)
	assert.InDelta(t, 187.5, NormalizeDisplayWeight(187.4, model.UnitLb), 1e-9)
	assert.InDelta(t, 84.25, NormalizeDisplayWeight(84.2, model.UnitKg), 1e-9)
	assert.InDelta(t, 84.0, NormalizeDisplayWeight(84.1, model.UnitKg), 1e-9)
}

// TestClampInt verifies integer clamping at and around the bounds.
func TestClampInt(t *testing.T) {
	assert.Equal(t, 5, ClampInt(3, 5, 8))
	assert.Equal(t, 8, ClampInt(12, 5, 8))
	assert.Equal(t, 6, ClampInt(6, 5, 8))
	assert.Equal(t, 5, ClampInt(5, 5, 8))
	assert.Equal(t, 8, ClampInt(8, 5, 8))
}
