package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/kinetiq/internal/model"
)

// TestDefaultIncrement verifies the per-exercise increment defaults:
// heavy lower-body lifts step in 5 lb / 2.5 kg, everything else in
// 2.5 lb / 1.25 kg.
func TestDefaultIncrement(t *testing.T) {
	lb := model.DefaultSettings()
	kg := model.DefaultSettings()
	kg.Unit = model.UnitKg

	tests := []struct {
		exercise string
		wantLb   float64
		wantKg   float64
	}{
		{"squat", 5.0, 2.5},
		{"deadlift", 5.0, 2.5},
		{"romanian_deadlift", 5.0, 2.5},
		{"front squat", 5.0, 2.5},
		{"bench_press", 2.5, 1.25},
		{"overhead_press", 2.5, 1.25},
		{"barbell_row", 2.5, 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.exercise, func(t *testing.T) {
			assert.Equal(t, tt.wantLb, DefaultIncrement(lb, tt.exercise))
			assert.Equal(t, tt.wantKg, DefaultIncrement(kg, tt.exercise))
		})
	}
}

// TestDefaultMaxJump verifies the per-exercise jump cap defaults.
func TestDefaultMaxJump(t *testing.T) {
	lb := model.DefaultSettings()
	kg := model.DefaultSettings()
	kg.Unit = model.UnitKg

	assert.Equal(t, 15.0, DefaultMaxJump(lb, "squat"))
	assert.Equal(t, 10.0, DefaultMaxJump(lb, "bench_press"))
	assert.Equal(t, 7.5, DefaultMaxJump(kg, "deadlift"))
	assert.Equal(t, 5.0, DefaultMaxJump(kg, "overhead_press"))
}

// TestMake verifies the preset factory: overrides filled in from the
// exercise name, RPE band defaulted to [7, 9], and the result valid.
func TestMake(t *testing.T) {
	settings := model.DefaultSettings()

	cfg := Make("deadlift", 3, 6, 0, 0, settings)
	assert.Equal(t, "deadlift", cfg.Name)
	assert.Equal(t, 3, cfg.RepMin)
	assert.Equal(t, 6, cfg.RepMax)
	assert.Equal(t, 7.0, cfg.RPEMin)
	assert.Equal(t, 9.0, cfg.RPEMax)
	require.NotNil(t, cfg.WeightIncrementOverride)
	assert.Equal(t, 5.0, *cfg.WeightIncrementOverride)
	require.NotNil(t, cfg.MaxJumpOverride)
	assert.Equal(t, 15.0, *cfg.MaxJumpOverride)
	assert.Equal(t, 1, cfg.RepsStep)
	assert.NoError(t, cfg.Validate())

	// An explicit RPE band is kept.
	cfg = Make("bench_press", 8, 12, 6.5, 8.5, settings)
	assert.Equal(t, 6.5, cfg.RPEMin)
	assert.Equal(t, 8.5, cfg.RPEMax)
}

// TestBuiltIn verifies the starter catalog: the expected lifts are present
// and every entry passes the engine's configuration invariants.
func TestBuiltIn(t *testing.T) {
	presets := BuiltIn(model.DefaultSettings())

	for _, name := range []string{"bench_press", "overhead_press", "barbell_row", "squat", "deadlift"} {
		cfg, ok := presets[name]
		require.True(t, ok, "missing preset %q", name)
		assert.Equal(t, name, cfg.Name)
		assert.NoError(t, cfg.Validate())
	}

	// Deadlift works in a lower, heavier rep range.
	assert.Equal(t, 3, presets["deadlift"].RepMin)
	assert.Equal(t, 6, presets["deadlift"].RepMax)
}

// TestNames verifies deterministic, sorted name listing.
func TestNames(t *testing.T) {
	presets := BuiltIn(model.DefaultSettings())
	names := Names(presets)
	assert.Equal(t, []string{"barbell_row", "bench_press", "deadlift", "overhead_press", "squat"}, names)

	assert.Empty(t, Names(nil))
}
