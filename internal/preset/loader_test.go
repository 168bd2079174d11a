package preset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/kinetiq/internal/model"
)

// TestParse verifies decoding of a complete preset file, including
// overrides and defaulted fields.
func TestParse(t *testing.T) {
	data := []byte(`
presets:
  bench_press:
    rep_range: [5, 8]
    target_rpe_range: [7.0, 9.0]
    weight_increment: 2.5
    max_jump: 10
    reps_step: 1
  paused_squat:
    rep_range: [3, 5]
`)

	presets, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, presets, 2)

	bench := presets["bench_press"]
	assert.Equal(t, "bench_press", bench.Name)
	assert.Equal(t, 5, bench.RepMin)
	assert.Equal(t, 8, bench.RepMax)
	require.NotNil(t, bench.WeightIncrementOverride)
	assert.Equal(t, 2.5, *bench.WeightIncrementOverride)
	require.NotNil(t, bench.MaxJumpOverride)
	assert.Equal(t, 10.0, *bench.MaxJumpOverride)

	// Omitted fields fall back: RPE band [7, 9], reps step 1, no overrides.
	squat := presets["paused_squat"]
	assert.Equal(t, 7.0, squat.RPEMin)
	assert.Equal(t, 9.0, squat.RPEMax)
	assert.Equal(t, 1, squat.RepsStep)
	assert.Nil(t, squat.WeightIncrementOverride)
	assert.Nil(t, squat.MaxJumpOverride)
}

// TestParse_Invalid verifies that malformed files are rejected with a
// CLIError carrying the invalid-config exit code.
func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "presets: ["},
		{"empty document", ""},
		{"no presets key", "other: 1"},
		{"rep_range wrong arity", "presets:\n  bench:\n    rep_range: [5]"},
		{"rpe_range wrong arity", "presets:\n  bench:\n    rep_range: [5, 8]\n    target_rpe_range: [7]"},
		{"inverted rep range", "presets:\n  bench:\n    rep_range: [8, 5]"},
		{"negative increment", "presets:\n  bench:\n    rep_range: [5, 8]\n    weight_increment: -2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr), "expected CLIError, got %T", err)
			assert.Equal(t, model.ExitInvalidConfig, cliErr.Code)
		})
	}
}

// TestLoadFile verifies reading presets from disk and the missing-file case.
func TestLoadFile(t *testing.T) {
	t.Run("reads a valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "presets.yaml")
		require.NoError(t, os.WriteFile(path, []byte("presets:\n  bench:\n    rep_range: [5, 8]\n"), 0o644))

		presets, err := LoadFile(path)
		require.NoError(t, err)
		assert.Contains(t, presets, "bench")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		var cliErr *model.CLIError
		require.Error(t, err)
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, model.ExitInvalidConfig, cliErr.Code)
	})
}
