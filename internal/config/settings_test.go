package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/kinetiq/internal/model"
)

// writeSettings writes a settings file into a temp dir and returns its path.
func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadSettings_Defaults verifies that an empty path and a missing file
// both yield the built-in defaults rather than an error.
func TestLoadSettings_Defaults(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		settings, err := LoadSettings("")
		require.NoError(t, err)
		assert.Equal(t, model.DefaultSettings(), settings)
	})

	t.Run("missing file", func(t *testing.T) {
		settings, err := LoadSettings(filepath.Join(t.TempDir(), "nope.json"))
		require.NoError(t, err)
		assert.Equal(t, model.DefaultSettings(), settings)
	})
}

// TestLoadSettings_JSONC verifies comment stripping and partial overrides:
// fields absent from the file keep their defaults.
func TestLoadSettings_JSONC(t *testing.T) {
	path := writeSettings(t, `{
  // switch to kilograms
  "unit": "kg",
  /* heavier default step */
  "kgIncrement": 2.5,
}`)

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, model.UnitKg, settings.Unit)
	assert.Equal(t, 2.5, settings.KgIncrement)

	// Untouched fields keep their defaults.
	assert.Equal(t, model.DefaultSettings().MaxJumpKg, settings.MaxJumpKg)
	assert.Equal(t, model.DefaultSettings().LbIncrement, settings.LbIncrement)
}

// TestLoadSettings_Errors verifies the failure modes: unparsable JSON and
// structurally invalid settings both surface as ExitSettingsError.
func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unparsable", `{"unit": `},
		{"invalid unit", `{"unit": "stone"}`},
		{"non-positive increment", `{"unit": "lb", "lbIncrement": 0}`},
		{"non-positive max jump", `{"unit": "kg", "maxJumpKg": -5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettings(writeSettings(t, tt.content))
			require.Error(t, err)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr), "expected CLIError, got %T", err)
			assert.Equal(t, model.ExitSettingsError, cliErr.Code)
		})
	}
}
