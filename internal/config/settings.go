// Package config loads user settings from a JSONC settings file.
//
// Settings files are user-edited, so JSONC (JSON with Comments) is accepted:
// github.com/tidwall/jsonc strips comments and trailing commas before the
// standard encoding/json parser runs. A missing file is not an error — the
// built-in defaults apply, and any field omitted from the file keeps its
// default value.
//
// Example settings.json:
//
//	{
//	  // working unit for all weights
//	  "unit": "lb",
//	  "lbIncrement": 2.5,
//	  "maxJumpLb": 10,
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/kinetiq/internal/model"
)

// LoadSettings reads a settings file, strips JSONC comments, and merges the
// parsed fields over the built-in defaults. An empty path or a missing file
// yields the defaults unchanged.
//
// Returns a CLIError with ExitSettingsError when the file exists but cannot
// be read or parsed, and a ConfigError (wrapped in a CLIError) when the
// resulting settings are structurally invalid.
func LoadSettings(path string) (model.Settings, error) {
	settings := model.DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return model.Settings{}, model.WrapCLIError(model.ExitSettingsError,
			fmt.Sprintf("cannot read settings file %s", path), err)
	}

	// Strip JSONC comments (// and /* */) and trailing commas before
	// parsing. Unmarshalling into the defaults struct means fields absent
	// from the file keep their default values.
	cleanJSON := jsonc.ToJSON(data)
	if err := json.Unmarshal(cleanJSON, &settings); err != nil {
		return model.Settings{}, model.WrapCLIError(model.ExitSettingsError,
			fmt.Sprintf("cannot parse settings file %s", path), err)
	}

	if err := settings.Validate(); err != nil {
		return model.Settings{}, model.WrapCLIError(model.ExitSettingsError,
			fmt.Sprintf("settings file %s", path), err)
	}
	return settings, nil
}
