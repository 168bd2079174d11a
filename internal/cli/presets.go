// Package cli — presets.go implements the "kinetiq presets" command.
//
// The presets command lists the available exercise presets: the built-in
// catalog, optionally merged with presets loaded from a YAML file. Output is
// a text table or JSON, depending on the --json flag.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/kinetiq/internal/config"
	"github.com/mmr-tortoise/kinetiq/internal/model"
	"github.com/mmr-tortoise/kinetiq/internal/preset"
)

// presetsFlags holds the flag values for the presets command.
type presetsFlags struct {
	// presetsFile optionally merges presets from a YAML file over the
	// built-in catalog.
	presetsFile string
}

// NewPresetsCommand creates the "presets" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewPresetsCommand() *cobra.Command {
	flags := &presetsFlags{}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List available exercise presets",
		Long: `List the exercise presets usable with 'kinetiq recommend --exercise'.

Built-in presets cover the common barbell lifts; a YAML file given with
--presets-file is merged over the built-ins (file entries win on name
collisions).

Examples:
  kinetiq presets
  kinetiq presets --presets-file my-presets.yaml
  kinetiq presets --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(flags)
		},
	}

	cmd.Flags().StringVar(&flags.presetsFile, "presets-file", "", "YAML file with additional presets")

	return cmd
}

// runPresets loads the preset catalog and prints it.
func runPresets(flags *presetsFlags) error {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return err
	}

	presets, err := loadPresets(settings, flags.presetsFile)
	if err != nil {
		return err
	}
	VerboseLog("Loaded %d presets", len(presets))

	printPresets(presets, settings)
	return nil
}

// loadPresets returns the built-in preset catalog, with entries from the
// given YAML file (if any) merged over it. File entries win on name
// collisions so users can re-tune built-in lifts.
func loadPresets(settings model.Settings, presetsFile string) (map[string]model.ExerciseConfig, error) {
	presets := preset.BuiltIn(settings)

	if presetsFile != "" {
		fromFile, err := preset.LoadFile(presetsFile)
		if err != nil {
			return nil, err
		}
		VerboseLog("Merging %d presets from %s", len(fromFile), presetsFile)
		for name, cfg := range fromFile {
			presets[name] = cfg
		}
	}
	return presets, nil
}

// presetJSON is the JSON output structure for a single preset entry.
type presetJSON struct {
	Name      string   `json:"name"`
	RepMin    int      `json:"repMin"`
	RepMax    int      `json:"repMax"`
	RPEMin    float64  `json:"rpeMin"`
	RPEMax    float64  `json:"rpeMax"`
	Increment *float64 `json:"increment,omitempty"`
	MaxJump   *float64 `json:"maxJump,omitempty"`
	RepsStep  int      `json:"repsStep"`
}

// printPresets outputs the preset catalog in text or JSON format.
func printPresets(presets map[string]model.ExerciseConfig, settings model.Settings) {
	names := preset.Names(presets)

	if IsJSONOutput() {
		type resultJSON struct {
			Presets []presetJSON `json:"presets"`
		}
		// Use an empty slice instead of nil to ensure JSON output shows []
		// instead of null when no presets are found.
		result := resultJSON{Presets: make([]presetJSON, 0, len(presets))}
		for _, name := range names {
			cfg := presets[name].Normalize()
			result.Presets = append(result.Presets, presetJSON{
				Name:      cfg.Name,
				RepMin:    cfg.RepMin,
				RepMax:    cfg.RepMax,
				RPEMin:    cfg.RPEMin,
				RPEMax:    cfg.RPEMax,
				Increment: cfg.WeightIncrementOverride,
				MaxJump:   cfg.MaxJumpOverride,
				RepsStep:  cfg.RepsStep,
			})
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	if len(presets) == 0 {
		fmt.Println("No presets found.")
		return
	}

	fmt.Printf("%-16s %-10s %-12s %-12s %s\n",
		"NAME", "REPS", "TARGET RPE", "INCREMENT", "MAX JUMP")

	for _, name := range names {
		cfg := presets[name]
		fmt.Printf("%-16s %-10s %-12s %-12s %s\n",
			name,
			fmt.Sprintf("%d-%d", cfg.RepMin, cfg.RepMax),
			fmt.Sprintf("%.1f-%.1f", cfg.RPEMin, cfg.RPEMax),
			formatOverride(cfg.WeightIncrementOverride, settings.Increment(), settings.Unit),
			formatOverride(cfg.MaxJumpOverride, settings.MaxJump(), settings.Unit),
		)
	}
}

// formatOverride renders an optional override value, falling back to the
// settings-level default when the override is absent.
func formatOverride(override *float64, fallback float64, unit model.Unit) string {
	value := fallback
	if override != nil {
		value = *override
	}
	return FormatWeight(value, unit)
}
