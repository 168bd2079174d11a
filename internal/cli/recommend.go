// Package cli — recommend.go implements the "kinetiq recommend" command.
//
// The recommend command runs the decision engine once: it takes the last
// logged set (--weight, --reps, --rpe) plus an exercise configuration —
// either a preset name or explicit rep-range flags — and prints the
// prescribed action and next set as text or JSON.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/kinetiq/internal/config"
	"github.com/mmr-tortoise/kinetiq/internal/engine"
	"github.com/mmr-tortoise/kinetiq/internal/model"
)

// recommendFlags holds the flag values for the recommend command.
// These are bound to cobra flags in NewRecommendCommand.
type recommendFlags struct {
	// exercise selects a preset by name; mutually complementary with the
	// explicit rep-range flags, which override the preset when changed.
	exercise string

	// presetsFile optionally loads additional presets from a YAML file.
	presetsFile string

	// weight, reps, rpe describe the last logged set.
	weight float64
	reps   int
	rpe    float64

	// Explicit exercise configuration, used when no preset is given or to
	// override individual preset fields.
	repMin   int
	repMax   int
	rpeMin   float64
	rpeMax   float64
	repsStep int

	// increment and maxJump override the settings-level defaults.
	increment float64
	maxJump   float64

	// dynamic enables the RPE-scaled jump rule for weight increases.
	dynamic bool
}

// NewRecommendCommand creates the "recommend" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewRecommendCommand() *cobra.Command {
	flags := &recommendFlags{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Compute the next set from the last logged set",
		Long: `Compute the next-set prescription (action, weight, reps) for one exercise
from the last logged set's weight, reps, and RPE.

The exercise configuration comes from a preset (--exercise) or from explicit
flags (--rep-min/--rep-max, optionally --rpe-min/--rpe-max). Explicit flags
override preset fields.

Examples:
  kinetiq recommend --exercise bench_press --weight 185 --reps 8 --rpe 7.5
  kinetiq recommend --rep-min 5 --rep-max 8 --weight 185 --reps 6 --rpe 9.5
  kinetiq recommend --exercise squat --weight 100 --reps 8 --rpe 6 --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.exercise, "exercise", "e", "", "Exercise preset name (see 'kinetiq presets')")
	cmd.Flags().StringVar(&flags.presetsFile, "presets-file", "", "YAML file with additional presets")

	cmd.Flags().Float64VarP(&flags.weight, "weight", "w", 0, "Weight used in the last set")
	cmd.Flags().IntVarP(&flags.reps, "reps", "r", 0, "Reps achieved in the last set")
	cmd.Flags().Float64Var(&flags.rpe, "rpe", 0, "RPE of the last set (1-10)")

	cmd.Flags().IntVar(&flags.repMin, "rep-min", 0, "Lower bound of the rep range")
	cmd.Flags().IntVar(&flags.repMax, "rep-max", 0, "Upper bound of the rep range")
	cmd.Flags().Float64Var(&flags.rpeMin, "rpe-min", 7.0, "Lower bound of the target RPE band")
	cmd.Flags().Float64Var(&flags.rpeMax, "rpe-max", 9.0, "Upper bound of the target RPE band")
	cmd.Flags().IntVar(&flags.repsStep, "reps-step", 1, "Reps moved per add_reps/lower_reps step")

	cmd.Flags().Float64Var(&flags.increment, "increment", 0, "Weight increment override for this call")
	cmd.Flags().Float64Var(&flags.maxJump, "max-jump", 0, "Max jump override for this call")

	cmd.Flags().BoolVar(&flags.dynamic, "dynamic", false, "Scale weight increases by RPE (dynamic jump rule)")

	// The last set is mandatory; everything else has a preset or default.
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("reps")
	_ = cmd.MarkFlagRequired("rpe")

	return cmd
}

// runRecommend is the main logic function for the recommend command.
// It loads settings, resolves the exercise configuration, runs the engine
// once, and outputs the recommendation in the appropriate format.
func runRecommend(cmd *cobra.Command, flags *recommendFlags) error {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return err
	}
	VerboseLog("Settings: unit=%s increment=%g max_jump=%g", settings.Unit, settings.Increment(), settings.MaxJump())

	cfg, err := resolveExerciseConfig(cmd, flags, settings)
	if err != nil {
		return err
	}
	VerboseLog("Exercise %q: reps [%d, %d], RPE [%.1f, %.1f]", cfg.Name, cfg.RepMin, cfg.RepMax, cfg.RPEMin, cfg.RPEMax)

	observed := model.ObservedSet{
		Weight: flags.weight,
		Reps:   flags.reps,
		RPE:    flags.rpe,
	}

	var opts []engine.Option
	if flags.dynamic {
		opts = append(opts, engine.WithDynamicJump())
	}

	rec, err := engine.Recommend(observed, cfg, settings, opts...)
	if err != nil {
		return err
	}

	printRecommendation(rec)
	return nil
}

// resolveExerciseConfig builds the ExerciseConfig for the call: preset first
// (built-in catalog merged with --presets-file), then explicit flag
// overrides on top. cmd.Flags().Changed distinguishes "flag left at default"
// from "flag explicitly set", so preset fields are only replaced when the
// user actually asked for it.
func resolveExerciseConfig(cmd *cobra.Command, flags *recommendFlags, settings model.Settings) (model.ExerciseConfig, error) {
	var cfg model.ExerciseConfig

	if flags.exercise != "" {
		presets, err := loadPresets(settings, flags.presetsFile)
		if err != nil {
			return model.ExerciseConfig{}, err
		}
		found, ok := presets[flags.exercise]
		if !ok {
			return model.ExerciseConfig{}, model.NewCLIError(model.ExitPresetNotFound,
				fmt.Sprintf("unknown exercise preset %q (see 'kinetiq presets')", flags.exercise))
		}
		cfg = found
	} else {
		if !cmd.Flags().Changed("rep-min") || !cmd.Flags().Changed("rep-max") {
			return model.ExerciseConfig{}, model.NewCLIError(model.ExitInvalidConfig,
				"either --exercise or both --rep-min and --rep-max are required")
		}
		cfg = model.ExerciseConfig{
			Name:     "custom",
			RepMin:   flags.repMin,
			RepMax:   flags.repMax,
			RPEMin:   flags.rpeMin,
			RPEMax:   flags.rpeMax,
			RepsStep: flags.repsStep,
		}
	}

	// Explicit flags win over preset fields.
	if cmd.Flags().Changed("rep-min") {
		cfg.RepMin = flags.repMin
	}
	if cmd.Flags().Changed("rep-max") {
		cfg.RepMax = flags.repMax
	}
	if cmd.Flags().Changed("rpe-min") {
		cfg.RPEMin = flags.rpeMin
	}
	if cmd.Flags().Changed("rpe-max") {
		cfg.RPEMax = flags.rpeMax
	}
	if cmd.Flags().Changed("reps-step") {
		cfg.RepsStep = flags.repsStep
	}
	if cmd.Flags().Changed("increment") {
		cfg.WeightIncrementOverride = &flags.increment
	}
	if cmd.Flags().Changed("max-jump") {
		cfg.MaxJumpOverride = &flags.maxJump
	}

	return cfg.Normalize(), nil
}

// printRecommendation outputs a recommendation in text or JSON format,
// depending on the global --json flag.
func printRecommendation(rec model.Recommendation) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(rec, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Action:   %s\n", rec.Action)
	fmt.Printf("Next set: %s x %d\n", FormatWeight(rec.NextSet.Weight, rec.Unit), rec.NextSet.Reps)
	if rec.Explanation != "" {
		fmt.Printf("Why:      %s\n", rec.Explanation)
	}
}

// FormatWeight renders a weight with its unit, trimming trailing zeros so
// common values print as "185 lb" and "187.5 lb" rather than "185.000000".
//
// This function is exported for testing purposes (tested in recommend_test.go).
func FormatWeight(weight float64, unit model.Unit) string {
	s := fmt.Sprintf("%.3f", weight)
	// Trim trailing zeros, then a trailing dot.
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s + " " + unit.String()
}
