// Package cli — simulate.go implements the "kinetiq simulate" command.
//
// The simulate command walks the engine through a sequence of sets: a
// deterministic lifter model produces an RPE for the current prescription,
// the engine recommends the next set, and that prescription is fed back in
// as the next observation. It demonstrates the closed loop the engine is
// designed for — each call independent, the caller carrying state.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/kinetiq/internal/config"
	"github.com/mmr-tortoise/kinetiq/internal/engine"
	"github.com/mmr-tortoise/kinetiq/internal/model"
)

// simulateFlags holds the flag values for the simulate command.
type simulateFlags struct {
	// exercise selects the preset to simulate against.
	exercise string

	// presetsFile optionally loads additional presets from a YAML file.
	presetsFile string

	// sets is how many sets to simulate.
	sets int

	// startWeight is the load of the first set.
	startWeight float64

	// startReps is the rep count of the first set; zero means "rep floor".
	startReps int

	// dynamic enables the RPE-scaled jump rule for weight increases.
	dynamic bool
}

// lifterModel is a deterministic stand-in for a real lifter: effort rises
// with load above base strength and with reps above the rep floor, and base
// strength adapts upward after every set — faster when the set landed inside
// the target band. No randomness, so simulations are reproducible.
type lifterModel struct {
	baseStrength      float64
	sensitivityWeight float64
	sensitivityReps   float64
	adaptInZone       float64
	adaptOutOfZone    float64
}

// newLifterModel seeds the model so the first set at startWeight and the
// rep floor lands at RPE 7.
func newLifterModel(startWeight float64) lifterModel {
	return lifterModel{
		baseStrength:      startWeight,
		sensitivityWeight: 1.0 / 25.0,
		sensitivityReps:   1.0 / 2.5,
		adaptInZone:       0.55,
		adaptOutOfZone:    0.10,
	}
}

// rpeFor returns the effort this lifter reports for the given set.
func (l *lifterModel) rpeFor(weight float64, reps, repMin int) float64 {
	rpe := 7.0
	rpe += (weight - l.baseStrength) * l.sensitivityWeight
	rpe += float64(reps-repMin) * l.sensitivityReps
	if rpe < 1.0 {
		return 1.0
	}
	if rpe > 10.0 {
		return 10.0
	}
	return rpe
}

// adapt strengthens the lifter after a set, faster when the effort landed
// inside the target band.
func (l *lifterModel) adapt(rpe, rpeMin, rpeMax float64) {
	if rpe >= rpeMin && rpe <= rpeMax {
		l.baseStrength += l.adaptInZone
	} else {
		l.baseStrength += l.adaptOutOfZone
	}
}

// NewSimulateCommand creates the "simulate" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewSimulateCommand() *cobra.Command {
	flags := &simulateFlags{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the engine through a deterministic training sequence",
		Long: `Simulate a sequence of sets against a deterministic lifter model and show
how the engine progresses reps and load over time.

Each recommendation is fed back in as the next observed set, mirroring how
a real caller drives the engine.

Examples:
  kinetiq simulate --exercise bench_press --sets 12
  kinetiq simulate --exercise squat --start-weight 225 --dynamic
  kinetiq simulate --exercise deadlift --sets 20 --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.exercise, "exercise", "e", "bench_press", "Exercise preset name")
	cmd.Flags().StringVar(&flags.presetsFile, "presets-file", "", "YAML file with additional presets")
	cmd.Flags().IntVar(&flags.sets, "sets", 12, "Number of sets to simulate")
	cmd.Flags().Float64Var(&flags.startWeight, "start-weight", 185, "Load of the first set")
	cmd.Flags().IntVar(&flags.startReps, "start-reps", 0, "Reps of the first set (default: rep floor)")
	cmd.Flags().BoolVar(&flags.dynamic, "dynamic", false, "Scale weight increases by RPE (dynamic jump rule)")

	return cmd
}

// simStep records one simulated set and the engine's response to it.
type simStep struct {
	Set     int     `json:"set"`
	Weight  float64 `json:"weight"`
	Reps    int     `json:"reps"`
	RPE     float64 `json:"rpe"`
	Action  string  `json:"action"`
	NextWt  float64 `json:"nextWeight"`
	NextRep int     `json:"nextReps"`
}

// runSimulate is the main logic function for the simulate command.
func runSimulate(flags *simulateFlags) error {
	if flags.sets < 1 {
		return model.NewCLIError(model.ExitGeneralError, "--sets must be >= 1")
	}

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return err
	}

	presets, err := loadPresets(settings, flags.presetsFile)
	if err != nil {
		return err
	}
	cfg, ok := presets[flags.exercise]
	if !ok {
		return model.NewCLIError(model.ExitPresetNotFound,
			fmt.Sprintf("unknown exercise preset %q (see 'kinetiq presets')", flags.exercise))
	}
	cfg = cfg.Normalize()

	var opts []engine.Option
	if flags.dynamic {
		opts = append(opts, engine.WithDynamicJump())
	}

	lifter := newLifterModel(flags.startWeight)

	weight := flags.startWeight
	reps := flags.startReps
	if reps == 0 {
		reps = cfg.RepMin
	}

	steps := make([]simStep, 0, flags.sets)
	for i := 1; i <= flags.sets; i++ {
		rpe := lifter.rpeFor(weight, reps, cfg.RepMin)

		observed := model.ObservedSet{Weight: weight, Reps: reps, RPE: rpe}
		rec, err := engine.Recommend(observed, cfg, settings, opts...)
		if err != nil {
			return err
		}

		steps = append(steps, simStep{
			Set:     i,
			Weight:  weight,
			Reps:    reps,
			RPE:     rpe,
			Action:  rec.Action.String(),
			NextWt:  rec.NextSet.Weight,
			NextRep: rec.NextSet.Reps,
		})

		lifter.adapt(rpe, cfg.RPEMin, cfg.RPEMax)

		// The prescription becomes the next observed set.
		weight = rec.NextSet.Weight
		reps = rec.NextSet.Reps
	}

	printSimulation(cfg, settings, steps)
	return nil
}

// printSimulation outputs the simulated sequence in text or JSON format.
func printSimulation(cfg model.ExerciseConfig, settings model.Settings, steps []simStep) {
	if IsJSONOutput() {
		type resultJSON struct {
			Exercise string    `json:"exercise"`
			Unit     string    `json:"unit"`
			Steps    []simStep `json:"steps"`
		}
		result := resultJSON{
			Exercise: cfg.Name,
			Unit:     settings.Unit.String(),
			Steps:    steps,
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Simulating %s (reps %d-%d, RPE %.1f-%.1f, %s)\n\n",
		cfg.Name, cfg.RepMin, cfg.RepMax, cfg.RPEMin, cfg.RPEMax, settings.Unit)

	fmt.Printf("%-5s %-10s %-6s %-6s %-14s %s\n",
		"SET", "WEIGHT", "REPS", "RPE", "ACTION", "NEXT")

	for _, s := range steps {
		fmt.Printf("%-5d %-10s %-6d %-6.1f %-14s %s x %d\n",
			s.Set,
			FormatWeight(s.Weight, settings.Unit),
			s.Reps,
			s.RPE,
			s.Action,
			FormatWeight(s.NextWt, settings.Unit),
			s.NextRep,
		)
	}
}
