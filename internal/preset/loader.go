// loader.go handles loading exercise presets from a YAML file.
//
// The file maps exercise names to their rep ranges, target RPE bands, and
// optional per-exercise overrides:
//
//	presets:
//	  bench_press:
//	    rep_range: [5, 8]
//	    target_rpe_range: [7.0, 9.0]
//	    weight_increment: 2.5
//	    max_jump: 10
//	    reps_step: 1
//
// Every entry is validated with the same invariants the engine enforces, so
// a broken preset file fails at load time rather than at recommendation time.
package preset

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/kinetiq/internal/model"
)

// presetFile is the top-level YAML document structure.
type presetFile struct {
	// Presets maps exercise names to their raw definitions.
	Presets map[string]presetEntry `yaml:"presets"`
}

// presetEntry is the raw YAML form of one preset. Ranges are two-element
// arrays to keep hand-written files compact; overrides are pointers so
// absence and zero are distinguishable.
type presetEntry struct {
	// RepRange is [rep_min, rep_max], inclusive.
	RepRange []int `yaml:"rep_range"`

	// TargetRPERange is [rpe_min, rpe_max]; defaults to [7, 9] when omitted.
	TargetRPERange []float64 `yaml:"target_rpe_range"`

	// WeightIncrement overrides the settings-level increment when present.
	WeightIncrement *float64 `yaml:"weight_increment"`

	// MaxJump overrides the settings-level jump cap when present.
	MaxJump *float64 `yaml:"max_jump"`

	// RepsStep is the rep adjustment granularity; defaults to 1.
	RepsStep int `yaml:"reps_step"`
}

// toConfig converts a raw YAML entry into a validated ExerciseConfig.
func (e presetEntry) toConfig(name string) (model.ExerciseConfig, error) {
	if len(e.RepRange) != 2 {
		return model.ExerciseConfig{}, fmt.Errorf("preset %q: rep_range must have exactly 2 elements, got %d", name, len(e.RepRange))
	}

	rpeMin, rpeMax := 7.0, 9.0
	switch len(e.TargetRPERange) {
	case 0:
		// keep defaults
	case 2:
		rpeMin, rpeMax = e.TargetRPERange[0], e.TargetRPERange[1]
	default:
		return model.ExerciseConfig{}, fmt.Errorf("preset %q: target_rpe_range must have exactly 2 elements, got %d", name, len(e.TargetRPERange))
	}

	cfg := model.ExerciseConfig{
		Name:                    name,
		RepMin:                  e.RepRange[0],
		RepMax:                  e.RepRange[1],
		RPEMin:                  rpeMin,
		RPEMax:                  rpeMax,
		WeightIncrementOverride: e.WeightIncrement,
		MaxJumpOverride:         e.MaxJump,
		RepsStep:                e.RepsStep,
	}.Normalize()

	if err := cfg.Validate(); err != nil {
		return model.ExerciseConfig{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return cfg, nil
}

// LoadFile reads a preset YAML file and returns the validated presets keyed
// by exercise name. Returns a CLIError with ExitInvalidConfig when any entry
// fails validation, so a broken file is reported with a dedicated exit code.
func LoadFile(path string) (map[string]model.ExerciseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitInvalidConfig,
			fmt.Sprintf("cannot read preset file %s", path), err)
	}
	return Parse(data)
}

// Parse decodes preset YAML bytes and validates every entry.
// Entries are validated in name order so the first error reported is
// deterministic regardless of map iteration order.
func Parse(data []byte) (map[string]model.ExerciseConfig, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, model.WrapCLIError(model.ExitInvalidConfig, "cannot parse preset YAML", err)
	}
	if len(file.Presets) == 0 {
		return nil, model.NewCLIError(model.ExitInvalidConfig, "preset file defines no presets")
	}

	names := make([]string, 0, len(file.Presets))
	for name := range file.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	presets := make(map[string]model.ExerciseConfig, len(file.Presets))
	for _, name := range names {
		cfg, err := file.Presets[name].toConfig(name)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitInvalidConfig, "invalid preset file", err)
		}
		presets[name] = cfg
	}
	return presets, nil
}
