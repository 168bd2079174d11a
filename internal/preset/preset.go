package preset

import (
	"sort"
	"strings"

	"github.com/mmr-tortoise/kinetiq/internal/model"
)

// isLowerBodyHeavy reports whether an exercise name looks like a heavy
// lower-body pull or squat. Those lifts tolerate larger load steps, so they
// get bigger default increments and jump caps.
func isLowerBodyHeavy(exerciseName string) bool {
	name := strings.ToLower(exerciseName)
	return strings.Contains(name, "dead") || strings.Contains(name, "squat")
}

// DefaultIncrement returns the default weight increment for an exercise,
// in the unit of the given settings.
//
// Squat/deadlift variants: 5 lb (2.5 kg). Everything else: 2.5 lb (1.25 kg).
func DefaultIncrement(settings model.Settings, exerciseName string) float64 {
	heavy := isLowerBodyHeavy(exerciseName)

	if settings.Unit == model.UnitLb {
		if heavy {
			return 5.0
		}
		return 2.5
	}
	if heavy {
		return 2.5
	}
	return 1.25
}

// DefaultMaxJump returns the default jump cap for an exercise,
// in the unit of the given settings.
//
// Squat/deadlift variants: 15 lb (7.5 kg). Everything else: 10 lb (5 kg).
func DefaultMaxJump(settings model.Settings, exerciseName string) float64 {
	heavy := isLowerBodyHeavy(exerciseName)

	if settings.Unit == model.UnitLb {
		if heavy {
			return 15.0
		}
		return 10.0
	}
	if heavy {
		return 7.5
	}
	return 5.0
}

// Make builds an ExerciseConfig with per-exercise default increment and jump
// overrides filled in from the exercise name. The target RPE band defaults
// to [7, 9] when both bounds are zero.
func Make(name string, repMin, repMax int, rpeMin, rpeMax float64, settings model.Settings) model.ExerciseConfig {
	if rpeMin == 0 && rpeMax == 0 {
		rpeMin, rpeMax = 7.0, 9.0
	}
	inc := DefaultIncrement(settings, name)
	maxJump := DefaultMaxJump(settings, name)

	return model.ExerciseConfig{
		Name:                    name,
		RepMin:                  repMin,
		RepMax:                  repMax,
		RPEMin:                  rpeMin,
		RPEMax:                  rpeMax,
		WeightIncrementOverride: &inc,
		MaxJumpOverride:         &maxJump,
		RepsStep:                1,
	}
}

// BuiltIn returns the starter preset catalog keyed by exercise name.
// The map is freshly allocated on every call, so callers may modify it.
func BuiltIn(settings model.Settings) map[string]model.ExerciseConfig {
	return map[string]model.ExerciseConfig{
		"bench_press":    Make("bench_press", 5, 8, 0, 0, settings),
		"overhead_press": Make("overhead_press", 5, 8, 0, 0, settings),
		"barbell_row":    Make("barbell_row", 6, 10, 0, 0, settings),
		"squat":          Make("squat", 5, 8, 0, 0, settings),
		"deadlift":       Make("deadlift", 3, 6, 0, 0, settings),
	}
}

// Names returns the preset names in sorted order for deterministic
// listings and table output.
func Names(presets map[string]model.ExerciseConfig) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
