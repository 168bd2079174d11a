// Package units provides weight-unit conversion and rounding helpers for
// collaborators around the decision engine.
//
// The engine itself computes directly in the caller's working unit, so these
// helpers never participate in the decision arithmetic. They exist for
// callers that store history in one unit and display in another, and for the
// progression rules, whose jump table is defined in pounds.
package units

import (
	"math"

	"github.com/mmr-tortoise/kinetiq/internal/model"
)

// LbPerKg is the exact conversion factor used throughout.
const LbPerKg = 2.2046226218

// ToKg converts a weight expressed in the given unit to kilograms.
func ToKg(weight float64, unit model.Unit) float64 {
	if unit == model.UnitLb {
		return weight / LbPerKg
	}
	return weight
}

// FromKg converts a weight in kilograms to the given unit.
func FromKg(weightKg float64, unit model.Unit) float64 {
	if unit == model.UnitLb {
		return weightKg * LbPerKg
	}
	return weightKg
}

// RoundToIncrement snaps x to the nearest multiple of inc.
// A non-positive inc is treated as effectively zero-width so the call
// degenerates to the identity instead of dividing by zero.
func RoundToIncrement(x, inc float64) float64 {
	inc = math.Max(1e-9, inc)
	return math.Round(x/inc) * inc
}

// NormalizeDisplayWeight rounds a weight to the granularity lifters actually
// load: nearest 0.5 lb or nearest 0.25 kg. Display-only; it must not be
// applied before decision arithmetic.
func NormalizeDisplayWeight(weight float64, unit model.Unit) float64 {
	if unit == model.UnitLb {
		return math.Round(weight*2) / 2
	}
	return math.Round(weight*4) / 4
}

// ClampInt constrains x to [lo, hi].
func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
