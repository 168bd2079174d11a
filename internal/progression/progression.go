// Package progression implements the RPE-scaled progression rules: how large
// a load jump, or how many reps of adjustment, a given effort level earns.
//
// The jump table is defined in pounds and converted for kilogram users. The
// decision engine uses a fixed increment by default; the dynamic jump here is
// opt-in via engine.WithDynamicJump, which still floors the jump at the
// configured increment and caps it at the max jump.
package progression

import (
	"math"

	"github.com/mmr-tortoise/kinetiq/internal/model"
	"github.com/mmr-tortoise/kinetiq/internal/units"
)

// JumpFromRPELb returns the suggested load increase in pounds for a set
// finished at the given RPE. The rule is piecewise linear:
//
//	RPE 1–3   -> 10 to 5 lb
//	RPE 3–7   -> 5 to 2.5 lb
//	RPE 7–9   -> 2.5 to 0.5 lb
//	RPE 9–10  -> 0.5 to 0 lb
//
// The returned value is continuous; the caller rounds it to a loadable
// increment. Out-of-range RPE is clamped to [1, 10].
func JumpFromRPELb(rpe float64) float64 {
	rpe = math.Max(1.0, math.Min(10.0, rpe))

	switch {
	case rpe <= 3.0:
		// 1 -> 10, 3 -> 5
		return 12.5 - 2.5*rpe
	case rpe <= 7.0:
		// 4 -> 5, 7 -> 2.5
		return 5.0 + (rpe-4.0)*(-2.5/3.0)
	case rpe <= 9.0:
		// 7 -> 2.5, 9 -> 0.5
		return 2.5 + (rpe-7.0)*(-1.0)
	default:
		// 9 -> 0.5, 10 -> 0
		return math.Max(0.0, 0.5*(10.0-rpe))
	}
}

// JumpFromRPE returns the same rule expressed in the caller's unit.
func JumpFromRPE(rpe float64, unit model.Unit) float64 {
	jumpLb := JumpFromRPELb(rpe)
	if unit == model.UnitKg {
		return units.ToKg(jumpLb, model.UnitLb)
	}
	return jumpLb
}

// RepDeltaFromRPE returns a suggested rep adjustment for the given effort:
// large additions when the set was trivial, none near the top of the band,
// a removal past it.
//
//	RPE <= 3 -> +3
//	RPE <= 6 -> +2
//	RPE <= 8 -> +1
//	RPE <= 9 ->  0
//	else     -> -1
func RepDeltaFromRPE(rpe float64) int {
	switch {
	case rpe <= 3.0:
		return 3
	case rpe <= 6.0:
		return 2
	case rpe <= 8.0:
		return 1
	case rpe <= 9.0:
		return 0
	default:
		return -1
	}
}
