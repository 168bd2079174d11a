package engine

import (
	"fmt"
	"math"

	"github.com/mmr-tortoise/kinetiq/internal/model"
	"github.com/mmr-tortoise/kinetiq/internal/progression"
)

// Band classifies an observed effort against the target RPE range.
// Classification is the first of the two decision steps; the three bands
// are exhaustive and mutually exclusive for any RPE value.
type Band string

const (
	// BandTooHard means the observed RPE exceeded the top of the target band.
	BandTooHard Band = "too_hard"

	// BandTooEasy means the observed RPE fell below the bottom of the band.
	BandTooEasy Band = "too_easy"

	// BandInTarget means the observed RPE was inside the band, inclusive
	// at both ends.
	BandInTarget Band = "in_target"
)

// String returns the string representation of Band.
func (b Band) String() string {
	return string(b)
}

// Classify places an observed RPE into one of the three effort bands.
// Band membership is inclusive at both edges: rpe == rpeMax is in target,
// not too hard.
func Classify(rpe, rpeMin, rpeMax float64) Band {
	switch {
	case rpe > rpeMax:
		return BandTooHard
	case rpe < rpeMin:
		return BandTooEasy
	default:
		return BandInTarget
	}
}

// Params holds the effective parameters for one evaluation, resolved once up
// front: exercise-level overrides win over settings-level defaults, and the
// band midpoint is precomputed for the manageable-effort tie-break.
type Params struct {
	// Increment is the configured weight step in the caller's unit.
	Increment float64

	// MaxJump is the safety cap on any single weight change, in the
	// caller's unit. It applies uniformly, independent of Increment.
	MaxJump float64

	// Midpoint is the center of the target RPE band.
	Midpoint float64
}

// ResolveParams computes the effective increment, jump cap, and band midpoint
// for a call. Returns a ConfigError if a resolved value is non-positive.
func ResolveParams(cfg model.ExerciseConfig, settings model.Settings) (Params, error) {
	p := Params{
		Increment: settings.Increment(),
		MaxJump:   settings.MaxJump(),
		Midpoint:  cfg.Midpoint(),
	}
	if cfg.WeightIncrementOverride != nil {
		p.Increment = *cfg.WeightIncrementOverride
	}
	if cfg.MaxJumpOverride != nil {
		p.MaxJump = *cfg.MaxJumpOverride
	}

	if p.Increment <= 0 {
		return Params{}, model.NewConfigError(fmt.Sprintf("resolved increment must be > 0, got %g", p.Increment))
	}
	if p.MaxJump <= 0 {
		return Params{}, model.NewConfigError(fmt.Sprintf("resolved max jump must be > 0, got %g", p.MaxJump))
	}
	return p, nil
}

// options holds per-call evaluation options.
type options struct {
	dynamicJump bool
}

// Option configures a single Recommend evaluation.
type Option func(*options)

// WithDynamicJump scales weight increases by how easy the set felt, using
// the progression jump table, instead of the flat configured increment.
// The dynamic jump is still floored at the increment and capped by the max
// jump; weight decreases are unaffected and stay conservative.
func WithDynamicJump() Option {
	return func(o *options) {
		o.dynamicJump = true
	}
}

// Recommend evaluates one observed set against its exercise configuration
// and user settings and returns the next-set prescription.
//
// The evaluation order is fixed: validate, resolve effective parameters,
// classify the effort band, then apply the boundary sub-decision for that
// band. Exactly one action results; there is no partial output.
func Recommend(observed model.ObservedSet, cfg model.ExerciseConfig, settings model.Settings, opts ...Option) (model.Recommendation, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg = cfg.Normalize()
	if err := settings.Validate(); err != nil {
		return model.Recommendation{}, err
	}
	if err := cfg.Validate(); err != nil {
		return model.Recommendation{}, err
	}
	if err := observed.Validate(); err != nil {
		return model.Recommendation{}, err
	}

	params, err := ResolveParams(cfg, settings)
	if err != nil {
		return model.Recommendation{}, err
	}

	rec := model.Recommendation{
		Unit: settings.Unit,
		NextSet: model.SetPrescription{
			Weight: observed.Weight,
			Reps:   observed.Reps,
		},
	}

	switch Classify(observed.RPE, cfg.RPEMin, cfg.RPEMax) {
	case BandTooHard:
		if observed.Reps <= cfg.RepMin {
			// Already at (or under) the rep floor: the only safe move left
			// is load. The decrease is one increment, capped by the jump
			// ceiling, and reps hold at the floor rather than climbing.
			rec.Action = model.ActionLowerWeight
			rec.NextSet.Weight = observed.Weight - math.Min(params.Increment, params.MaxJump)
			rec.NextSet.Reps = cfg.RepMin
			rec.Explanation = fmt.Sprintf("RPE %.1f > %.1f at low reps; reduce weight.", observed.RPE, cfg.RPEMax)
		} else {
			rec.Action = model.ActionLowerReps
			rec.NextSet.Reps = max(cfg.RepMin, observed.Reps-cfg.RepsStep)
			rec.Explanation = fmt.Sprintf("RPE %.1f > %.1f; reduce reps slightly.", observed.RPE, cfg.RPEMax)
		}

	case BandTooEasy:
		if observed.Reps >= cfg.RepMax {
			rec.Action = model.ActionAddWeight
			rec.NextSet.Weight = observed.Weight + weightIncrease(observed.RPE, params, settings.Unit, o)
			rec.NextSet.Reps = cfg.RepMin
			rec.Explanation = fmt.Sprintf("RPE %.1f < %.1f and reps capped; add weight and reset reps to %d.", observed.RPE, cfg.RPEMin, cfg.RepMin)
		} else {
			rec.Action = model.ActionAddReps
			rec.NextSet.Reps = min(cfg.RepMax, observed.Reps+cfg.RepsStep)
			rec.Explanation = fmt.Sprintf("RPE %.1f < %.1f; add reps.", observed.RPE, cfg.RPEMin)
		}

	case BandInTarget:
		if observed.Reps < cfg.RepMax {
			rec.Action = model.ActionAddReps
			rec.NextSet.Reps = min(cfg.RepMax, observed.Reps+cfg.RepsStep)
			rec.Explanation = fmt.Sprintf("RPE %.1f in target; add reps toward %d.", observed.RPE, cfg.RepMax)
		} else if observed.RPE <= params.Midpoint {
			// At the rep cap with manageable effort (at or below the band
			// midpoint): move load and restart the rep climb at the floor.
			rec.Action = model.ActionAddWeight
			rec.NextSet.Weight = observed.Weight + weightIncrease(observed.RPE, params, settings.Unit, o)
			rec.NextSet.Reps = cfg.RepMin
			rec.Explanation = fmt.Sprintf("At rep cap with manageable RPE (%.1f); add weight and reset reps to %d.", observed.RPE, cfg.RepMin)
		} else {
			rec.Action = model.ActionStay
			rec.Explanation = fmt.Sprintf("At rep cap but RPE (%.1f) is on the hard side; repeat to solidify.", observed.RPE)
		}
	}

	return rec, nil
}

// weightIncrease computes the magnitude of a weight increase. The default is
// the configured increment capped by the jump ceiling. In dynamic mode the
// increase scales with how easy the set felt, floored at the increment so a
// decided increase always moves at least one step, then snapped down onto
// the increment grid so the result stays loadable without breaching the cap.
func weightIncrease(rpe float64, params Params, unit model.Unit, o options) float64 {
	if !o.dynamicJump {
		return math.Min(params.Increment, params.MaxJump)
	}
	change := progression.JumpFromRPE(rpe, unit)
	change = math.Max(change, params.Increment)
	change = math.Min(params.MaxJump, change)
	if snapped := math.Floor(change/params.Increment+1e-9) * params.Increment; snapped >= params.Increment {
		change = snapped
	}
	return change
}
