// Package model defines the domain types for the kinetiq recommendation engine.
//
// All entities in this package are value objects: they are supplied fresh on
// every engine invocation, are never mutated by the engine, and carry no
// identity beyond the opaque exercise name the caller chooses. The engine is
// stateless between calls, so these types double as its full wire contract.
package model

import (
	"fmt"
	"strings"
)

// Unit is the weight unit a caller works in. All weight quantities within a
// single engine call (observed weight, increments, jump caps) share one unit;
// cross-unit conversion is a collaborator concern handled outside the engine
// (see the units package).
type Unit string

const (
	// UnitLb is pounds, total bar weight (not per side).
	UnitLb Unit = "lb"

	// UnitKg is kilograms, total bar weight.
	UnitKg Unit = "kg"
)

// String returns the string representation of Unit.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and JSON payloads.
func (u Unit) String() string {
	return string(u)
}

// IsValid checks whether the Unit value is one of the predefined units.
func (u Unit) IsValid() bool {
	switch u {
	case UnitLb, UnitKg:
		return true
	default:
		return false
	}
}

// ParseUnit converts a string to a Unit.
// Returns an error if the string does not match any valid unit.
func ParseUnit(s string) (Unit, error) {
	unit := Unit(strings.ToLower(s))
	if !unit.IsValid() {
		return "", fmt.Errorf("invalid unit: %q (valid: lb, kg)", s)
	}
	return unit, nil
}

// Action is the adjustment the engine prescribes for the next set.
// Exactly one action is selected per call; the five values are exhaustive
// and mutually exclusive outcomes of the decision table.
type Action string

const (
	// ActionAddWeight increases load and resets reps to the rep-range floor.
	ActionAddWeight Action = "add_weight"

	// ActionAddReps adds reps toward the rep-range ceiling; load unchanged.
	ActionAddReps Action = "add_reps"

	// ActionStay repeats the same set unchanged.
	ActionStay Action = "stay"

	// ActionLowerWeight decreases load; reps stay at the rep-range floor.
	ActionLowerWeight Action = "lower_weight"

	// ActionLowerReps removes reps toward the rep-range floor; load unchanged.
	ActionLowerReps Action = "lower_reps"
)

// String returns the string representation of Action.
func (a Action) String() string {
	return string(a)
}

// IsValid checks whether the Action value is one of the five
// predefined actions.
func (a Action) IsValid() bool {
	switch a {
	case ActionAddWeight, ActionAddReps, ActionStay, ActionLowerWeight, ActionLowerReps:
		return true
	default:
		return false
	}
}

// ChangesWeight reports whether the action moves load. Weight-changing
// actions always pin the next set's reps to the rep-range floor.
func (a Action) ChangesWeight() bool {
	return a == ActionAddWeight || a == ActionLowerWeight
}

// ParseAction converts a string to an Action.
// Returns an error if the string does not match any valid action.
func ParseAction(s string) (Action, error) {
	action := Action(strings.ToLower(s))
	if !action.IsValid() {
		return "", fmt.Errorf("invalid action: %q (valid: add_weight, add_reps, stay, lower_weight, lower_reps)", s)
	}
	return action, nil
}

// Settings holds the global, exercise-independent user settings: the working
// unit plus the per-unit default increment and default jump cap. Exercise-level
// overrides in ExerciseConfig take precedence over these defaults.
type Settings struct {
	// Unit is the weight unit all quantities in a call are expressed in.
	Unit Unit `json:"unit"`

	// LbIncrement is the default total-weight increment in pounds.
	LbIncrement float64 `json:"lbIncrement"`

	// KgIncrement is the default total-weight increment in kilograms.
	KgIncrement float64 `json:"kgIncrement"`

	// MaxJumpLb is the safety cap on a single weight change, in pounds.
	MaxJumpLb float64 `json:"maxJumpLb"`

	// MaxJumpKg is the safety cap on a single weight change, in kilograms.
	MaxJumpKg float64 `json:"maxJumpKg"`
}

// DefaultSettings returns the stock settings: pounds, 2.5 lb / 1.25 kg
// increments, 10 lb / 5 kg jump caps.
func DefaultSettings() Settings {
	return Settings{
		Unit:        UnitLb,
		LbIncrement: 2.5,
		KgIncrement: 1.25,
		MaxJumpLb:   10.0,
		MaxJumpKg:   5.0,
	}
}

// Increment returns the default increment for the active unit.
func (s Settings) Increment() float64 {
	if s.Unit == UnitKg {
		return s.KgIncrement
	}
	return s.LbIncrement
}

// MaxJump returns the default jump cap for the active unit.
func (s Settings) MaxJump() float64 {
	if s.Unit == UnitKg {
		return s.MaxJumpKg
	}
	return s.MaxJumpLb
}

// Validate checks the settings for structural validity. Increment and jump
// defaults must be usable for whichever unit is active, since they back any
// exercise that carries no override.
func (s Settings) Validate() error {
	if !s.Unit.IsValid() {
		return NewConfigError(fmt.Sprintf("invalid unit %q (valid: lb, kg)", string(s.Unit)))
	}
	if s.Increment() <= 0 {
		return NewConfigError(fmt.Sprintf("default %s increment must be > 0, got %g", s.Unit, s.Increment()))
	}
	if s.MaxJump() <= 0 {
		return NewConfigError(fmt.Sprintf("default %s max jump must be > 0, got %g", s.Unit, s.MaxJump()))
	}
	return nil
}

// ExerciseConfig is the per-exercise configuration: the rep range the lifter
// floats within, the target effort band, and optional overrides for the
// global increment/jump defaults. Overrides are expressed in the caller's
// working unit, same as Settings.
type ExerciseConfig struct {
	// Name identifies the exercise. Opaque to the decision logic; used only
	// for display and preset lookup.
	Name string `json:"name"`

	// RepMin and RepMax bound the rep range, inclusive. Reps float within
	// [RepMin, RepMax] before any load change. RepMin == RepMax is legal and
	// forces every progression through load.
	RepMin int `json:"repMin"`
	RepMax int `json:"repMax"`

	// RPEMin and RPEMax bound the target effort band, inclusive, on the
	// 1–10 RPE scale.
	RPEMin float64 `json:"rpeMin"`
	RPEMax float64 `json:"rpeMax"`

	// WeightIncrementOverride replaces the settings-level default increment
	// for this exercise when non-nil.
	WeightIncrementOverride *float64 `json:"weightIncrementOverride,omitempty"`

	// MaxJumpOverride replaces the settings-level default jump cap for this
	// exercise when non-nil.
	MaxJumpOverride *float64 `json:"maxJumpOverride,omitempty"`

	// RepsStep is how many reps a single add_reps/lower_reps step moves.
	// Zero is treated as the default of 1 by Normalize.
	RepsStep int `json:"repsStep,omitempty"`
}

// Normalize returns a copy with defaulted fields filled in.
// Currently only RepsStep defaults (0 → 1); explicit negative values are left
// for Validate to reject rather than silently corrected.
func (c ExerciseConfig) Normalize() ExerciseConfig {
	if c.RepsStep == 0 {
		c.RepsStep = 1
	}
	return c
}

// Midpoint returns the center of the target RPE band. It is the tie-break
// between adding load and repeating the set when reps are already at RepMax:
// effort at or below the midpoint counts as manageable.
func (c ExerciseConfig) Midpoint() float64 {
	return (c.RPEMin + c.RPEMax) / 2.0
}

// Validate checks the exercise configuration invariants. A violation is a
// ConfigError: the configuration must be fixed upstream, the engine never
// repairs it.
func (c ExerciseConfig) Validate() error {
	if c.RepMin > c.RepMax {
		return NewConfigError(fmt.Sprintf("rep range inverted: rep_min %d > rep_max %d", c.RepMin, c.RepMax))
	}
	if c.RepMin < 1 {
		return NewConfigError(fmt.Sprintf("rep_min must be >= 1, got %d", c.RepMin))
	}
	if c.RPEMin > c.RPEMax {
		return NewConfigError(fmt.Sprintf("target RPE range inverted: rpe_min %.1f > rpe_max %.1f", c.RPEMin, c.RPEMax))
	}
	if c.RPEMin < 1.0 || c.RPEMax > 10.0 {
		return NewConfigError(fmt.Sprintf("target RPE range [%.1f, %.1f] outside [1, 10]", c.RPEMin, c.RPEMax))
	}
	if c.RepsStep <= 0 {
		return NewConfigError(fmt.Sprintf("reps_step must be > 0, got %d", c.RepsStep))
	}
	if c.WeightIncrementOverride != nil && *c.WeightIncrementOverride <= 0 {
		return NewConfigError(fmt.Sprintf("weight increment override must be > 0, got %g", *c.WeightIncrementOverride))
	}
	if c.MaxJumpOverride != nil && *c.MaxJumpOverride <= 0 {
		return NewConfigError(fmt.Sprintf("max jump override must be > 0, got %g", *c.MaxJumpOverride))
	}
	return nil
}

// ObservedSet is one completed set as logged by the lifter: the load used,
// the reps achieved, and the self-reported effort. Weight is in the caller's
// working unit.
type ObservedSet struct {
	// Weight is the load used, > 0, in the caller's unit.
	Weight float64 `json:"weight"`

	// Reps is the rep count achieved. Zero is legal (a failed set) and
	// classifies like any other count at or below the rep floor.
	Reps int `json:"reps"`

	// RPE is the self-reported Rate of Perceived Exertion, 1–10.
	RPE float64 `json:"rpe"`
}

// Validate checks the observed set for clearly invalid values. The engine
// performs no clamping of malformed observations; it rejects them with an
// InputError so misclassification cannot happen silently.
func (o ObservedSet) Validate() error {
	if o.Weight <= 0 {
		return NewInputError(fmt.Sprintf("weight must be > 0, got %g", o.Weight))
	}
	if o.Reps < 0 {
		return NewInputError(fmt.Sprintf("reps must be >= 0, got %d", o.Reps))
	}
	if o.RPE < 1.0 || o.RPE > 10.0 {
		return NewInputError(fmt.Sprintf("RPE must be within [1, 10], got %g", o.RPE))
	}
	return nil
}

// SetPrescription is the fully resolved next set: one weight, one rep count,
// both in the caller's working unit.
type SetPrescription struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// Recommendation is the engine's complete output: the selected action plus
// the resolved next set. Either a full Recommendation is produced or an
// error is returned; there is no partial output.
type Recommendation struct {
	// Action is the prescribed adjustment, one of the five Action values.
	Action Action `json:"action"`

	// NextSet is the fully resolved weight and rep prescription.
	NextSet SetPrescription `json:"next_set"`

	// Unit echoes the unit the weights are expressed in.
	Unit Unit `json:"unit"`

	// Explanation is a one-line human-readable reason for the action.
	Explanation string `json:"explanation,omitempty"`
}
