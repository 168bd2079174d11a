// Package model defines the domain types and value objects for the
// kinetiq recommendation engine.
//
// This package contains pure data structures with no external dependencies.
// All entities (Settings, ExerciseConfig, ObservedSet, Recommendation) are
// immutable value objects created fresh per call — the engine holds no state
// between invocations, so nothing here is persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling,
// plus the typed ConfigError/InputError values the engine surfaces.
package model
