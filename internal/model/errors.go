// errors.go defines the typed errors the engine surfaces and the exit-code
// machinery the CLI uses to translate them into process exit statuses.
//
// ConfigError and InputError are deliberately distinct types: a ConfigError
// means the caller's stored configuration is broken and must be fixed
// upstream, while an InputError means one observation was malformed. Both
// support errors.As so collaborators can branch on the class without
// string matching.
package model

import "fmt"

// ConfigError reports an invalid ExerciseConfig or Settings value
// (inverted ranges, non-positive increments or jump caps). It is never
// recovered internally.
type ConfigError struct {
	// Reason is the human-readable description of the violated invariant.
	Reason string
}

// Error satisfies the error interface.
func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// NewConfigError creates a ConfigError with the given reason.
func NewConfigError(reason string) *ConfigError {
	return &ConfigError{Reason: reason}
}

// InputError reports a clearly invalid ObservedSet (non-positive weight,
// negative reps, RPE outside the 1–10 scale). The engine rejects such
// observations rather than clamping them.
type InputError struct {
	// Reason is the human-readable description of the rejected value.
	Reason string
}

// Error satisfies the error interface.
func (e *InputError) Error() string {
	return "invalid observed set: " + e.Reason
}

// NewInputError creates an InputError with the given reason.
func NewInputError(reason string) *InputError {
	return &InputError{Reason: reason}
}

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidConfig indicates an exercise configuration or settings
	// value violated an invariant (ConfigError).
	ExitInvalidConfig ExitCode = 2

	// ExitInvalidInput indicates the observed set was malformed (InputError).
	ExitInvalidInput ExitCode = 3

	// ExitPresetNotFound indicates the requested exercise preset does
	// not exist.
	ExitPresetNotFound ExitCode = 4

	// ExitSettingsError indicates the settings file could not be read
	// or parsed.
	ExitSettingsError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
