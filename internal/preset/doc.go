// Package preset supplies ready-made exercise configurations.
//
// Built-in presets cover the common barbell lifts with sensible rep ranges
// and per-exercise increment defaults (squat and deadlift variants move in
// larger steps than upper-body lifts). Additional presets can be loaded from
// a YAML file, which is validated entry by entry before use.
package preset
