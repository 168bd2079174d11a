// Package engine implements the next-set decision table.
//
// Recommend maps one observed set plus configuration to exactly one of five
// actions and a fully resolved next-set prescription. The evaluation is a
// single transition step: classify the observed effort against the target
// RPE band (too hard / too easy / in target), then break the tie on whether
// reps are already at a rep-range boundary. Reps move before load — the
// engine only changes external weight when reps are saturated at a boundary,
// and every weight change is capped by the configured max jump.
//
// The engine is pure and stateless: no I/O, no shared state, safe for
// concurrent use. Each call is independent; the caller feeds the previous
// prescription (or a fresh log) back in as the next observed set.
package engine
