// Package services defines shared utilities consumed by the organize
// pipeline phases.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and phase names for logging
//     and tracing.
//   - Structured error markers plus the Wrap helper that distinguish fatal
//     startup failures from per-file failures the run tolerates.
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform across the engine.
package services
