// Package domain holds the schedule assignment engine.
//
// The engine is split into leaf-first subpackages:
//   - timeslot: day and time-of-day parsing, hourly slot keys, overlap checks.
//   - catalog: subject, group and session records plus the read-only Reader
//     contract the engine consumes.
//   - conflict: advisory detection of slots already taken by other groups.
//   - assignment: the mutable slot map and the per-subject credit ledger.
//   - command: plain-data add/remove records, their tagged results, the
//     executor that interprets them and the undo/redo history.
//
// The schedule package composes these into the public facade.
package domain
