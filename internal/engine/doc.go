// Package engine explores functions translated into CIR path by path and
// reports defects found on each path.
//
// Exploration is a depth-first walk over immutable paths. Every path holds a
// [symbolic.State] together with the notes collected along the way, so a
// finding carries the sequence of assumptions that led to it.
//
// Core components:
//
//   - Engine
//     Runs exploration of functions, one goroutine per function, with a
//     bounded number of paths per function.
//
//   - Cast modeling
//     Calls recognized by [castvalue.Modeler] fork the path into one
//     successor per feasible outcome. Other calls yield fresh symbols.
//
//   - Reporter
//     Collects and deduplicates findings of all functions. Reports of
//     inspection helpers (analyzer.Eval and the like) are collected
//     along with defects when enabled.
//
//   - Context
//     Maps a finding position to the source range of the innermost
//     statement holding it.
package engine
