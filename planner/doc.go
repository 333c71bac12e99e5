// Package planner holds the framework every trace generator shares:
// bounding-box detection, axis-aligned straight-move decomposition, a
// region snake-sweep order, a harmonics speculative-toggle guard, and the
// Trace accumulator the driver and nbtio consume.
//
// What
//
//   - BoundingBox finds the smallest axis-aligned Region containing a
//     matrix's Full cells.
//   - StraightAxisMoves decomposes a signed axis displacement into a chain
//     of SMove commands, each within the LLCD magnitude bound.
//   - SnakeOrder yields a region's lattice points in the per-layer,
//     alternating-direction order the column-sweep planners drive over.
//   - WouldFloat speculatively tries a command batch against a cloned
//     State and reports whether it would strand a filled voxel.
//   - GuardedStep applies a command batch through the harmonics control:
//     raise to High with a Flip when WouldFloat says it's needed, apply,
//     then Reground drops back to Low the moment it's safe again.
//   - Trace accumulates the commands a planner emits across many
//     AdvanceStep calls.
//
// Why
//
//   - Every named planner (gridsweep, bfsassembler, voidpath, gvoid,
//     reassemble) needs the same handful of primitives; keeping them here
//     avoids five divergent reimplementations of "decompose a move" or
//     "detect the bounding box".
//   - Individual planners' heuristic choices (which frontier cell to pick
//     next, how many agents to fission into) are explicitly out of scope
//     for fidelity to any one reference strategy: only this shared
//     infrastructure is load-bearing.
//
// Usage
//
//	region, ok := planner.BoundingBox(target)
//	moves := planner.StraightAxisMoves(0, 7) // +7 along x
//	trace := planner.NewTrace()
//	trace.Append(moves...)
package planner
