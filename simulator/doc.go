// Package simulator implements State, the authoritative world model and the
// single atomic AdvanceStep operation.
//
// What
//
//   - State holds the matrix, the live fleet, accumulated energy, the
//     harmonics flag, and a connectivity index over the matrix plus a
//     virtual ground node.
//   - AdvanceStep consumes exactly one command per live agent (in ascending
//     bid order) and either transitions State and appends to its trace, or
//     returns the first-observed typed error, leaving State unchanged.
//
// Why
//
//   - The mandated order of processing (ambient energy, per-agent effects
//     with volatile-set interference checking, fusion pairing, group
//     quorum, deletions/insertions, groundedness assertion) must be a
//     single all-or-nothing transition: planners that want to try a step
//     before committing to it clone State first rather than relying on
//     partial rollback.
//
// Implementation choice
//
//   - AdvanceStep stages every matrix and connectivity mutation against a
//     scratch clone and only swaps it into State once every validation
//     stage (interference, fusion pairing, group quorum, groundedness) has
//     passed. This pays a clone's cost on every step, the same cost
//     speculative planning already budgets for, in exchange for a
//     simulator that can never leave State half-mutated, which matters
//     more here than shaving the constant factor off the common case.
//
// Complexity
//
//   - AdvanceStep: O(agents + R^3) on every step, since each step clones
//     the matrix and the connectivity index (see Implementation choice).
//     A full connectivity rebuild, also O(R^3), happens only when the step
//     voided a cell with a Full neighbour; see connectivity.go.
package simulator
