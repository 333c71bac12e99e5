// Package ncd provides the coordinate-difference geometry primitives shared
// by the command algebra and the simulator: NCD (near), SLCD (short linear),
// LLCD (long linear), and FCD (far), plus Position and Region.
//
// What
//
//   - NCD: Chebyshev length 1, Manhattan length ≤ 2. Used by single-voxel
//     commands (Fill, Void, Fission, FusionP/FusionS, and the anchor of
//     GFill/GVoid).
//   - SLCD: axis-aligned, 1 ≤ |d| ≤ 5. Used by the two legs of LMove.
//   - LLCD: axis-aligned, 1 ≤ |d| ≤ 15. Used by SMove.
//   - FCD: any non-zero offset with Chebyshev length ≤ 30; not limited to
//     one axis. Used by the far corner of GFill/GVoid.
//   - Position: an integer lattice point, unconstrained by itself; range
//     validation against a matrix side happens where a Position is used.
//   - Region: a canonicalisable, enumerable axis-aligned box described by
//     two corner Positions.
//
// Why
//
//   - Every one of these ranges is a hard legality rule in the original
//     command set; centralising them here means the codec, the simulator,
//     and every planner validate distances identically instead of each
//     re-deriving the same bit-width arithmetic.
//
// Complexity
//
//   - All constructors and accessors are O(1). Region.Iter is O(volume).
package ncd
