// Package model provides the dense R×R×R voxel grid (Matrix) and its packed
// binary codec.
//
// What
//
//   - Matrix stores Void/Full cells for a cubic grid of side R (1..=250) in
//     a flat, row-major-equivalent backing slice, the way matrix.Dense
//     stores an r*c backing slice instead of [][]float64.
//   - ReadModel/WriteModel implement the packed bit-stream format: byte 0 is
//     R, the remaining bytes are a little-endian bitstream over R³ entries
//     in x-major, then y, then z order (index = x*R*R + y*R + z).
//
// Why
//
//   - A flat []bool (or bitset) backing slice keeps random access and
//     iteration O(1)/O(R³) without the pointer-chasing and allocation
//     overhead of a [][][]Voxel, matching matrix.Dense's rationale for a
//     flat backing slice over nested slices.
//
// Complexity
//
//   - NewMatrix: O(R³). Get/Set: O(1). ReadModel/WriteModel: O(R³).
package model
