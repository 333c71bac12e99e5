// Package unionfind provides a path-compressed, union-by-size disjoint-set
// forest over a fixed number of integer-indexed elements, used by the
// simulator's connectivity index.
//
// What
//
//   - New(n) allocates a forest of n singleton sets.
//   - Union(a,b) merges the sets containing a and b, attaching the smaller
//     set's root under the larger (union by size) and compressing paths
//     traversed along the way.
//   - Same(a,b) reports whether a and b share a root.
//   - ComponentSize(a) returns the size of a's set.
//
// Why
//
//   - This is the same disjoint-set algorithm prim_kruskal.Kruskal uses
//     (path compression, union by rank/size), promoted from that file's
//     inline map[string]string/map[string]int forest into a standalone,
//     array-indexed package: the simulator's domain is R^3+1 dense integer
//     indices, not graph vertex IDs, so a slice-backed forest avoids a map's
//     hashing overhead on what is the simulator's hottest data structure.
//   - The "+1" element is the virtual ground node; Fill
//     unions a cell with it when y=0, and every grounded-ness query reduces
//     to Same(cell, groundNode).
//
// Complexity
//
//   - New: O(n). Union/Same/ComponentSize: O(α(n)) amortised.
package unionfind
