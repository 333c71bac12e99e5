// Package nanofab simulates and plans nanobot construction traces over a
// voxel lattice: see package command for the wire command algebra, model
// for the voxel grid, simulator for the lock-step executor, planner for the
// assemble/disassemble/reassemble strategies, and driver/cmd/nanofab for
// the process entry point.
//
// Under the hood:
//
//	ncd/         bounded coordinate-difference kinds (NCD/SLCD/LLCD/FCD)
//	command/     the tagged command variant and its bit-exact codec
//	model/       the voxel matrix and its packed-bit file format
//	unionfind/   the disjoint-set forest backing connectivity checks
//	simulator/   State, the lock-step command executor
//	planner/     shared choreography plus the assemble/disassemble/
//	             reassemble strategies built on top of it
//	driver/      the closed configuration set and sub-command dispatch
//	nbtio/       .mdl/.nbt file codecs
//	cmd/nanofab/ the CLI entry point
package nanofab
