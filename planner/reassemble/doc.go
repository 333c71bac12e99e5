// Package reassemble groups the disassemble-then-assemble and brute-force
// reassemblers under the shared planner framework. See Plan and BruteForce.
package reassemble
