// Package reassemble composes the assemblers and disassembler under the
// shared planner framework into whole source-to-target strategies: drop
// the trivial case where source already equals target, otherwise either
// run one fixed (disassembler, assembler) pipeline or brute-force every
// available assembler against the disassembler and keep the cheapest by
// final energy.
package reassemble

import (
	"fmt"

	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/planner"
	"github.com/voxelfab/nanofab/planner/bfsassembler"
	"github.com/voxelfab/nanofab/planner/gridsweep"
	"github.com/voxelfab/nanofab/planner/gvoid"
	"github.com/voxelfab/nanofab/planner/voidpath"
	"github.com/voxelfab/nanofab/simulator"
)

// Assembler builds a trace from an empty matrix of target's R to target.
type Assembler func(target *model.Matrix) (*planner.Trace, error)

// Assemblers is every assembler this package knows how to try, in the
// order brute-force mode tries them.
var Assemblers = map[string]Assembler{
	"gridsweep":    gridsweep.Assemble,
	"bfsassembler": bfsassembler.Assemble,
	"voidpath":     voidpath.Assemble,
}

// assemblerOrder fixes brute-force's trial order so results are
// deterministic regardless of map iteration.
var assemblerOrder = []string{"gridsweep", "bfsassembler", "voidpath"}

// Plan builds a trace that turns source into target using the named
// assembler, short-circuiting to a bare Halt when the two already match.
func Plan(source, target *model.Matrix, assemblerName string) (*planner.Trace, error) {
	if trivial, ok := trivialMatch(source, target); ok {
		return trivial, nil
	}
	assemble, ok := Assemblers[assemblerName]
	if !ok {
		return nil, fmt.Errorf("reassemble: unknown assembler %q", assemblerName)
	}
	trace, _, err := disassembleThenAssemble(source, target, assemble)
	return trace, err
}

// BruteForce tries every known assembler paired with the layered group-void
// disassembler, keeping the run with the lowest final energy.
func BruteForce(source, target *model.Matrix) (*planner.Trace, error) {
	if trivial, ok := trivialMatch(source, target); ok {
		return trivial, nil
	}

	var (
		best       *planner.Trace
		bestEnergy int64
	)
	for _, name := range assemblerOrder {
		trace, s, err := disassembleThenAssemble(source, target, Assemblers[name])
		if err != nil {
			continue
		}
		if best == nil || s.Energy() < bestEnergy {
			best, bestEnergy = trace, s.Energy()
		}
	}
	if best == nil {
		return nil, fmt.Errorf("reassemble: no assembler reached target from source")
	}
	return best, nil
}

// trivialMatch returns a single-step Halt trace when source already equals
// target, so brute-force and single-strategy runs both skip disassembly and
// assembly entirely for a no-op request.
func trivialMatch(source, target *model.Matrix) (*planner.Trace, bool) {
	_, changed, err := model.Diff(source, target)
	if err != nil || changed != 0 {
		return nil, false
	}
	trace := planner.NewTrace()
	trace.Append(command.NewHalt())
	return trace, true
}

// disassembleThenAssemble reduces source to empty, strips the disassembler's
// trailing Halt (the fleet is left as a single agent at the origin), then
// continues the same simulation with assemble's commands for target. It
// returns the State the replay finished in so callers can compare final
// energy across strategies.
func disassembleThenAssemble(source, target *model.Matrix, assemble Assembler) (*planner.Trace, *simulator.State, error) {
	dtrace, err := gvoid.Disassemble(source)
	if err != nil {
		return nil, nil, err
	}
	dcmds := dtrace.Commands()
	if len(dcmds) == 0 || dcmds[len(dcmds)-1].Kind != command.Halt {
		return nil, nil, fmt.Errorf("reassemble: disassembler trace did not end in Halt")
	}
	dcmds = dcmds[:len(dcmds)-1]

	atrace, err := assemble(target)
	if err != nil {
		return nil, nil, err
	}
	acmds := atrace.Commands()

	s := simulator.NewStateFromMatrix(source.Clone())
	if err := simulator.Replay(s, dcmds); err != nil {
		return nil, nil, err
	}
	if err := simulator.Replay(s, acmds); err != nil {
		return nil, nil, err
	}
	if !s.Finalise(target) {
		return nil, nil, fmt.Errorf("reassemble: trace did not converge on target")
	}

	out := planner.NewTrace()
	out.Append(dcmds...)
	out.Append(acmds...)
	return out, s, nil
}
