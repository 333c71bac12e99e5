// Package voidpath implements the void-path assembler: a single agent
// repeatedly selects the target cell ordered by height and Manhattan
// distance from its current position and fills it from above. A second
// pass Voids every Full cell that is not in target; since Assemble always
// starts from an empty matrix and the first pass fills only target cells,
// that pass finds nothing to clear. See the stop type for the
// ascending-vs-descending-y choice.
package voidpath

import (
	"fmt"
	"sort"

	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
	"github.com/voxelfab/nanofab/planner"
	"github.com/voxelfab/nanofab/simulator"
)

// stop is one remaining target cell, scored by height and Manhattan
// distance from the position the agent held when it was last scored.
//
// The source orders this queue by descending y; this single-agent walk
// orders ascending y instead (then distance, x, z as ties), so each
// layer is filled before the one above it. A Fill that would still leave a
// voxel floating goes through planner.GuardedStep, which flips harmonics
// around it.
//
// Every Fill moves the agent, which changes every remaining cell's
// distance score at once, so there is no stable priority a heap could
// amortise across iterations: the cheapest correct structure is a plain
// linear scan for the current minimum, redone each time cur moves.
type stop struct {
	pos  ncd.Position
	dist int
}

func less(a, b stop) bool {
	if a.pos.Y != b.pos.Y {
		return a.pos.Y < b.pos.Y
	}
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.pos.X != b.pos.X {
		return a.pos.X < b.pos.X
	}
	return a.pos.Z < b.pos.Z
}

// nearest scans pending for the cell with the lowest (y, dist, x, z) score
// relative to cur and returns its index.
func nearest(pending []ncd.Position, cur ncd.Position) int {
	best := 0
	bestStop := stop{pos: pending[0], dist: cur.Manhattan(pending[0])}
	for i := 1; i < len(pending); i++ {
		cand := stop{pos: pending[i], dist: cur.Manhattan(pending[i])}
		if less(cand, bestStop) {
			best, bestStop = i, cand
		}
	}
	return best
}

// Assemble plans a trace that builds target from an empty matrix of the
// same R, visiting Full cells nearest-neighbour first.
func Assemble(target *model.Matrix) (*planner.Trace, error) {
	s, err := simulator.NewState(target.R())
	if err != nil {
		return nil, err
	}
	trace := planner.NewTrace()
	cur := ncd.Origin()

	region, ok := planner.BoundingBox(target)
	if !ok {
		return finish(s, trace, &cur, target)
	}
	transitY := region.Canonical().B.Y + 1
	if transitY >= target.R() {
		return nil, planner.ErrProtocolExhaustion
	}

	pending := target.FullCells()
	for len(pending) > 0 {
		idx := nearest(pending, cur)
		next := pending[idx]
		if err := planner.ApproachAndFillDown(s, trace, &cur, next, transitY); err != nil {
			return nil, err
		}

		last := len(pending) - 1
		pending[idx] = pending[last]
		pending = pending[:last]
	}

	if err := voidScaffold(s, trace, &cur, target); err != nil {
		return nil, err
	}

	return finish(s, trace, &cur, target)
}

// voidScaffold removes any Full cell not present in target, in descending-y
// order so never-grounded overhangs are cleared before their supports.
func voidScaffold(s *simulator.State, trace *planner.Trace, cur *ncd.Position, target *model.Matrix) error {
	var extra []ncd.Position
	for _, p := range s.Matrix().FullCells() {
		v, err := target.Get(p)
		if err != nil {
			return err
		}
		if v != model.Full {
			extra = append(extra, p)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Y > extra[j].Y })
	for _, p := range extra {
		if err := planner.DriveTo(s, trace, cur, ncd.Position{X: p.X, Y: p.Y + 1, Z: p.Z}); err != nil {
			return err
		}
		voidCmd := command.NewVoid(mustDown())
		if err := s.AdvanceStep([]command.Command{voidCmd}); err != nil {
			return err
		}
		trace.Append(voidCmd)
	}
	return nil
}

func mustDown() ncd.NCD {
	d, err := ncd.NewNCD(0, -1, 0)
	if err != nil {
		panic(err)
	}
	return d
}

func finish(s *simulator.State, trace *planner.Trace, cur *ncd.Position, target *model.Matrix) (*planner.Trace, error) {
	if err := planner.DriveTo(s, trace, cur, ncd.Origin()); err != nil {
		return nil, err
	}
	if err := planner.Reground(s, trace); err != nil {
		return nil, err
	}
	haltCmd := command.NewHalt()
	if err := s.AdvanceStep([]command.Command{haltCmd}); err != nil {
		return nil, err
	}
	trace.Append(haltCmd)
	if !s.Finalise(target) {
		return nil, fmt.Errorf("voidpath: trace did not reach target")
	}
	return trace, nil
}
