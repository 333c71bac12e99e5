// Package gridsweep implements the grid-sweep assembler: a single agent
// walks a snake pattern one layer above the target's bounding box, dropping
// Fill commands from above.
package gridsweep

import (
	"fmt"

	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
	"github.com/voxelfab/nanofab/planner"
	"github.com/voxelfab/nanofab/simulator"
)

// Assemble plans a trace that builds target from an empty matrix of the
// same R, using a single agent transiting one layer above the bounding box.
func Assemble(target *model.Matrix) (*planner.Trace, error) {
	s, err := simulator.NewState(target.R())
	if err != nil {
		return nil, err
	}
	trace := planner.NewTrace()
	cur := ncd.Origin()

	region, ok := planner.BoundingBox(target)
	if ok {
		transitY := region.Canonical().B.Y + 1
		if transitY >= target.R() {
			return nil, planner.ErrProtocolExhaustion
		}

		for _, p := range planner.SnakeOrder(region) {
			v, err := target.Get(p)
			if err != nil {
				return nil, err
			}
			if v != model.Full {
				continue
			}
			if err := planner.ApproachAndFillDown(s, trace, &cur, p, transitY); err != nil {
				return nil, err
			}
		}

		if err := planner.DriveTo(s, trace, &cur, ncd.Position{X: cur.X, Y: transitY, Z: cur.Z}); err != nil {
			return nil, err
		}
		if err := planner.DriveTo(s, trace, &cur, ncd.Position{X: 0, Y: transitY, Z: 0}); err != nil {
			return nil, err
		}
	}

	if err := planner.DriveTo(s, trace, &cur, ncd.Origin()); err != nil {
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
		return nil, fmt.Errorf("gridsweep: trace did not reach target")
	}
	return trace, nil
}
