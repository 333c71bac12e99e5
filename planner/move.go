package planner

import (
	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/ncd"
	"github.com/voxelfab/nanofab/simulator"
)

var fillDown = mustNCD(0, -1, 0)

func mustNCD(dx, dy, dz int) ncd.NCD {
	n, err := ncd.NewNCD(dx, dy, dz)
	if err != nil {
		panic(err)
	}
	return n
}

// DriveTo moves the sole live agent in s from *cur to dst, one axis at a
// time (x, then y, then z), each straight-axis-mover SMove chunk its own
// AdvanceStep call. *cur is updated in place as each chunk lands.
func DriveTo(s *simulator.State, trace *Trace, cur *ncd.Position, dst ncd.Position) error {
	if err := driveAxis(s, trace, cur, 0, dst.X-cur.X); err != nil {
		return err
	}
	if err := driveAxis(s, trace, cur, 1, dst.Y-cur.Y); err != nil {
		return err
	}
	return driveAxis(s, trace, cur, 2, dst.Z-cur.Z)
}

func driveAxis(s *simulator.State, trace *Trace, cur *ncd.Position, axis, delta int) error {
	for _, mv := range StraightAxisMoves(axis, delta) {
		if err := s.AdvanceStep([]command.Command{mv}); err != nil {
			return err
		}
		trace.Append(mv)
		d := mv.LLCDArg()
		cur.X += d.Dx()
		cur.Y += d.Dy()
		cur.Z += d.Dz()
	}
	return nil
}

// ApproachAndFillDown moves the agent from *cur up to transitY, laterally to
// above target, down to target.Y+1, then Fills downward onto target. This
// is the shared "fill from above" transit pattern: lateral travel always
// happens at transitY, strictly above every cell any planner using this
// helper has filled so far, so it can never collide with already-Full
// voxels.
func ApproachAndFillDown(s *simulator.State, trace *Trace, cur *ncd.Position, target ncd.Position, transitY int) error {
	if err := DriveTo(s, trace, cur, ncd.Position{X: cur.X, Y: transitY, Z: cur.Z}); err != nil {
		return err
	}
	if err := DriveTo(s, trace, cur, ncd.Position{X: target.X, Y: transitY, Z: target.Z}); err != nil {
		return err
	}
	if err := DriveTo(s, trace, cur, ncd.Position{X: target.X, Y: target.Y + 1, Z: target.Z}); err != nil {
		return err
	}
	fillCmd := command.NewFill(fillDown)
	return GuardedStep(s, trace, []command.Command{fillCmd})
}
