// Package gvoid implements the layered group-void disassembler: the
// bounding box is split into axis-aligned x/z tiles no larger than 30 on a
// side (GVoid's far-corner offset is bounded by a Chebyshev length of 30),
// and each tile is cleared one y-layer at a time, top-down, by a small
// fleet of agents parked at the layer's corners issuing one GVoid apiece.
package gvoid

import (
	"fmt"

	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
	"github.com/voxelfab/nanofab/planner"
	"github.com/voxelfab/nanofab/simulator"
)

// maxSlab is the largest tile extent GVoid's FCD argument can reach in one
// axis (its Chebyshev length is bounded by 30).
const maxSlab = 30

type tile struct{ xlo, xhi, zlo, zhi int }

// Disassemble plans a trace that reduces source to the empty matrix of the
// same R, ending in Halt.
func Disassemble(source *model.Matrix) (*planner.Trace, error) {
	s := simulator.NewStateFromMatrix(source.Clone())
	trace := planner.NewTrace()

	region, ok := planner.BoundingBox(source)
	if !ok {
		return finish(s, trace, ncd.Origin(), source)
	}
	c := region.Canonical()
	transitY := c.B.Y + 1

	tiles := tileGrid(c.A.X, c.B.X, c.A.Z, c.B.Z)

	maxCorners := 1
	for _, t := range tiles {
		if n := len(cornersOf(t, c.B.Y)); n > maxCorners {
			maxCorners = n
		}
	}

	// viaY sits above every parked lane (transitY..transitY+maxCorners-1),
	// so the lateral leg of each GrowFleet/RegroupFleet transit never
	// crosses a lane an earlier agent already occupies.
	viaY := transitY + maxCorners
	if viaY >= source.R() {
		return nil, planner.ErrProtocolExhaustion
	}

	lanes := make([]ncd.Position, maxCorners)
	for i := range lanes {
		lanes[i] = ncd.Position{X: c.A.X, Y: transitY + i, Z: c.A.Z}
	}
	pos, err := planner.GrowFleet(s, trace, ncd.Origin(), lanes, viaY)
	if err != nil {
		return nil, err
	}

	for y := c.B.Y; y >= c.A.Y; y-- {
		for _, t := range tiles {
			if err := voidTileLayer(s, trace, pos, t, y); err != nil {
				return nil, err
			}
		}
	}

	// The rendezvous sits one above transitY, clear of the corner cells
	// where the fleet parked for the bottom layer, so the fusion partner's
	// cell beside it is never occupied.
	final, err := planner.RegroupFleet(s, trace, pos, ncd.Position{X: c.A.X, Y: transitY + 1, Z: c.A.Z}, viaY)
	if err != nil {
		return nil, err
	}

	return finish(s, trace, final, source)
}

// tileGrid partitions [xlo,xhi]x[zlo,zhi] into chunks of at most maxSlab
// cells per axis.
func tileGrid(xlo, xhi, zlo, zhi int) []tile {
	var xs [][2]int
	for x := xlo; x <= xhi; x += maxSlab {
		hi := x + maxSlab - 1
		if hi > xhi {
			hi = xhi
		}
		xs = append(xs, [2]int{x, hi})
	}
	var zs [][2]int
	for z := zlo; z <= zhi; z += maxSlab {
		hi := z + maxSlab - 1
		if hi > zhi {
			hi = zhi
		}
		zs = append(zs, [2]int{z, hi})
	}
	var out []tile
	for _, xr := range xs {
		for _, zr := range zs {
			out = append(out, tile{xlo: xr[0], xhi: xr[1], zlo: zr[0], zhi: zr[1]})
		}
	}
	return out
}

// cornersOf returns the distinct (x,y,z) corners of t at height y, matching
// ncd.Region.Corners' x-major, y, z ordering (y degenerates to a single
// value since a layer is one cell thick).
func cornersOf(t tile, y int) []ncd.Position {
	region := ncd.NewRegion(ncd.Position{X: t.xlo, Y: y, Z: t.zlo}, ncd.Position{X: t.xhi, Y: y, Z: t.zhi})
	return region.Corners()
}

// voidTileLayer parks enough of the fleet one cell above t's corners at
// height y (the rest Wait in their own lanes) and issues one GVoid per
// corner agent. Each agent moves laterally at its current height before
// descending, so it never drops through the lane column where the fleet's
// lower agents are still stacked.
func voidTileLayer(s *simulator.State, trace *planner.Trace, pos []ncd.Position, t tile, y int) error {
	corners := cornersOf(t, y)
	for i, c := range corners {
		above := ncd.Position{X: c.X, Y: y + 1, Z: c.Z}
		if err := planner.DriveAgentViaLane(s, trace, pos, i, above, pos[i].Y); err != nil {
			return err
		}
	}

	down := mustNCD(0, -1, 0)
	if len(corners) == 1 {
		// A single-cell tile has no distinct far corner, so GVoid's
		// nonzero-extent requirement can't be met; fall back to a plain
		// Void from the one parked agent.
		return planner.StepAgent(s, trace, pos, 0, command.NewVoid(down))
	}

	cmds := make([]command.Command, len(pos))
	for i := range cmds {
		cmds[i] = command.NewWait()
	}
	for i, c := range corners {
		far := oppositeCorner(c, t, y)
		fcd, err := ncd.NewFCD(far.X-c.X, far.Y-c.Y, far.Z-c.Z)
		if err != nil {
			return err
		}
		cmds[i] = command.NewGVoid(down, fcd)
	}
	if err := s.AdvanceStep(cmds); err != nil {
		return err
	}
	trace.Append(cmds...)
	return nil
}

// oppositeCorner returns the corner of t's layer diagonally across from c.
func oppositeCorner(c ncd.Position, t tile, y int) ncd.Position {
	x := t.xlo
	if c.X == t.xlo {
		x = t.xhi
	}
	z := t.zlo
	if c.Z == t.zlo {
		z = t.zhi
	}
	return ncd.Position{X: x, Y: y, Z: z}
}

func mustNCD(dx, dy, dz int) ncd.NCD {
	d, err := ncd.NewNCD(dx, dy, dz)
	if err != nil {
		panic(err)
	}
	return d
}

func finish(s *simulator.State, trace *planner.Trace, cur ncd.Position, source *model.Matrix) (*planner.Trace, error) {
	pos := []ncd.Position{cur}
	if err := planner.DriveAgentTo(s, trace, pos, 0, ncd.Origin()); err != nil {
		return nil, err
	}
	haltCmd := command.NewHalt()
	if err := s.AdvanceStep([]command.Command{haltCmd}); err != nil {
		return nil, err
	}
	trace.Append(haltCmd)

	empty, err := model.NewMatrix(source.R())
	if err != nil {
		return nil, err
	}
	if !s.Finalise(empty) {
		return nil, fmt.Errorf("gvoid: trace did not reduce source to empty")
	}
	return trace, nil
}
