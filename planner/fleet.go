package planner

import (
	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/ncd"
	"github.com/voxelfab/nanofab/simulator"
)

// stepWithWaits advances s by one step in which only the agent at index idx
// acts; every other live agent issues Wait. Multi-agent choreographies use
// this to move or act one agent at a time, so two agents never need to be
// reasoned about moving in the same step.
func stepWithWaits(s *simulator.State, trace *Trace, n, idx int, cmd command.Command) error {
	cmds := waitVector(n)
	cmds[idx] = cmd
	if err := s.AdvanceStep(cmds); err != nil {
		return err
	}
	trace.Append(cmds...)
	return nil
}

// StepAgent advances s by one step in which only the agent at pos[idx]
// acts (cmd); every other live agent issues Wait.
func StepAgent(s *simulator.State, trace *Trace, pos []ncd.Position, idx int, cmd command.Command) error {
	return stepWithWaits(s, trace, len(pos), idx, cmd)
}

// DriveAgentTo moves the agent at pos[idx] to dst, one axis at a time,
// every other entry of pos issuing Wait each step. pos is updated in
// place.
func DriveAgentTo(s *simulator.State, trace *Trace, pos []ncd.Position, idx int, dst ncd.Position) error {
	if err := driveAgentAxis(s, trace, pos, idx, 0, dst.X-pos[idx].X); err != nil {
		return err
	}
	if err := driveAgentAxis(s, trace, pos, idx, 1, dst.Y-pos[idx].Y); err != nil {
		return err
	}
	return driveAgentAxis(s, trace, pos, idx, 2, dst.Z-pos[idx].Z)
}

func driveAgentAxis(s *simulator.State, trace *Trace, pos []ncd.Position, idx, axis, delta int) error {
	for _, mv := range StraightAxisMoves(axis, delta) {
		if err := stepWithWaits(s, trace, len(pos), idx, mv); err != nil {
			return err
		}
		d := mv.LLCDArg()
		pos[idx].X += d.Dx()
		pos[idx].Y += d.Dy()
		pos[idx].Z += d.Dz()
	}
	return nil
}

// DriveAgentViaLane moves the agent at pos[idx] up to height laneY at its
// current x/z, then laterally to dst's x/z, then down to dst.Y. Disassembly
// planners use this (rather than DriveAgentTo's direct x-then-y-then-z
// path) because their starting matrix is not empty: laneY is chosen above
// every Full cell in the whole matrix, so the lateral leg can never
// collide. The initial vertical leg assumes the agent's starting column is
// clear up to laneY (true whenever the source model leaves the fleet's
// birth column, x=0 z=0, unobstructed); general obstacle routing through
// an arbitrarily solid source is out of scope for this single-agent
// choreography.
func DriveAgentViaLane(s *simulator.State, trace *Trace, pos []ncd.Position, idx int, dst ncd.Position, laneY int) error {
	cur := pos[idx]
	if err := DriveAgentTo(s, trace, pos, idx, ncd.Position{X: cur.X, Y: laneY, Z: cur.Z}); err != nil {
		return err
	}
	if err := DriveAgentTo(s, trace, pos, idx, ncd.Position{X: dst.X, Y: laneY, Z: dst.Z}); err != nil {
		return err
	}
	return DriveAgentTo(s, trace, pos, idx, dst)
}

// DriveAgentDescendThenLateral moves the agent at pos[idx] to dst.Y at its
// current x/z first, then laterally to dst's x/z. Unlike DriveAgentViaLane
// this never revisits a height above where it started, so it's the safe
// choice once a top-down disassembly has already cleared every cell above
// the layer being worked: descending first keeps every intermediate cell
// inside that already-void volume, and the lateral leg at dst.Y (the next
// layer to clear) is void everywhere until this call starts carving it up.
func DriveAgentDescendThenLateral(s *simulator.State, trace *Trace, pos []ncd.Position, idx int, dst ncd.Position) error {
	if err := driveAgentAxis(s, trace, pos, idx, 1, dst.Y-pos[idx].Y); err != nil {
		return err
	}
	if err := driveAgentAxis(s, trace, pos, idx, 0, dst.X-pos[idx].X); err != nil {
		return err
	}
	return driveAgentAxis(s, trace, pos, idx, 2, dst.Z-pos[idx].Z)
}

// spawnOffset picks an NCD step from origin that stays in bounds, used to
// give a freshly Fissioned child somewhere to land next to its parent
// before it moves off to its own target.
func spawnOffset(s *simulator.State, origin ncd.Position) ncd.NCD {
	if origin.X+1 < s.R() {
		return mustNCD(1, 0, 0)
	}
	return mustNCD(-1, 0, 0)
}

func negateNCD(n ncd.NCD) ncd.NCD {
	return mustNCD(-n.Dx(), -n.Dy(), -n.Dz())
}

// GrowFleet grows the sole agent at start into len(targets) agents parked
// at targets, one per entry, via repeated Fission from the first agent
// followed by a solo drive of the new child to its slot. This simplifies
// the fission choreography to a single growth line rather than a balanced
// Nx×Nz grid: every child is grown from agent 0 and immediately relocated,
// so no two agents are ever in flight at once and
// ApproachAndFillDown's collision-free transit-lane argument applies
// unchanged to each solo leg. Returns the final per-agent positions, in
// ascending-bid (creation) order.
func GrowFleet(s *simulator.State, trace *Trace, start ncd.Position, targets []ncd.Position, viaY int) ([]ncd.Position, error) {
	pos := []ncd.Position{start}
	if err := DriveAgentViaLane(s, trace, pos, 0, targets[0], viaY); err != nil {
		return nil, err
	}
	for i := 1; i < len(targets); i++ {
		off := spawnOffset(s, pos[0])
		spawn := pos[0].Add(off)
		fissionCmd := command.NewFission(off, 0)
		if err := stepWithWaits(s, trace, len(pos), 0, fissionCmd); err != nil {
			return nil, err
		}
		pos = append(pos, spawn)
		childIdx := len(pos) - 1
		if err := DriveAgentViaLane(s, trace, pos, childIdx, targets[i], viaY); err != nil {
			return nil, err
		}
	}
	return pos, nil
}

// RegroupFleet reverses GrowFleet: it drives agent 0 to rendezvous via viaY,
// then repeatedly brings the highest-bid remaining agent alongside it and
// fuses the pair, until a single agent remains at rendezvous.
func RegroupFleet(s *simulator.State, trace *Trace, pos []ncd.Position, rendezvous ncd.Position, viaY int) (ncd.Position, error) {
	if err := DriveAgentViaLane(s, trace, pos, 0, rendezvous, viaY); err != nil {
		return ncd.Position{}, err
	}
	for len(pos) > 1 {
		last := len(pos) - 1
		off := spawnOffset(s, pos[0])
		adj := pos[0].Add(off)
		if err := DriveAgentViaLane(s, trace, pos, last, adj, viaY); err != nil {
			return ncd.Position{}, err
		}

		cmds := make([]command.Command, len(pos))
		for i := range cmds {
			cmds[i] = command.NewWait()
		}
		cmds[0] = command.NewFusionP(off)
		cmds[last] = command.NewFusionS(negateNCD(off))
		if err := s.AdvanceStep(cmds); err != nil {
			return ncd.Position{}, err
		}
		trace.Append(cmds...)
		pos = pos[:last]
	}
	return pos[0], nil
}
