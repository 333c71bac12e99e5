package simulator

import (
	"fmt"
	"sort"

	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
)

// regionKey identifies one GFill or GVoid region referenced this step; the
// same region can be referenced by every agent standing at one of its
// corners, and all of them share one claim over the region's cells.
type regionKey struct {
	kind   command.Kind
	region ncd.Region
}

// fusionClaim records one FusionP/FusionS command's own position, the
// partner position it names, and (for matching secondaries back into a
// primary's pool) the issuing agent's bid and seeds.
type fusionClaim struct {
	idx    int
	pos    ncd.Position
	target ncd.Position
	bid    int
	seeds  []int
}

// AdvanceStep validates and applies one batch of commands, exactly one per
// live agent, positioned at cmds[i] for the agent at s.Bots()[i], following
// a fixed order of processing. On any rule violation it returns the
// first-observed typed error and leaves State completely unchanged; every
// mutation is staged against scratch copies of the matrix and connectivity
// index and only swapped in once every validation stage has passed.
func (s *State) AdvanceStep(cmds []command.Command) error {
	n := len(s.bots)
	if len(cmds) != n {
		return fmt.Errorf("%w: want %d, got %d", ErrCommandCountMismatch, n, len(cmds))
	}

	ambient := int64(s.r*s.r*s.r)*ambientRate(s.harmonics) + int64(n)*ambientPerAgent
	energyDelta := ambient

	origFull := func(p ncd.Position) bool { return s.matrix.IsFull(p) }

	claimOwner := make(map[ncd.Position]int)
	nextGroup := n
	claim := func(p ncd.Position, owner int) error {
		if existing, ok := claimOwner[p]; ok && existing != owner {
			return ErrInterference
		}
		claimOwner[p] = owner
		return nil
	}

	newPos := make([]ncd.Position, n)
	selfSeedsByIdx := make(map[int][]int)
	haltIdx := -1
	flips := 0
	var fillTargets, voidTargets []ncd.Position
	var fissionSpawn []Nanobot
	var fusionPrimaries, fusionSecondaries []fusionClaim

	regionGroupID := make(map[regionKey]int)
	regionCorners := make(map[regionKey][]ncd.Position)

	for i, bot := range s.bots {
		newPos[i] = bot.Pos
		if err := claim(bot.Pos, i); err != nil {
			return err
		}

		switch c := cmds[i]; c.Kind {
		case command.Halt:
			if bot.Pos != ncd.Origin() || n != 1 || s.harmonics != Low {
				return ErrInvalidHalt
			}
			haltIdx = i

		case command.Wait:
			// no-op

		case command.Flip:
			flips++

		case command.SMove:
			d := c.LLCDArg()
			path := tracePath(bot.Pos, d)
			for _, p := range path {
				if !p.InBounds(s.r) {
					return ErrOutOfMatrix
				}
				if origFull(p) {
					return ErrCollision
				}
			}
			for _, p := range path {
				if err := claim(p, i); err != nil {
					return err
				}
			}
			newPos[i] = bot.Pos.Add(d)
			energyDelta += int64(2 * d.ManhattanLength())

		case command.LMove:
			d1, d2 := c.SLCDArgs()
			mid := bot.Pos.Add(d1)
			path := append(tracePath(bot.Pos, d1), tracePath(mid, d2)...)
			for _, p := range path {
				if !p.InBounds(s.r) {
					return ErrOutOfMatrix
				}
				if origFull(p) {
					return ErrCollision
				}
			}
			for _, p := range path {
				if err := claim(p, i); err != nil {
					return err
				}
			}
			newPos[i] = mid.Add(d2)
			energyDelta += int64(2 * (d1.ManhattanLength() + d2.ManhattanLength() + 2))

		case command.Fission:
			nArg, m := c.NCDArg(), c.FissionM()
			if len(bot.Seeds) == 0 || m < 0 || m > len(bot.Seeds)-1 {
				return ErrInvalidFission
			}
			childPos := bot.Pos.Add(nArg)
			if !childPos.InBounds(s.r) {
				return ErrInvalidFission
			}
			if err := claim(childPos, i); err != nil {
				return err
			}
			childSeeds := append([]int{}, bot.Seeds[1:m+1]...)
			selfSeedsByIdx[i] = append([]int{}, bot.Seeds[m+1:]...)
			fissionSpawn = append(fissionSpawn, Nanobot{Bid: bot.Seeds[0], Pos: childPos, Seeds: childSeeds})
			energyDelta += costFissionFlat

		case command.Fill:
			p := bot.Pos.Add(c.NCDArg())
			if !p.InBounds(s.r) {
				return ErrOutOfMatrix
			}
			if err := claim(p, i); err != nil {
				return err
			}
			fillTargets = append(fillTargets, p)
			if origFull(p) {
				energyDelta += costFillAlready
			} else {
				energyDelta += costFillNewVoid
			}

		case command.Void:
			p := bot.Pos.Add(c.NCDArg())
			if !p.InBounds(s.r) {
				return ErrOutOfMatrix
			}
			if err := claim(p, i); err != nil {
				return err
			}
			voidTargets = append(voidTargets, p)
			if origFull(p) {
				energyDelta += costVoidWasFull
			} else {
				energyDelta += costVoidAlready
			}

		case command.FusionP:
			target := bot.Pos.Add(c.NCDArg())
			if !target.InBounds(s.r) {
				return ErrOutOfMatrix
			}
			fusionPrimaries = append(fusionPrimaries, fusionClaim{idx: i, pos: bot.Pos, target: target})

		case command.FusionS:
			target := bot.Pos.Add(c.NCDArg())
			if !target.InBounds(s.r) {
				return ErrOutOfMatrix
			}
			fusionSecondaries = append(fusionSecondaries, fusionClaim{
				idx: i, pos: bot.Pos, target: target, bid: bot.Bid, seeds: bot.Seeds,
			})

		case command.GFill, command.GVoid:
			near := bot.Pos.Add(c.NCDArg())
			far := near.Add(c.FCDArg())
			if !near.InBounds(s.r) || !far.InBounds(s.r) {
				return ErrOutOfMatrix
			}
			region := ncd.NewRegion(near, far).Canonical()
			key := regionKey{kind: c.Kind, region: region}
			if _, seen := regionGroupID[key]; !seen {
				gid := nextGroup
				nextGroup++
				regionGroupID[key] = gid
				cells := region.Iter()
				for _, p := range cells {
					if err := claim(p, gid); err != nil {
						return err
					}
				}
				if c.Kind == command.GFill {
					for _, p := range cells {
						fillTargets = append(fillTargets, p)
						if origFull(p) {
							energyDelta += costFillAlready
						} else {
							energyDelta += costFillNewVoid
						}
					}
				} else {
					for _, p := range cells {
						voidTargets = append(voidTargets, p)
						if origFull(p) {
							energyDelta += costVoidWasFull
						} else {
							energyDelta += costVoidAlready
						}
					}
				}
			}
			regionCorners[key] = append(regionCorners[key], near)
		}
	}

	// Group quorum: every referenced region must have exactly 2^dim(R)
	// distinct agents claiming exactly its 2^dim(R) corners.
	for key, claimed := range regionCorners {
		want := key.region.Corners()
		if len(claimed) != len(want) {
			return ErrGroupQuorum
		}
		seen := make(map[ncd.Position]bool, len(want))
		wantSet := make(map[ncd.Position]bool, len(want))
		for _, p := range want {
			wantSet[p] = true
		}
		for _, p := range claimed {
			if seen[p] || !wantSet[p] {
				return ErrGroupQuorum
			}
			seen[p] = true
		}
	}

	// Fusion pairing: every primary must have a matching secondary, and
	// every secondary must be consumed by exactly one primary.
	secondaryByPos := make(map[ncd.Position]fusionClaim, len(fusionSecondaries))
	for _, sec := range fusionSecondaries {
		secondaryByPos[sec.pos] = sec
	}
	matchedSecondary := make(map[int]bool, len(fusionSecondaries))
	var fusionCredits int64
	for _, pri := range fusionPrimaries {
		sec, ok := secondaryByPos[pri.target]
		if !ok || sec.target != pri.pos {
			return ErrUnpairedFusion
		}
		matchedSecondary[sec.idx] = true
		fusionCredits += costFusionCredit
		// The primary absorbs the secondary's bid and seed pool, restoring
		// the undivided pool the pair held before their common ancestor's
		// Fission.
		selfSeedsByIdx[pri.idx] = mergeSeeds(s.bots[pri.idx].Seeds, sec.bid, sec.seeds)
	}
	if len(matchedSecondary) != len(fusionSecondaries) {
		return ErrUnpairedFusion
	}
	energyDelta += fusionCredits

	// Stage matrix mutations.
	scratchMatrix := s.matrix.Clone()
	for _, p := range fillTargets {
		if err := scratchMatrix.Set(p, model.Full); err != nil {
			return err
		}
	}
	for _, p := range voidTargets {
		if err := scratchMatrix.Set(p, model.Void); err != nil {
			return err
		}
	}
	scratchIsFull := func(p ncd.Position) bool { return scratchMatrix.IsFull(p) }

	// Stage connectivity updates.
	scratchConn := s.conn.clone()
	for _, p := range fillTargets {
		scratchConn.unionFilledNeighbours(p, scratchIsFull)
	}
	for _, p := range voidTargets {
		hadFullNeighbour := false
		for _, q := range neighbours6(p, s.r) {
			if scratchIsFull(q) {
				hadFullNeighbour = true
				break
			}
		}
		scratchConn.onVoid(p, hadFullNeighbour)
	}

	// Apply fleet bookkeeping: deletions (matched secondaries, Halt),
	// position/seed updates, then insertions (Fission children), then
	// re-sort by bid.
	deleted := make(map[int]bool, len(matchedSecondary)+1)
	for idx := range matchedSecondary {
		deleted[idx] = true
	}
	if haltIdx >= 0 {
		deleted[haltIdx] = true
	}

	finalBots := make([]Nanobot, 0, n+len(fissionSpawn))
	for i, bot := range s.bots {
		if deleted[i] {
			continue
		}
		nb := Nanobot{Bid: bot.Bid, Pos: newPos[i], Seeds: bot.Seeds}
		if seeds, ok := selfSeedsByIdx[i]; ok {
			nb.Seeds = seeds
		}
		finalBots = append(finalBots, nb)
	}
	finalBots = append(finalBots, fissionSpawn...)
	sortBots(finalBots)

	newHarmonics := s.harmonics
	if flips%2 == 1 {
		newHarmonics = !newHarmonics
	}

	// Final groundedness assertion.
	if newHarmonics == Low {
		for _, p := range scratchMatrix.FullCells() {
			if !scratchConn.grounded(p, scratchIsFull) {
				return ErrFloatingVoxel
			}
		}
	}

	// Commit.
	s.matrix = scratchMatrix
	s.conn = scratchConn
	s.bots = finalBots
	s.harmonics = newHarmonics
	s.energy += energyDelta
	s.trace = append(s.trace, cmds...)
	return nil
}

func ambientRate(h Harmonics) int64 {
	if h == High {
		return ambientHigh
	}
	return ambientLow
}

// tracePath returns every lattice point from start to start+d inclusive,
// one unit step at a time along d's single non-zero axis.
func tracePath(start ncd.Position, d ncd.CD) []ncd.Position {
	steps := d.ManhattanLength()
	dx, dy, dz := sign(d.Dx()), sign(d.Dy()), sign(d.Dz())
	pts := make([]ncd.Position, 0, steps+1)
	cur := start
	pts = append(pts, cur)
	for i := 0; i < steps; i++ {
		cur = ncd.Position{X: cur.X + dx, Y: cur.Y + dy, Z: cur.Z + dz}
		pts = append(pts, cur)
	}
	return pts
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// mergeSeeds combines a surviving agent's seed pool with the bid and seed
// pool of the partner it just fused with, into one ascending, duplicate-free
// pool.
func mergeSeeds(selfSeeds []int, partnerBid int, partnerSeeds []int) []int {
	merged := make([]int, 0, len(selfSeeds)+len(partnerSeeds)+1)
	merged = append(merged, selfSeeds...)
	merged = append(merged, partnerBid)
	merged = append(merged, partnerSeeds...)
	sort.Ints(merged)
	return merged
}

func sortBots(bots []Nanobot) {
	// insertion sort: the fleet is always small (<=40 live agents by
	// construction), so this is simpler and just as fast as sort.Slice.
	for i := 1; i < len(bots); i++ {
		for j := i; j > 0 && bots[j].Bid < bots[j-1].Bid; j-- {
			bots[j], bots[j-1] = bots[j-1], bots[j]
		}
	}
}
