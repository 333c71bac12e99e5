// Package bfsassembler implements the BFS/A*-frontier assembler: a single
// agent repeatedly pops the best-scored reachable target cell from a
// priority queue (Manhattan distance, a y-bias favouring lower layers, and
// random jitter for tie-breaking) and fills it from above, extending the
// frontier to its newly-groundable neighbours.
package bfsassembler

import (
	"container/heap"
	"fmt"
	"math/rand"

	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
	"github.com/voxelfab/nanofab/planner"
	"github.com/voxelfab/nanofab/simulator"
)

// yBias weights a candidate's height against its travel distance, favouring
// completing lower layers before higher ones (keeps the fleet grounded with
// fewer harmonics toggles).
const yBias = 200.0

// candidate is one not-yet-filled target cell known to be reachable (it
// borders either y=0 or an already-Full cell).
type candidate struct {
	pos   ncd.Position
	score float64
}

type frontier []*candidate

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].score < f[j].score }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*candidate)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// Assemble plans a trace that builds target from an empty matrix of the
// same R, using a best-first frontier search over reachable Full cells.
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

	rng := rand.New(rand.NewSource(42))
	pq := &frontier{}
	heap.Init(pq)
	queued := make(map[ncd.Position]bool)

	push := func(p ncd.Position) {
		if queued[p] {
			return
		}
		queued[p] = true
		heap.Push(pq, &candidate{pos: p, score: score(cur, p, rng)})
	}

	r := target.R()
	for x := 0; x < r; x++ {
		for z := 0; z < r; z++ {
			p := ncd.Position{X: x, Y: 0, Z: z}
			if v, _ := target.Get(p); v == model.Full {
				push(p)
			}
		}
	}

	want := len(target.FullCells())
	filled := 0
	stalled := 0 // pops since the last Fill
	for filled < want {
		if pq.Len() == 0 || stalled >= planner.DeadlockLimit {
			return nil, planner.ErrProtocolExhaustion
		}
		c := heap.Pop(pq).(*candidate)
		delete(queued, c.pos)

		if v, _ := s.Matrix().Get(c.pos); v == model.Full {
			stalled++
			continue // already filled reaching it from another neighbour
		}

		if err := planner.ApproachAndFillDown(s, trace, &cur, c.pos, transitY); err != nil {
			return nil, err
		}
		filled++
		stalled = 0

		for _, q := range neighbours6(c.pos, r) {
			if v, _ := target.Get(q); v != model.Full {
				continue
			}
			if v, _ := s.Matrix().Get(q); v == model.Full {
				continue
			}
			push(q)
		}
	}

	return finish(s, trace, &cur, target)
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
		return nil, fmt.Errorf("bfsassembler: trace did not reach target")
	}
	return trace, nil
}

func score(from, to ncd.Position, rng *rand.Rand) float64 {
	return float64(from.Manhattan(to)) + yBias*float64(to.Y) + rng.Float64()
}

func neighbours6(p ncd.Position, r int) []ncd.Position {
	cand := [6]ncd.Position{
		{X: p.X - 1, Y: p.Y, Z: p.Z}, {X: p.X + 1, Y: p.Y, Z: p.Z},
		{X: p.X, Y: p.Y - 1, Z: p.Z}, {X: p.X, Y: p.Y + 1, Z: p.Z},
		{X: p.X, Y: p.Y, Z: p.Z - 1}, {X: p.X, Y: p.Y, Z: p.Z + 1},
	}
	out := make([]ncd.Position, 0, 6)
	for _, q := range cand {
		if q.InBounds(r) {
			out = append(out, q)
		}
	}
	return out
}
