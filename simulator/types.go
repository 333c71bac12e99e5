package simulator

import (
	"errors"

	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
)

// Sentinel errors for AdvanceStep, one per rejection rule. All are fatal
// to the current simulation run; none are recovered inside the simulator.
var (
	ErrOutOfMatrix          = errors.New("simulator: position out of matrix bounds")
	ErrCollision            = errors.New("simulator: move would pass through a full cell")
	ErrInterference         = errors.New("simulator: two agents claimed the same volatile cell")
	ErrInvalidHalt          = errors.New("simulator: halt preconditions unmet")
	ErrInvalidFission       = errors.New("simulator: invalid fission arguments")
	ErrUnpairedFusion       = errors.New("simulator: fusion primary/secondary do not match")
	ErrGroupQuorum          = errors.New("simulator: group command region lacks or duplicates corner claimants")
	ErrFloatingVoxel        = errors.New("simulator: full voxel is not grounded under Low harmonics")
	ErrCommandCountMismatch = errors.New("simulator: command count does not match live agent count")
)

// Harmonics is the global flag authorising floating filled voxels.
type Harmonics bool

// The two Harmonics values.
const (
	Low  Harmonics = false
	High Harmonics = true
)

// InitialSeedLo and InitialSeedHi bound the seed pool handed to the first
// agent: bids 2..40 inclusive, so the fleet's bid universe is exactly
// {1,...,40}.
const (
	InitialSeedLo = 2
	InitialSeedHi = 40
)

// Nanobot is one live agent: a bid, a position, and the pool of bids it may
// hand out on Fission. Seeds are kept sorted ascending and distinct, and
// never contain the bot's own bid.
type Nanobot struct {
	Bid   int
	Pos   ncd.Position
	Seeds []int
}

// ambientPerAgent is the per-live-agent term of the ambient energy charge.
const ambientPerAgent = 20

// ambientLow and ambientHigh are the per-cell ambient energy rates under
// Low and High harmonics respectively.
const (
	ambientLow  = 3
	ambientHigh = 30
)

// Energy costs per command kind.
const (
	costFissionFlat  = 24
	costFillNewVoid  = 12
	costFillAlready  = 6
	costVoidWasFull  = -12
	costVoidAlready  = 3
	costFusionCredit = -24
)

// State is the authoritative world model: matrix, live fleet, energy,
// harmonics, and connectivity index.
type State struct {
	r         int
	matrix    *model.Matrix
	bots      []Nanobot // sorted ascending by Bid
	energy    int64
	harmonics Harmonics
	conn      *connectivity
	trace     []command.Command
}

// NewState builds the canonical initial State over an R×R×R empty matrix:
// one agent at the origin with bid 1 and seeds {2,...,40}, harmonics Low,
// energy 0.
func NewState(r int) (*State, error) {
	m, err := model.NewMatrix(r)
	if err != nil {
		return nil, err
	}
	return NewStateFromMatrix(m), nil
}

// NewStateFromMatrix builds the canonical initial State over a caller-built
// matrix (used to seed disassemble/reassemble runs from a non-empty
// source).
func NewStateFromMatrix(m *model.Matrix) *State {
	seeds := make([]int, 0, InitialSeedHi-InitialSeedLo+1)
	for b := InitialSeedLo; b <= InitialSeedHi; b++ {
		seeds = append(seeds, b)
	}
	s := &State{
		r:         m.R(),
		matrix:    m,
		bots:      []Nanobot{{Bid: 1, Pos: ncd.Origin(), Seeds: seeds}},
		harmonics: Low,
		conn:      newConnectivity(m.R()),
	}
	s.conn.rebuild(func(p ncd.Position) bool { return m.IsFull(p) })
	return s
}

// R returns the matrix side length.
func (s *State) R() int { return s.r }

// Matrix returns the current matrix. Callers must Clone it before mutating
// independently of State.
func (s *State) Matrix() *model.Matrix { return s.matrix }

// Bots returns the live fleet, sorted ascending by Bid.
func (s *State) Bots() []Nanobot {
	out := make([]Nanobot, len(s.bots))
	copy(out, s.bots)
	return out
}

// Energy returns the accumulated, monotonic-except-for-credits energy
// counter.
func (s *State) Energy() int64 { return s.energy }

// HarmonicsState returns the current harmonics flag.
func (s *State) HarmonicsState() Harmonics { return s.harmonics }

// Trace returns the commands accumulated by successful AdvanceStep calls so
// far, concatenated in step order.
func (s *State) Trace() []command.Command {
	out := make([]command.Command, len(s.trace))
	copy(out, s.trace)
	return out
}

// Clone returns an independent deep copy of s, for planners that need to
// speculatively simulate candidate steps.
func (s *State) Clone() *State {
	bots := make([]Nanobot, len(s.bots))
	for i, b := range s.bots {
		seeds := make([]int, len(b.Seeds))
		copy(seeds, b.Seeds)
		bots[i] = Nanobot{Bid: b.Bid, Pos: b.Pos, Seeds: seeds}
	}
	trace := make([]command.Command, len(s.trace))
	copy(trace, s.trace)
	return &State{
		r:         s.r,
		matrix:    s.matrix.Clone(),
		bots:      bots,
		energy:    s.energy,
		harmonics: s.harmonics,
		conn:      s.conn.clone(),
		trace:     trace,
	}
}

// Finalise succeeds iff there are no live agents and the matrix equals
// target.
func (s *State) Finalise(target *model.Matrix) bool {
	return len(s.bots) == 0 && s.matrix.Equal(target)
}
