package simulator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
)

func mustNCD(t *testing.T, dx, dy, dz int) ncd.NCD {
	t.Helper()
	n, err := ncd.NewNCD(dx, dy, dz)
	require.NoError(t, err)
	return n
}

func TestNewState_CanonicalFleet(t *testing.T) {
	s, err := NewState(3)
	require.NoError(t, err)
	require.Equal(t, 3, s.R())
	require.Equal(t, Low, s.HarmonicsState())
	require.Equal(t, int64(0), s.Energy())

	bots := s.Bots()
	require.Len(t, bots, 1)
	require.Equal(t, 1, bots[0].Bid)
	require.Equal(t, ncd.Origin(), bots[0].Pos)
	require.Len(t, bots[0].Seeds, 39)
	require.Equal(t, InitialSeedLo, bots[0].Seeds[0])
	require.Equal(t, InitialSeedHi, bots[0].Seeds[len(bots[0].Seeds)-1])
}

// TestAdvanceStep_FissionFusionRestoresFleet: fission then immediate
// fusion restores a single agent with the original bid/seed pool and the
// expected net energy delta.
func TestAdvanceStep_FissionFusionRestoresFleet(t *testing.T) {
	s, err := NewState(3)
	require.NoError(t, err)

	fissionCmd := command.NewFission(mustNCD(t, 1, 0, 0), 1)
	require.NoError(t, s.AdvanceStep([]command.Command{fissionCmd}))

	bots := s.Bots()
	require.Len(t, bots, 2)
	require.Equal(t, 1, bots[0].Bid)
	require.Equal(t, ncd.Origin(), bots[0].Pos)
	require.Equal(t, []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
		21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40}, bots[0].Seeds)
	require.Equal(t, 2, bots[1].Bid)
	require.Equal(t, ncd.Position{X: 1, Y: 0, Z: 0}, bots[1].Pos)
	require.Equal(t, []int{3}, bots[1].Seeds)

	energyAfterFission := s.Energy()

	primary := command.NewFusionP(mustNCD(t, 1, 0, 0))
	secondary := command.NewFusionS(mustNCD(t, -1, 0, 0))
	require.NoError(t, s.AdvanceStep([]command.Command{primary, secondary}))

	bots = s.Bots()
	require.Len(t, bots, 1)
	require.Equal(t, 1, bots[0].Bid)
	require.Equal(t, ncd.Origin(), bots[0].Pos)
	require.Len(t, bots[0].Seeds, 39)
	require.Equal(t, InitialSeedLo, bots[0].Seeds[0])
	require.Equal(t, InitialSeedHi, bots[0].Seeds[len(bots[0].Seeds)-1])

	ambient := int64(3*3*3) * ambientLow
	wantFissionDelta := ambient + 1*ambientPerAgent + costFissionFlat
	wantFusionDelta := ambient + 2*ambientPerAgent + costFusionCredit
	require.Equal(t, wantFissionDelta, energyAfterFission)
	require.Equal(t, wantFissionDelta+wantFusionDelta, s.Energy())
	require.Equal(t, 2*ambient+60, s.Energy())
}

// TestAdvanceStep_FloatingVoxelRejected is scenario S5.
func TestAdvanceStep_FloatingVoxelRejected(t *testing.T) {
	s, err := NewState(3)
	require.NoError(t, err)

	require.NoError(t, s.AdvanceStep([]command.Command{command.NewFill(mustNCD(t, 1, 0, 0))}))
	require.NoError(t, s.AdvanceStep([]command.Command{command.NewFill(mustNCD(t, 1, 1, 0))}))

	err = s.AdvanceStep([]command.Command{command.NewVoid(mustNCD(t, 1, 0, 0))})
	require.ErrorIs(t, err, ErrFloatingVoxel)

	// Rejected step must leave State completely unchanged.
	full, err := s.Matrix().Get(ncd.Position{X: 1, Y: 0, Z: 0})
	require.NoError(t, err)
	require.Equal(t, model.Full, full)
}

func TestAdvanceStep_HaltRequiresSoleAgentAtOriginLowHarmonics(t *testing.T) {
	s, err := NewState(2)
	require.NoError(t, err)

	err = s.AdvanceStep([]command.Command{command.NewHalt()})
	require.NoError(t, err)
	require.Empty(t, s.Bots())
	require.True(t, s.Finalise(mustEmptyMatrix(t, 2)))
}

func TestAdvanceStep_HaltRejectedWithMultipleAgents(t *testing.T) {
	s, err := NewState(3)
	require.NoError(t, err)
	require.NoError(t, s.AdvanceStep([]command.Command{command.NewFission(mustNCD(t, 1, 0, 0), 1)}))

	err = s.AdvanceStep([]command.Command{command.NewHalt(), command.NewWait()})
	require.ErrorIs(t, err, ErrInvalidHalt)
}

func TestAdvanceStep_CommandCountMismatch(t *testing.T) {
	s, err := NewState(3)
	require.NoError(t, err)
	err = s.AdvanceStep([]command.Command{command.NewWait(), command.NewWait()})
	require.ErrorIs(t, err, ErrCommandCountMismatch)
}

// TestAdvanceStep_InterferenceRejected checks property 4 (volatile
// disjointness): two agents targeting the same cell must be rejected.
func TestAdvanceStep_InterferenceRejected(t *testing.T) {
	s, err := NewState(3)
	require.NoError(t, err)
	require.NoError(t, s.AdvanceStep([]command.Command{command.NewFission(mustNCD(t, 1, 1, 0), 1)}))

	fillA := command.NewFill(mustNCD(t, 1, 0, 0))  // bot1 at origin -> (1,0,0)
	fillB := command.NewFill(mustNCD(t, 0, -1, 0)) // bot2 at (1,1,0) -> (1,0,0)
	err = s.AdvanceStep([]command.Command{fillA, fillB})
	require.ErrorIs(t, err, ErrInterference)
}

// TestAdvanceStep_EnergyMonotonicUnderLowHarmonics checks property 3.
func TestAdvanceStep_EnergyMonotonicUnderLowHarmonics(t *testing.T) {
	s, err := NewState(3)
	require.NoError(t, err)

	prev := s.Energy()
	steps := []command.Command{
		command.NewWait(),
		command.NewFill(mustNCD(t, 1, 0, 0)),
		command.NewSMove(mustLLCD(t, 0, 1, 0)),
	}
	for _, c := range steps {
		require.NoError(t, s.AdvanceStep([]command.Command{c}))
		require.GreaterOrEqual(t, s.Energy(), prev)
		prev = s.Energy()
	}
}

func mustFCD(t *testing.T, dx, dy, dz int) ncd.FCD {
	t.Helper()
	f, err := ncd.NewFCD(dx, dy, dz)
	require.NoError(t, err)
	return f
}

// TestAdvanceStep_GFillGroupQuorum exercises the two-corner-agent case of the
// region-command quorum rule: both agents naming the same canonical region
// must jointly claim exactly its corners, and the region fills once.
func TestAdvanceStep_GFillGroupQuorum(t *testing.T) {
	m, err := model.NewMatrix(5)
	require.NoError(t, err)
	s := NewStateFromMatrix(m)
	s.bots = []Nanobot{
		{Bid: 1, Pos: ncd.Position{X: 0, Y: 0, Z: 0}, Seeds: []int{2}},
		{Bid: 2, Pos: ncd.Position{X: 3, Y: 0, Z: 0}},
	}

	near := ncd.Position{X: 1, Y: 0, Z: 0}
	far := ncd.Position{X: 2, Y: 0, Z: 0}

	cmd1 := command.NewGFill(mustNCD(t, 1, 0, 0), mustFCD(t, 1, 0, 0))
	cmd2 := command.NewGFill(mustNCD(t, -1, 0, 0), mustFCD(t, -1, 0, 0))

	require.NoError(t, s.AdvanceStep([]command.Command{cmd1, cmd2}))

	for _, p := range []ncd.Position{near, far} {
		v, err := s.Matrix().Get(p)
		require.NoError(t, err)
		require.Equal(t, model.Full, v)
	}
}

// TestAdvanceStep_GFillMissingCornerRejected is the failure case: only one of
// the region's two corner agents shows up.
func TestAdvanceStep_GFillMissingCornerRejected(t *testing.T) {
	m, err := model.NewMatrix(5)
	require.NoError(t, err)
	s := NewStateFromMatrix(m)
	s.bots = []Nanobot{
		{Bid: 1, Pos: ncd.Position{X: 0, Y: 0, Z: 0}, Seeds: []int{2}},
		{Bid: 2, Pos: ncd.Position{X: 3, Y: 0, Z: 0}},
	}

	cmd1 := command.NewGFill(mustNCD(t, 1, 0, 0), mustFCD(t, 1, 0, 0))
	err = s.AdvanceStep([]command.Command{cmd1, command.NewWait()})
	require.ErrorIs(t, err, ErrGroupQuorum)
}

func mustLLCD(t *testing.T, dx, dy, dz int) ncd.LLCD {
	t.Helper()
	l, err := ncd.NewLLCD(dx, dy, dz)
	require.NoError(t, err)
	return l
}

func mustEmptyMatrix(t *testing.T, r int) *model.Matrix {
	t.Helper()
	m, err := model.NewMatrix(r)
	require.NoError(t, err)
	return m
}

func TestState_Clone_Independence(t *testing.T) {
	s, err := NewState(3)
	require.NoError(t, err)
	require.NoError(t, s.AdvanceStep([]command.Command{command.NewFill(mustNCD(t, 1, 0, 0))}))

	clone := s.Clone()
	require.NoError(t, clone.AdvanceStep([]command.Command{command.NewFill(mustNCD(t, 1, 1, 0))}))

	require.NotEqual(t, s.Energy(), clone.Energy())
	full, err := s.Matrix().Get(ncd.Position{X: 1, Y: 1, Z: 0})
	require.NoError(t, err)
	require.Equal(t, model.Void, full)
}
