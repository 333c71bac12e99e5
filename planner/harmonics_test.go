package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
	"github.com/voxelfab/nanofab/simulator"
)

func TestGuardedStep_FlipsHarmonicsForFloatingFill(t *testing.T) {
	s, err := simulator.NewState(4)
	require.NoError(t, err)
	trace := NewTrace()
	cur := ncd.Origin()

	// Park the agent above (0,1,0), whose support at (0,0,0) stays Void, so
	// Fill(fillDown) would strand a floating voxel under Low harmonics.
	require.NoError(t, DriveTo(s, trace, &cur, ncd.Position{X: 0, Y: 2, Z: 0}))

	fillCmd := command.NewFill(fillDown)
	require.NoError(t, GuardedStep(s, trace, []command.Command{fillCmd}))

	require.Equal(t, simulator.High, s.HarmonicsState())
	v, err := s.Matrix().Get(ncd.Position{X: 0, Y: 1, Z: 0})
	require.NoError(t, err)
	require.Equal(t, model.Full, v)

	// The voxel is still unsupported, so Reground must leave harmonics High.
	require.NoError(t, Reground(s, trace))
	require.Equal(t, simulator.High, s.HarmonicsState())
}

func TestGuardedStep_NoFlipWhenGrounded(t *testing.T) {
	s, err := simulator.NewState(3)
	require.NoError(t, err)
	trace := NewTrace()
	cur := ncd.Origin()

	require.NoError(t, DriveTo(s, trace, &cur, ncd.Position{X: 0, Y: 1, Z: 0}))

	fillCmd := command.NewFill(fillDown)
	require.NoError(t, GuardedStep(s, trace, []command.Command{fillCmd}))

	require.Equal(t, simulator.Low, s.HarmonicsState())
}
