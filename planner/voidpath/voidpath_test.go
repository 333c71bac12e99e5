package voidpath

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
)

func TestAssemble_SingleVoxel(t *testing.T) {
	target, err := model.NewMatrix(3)
	require.NoError(t, err)
	require.NoError(t, target.Set(ncd.Position{X: 1, Y: 0, Z: 1}, model.Full))

	trace, err := Assemble(target)
	require.NoError(t, err)
	cmds := trace.Commands()
	require.Equal(t, "Halt", cmds[len(cmds)-1].Kind.String())
}

func TestAssemble_EmptyTarget(t *testing.T) {
	target, err := model.NewMatrix(3)
	require.NoError(t, err)
	trace, err := Assemble(target)
	require.NoError(t, err)
	require.Equal(t, 1, trace.Len())
}

func TestAssemble_ScatteredVoxelsNearestNeighbourOrder(t *testing.T) {
	target, err := model.NewMatrix(6)
	require.NoError(t, err)
	require.NoError(t, target.Set(ncd.Position{X: 2, Y: 0, Z: 2}, model.Full))
	require.NoError(t, target.Set(ncd.Position{X: 4, Y: 0, Z: 0}, model.Full))
	require.NoError(t, target.Set(ncd.Position{X: 0, Y: 0, Z: 4}, model.Full))

	trace, err := Assemble(target)
	require.NoError(t, err)
	require.NotZero(t, trace.Len())
}
