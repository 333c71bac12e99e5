package bfsassembler

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

func TestAssemble_TwoLayerBlock(t *testing.T) {
	target, err := model.NewMatrix(8)
	require.NoError(t, err)
	for x := 2; x <= 3; x++ {
		for y := 0; y <= 1; y++ {
			for z := 2; z <= 3; z++ {
				require.NoError(t, target.Set(ncd.Position{X: x, Y: y, Z: z}, model.Full))
			}
		}
	}
	trace, err := Assemble(target)
	require.NoError(t, err)
	require.Greater(t, trace.Len(), 8)
}
