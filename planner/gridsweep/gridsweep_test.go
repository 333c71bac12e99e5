package gridsweep

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
)

// TestAssemble_S1SingleVoxel assembles a lone target voxel.
func TestAssemble_S1SingleVoxel(t *testing.T) {
	target, err := model.NewMatrix(3)
	require.NoError(t, err)
	require.NoError(t, target.Set(ncd.Position{X: 1, Y: 0, Z: 1}, model.Full))

	trace, err := Assemble(target)
	require.NoError(t, err)
	require.NotZero(t, trace.Len())

	cmds := trace.Commands()
	require.Equal(t, "Halt", cmds[len(cmds)-1].Kind.String())
}

// TestAssemble_S2EmptyTarget assembles an already-empty target directly to Halt.
func TestAssemble_S2EmptyTarget(t *testing.T) {
	target, err := model.NewMatrix(3)
	require.NoError(t, err)

	trace, err := Assemble(target)
	require.NoError(t, err)
	require.Equal(t, 1, trace.Len())
	require.Equal(t, "Halt", trace.Commands()[0].Kind.String())
}

// TestAssemble_S3SolidBlock assembles a solid 3x3x3 block.
func TestAssemble_S3SolidBlock(t *testing.T) {
	target, err := model.NewMatrix(10)
	require.NoError(t, err)
	for x := 4; x <= 6; x++ {
		for y := 0; y <= 2; y++ {
			for z := 4; z <= 6; z++ {
				require.NoError(t, target.Set(ncd.Position{X: x, Y: y, Z: z}, model.Full))
			}
		}
	}

	trace, err := Assemble(target)
	require.NoError(t, err)
	require.Greater(t, trace.Len(), 27)
}
