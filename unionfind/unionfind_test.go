package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelfab/nanofab/unionfind"
)

func TestUnionFind_SingletonsDisjoint(t *testing.T) {
	uf := unionfind.New(5)
	for i := 0; i < 5; i++ {
		require.Equal(t, 1, uf.ComponentSize(i))
	}
	require.False(t, uf.Same(0, 1))
}

func TestUnionFind_UnionMergesAndTracksSize(t *testing.T) {
	uf := unionfind.New(6)
	uf.Union(0, 1)
	uf.Union(1, 2)
	require.True(t, uf.Same(0, 2))
	require.Equal(t, 3, uf.ComponentSize(0))
	require.Equal(t, 3, uf.ComponentSize(1))
	require.Equal(t, 3, uf.ComponentSize(2))
	require.False(t, uf.Same(0, 3))

	uf.Union(3, 4)
	uf.Union(0, 3)
	require.True(t, uf.Same(2, 4))
	require.Equal(t, 5, uf.ComponentSize(4))

	// idempotent: unioning already-joined elements is a no-op on size.
	uf.Union(0, 2)
	require.Equal(t, 5, uf.ComponentSize(0))
}

func TestUnionFind_GroundNodeConvention(t *testing.T) {
	const r = 3
	ground := r * r * r
	uf := unionfind.New(r*r*r + 1)
	uf.Union(0, ground)
	require.True(t, uf.Same(0, ground))
	require.False(t, uf.Same(1, ground))
}
