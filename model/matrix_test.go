package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
)

// TestReadModel_OriginalFixtures mirrors model.rs's test_single_voxel,
// test_2x2_voxel, and test_3x3_voxel.
func TestReadModel_OriginalFixtures(t *testing.T) {
	m, err := model.ReadModel([]byte{1, 0b00000001})
	require.NoError(t, err)
	v, err := m.Get(ncd.Position{X: 0, Y: 0, Z: 0})
	require.NoError(t, err)
	require.Equal(t, model.Full, v)

	m2, err := model.ReadModel([]byte{2, 0b10010110})
	require.NoError(t, err)
	expectFull := map[ncd.Position]bool{
		{X: 0, Y: 0, Z: 0}: false,
		{X: 1, Y: 0, Z: 0}: true,
		{X: 0, Y: 1, Z: 0}: true,
		{X: 1, Y: 1, Z: 0}: false,
		{X: 0, Y: 0, Z: 1}: true,
		{X: 1, Y: 0, Z: 1}: false,
		{X: 0, Y: 1, Z: 1}: false,
		{X: 1, Y: 1, Z: 1}: true,
	}
	for p, full := range expectFull {
		v, err := m2.Get(p)
		require.NoError(t, err)
		require.Equal(t, model.Voxel(full), v, "position %v", p)
	}

	m3, err := model.ReadModel([]byte{3, 0b0000001, 0b00000000, 0b00000000, 0b00000100})
	require.NoError(t, err)
	v, err = m3.Get(ncd.Position{X: 0, Y: 0, Z: 0})
	require.NoError(t, err)
	require.Equal(t, model.Full, v)
	v, err = m3.Get(ncd.Position{X: 2, Y: 2, Z: 2})
	require.NoError(t, err)
	require.Equal(t, model.Full, v)
}

// TestModel_RoundTrip checks property 2: read(write(M)) == M for a handful
// of R values, including R values that don't divide evenly by 8.
func TestModel_RoundTrip(t *testing.T) {
	for _, r := range []int{1, 2, 3, 7, 10, 33} {
		m, err := model.NewMatrix(r)
		require.NoError(t, err)
		for x := 0; x < r; x += 2 {
			for y := 0; y < r; y += 3 {
				require.NoError(t, m.Set(ncd.Position{X: x, Y: y, Z: (x + y) % r}, model.Full))
			}
		}
		encoded := model.WriteModel(m)
		decoded, err := model.ReadModel(encoded)
		require.NoError(t, err)
		require.True(t, m.Equal(decoded))
	}
}

func TestMatrix_BoundingBoxAndClone(t *testing.T) {
	m, err := model.NewMatrix(5)
	require.NoError(t, err)
	_, ok := m.BoundingBox()
	require.False(t, ok)

	require.NoError(t, m.Set(ncd.Position{X: 1, Y: 2, Z: 1}, model.Full))
	require.NoError(t, m.Set(ncd.Position{X: 3, Y: 2, Z: 4}, model.Full))
	region, ok := m.BoundingBox()
	require.True(t, ok)
	require.Equal(t, ncd.Position{X: 1, Y: 2, Z: 1}, region.A)
	require.Equal(t, ncd.Position{X: 3, Y: 2, Z: 4}, region.B)

	clone := m.Clone()
	require.True(t, m.Equal(clone))
	require.NoError(t, clone.Set(ncd.Position{X: 0, Y: 0, Z: 0}, model.Full))
	require.False(t, m.Equal(clone))
}

func TestMatrix_InvalidR(t *testing.T) {
	_, err := model.NewMatrix(0)
	require.ErrorIs(t, err, model.ErrInvalidR)
	_, err = model.NewMatrix(model.MaxR + 1)
	require.ErrorIs(t, err, model.ErrInvalidR)
}
