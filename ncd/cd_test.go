package ncd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelfab/nanofab/ncd"
)

// TestNCD_EncodeDecode checks the 5-bit encodings of NCD(1,0,0) and
// NCD(1,-1,0), and that decoding the latter gives it back.
func TestNCD_EncodeDecode(t *testing.T) {
	n, err := ncd.NewNCD(1, 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 18+3+1, n.Encode())

	n2, err := ncd.NewNCD(1, -1, 0)
	require.NoError(t, err)
	require.EqualValues(t, 0b10011, n2.Encode())

	decoded, err := ncd.DecodeNCD(n2.Encode())
	require.NoError(t, err)
	require.Equal(t, n2, decoded)
}

func TestNCD_RejectsOutOfRange(t *testing.T) {
	_, err := ncd.NewNCD(1, 1, 1)
	require.ErrorIs(t, err, ncd.ErrNotNear)

	_, err = ncd.NewNCD(0, 0, 0)
	require.ErrorIs(t, err, ncd.ErrNotNear)
}

func TestSLCD_EncodeDecode(t *testing.T) {
	s, err := ncd.NewSLCD(-3, 0, 0)
	require.NoError(t, err)
	axis, mag := s.Encode()
	require.EqualValues(t, 0b01, axis)
	require.EqualValues(t, 2, mag)

	decoded, err := ncd.DecodeSLCD(axis, mag)
	require.NoError(t, err)
	require.Equal(t, s, decoded)

	_, err = ncd.NewSLCD(1, 1, 0)
	require.ErrorIs(t, err, ncd.ErrNotAxisAligned)

	_, err = ncd.NewSLCD(6, 0, 0)
	require.ErrorIs(t, err, ncd.ErrOutOfRange)
}

func TestLLCD_EncodeDecode(t *testing.T) {
	l, err := ncd.NewLLCD(0, 10, 0)
	require.NoError(t, err)
	axis, mag := l.Encode()
	require.EqualValues(t, 0b10, axis)
	require.EqualValues(t, 25, mag)

	l2, err := ncd.NewLLCD(12, 0, 0)
	require.NoError(t, err)
	axis2, mag2 := l2.Encode()
	require.EqualValues(t, 0b01, axis2)
	require.EqualValues(t, 27, mag2)
}

func TestFCD_RoundTrip(t *testing.T) {
	for _, v := range [][3]int{{1, 0, 0}, {0, 15, 0}, {2, 3, 30}, {-30, -30, -30}} {
		f, err := ncd.NewFCD(v[0], v[1], v[2])
		require.NoError(t, err)
		bx, by, bz := f.Encode()
		decoded, err := ncd.DecodeFCD(bx, by, bz)
		require.NoError(t, err)
		require.Equal(t, f, decoded)
	}
	_, err := ncd.NewFCD(31, 0, 0)
	require.ErrorIs(t, err, ncd.ErrOutOfRange)
}

func TestRegion_CanonicalDimensionContains(t *testing.T) {
	r := ncd.NewRegion(ncd.Position{X: 2, Y: 0, Z: 2}, ncd.Position{X: 0, Y: 0, Z: 0})
	c := r.Canonical()
	require.Equal(t, ncd.Position{X: 0, Y: 0, Z: 0}, c.A)
	require.Equal(t, ncd.Position{X: 2, Y: 0, Z: 2}, c.B)
	require.Equal(t, 2, c.Dimension())
	require.True(t, c.Contains(ncd.Position{X: 1, Y: 0, Z: 1}))
	require.False(t, c.Contains(ncd.Position{X: 3, Y: 0, Z: 0}))
	require.Len(t, c.Corners(), 4)
	require.Len(t, c.Iter(), 9)
}

func TestPosition_AddAndBounds(t *testing.T) {
	p := ncd.Position{X: 1, Y: 1, Z: 1}
	n, err := ncd.NewNCD(0, -1, 0)
	require.NoError(t, err)
	q := p.Add(n)
	require.Equal(t, ncd.Position{X: 1, Y: 0, Z: 1}, q)
	require.True(t, q.InBounds(3))
	require.False(t, q.InBounds(1))
}
