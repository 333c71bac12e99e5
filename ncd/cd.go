package ncd

// NCD is a near coordinate difference: Manhattan length <= 2, Chessboard
// length exactly 1. It identifies one of the 26 immediate neighbours of a
// lattice point (plus, geometrically, the 6 face neighbours and 12 edge
// neighbours and 8 corner neighbours all collapse under these two bounds:
// only the 18 face+edge neighbours actually satisfy both constraints).
type NCD struct{ delta }

// NewNCD validates (dx,dy,dz) against the near bound and returns an NCD.
//
// Stage 1 (Validate): chessboard length must be 1 and manhattan length <= 2.
// Complexity: O(1).
func NewNCD(dx, dy, dz int) (NCD, error) {
	d := delta{dx, dy, dz}
	if d.ChessboardLength() != 1 || d.ManhattanLength() > 2 {
		return NCD{}, ErrNotNear
	}
	return NCD{d}, nil
}

// Encode packs an NCD into its 5-bit field: (x+1)*9 + (y+1)*3 + (z+1).
func (n NCD) Encode() uint8 {
	return uint8((n.dx+1)*9 + (n.dy+1)*3 + (n.dz + 1))
}

// DecodeNCD unpacks a 5-bit NCD field back into its components.
func DecodeNCD(b uint8) (NCD, error) {
	v := int(b)
	if v < 0 || v > 26 {
		return NCD{}, ErrOutOfRange
	}
	x := v/9 - 1
	y := (v/3)%3 - 1
	z := v%3 - 1
	return NewNCD(x, y, z)
}

// SLCD is a short linear coordinate difference: axis-aligned, 1 <= |d| <= 5.
// Used by the two legs of LMove.
type SLCD struct{ delta }

// NewSLCD validates (dx,dy,dz) against the short-linear bound.
func NewSLCD(dx, dy, dz int) (SLCD, error) {
	d := delta{dx, dy, dz}
	if !axisAligned(d) {
		return SLCD{}, ErrNotAxisAligned
	}
	if d.ManhattanLength() > 5 {
		return SLCD{}, ErrOutOfRange
	}
	return SLCD{d}, nil
}

// Encode packs an SLCD into (axis, magnitude) where axis in {01=x,10=y,11=z}
// and magnitude is bias-5 encoded.
func (s SLCD) Encode() (axis uint8, magnitude uint8) {
	switch {
	case s.dx != 0:
		return 0b01, uint8(s.dx + 5)
	case s.dy != 0:
		return 0b10, uint8(s.dy + 5)
	default:
		return 0b11, uint8(s.dz + 5)
	}
}

// DecodeSLCD unpacks an (axis, magnitude) pair into an SLCD.
func DecodeSLCD(axis, magnitude uint8) (SLCD, error) {
	m := int(magnitude) - 5
	switch axis {
	case 0b01:
		return NewSLCD(m, 0, 0)
	case 0b10:
		return NewSLCD(0, m, 0)
	case 0b11:
		return NewSLCD(0, 0, m)
	default:
		return SLCD{}, ErrOutOfRange
	}
}

// LLCD is a long linear coordinate difference: axis-aligned, 1 <= |d| <= 15.
// Used by SMove.
type LLCD struct{ delta }

// NewLLCD validates (dx,dy,dz) against the long-linear bound.
func NewLLCD(dx, dy, dz int) (LLCD, error) {
	d := delta{dx, dy, dz}
	if !axisAligned(d) {
		return LLCD{}, ErrNotAxisAligned
	}
	if d.ManhattanLength() > 15 {
		return LLCD{}, ErrOutOfRange
	}
	return LLCD{d}, nil
}

// Encode packs an LLCD into (axis, magnitude), magnitude bias-15 encoded.
func (l LLCD) Encode() (axis uint8, magnitude uint8) {
	switch {
	case l.dx != 0:
		return 0b01, uint8(l.dx + 15)
	case l.dy != 0:
		return 0b10, uint8(l.dy + 15)
	default:
		return 0b11, uint8(l.dz + 15)
	}
}

// DecodeLLCD unpacks an (axis, magnitude) pair into an LLCD.
func DecodeLLCD(axis, magnitude uint8) (LLCD, error) {
	m := int(magnitude) - 15
	switch axis {
	case 0b01:
		return NewLLCD(m, 0, 0)
	case 0b10:
		return NewLLCD(0, m, 0)
	case 0b11:
		return NewLLCD(0, 0, m)
	default:
		return LLCD{}, ErrOutOfRange
	}
}

// FCD is a far coordinate difference: Chebyshev length <= 30. Unlike SLCD
// and LLCD, an FCD is not required to be axis-aligned: it names the far
// corner of a GFill/GVoid region relative to the near corner, which is in
// general a full 3-D box.
type FCD struct{ delta }

// NewFCD validates (dx,dy,dz) against the far bound. Every axis may be
// non-zero; only the Chebyshev length is bounded.
func NewFCD(dx, dy, dz int) (FCD, error) {
	d := delta{dx, dy, dz}
	if d.ManhattanLength() == 0 {
		return FCD{}, ErrOutOfRange
	}
	if d.ChessboardLength() > 30 {
		return FCD{}, ErrOutOfRange
	}
	return FCD{d}, nil
}

// Encode packs an FCD into three bias-30 bytes, one per axis.
func (f FCD) Encode() (bx, by, bz uint8) {
	return uint8(f.dx + 30), uint8(f.dy + 30), uint8(f.dz + 30)
}

// DecodeFCD unpacks three bias-30 bytes into an FCD.
func DecodeFCD(bx, by, bz uint8) (FCD, error) {
	return NewFCD(int(bx)-30, int(by)-30, int(bz)-30)
}
