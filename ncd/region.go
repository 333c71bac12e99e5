package ncd

// Region is an ordered pair of corner Positions describing an axis-aligned
// box. The pair need not already be in min/max order; Canonical produces the
// componentwise-min/max form that every consumer (GFill/GVoid quorum
// checking, bounding-box sweeps) actually operates on.
type Region struct {
	A, B Position
}

// NewRegion builds a Region from two corners, in whatever order supplied.
func NewRegion(a, b Position) Region { return Region{A: a, B: b} }

// Canonical returns the componentwise-min/max form of r: A holds the
// smallest coordinate on every axis, B the largest.
func (r Region) Canonical() Region {
	return Region{
		A: Position{minInt(r.A.X, r.B.X), minInt(r.A.Y, r.B.Y), minInt(r.A.Z, r.B.Z)},
		B: Position{maxInt(r.A.X, r.B.X), maxInt(r.A.Y, r.B.Y), maxInt(r.A.Z, r.B.Z)},
	}
}

// Dimension counts the axes on which r has non-zero extent (0 for a single
// point, up to 3 for a full box).
func (r Region) Dimension() int {
	c := r.Canonical()
	dim := 0
	if c.B.X > c.A.X {
		dim++
	}
	if c.B.Y > c.A.Y {
		dim++
	}
	if c.B.Z > c.A.Z {
		dim++
	}
	return dim
}

// Contains reports whether p lies within the closed box described by r.
func (r Region) Contains(p Position) bool {
	c := r.Canonical()
	return p.X >= c.A.X && p.X <= c.B.X &&
		p.Y >= c.A.Y && p.Y <= c.B.Y &&
		p.Z >= c.A.Z && p.Z <= c.B.Z
}

// Corners returns the (at most 8) distinct vertex Positions of r, in
// x-major, then y, then z order, matching the iteration order of Iter for a
// zero-extent region on each axis.
func (r Region) Corners() []Position {
	c := r.Canonical()
	xs := axisValues(c.A.X, c.B.X)
	ys := axisValues(c.A.Y, c.B.Y)
	zs := axisValues(c.A.Z, c.B.Z)

	corners := make([]Position, 0, len(xs)*len(ys)*len(zs))
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				corners = append(corners, Position{x, y, z})
			}
		}
	}
	return corners
}

func axisValues(lo, hi int) []int {
	if lo == hi {
		return []int{lo}
	}
	return []int{lo, hi}
}

// Iter yields every lattice point contained in r, in x-major, then y, then z
// order.
func (r Region) Iter() []Position {
	c := r.Canonical()
	pts := make([]Position, 0, (c.B.X-c.A.X+1)*(c.B.Y-c.A.Y+1)*(c.B.Z-c.A.Z+1))
	for x := c.A.X; x <= c.B.X; x++ {
		for y := c.A.Y; y <= c.B.Y; y++ {
			for z := c.A.Z; z <= c.B.Z; z++ {
				pts = append(pts, Position{x, y, z})
			}
		}
	}
	return pts
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
