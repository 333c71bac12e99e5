package model

import (
	"errors"
	"fmt"

	"github.com/voxelfab/nanofab/ncd"
)

// MaxR is the largest legal matrix side; matrices larger than 250^3 are
// out of scope.
const MaxR = 250

// Sentinel errors for Matrix construction and access.
var (
	// ErrInvalidR indicates R was <= 0 or > MaxR.
	ErrInvalidR = errors.New("model: R must be in [1, 250]")

	// ErrIndexOutOfBounds indicates a Position outside [0,R)^3.
	ErrIndexOutOfBounds = errors.New("model: position out of bounds")
)

// Voxel is a single cell's state.
type Voxel bool

// The two Voxel values.
const (
	Void Voxel = false
	Full Voxel = true
)

// Matrix is a dense R×R×R voxel grid. cells is a flat backing slice indexed
// x*R*R + y*R + z, matching matrix.Dense's flat row-major backing slice
// over a nested one.
type Matrix struct {
	r     int
	cells []bool
}

// NewMatrix allocates an R×R×R matrix with every cell Void.
//
// Stage 1 (Validate): R must be in [1, MaxR].
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(R^3) time and memory.
func NewMatrix(r int) (*Matrix, error) {
	if r <= 0 || r > MaxR {
		return nil, ErrInvalidR
	}
	return &Matrix{r: r, cells: make([]bool, r*r*r)}, nil
}

// R returns the matrix side length.
func (m *Matrix) R() int { return m.r }

func (m *Matrix) index(p ncd.Position) int {
	return p.X*m.r*m.r + p.Y*m.r + p.Z
}

// Get returns the Voxel at p. Returns ErrIndexOutOfBounds if p is outside
// [0,R)^3.
func (m *Matrix) Get(p ncd.Position) (Voxel, error) {
	if !p.InBounds(m.r) {
		return Void, ErrIndexOutOfBounds
	}
	return Voxel(m.cells[m.index(p)]), nil
}

// Set writes the Voxel at p. Returns ErrIndexOutOfBounds if p is outside
// [0,R)^3.
func (m *Matrix) Set(p ncd.Position, v Voxel) error {
	if !p.InBounds(m.r) {
		return ErrIndexOutOfBounds
	}
	m.cells[m.index(p)] = bool(v)
	return nil
}

// IsFull reports whether p holds a Full voxel, treating an out-of-bounds
// position as Void (a convenience for neighbour scans that may step off the
// grid edge).
func (m *Matrix) IsFull(p ncd.Position) bool {
	if !p.InBounds(m.r) {
		return false
	}
	return m.cells[m.index(p)]
}

// Clone returns an independent deep copy of m. Planners that want to
// speculatively simulate candidate steps must clone before mutating, since
// only State may mutate the live matrix.
func (m *Matrix) Clone() *Matrix {
	cp := make([]bool, len(m.cells))
	copy(cp, m.cells)
	return &Matrix{r: m.r, cells: cp}
}

// Equal reports whether m and other describe the same R and cell contents.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.r != other.r {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// BoundingBox returns the smallest axis-aligned Region containing every
// Full cell, and false if the matrix is entirely Void.
//
// Complexity: O(R^3).
func (m *Matrix) BoundingBox() (ncd.Region, bool) {
	found := false
	minP := ncd.Position{X: m.r, Y: m.r, Z: m.r}
	maxP := ncd.Position{X: -1, Y: -1, Z: -1}

	for x := 0; x < m.r; x++ {
		for y := 0; y < m.r; y++ {
			for z := 0; z < m.r; z++ {
				if !m.cells[x*m.r*m.r+y*m.r+z] {
					continue
				}
				found = true
				if x < minP.X {
					minP.X = x
				}
				if y < minP.Y {
					minP.Y = y
				}
				if z < minP.Z {
					minP.Z = z
				}
				if x > maxP.X {
					maxP.X = x
				}
				if y > maxP.Y {
					maxP.Y = y
				}
				if z > maxP.Z {
					maxP.Z = z
				}
			}
		}
	}
	if !found {
		return ncd.Region{}, false
	}
	return ncd.NewRegion(minP, maxP), true
}

// FullCells returns every Full Position, in x-major, then y, then z order.
func (m *Matrix) FullCells() []ncd.Position {
	var out []ncd.Position
	for x := 0; x < m.r; x++ {
		for y := 0; y < m.r; y++ {
			for z := 0; z < m.r; z++ {
				if m.cells[x*m.r*m.r+y*m.r+z] {
					out = append(out, ncd.Position{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return out
}

// Diff reports the bounding box of every cell where a and b disagree, and
// the count of such cells. Used by planner/reassemble to fast-path a
// trivially-equal source/target pair.
func Diff(a, b *Matrix) (region ncd.Region, changed int, err error) {
	if a.r != b.r {
		return ncd.Region{}, 0, fmt.Errorf("model: Diff requires equal R, got %d and %d", a.r, b.r)
	}
	found := false
	minP := ncd.Position{X: a.r, Y: a.r, Z: a.r}
	maxP := ncd.Position{X: -1, Y: -1, Z: -1}
	for i, v := range a.cells {
		if v == b.cells[i] {
			continue
		}
		changed++
		x := i / (a.r * a.r)
		y := (i / a.r) % a.r
		z := i % a.r
		found = true
		if x < minP.X {
			minP.X = x
		}
		if y < minP.Y {
			minP.Y = y
		}
		if z < minP.Z {
			minP.Z = z
		}
		if x > maxP.X {
			maxP.X = x
		}
		if y > maxP.Y {
			maxP.Y = y
		}
		if z > maxP.Z {
			maxP.Z = z
		}
	}
	if !found {
		return ncd.Region{}, 0, nil
	}
	return ncd.NewRegion(minP, maxP), changed, nil
}
