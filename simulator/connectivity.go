package simulator

import (
	"github.com/voxelfab/nanofab/ncd"
	"github.com/voxelfab/nanofab/unionfind"
)

// connectivity tracks the grounded-ness of every Full cell via a
// path-compressed union-find over R^3+1 elements, index R^3 being the
// virtual ground node.
type connectivity struct {
	r      int
	uf     *unionfind.UnionFind
	dirty  bool // a voided cell had a Full neighbour since the last rebuild
	ground int
}

func newConnectivity(r int) *connectivity {
	ground := r * r * r
	return &connectivity{
		r:      r,
		uf:     unionfind.New(ground + 1),
		ground: ground,
	}
}

func (c *connectivity) index(p ncd.Position) int {
	return p.X*c.r*c.r + p.Y*c.r + p.Z
}

// neighbours6 returns the (up to 6) face-adjacent positions of p that lie
// within [0,r)^3.
func neighbours6(p ncd.Position, r int) []ncd.Position {
	cand := [6]ncd.Position{
		{X: p.X - 1, Y: p.Y, Z: p.Z},
		{X: p.X + 1, Y: p.Y, Z: p.Z},
		{X: p.X, Y: p.Y - 1, Z: p.Z},
		{X: p.X, Y: p.Y + 1, Z: p.Z},
		{X: p.X, Y: p.Y, Z: p.Z - 1},
		{X: p.X, Y: p.Y, Z: p.Z + 1},
	}
	out := make([]ncd.Position, 0, 6)
	for _, q := range cand {
		if q.InBounds(r) {
			out = append(out, q)
		}
	}
	return out
}

// unionFilledNeighbours unions p with every neighbour that isFull reports
// Full, and with the ground node when p.Y==0. Called after the matrix edit
// has been committed, so neighbour lookups see the post-step matrix.
func (c *connectivity) unionFilledNeighbours(p ncd.Position, isFull func(ncd.Position) bool) {
	idx := c.index(p)
	if p.Y == 0 {
		c.uf.Union(idx, c.ground)
	}
	for _, q := range neighbours6(p, c.r) {
		if isFull(q) {
			c.uf.Union(idx, c.index(q))
		}
	}
}

// onVoid marks the index dirty unless the voided cell is a provably safe
// leaf to remove: a Full cell with no Full neighbours has no edges in the
// connectivity graph, so removing it cannot disconnect anything else. This
// locally sufficient test is sound (never skips a rebuild that was
// actually needed) but not complete (a voided cell with surviving Full
// neighbours always forces a rebuild, even in cases where a sharper
// analysis could prove it safe).
func (c *connectivity) onVoid(p ncd.Position, hadFullNeighbour bool) {
	if hadFullNeighbour {
		c.dirty = true
	}
}

// rebuild recomputes the connectivity index from scratch by scanning every
// Full cell in m.
//
// Complexity: O(R^3).
func (c *connectivity) rebuild(isFull func(ncd.Position) bool) {
	c.uf = unionfind.New(c.ground + 1)
	for x := 0; x < c.r; x++ {
		for y := 0; y < c.r; y++ {
			for z := 0; z < c.r; z++ {
				p := ncd.Position{X: x, Y: y, Z: z}
				if !isFull(p) {
					continue
				}
				idx := c.index(p)
				if y == 0 {
					c.uf.Union(idx, c.ground)
				}
				for _, q := range neighbours6(p, c.r) {
					if q.X <= x && q.Y <= y && q.Z <= z {
						continue // each edge unioned once, from the lower cell
					}
					if isFull(q) {
						c.uf.Union(idx, c.index(q))
					}
				}
			}
		}
	}
	c.dirty = false
}

// grounded reports whether p (assumed Full) is connected to the ground
// node, rebuilding first if the index is dirty.
func (c *connectivity) grounded(p ncd.Position, isFull func(ncd.Position) bool) bool {
	if c.dirty {
		c.rebuild(isFull)
	}
	return c.uf.Same(c.index(p), c.ground)
}

func (c *connectivity) clone() *connectivity {
	return &connectivity{r: c.r, dirty: c.dirty, ground: c.ground, uf: c.uf.Clone()}
}
