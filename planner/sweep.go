package planner

import "github.com/voxelfab/nanofab/ncd"

// SnakeOrder returns r's lattice points ordered the way a boustrophedon
// sweep visits them: layer by ascending y, and within a layer row by row
// along z, alternating the x direction each row and reversing the whole
// row order each layer, so each layer starts on the z row where the
// previous layer ended.
func SnakeOrder(r ncd.Region) []ncd.Position {
	c := r.Canonical()
	var out []ncd.Position
	layer := 0
	for y := c.A.Y; y <= c.B.Y; y++ {
		zs := axisRange(c.A.Z, c.B.Z)
		if layer%2 == 1 {
			reverse(zs)
		}
		for row, z := range zs {
			xs := axisRange(c.A.X, c.B.X)
			if row%2 == 1 {
				reverse(xs)
			}
			for _, x := range xs {
				out = append(out, ncd.Position{X: x, Y: y, Z: z})
			}
		}
		layer++
	}
	return out
}

func axisRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out
}

func reverse(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
