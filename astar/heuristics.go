package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Manhattan is |dx| + |dy|, admissible on Conn4 grids with weights ≥ 1.
func Manhattan(a, b *gridgraph.Node) float64 {
	dx := math.Abs(float64(b.X - a.X))
	dy := math.Abs(float64(b.Y - a.Y))
	return dx + dy
}

// Diagonal is the octile distance with D = 1 and D2 = √2:
// D·(dx+dy) + (D2 − 2D)·min(dx,dy).
func Diagonal(a, b *gridgraph.Node) float64 {
	const (
		d  = 1.0
		d2 = math.Sqrt2
	)
	dx := math.Abs(float64(b.X - a.X))
	dy := math.Abs(float64(b.Y - a.Y))
	return d*(dx+dy) + (d2-2*d)*math.Min(dx, dy)
}
