package gridgraph

import "fmt"

// Node is a single grid cell together with the per-search state A* keeps on it.
//
// X and Y never change after the grid is built. The search fields are only
// meaningful during one search; CleanDirty resets them before the next one.
type Node struct {
	X, Y   int     // column and row inside the owning grid
	Weight float64 // 0 = wall, otherwise the cost multiplier for entering this cell

	G, H, F float64 // cost from start, cached heuristic, G + H
	Visited bool    // a finite path to this node has been found
	Closed  bool    // fully expanded
	Parent  *Node   // predecessor on the best known path; nil for the start node

	hSet  bool
	dirty bool
	grid  *Grid
	diag  float64
}

// Clean resets the search state to its initial values.
func (n *Node) Clean() {
	n.G, n.H, n.F = 0, 0, 0
	n.Visited = false
	n.Closed = false
	n.Parent = nil
	n.hSet = false
}

// IsWall reports whether the cell is impassable (Weight == 0).
func (n *Node) IsWall() bool {
	return n.Weight == 0
}

// Cost returns the price of stepping into n from the adjacent node from.
// Diagonal steps cost Weight times the grid's DiagonalCost; a nil from is
// treated as an axis-aligned step.
func (n *Node) Cost(from *Node) float64 {
	if from != nil && from.X != n.X && from.Y != n.Y {
		return n.Weight * n.diag
	}
	return n.Weight
}

// HeuristicSet reports whether H has already been computed during the current search.
func (n *Node) HeuristicSet() bool {
	return n.hSet
}

// SetHeuristic caches h as the node's heuristic estimate for the current search.
func (n *Node) SetHeuristic(h float64) {
	n.H = h
	n.hSet = true
}

// SetG records a new best cost from the start and refreshes F.
func (n *Node) SetG(g float64) {
	n.G = g
	n.F = g + n.H
}

// Grid returns the grid that owns n.
func (n *Node) Grid() *Grid {
	return n.grid
}

// String formats the node as "[x y]".
func (n *Node) String() string {
	return fmt.Sprintf("[%d %d]", n.X, n.Y)
}
