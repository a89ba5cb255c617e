// Package gridgraph turns a 2D weight matrix into an arena of search nodes.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Deterministic neighbor enumeration
//   - Dirty tracking so consecutive searches only reset the nodes they touched
//   - Identification of connected components of passable cells
//
// Cells with weight 0 are walls; every positive weight is a traversal cost.
package gridgraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	offsets4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	offsets8 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// NewGrid constructs a Grid from a non-empty 2D slice of weights, values[y][x].
// Rows may have different lengths. The input is copied; later changes to
// values do not affect the grid.
// Returns ErrEmptyGrid if there is no cell at all, ErrNegativeWeight or
// ErrInvalidWeight for a bad cell, ErrBadDiagonalCost for bad options.
// All of them wrap ErrInvalidInput.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]float64, opts GridOptions) (*Grid, error) {
	if opts.DiagonalCost <= 0 || math.IsNaN(opts.DiagonalCost) || math.IsInf(opts.DiagonalCost, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadDiagonalCost, opts.DiagonalCost)
	}
	w, cells := 0, 0
	for y, row := range values {
		for x, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%v", ErrInvalidWeight, x, y, v)
			}
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%v", ErrNegativeWeight, x, y, v)
			}
		}
		if len(row) > w {
			w = len(row)
		}
		cells += len(row)
	}
	if cells == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		Width:        w,
		Height:       len(values),
		Conn:         opts.Conn,
		DiagonalCost: opts.DiagonalCost,
	}
	if opts.Conn == Conn8 {
		g.neighborOffsets = offsets8
	} else {
		g.neighborOffsets = offsets4
	}

	g.nodes = make([][]*Node, len(values))
	for y, row := range values {
		g.nodes[y] = make([]*Node, len(row))
		for x, v := range row {
			g.nodes[y][x] = &Node{X: x, Y: y, Weight: v, grid: g, diag: opts.DiagonalCost}
		}
	}

	return g, nil
}

// From2D is a convenience wrapper around NewGrid for any numeric matrix,
// using DefaultDiagonalCost and the given connectivity.
func From2D[W Number](values [][]W, conn Connectivity) (*Grid, error) {
	weights := make([][]float64, len(values))
	for y, row := range values {
		weights[y] = make([]float64, len(row))
		for x, v := range row {
			weights[y][x] = float64(v)
		}
	}
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGrid(weights, opts)
}

// Diagonal reports whether the grid uses 8-directional adjacency.
func (g *Grid) Diagonal() bool {
	return g.Conn == Conn8
}

// InBounds reports whether a cell exists at (x,y). For jagged input this
// depends on the length of row y.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return y >= 0 && y < len(g.nodes) && x >= 0 && x < len(g.nodes[y])
}

// At returns the node at (x,y), or nil when there is no such cell.
func (g *Grid) At(x, y int) *Node {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.nodes[y][x]
}

// Node returns the node at (x,y) or ErrOutOfBounds.
func (g *Grid) Node(x, y int) (*Node, error) {
	n := g.At(x, y)
	if n == nil {
		return nil, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	return n, nil
}

// Owns reports whether n is one of this grid's nodes.
func (g *Grid) Owns(n *Node) bool {
	return n != nil && n.grid == g
}

// Walk calls fn for every node in row-major order.
func (g *Grid) Walk(fn func(n *Node)) {
	for _, row := range g.nodes {
		for _, n := range row {
			fn(n)
		}
	}
}

// NeighborOffsets returns the precomputed (dx,dy) offsets in enumeration order.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Neighbors returns the in-bounds nodes adjacent to n in the fixed order
// West, East, South, North and, for Conn8, Southwest, Southeast, Northwest,
// Northeast. Walls are included; callers decide how to treat them.
func (g *Grid) Neighbors(n *Node) []*Node {
	return g.AppendNeighbors(make([]*Node, 0, len(g.neighborOffsets)), n)
}

// AppendNeighbors appends the neighbors of n to dst, in Neighbors order,
// and returns the extended slice. It lets hot loops reuse one buffer.
func (g *Grid) AppendNeighbors(dst []*Node, n *Node) []*Node {
	for _, d := range g.neighborOffsets {
		if nb := g.At(n.X+d[0], n.Y+d[1]); nb != nil {
			dst = append(dst, nb)
		}
	}
	return dst
}

// String renders the weights, one row per line, values separated by a space.
func (g *Grid) String() string {
	var sb strings.Builder
	for y, row := range g.nodes {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, n := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(n.Weight, 'f', -1, 64))
		}
	}
	return sb.String()
}
