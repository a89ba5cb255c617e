// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"golang.org/x/exp/constraints"
)

// DefaultDiagonalCost is the diagonal step multiplier used unless
// GridOptions.DiagonalCost says otherwise. It is √2 truncated to five
// decimals, which keeps path costs bit-identical with existing fixtures.
const DefaultDiagonalCost = 1.41421

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: W, E, S, N.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: W, E, S, N, SW, SE, NW, NE.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Number is any integer or floating-point cell type accepted by From2D.
type Number interface {
	constraints.Integer | constraints.Float
}

// GridOptions contains tunable parameters fixed at grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity for every search on the grid.
	Conn Connectivity
	// DiagonalCost multiplies a cell's weight when it is entered diagonally.
	// Must be positive and finite.
	DiagonalCost float64
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn4, DiagonalCost=DefaultDiagonalCost.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:         Conn4,
		DiagonalCost: DefaultDiagonalCost,
	}
}

// Grid is a 2D arena of Nodes built from a row-major weight matrix.
// nodes[y][x] holds the cell in row y, column x; rows may differ in length.
// Width is the length of the longest row, Height the number of rows.
//
// The Grid owns every Node for its whole lifetime. Search state stored on
// nodes is reset lazily through the dirty list: a node that is not on the
// list is always in its clean state.
type Grid struct {
	Width, Height int
	Conn          Connectivity
	DiagonalCost  float64

	nodes           [][]*Node
	dirty           []*Node
	neighborOffsets [][2]int
}
