package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Endpoint names a start or end cell either by coordinates or by a node
// reference. Build one with At or NodeRef; the zero value is At(0, 0).
type Endpoint struct {
	x, y  int
	node  *gridgraph.Node
	isRef bool
}

// At refers to the cell in column x, row y, i.e. values[y][x] of the matrix
// the grid was built from. Matrices indexed as grid[x][y] must be transposed
// before they are passed to gridgraph.
func At(x, y int) Endpoint {
	return Endpoint{x: x, y: y}
}

// NodeRef refers to an existing node; it must belong to the searched grid.
func NodeRef(n *gridgraph.Node) Endpoint {
	return Endpoint{node: n, isRef: true}
}

// String formats the endpoint for logs and errors.
func (e Endpoint) String() string {
	if e.isRef {
		if e.node == nil {
			return "node(nil)"
		}
		return "node" + e.node.String()
	}
	return fmt.Sprintf("(%d,%d)", e.x, e.y)
}

// resolve maps the endpoint onto a node of g.
func (e Endpoint) resolve(g *gridgraph.Grid) (*gridgraph.Node, error) {
	if !e.isRef {
		return g.Node(e.x, e.y)
	}
	if e.node == nil {
		return nil, ErrNilNode
	}
	if !g.Owns(e.node) {
		return nil, fmt.Errorf("%w: %v", ErrForeignNode, e.node)
	}
	return e.node, nil
}
