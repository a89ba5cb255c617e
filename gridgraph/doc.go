// Package gridgraph treats a 2D weight matrix as a graph of search nodes,
// the data structure the astar package runs on.
//
// What:
//
//   - Grid owns one Node per matrix cell: values[y][x] becomes the node at (x,y).
//   - A weight of 0 is a wall; positive weights are cost multipliers.
//   - Neighbors are enumerated in a fixed order (W, E, S, N, then SW, SE, NW, NE
//     for Conn8) so searches are reproducible.
//   - Nodes carry A* state (G, H, F, Visited, Closed, Parent); the grid keeps a
//     dirty list so only touched nodes are reset between searches.
//   - Components groups passable cells into connected regions.
//
// Why:
//
//   - Game maps and simulations: repeated queries on one static map.
//   - Occupancy grids: cheap re-planning without re-allocating the arena.
//
// Complexity:
//
//   - NewGrid:     O(W×H), Memory: O(W×H).
//   - Neighbors:   O(d), d = 4 or 8.
//   - CleanDirty:  O(touched nodes).
//   - Components:  O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.DiagonalCost: multiplier for diagonal steps (default 1.41421).
//
// Errors:
//
//   - ErrEmptyGrid: input matrix has no cells.
//   - ErrNegativeWeight, ErrInvalidWeight: a cell weight is < 0, NaN or infinite.
//   - ErrBadDiagonalCost: DiagonalCost is not positive and finite.
//   - ErrOutOfBounds: Node(x,y) for a coordinate without a cell.
//
// A Grid is not safe for concurrent searches; distinct grids are independent.
package gridgraph
