// Package astar implements A* shortest-path search on gridgraph grids.
//
// Overview:
//
//   - Search finds a minimum-cost path between two cells of a weighted grid,
//     expanding cells in order of F = G + H, where G is the cost from the start
//     and H a heuristic estimate of the remaining cost.
//   - The open set is a pqueue.Queue keyed on each node's F; improved nodes are
//     repositioned in place (Rescore) instead of being pushed twice.
//   - Node state lives on the grid and is reset lazily through the grid's dirty
//     list, so repeated searches on one grid cost O(touched) to reset.
//
// Key features:
//
//   - Endpoints by coordinate (At) or by node reference (NodeRef).
//   - Heuristics: Manhattan (default for Conn4) and Diagonal/octile (default
//     for Conn8); any Heuristic can be supplied with WithHeuristic.
//   - WithClosest: when the end is unreachable, return the path to the node with
//     the smallest H (ties broken by smaller G) instead of an empty path.
//   - Run returns Stats (expanded, pushed, rescored, cost, duration); WithObserver
//     and WithLogger forward them to metrics and log/slog.
//
// Determinism:
//
//   - For fixed weights, connectivity, endpoints and heuristic, the path is
//     always the same, including after unrelated searches on the same grid.
//     Neighbor order and heap tie rules are fixed.
//
// Edge costs:
//
//   - Entering a node axis-aligned costs its Weight; diagonally, Weight times the
//     grid's DiagonalCost (1.41421 by default). Walls (Weight 0) are never entered.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:      nil grid.
//   - ErrOutOfBounds:  a coordinate endpoint has no cell.
//   - ErrNilNode:      NodeRef(nil).
//   - ErrForeignNode:  NodeRef of a node from another grid.
//   - ErrInternal:     open-set invariant violated (never expected).
//
// An unreachable end is not an error: it yields an empty path, or the closest
// path with WithClosest.
//
// Thread safety:
//
//   - A grid must not be searched by two goroutines at once. Different grids
//     can be searched in parallel.
package astar
