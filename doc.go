// Package gridpath is an in-memory A* pathfinder for weighted 2D grids.
//
// 🚀 What is gridpath?
//
//	A small, deterministic library that brings together:
//		• Grids: weighted cells, walls, 4- or 8-connectivity, dirty tracking
//		• Priority queue: generic binary heap with in-place rescoring
//		• Search: A* with Manhattan / octile heuristics and a closest-node fallback
//		• Observability: log/slog debug records and Prometheus metrics
//		• Fixtures: YAML regression scenarios, validated before they run
//
// ✨ Why choose gridpath?
//
//   - Repeated searches on one grid reset only the nodes the last search touched
//   - Identical inputs always give identical paths
//   - Pure Go, no cgo
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/ - Grid and Node types, neighbors, components, dirty list
//	pqueue/    - generic min-heap keyed by a score function, with Rescore
//	astar/     - Search / Run, heuristics, options, stats
//	metrics/   - Prometheus Collector implementing astar.Observer
//	scenario/  - YAML fixtures: Load, Build, Run, Check
//
// Quick ASCII example (# is a wall, S start, E end):
//
//	S . #
//	# . .
//	. . E
//
//	g, _ := gridgraph.From2D([][]int{{1, 1, 0}, {0, 1, 1}, {1, 1, 1}}, gridgraph.Conn4)
//	path, _ := astar.Search(g, astar.At(0, 0), astar.At(2, 2))
//	// path: [1 0] [1 1] [2 1] [2 2]
//
//	go get github.com/katalvlaran/gridpath
package gridpath
