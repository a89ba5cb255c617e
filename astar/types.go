// Package astar defines core types and configuration options
// for A* search on gridgraph grids.
package astar

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilNode indicates a NodeRef endpoint built from a nil node.
	ErrNilNode = errors.New("astar: endpoint node is nil")

	// ErrForeignNode indicates a NodeRef endpoint whose node belongs to another grid.
	ErrForeignNode = errors.New("astar: endpoint node does not belong to the grid")

	// ErrOutOfBounds indicates a coordinate endpoint with no cell behind it.
	// It is the same value as gridgraph.ErrOutOfBounds.
	ErrOutOfBounds = gridgraph.ErrOutOfBounds

	// ErrInternal wraps invariant violations inside the search loop, such as
	// popping an empty open set. It is never expected in correct usage.
	ErrInternal = errors.New("astar: internal invariant violated")
)

// Heuristic estimates the remaining cost from a to b.
// It must not overestimate the true cost if optimal paths are required.
type Heuristic func(a, b *gridgraph.Node) float64

// Stats summarizes one finished search.
type Stats struct {
	Found    bool          // end node was reached
	Partial  bool          // closest-node fallback produced the path
	Expanded int           // nodes popped and closed
	Pushed   int           // open-set insertions
	Rescored int           // open-set repositions after a better G
	PathLen  int           // nodes in the returned path
	Cost     float64       // G of the terminal node, 0 for an empty path
	Duration time.Duration // wall time of the search
}

// Observer receives Stats after every search. Implementations must be cheap;
// they run on the caller's goroutine.
type Observer interface {
	ObserveSearch(Stats)
}

// Result is the outcome of Run: the path plus the statistics of the search.
type Result struct {
	Path []*gridgraph.Node
	Stats
}

// Options configures the behavior of Search.
//
// Heuristic – cost estimate; nil selects Manhattan on Conn4 grids and Diagonal on Conn8 grids.
// Closest   – if the end is unreachable, return the path to the node nearest to it.
// Logger    – optional; one Debug record per search.
// Observer  – optional; receives Stats per search.
type Options struct {
	Heuristic Heuristic
	Closest   bool
	Logger    *slog.Logger
	Observer  Observer
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic replaces the default heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithClosest enables the closest-node fallback: when the end cannot be
// reached, the path to the reached node with the smallest heuristic
// (ties: smallest G) is returned instead of an empty path.
func WithClosest() Option {
	return func(o *Options) {
		o.Closest = true
	}
}

// WithLogger attaches a structured logger. A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver attaches an Observer, e.g. a metrics.Collector.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// DefaultOptions returns the options Search uses for g before any Option is applied.
//
// Defaults:
//   - Heuristic: Manhattan for Conn4 grids, Diagonal for Conn8 grids.
//   - Closest:   false.
//   - Logger, Observer: nil.
func DefaultOptions(g *gridgraph.Grid) Options {
	h := Manhattan
	if g != nil && g.Diagonal() {
		h = Diagonal
	}
	return Options{Heuristic: h}
}
