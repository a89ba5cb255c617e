package astar

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pqueue"
)

// Search runs A* on g from start to end and returns the path: the nodes after
// start up to and including end, in walking order. An empty path means end is
// unreachable (or start == end). With WithClosest the path to the reached
// node nearest to end is returned instead of an empty one.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must resolve to nodes of g (ErrOutOfBounds, ErrNilNode, ErrForeignNode).
//
// Walls are never entered. A walled start is still expanded; a walled end is
// never reached.
//
// Search mutates search state stored on g's nodes and must not run
// concurrently with another search on the same grid.
//
// Complexity:
//
//   - Time:  O(N log N), N = nodes reached.
//   - Space: O(N) for the open set; node state lives in the grid.
func Search(g *gridgraph.Grid, start, end Endpoint, opts ...Option) ([]*gridgraph.Node, error) {
	res, err := Run(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Run is Search returning the full Result with search statistics.
func Run(g *gridgraph.Grid, start, end Endpoint, opts ...Option) (Result, error) {
	// 1) Validate grid
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 2) Build Options
	cfg := DefaultOptions(g)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = DefaultOptions(g).Heuristic
	}

	// 3) Resolve endpoints once
	s, err := start.resolve(g)
	if err != nil {
		return Result{}, fmt.Errorf("start %v: %w", start, err)
	}
	e, err := end.resolve(g)
	if err != nil {
		return Result{}, fmt.Errorf("end %v: %w", end, err)
	}

	// 4) Run
	r := &runner{
		g:       g,
		options: cfg,
		start:   s,
		end:     e,
		open:    pqueue.New(func(n *gridgraph.Node) float64 { return n.F }),
		buf:     make([]*gridgraph.Node, 0, len(g.NeighborOffsets())),
	}
	began := time.Now()
	if err = r.init(); err != nil {
		return Result{}, err
	}
	terminal, err := r.process()
	if err != nil {
		return Result{}, err
	}

	res := Result{Path: pathTo(terminal), Stats: r.stats}
	res.PathLen = len(res.Path)
	if terminal != nil {
		res.Cost = terminal.G
	}
	res.Duration = time.Since(began)
	r.report(res.Stats)

	return res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *gridgraph.Grid
	options Options
	start   *gridgraph.Node
	end     *gridgraph.Node
	open    *pqueue.Queue[*gridgraph.Node]
	closest *gridgraph.Node
	buf     []*gridgraph.Node // neighbor scratch space
	stats   Stats
}

// init clears state left by previous searches and seeds the open set with start.
func (r *runner) init() error {
	// Must run before the start node is touched.
	r.g.CleanDirty()

	r.start.SetHeuristic(r.options.Heuristic(r.start, r.end))
	r.start.SetG(0)
	r.g.MarkDirty(r.start)
	r.closest = r.start

	if err := r.open.Push(r.start); err != nil {
		return fmt.Errorf("%w: %v at %v", ErrInternal, err, r.start)
	}
	r.stats.Pushed++

	return nil
}

// process is the main loop. It returns the node the path ends at: end on
// success, the closest node on failure with Closest set, nil otherwise.
func (r *runner) process() (*gridgraph.Node, error) {
	for r.open.Len() > 0 {
		// 1) Grab the lowest F.
		cur, err := r.open.Pop()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// 2) Goal check.
		if cur == r.end {
			r.stats.Found = true
			return cur, nil
		}

		// 3) Close and relax neighbors.
		cur.Closed = true
		r.stats.Expanded++
		if err = r.relax(cur); err != nil {
			return nil, err
		}
	}

	if r.options.Closest {
		r.stats.Partial = true
		return r.closest, nil
	}
	return nil, nil
}

// relax examines each neighbor of cur and records any improved path to it.
func (r *runner) relax(cur *gridgraph.Node) error {
	r.buf = r.g.AppendNeighbors(r.buf[:0], cur)
	for _, nb := range r.buf {
		if nb.Closed || nb.IsWall() {
			continue
		}

		g := cur.G + nb.Cost(cur)
		seen := nb.Visited
		if seen && g >= nb.G {
			continue
		}

		// Found a better path to nb.
		nb.Visited = true
		nb.Parent = cur
		if !nb.HeuristicSet() {
			nb.SetHeuristic(r.options.Heuristic(nb, r.end))
		}
		nb.SetG(g)
		r.g.MarkDirty(nb)

		if r.options.Closest {
			if nb.H < r.closest.H || (nb.H == r.closest.H && nb.G < r.closest.G) {
				r.closest = nb
			}
		}

		var err error
		if seen {
			err = r.open.Rescore(nb)
			r.stats.Rescored++
		} else {
			err = r.open.Push(nb)
			r.stats.Pushed++
		}
		if err != nil {
			return fmt.Errorf("%w: %v at %v", ErrInternal, err, nb)
		}
	}

	return nil
}

// report hands the stats to the configured logger and observer.
func (r *runner) report(st Stats) {
	if l := r.options.Logger; l != nil {
		l.Debug("astar: search finished",
			slog.String("start", r.start.String()),
			slog.String("end", r.end.String()),
			slog.Bool("found", st.Found),
			slog.Bool("partial", st.Partial),
			slog.Int("expanded", st.Expanded),
			slog.Int("path_len", st.PathLen),
			slog.Float64("cost", st.Cost),
			slog.Duration("duration", st.Duration),
		)
	}
	if r.options.Observer != nil {
		r.options.Observer.ObserveSearch(st)
	}
}

// pathTo walks Parent links back from n and returns the nodes in walking
// order, excluding the node without a parent (the start).
func pathTo(n *gridgraph.Node) []*gridgraph.Node {
	path := []*gridgraph.Node{}
	for cur := n; cur != nil && cur.Parent != nil; cur = cur.Parent {
		path = append(path, cur)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
