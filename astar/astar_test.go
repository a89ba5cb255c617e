// Package astar_test contains unit tests for the A* implementation.
// These tests validate the reference scenarios, endpoint validation, the
// closest-node fallback, state isolation between searches, and the stats
// reported to loggers and observers.
package astar_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func mustGrid(t testing.TB, values [][]int, conn gridgraph.Connectivity) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.From2D(values, conn)
	require.NoError(t, err)
	return g
}

func xy(path []*gridgraph.Node) [][2]int {
	out := make([][2]int, len(path))
	for i, n := range path {
		out[i] = [2]int{n.X, n.Y}
	}
	return out
}

// ------------------------------------------------------------------------
// 1. Reference scenarios.
// ------------------------------------------------------------------------

func TestSearch_Scenarios(t *testing.T) {
	cases := []struct {
		name       string
		grid       [][]int
		conn       gridgraph.Connectivity
		start, end [2]int
		opts       []astar.Option
		want       [][2]int
	}{
		{
			name:  "Minimal",
			grid:  [][]int{{1, 1}, {0, 1}},
			start: [2]int{0, 0},
			end:   [2]int{1, 1},
			want:  [][2]int{{1, 0}, {1, 1}},
		},
		{
			name:  "MinimalTransposed",
			grid:  [][]int{{1, 0}, {1, 1}},
			start: [2]int{0, 0},
			end:   [2]int{1, 1},
			want:  [][2]int{{0, 1}, {1, 1}},
		},
		{
			name:  "WeightDetour",
			grid:  [][]int{{1, 9, 1}, {1, 1, 1}},
			start: [2]int{0, 0},
			end:   [2]int{2, 0},
			want:  [][2]int{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		},
		{
			name:  "Diagonal",
			grid:  [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
			conn:  gridgraph.Conn8,
			start: [2]int{0, 0},
			end:   [2]int{2, 2},
			want:  [][2]int{{1, 1}, {2, 2}},
		},
		{
			name:  "ClosestFallback",
			grid:  [][]int{{1, 0, 0}, {1, 1, 0}, {1, 1, 0}},
			start: [2]int{0, 0},
			end:   [2]int{2, 2},
			opts:  []astar.Option{astar.WithClosest()},
			want:  [][2]int{{0, 1}, {1, 1}, {1, 2}},
		},
		{
			name:  "SingleRow",
			grid:  [][]int{{1, 1, 1, 1}},
			start: [2]int{0, 0},
			end:   [2]int{3, 0},
			want:  [][2]int{{1, 0}, {2, 0}, {3, 0}},
		},
		{
			name:  "SingleColumn",
			grid:  [][]int{{1}, {1}, {1}},
			start: [2]int{0, 0},
			end:   [2]int{0, 2},
			want:  [][2]int{{0, 1}, {0, 2}},
		},
		{
			name: "Maze",
			grid: [][]int{
				{1, 0, 0, 1, 1},
				{1, 1, 0, 1, 0},
				{0, 1, 1, 1, 1},
				{0, 1, 0, 0, 1},
				{0, 1, 1, 1, 1},
			},
			start: [2]int{0, 0},
			end:   [2]int{4, 0},
			want:  [][2]int{{0, 1}, {1, 1}, {1, 2}, {2, 2}, {3, 2}, {3, 1}, {3, 0}, {4, 0}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.grid, tc.conn)
			path, err := astar.Search(g, astar.At(tc.start[0], tc.start[1]), astar.At(tc.end[0], tc.end[1]), tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, xy(path))
		})
	}
}

func TestSearch_NodeReferences(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 0}, {1, 1}}, gridgraph.Conn4)
	path, err := astar.Search(g, astar.NodeRef(g.At(0, 0)), astar.NodeRef(g.At(1, 1)))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 1}}, xy(path))
	assert.Same(t, g.At(1, 1), path[len(path)-1])
}

func TestSearch_ExactDiagonalCost(t *testing.T) {
	opts := gridgraph.GridOptions{Conn: gridgraph.Conn8, DiagonalCost: math.Sqrt2}
	g, err := gridgraph.NewGrid([][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, opts)
	require.NoError(t, err)

	res, err := astar.Run(g, astar.At(0, 0), astar.At(2, 2))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 1}, {2, 2}}, xy(res.Path))
	assert.InDelta(t, 2*math.Sqrt2, res.Cost, 1e-12)
}

// ------------------------------------------------------------------------
// 2. Validation.
// ------------------------------------------------------------------------

func TestSearch_Validation(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1}, {1, 1}}, gridgraph.Conn4)
	other := mustGrid(t, [][]int{{1}}, gridgraph.Conn4)

	cases := []struct {
		name       string
		grid       *gridgraph.Grid
		start, end astar.Endpoint
		err        error
	}{
		{"NilGrid", nil, astar.At(0, 0), astar.At(1, 1), astar.ErrNilGrid},
		{"StartOutOfBounds", g, astar.At(-1, 0), astar.At(1, 1), astar.ErrOutOfBounds},
		{"EndOutOfBounds", g, astar.At(0, 0), astar.At(2, 0), astar.ErrOutOfBounds},
		{"NilNode", g, astar.NodeRef(nil), astar.At(1, 1), astar.ErrNilNode},
		{"ForeignNode", g, astar.At(0, 0), astar.NodeRef(other.At(0, 0)), astar.ErrForeignNode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, err := astar.Search(tc.grid, tc.start, tc.end)
			require.ErrorIs(t, err, tc.err)
			assert.Nil(t, path)
		})
	}
	assert.ErrorIs(t, astar.ErrOutOfBounds, gridgraph.ErrOutOfBounds)
}

// ------------------------------------------------------------------------
// 3. Unreachable targets, walls and the closest fallback.
// ------------------------------------------------------------------------

func TestSearch_Unreachable(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 0, 1}}, gridgraph.Conn4)

	res, err := astar.Run(g, astar.At(0, 0), astar.At(2, 0))
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.NotNil(t, res.Path)
	assert.False(t, res.Found)
	assert.False(t, res.Partial)

	// The start itself is the closest node: still an empty path.
	res, err = astar.Run(g, astar.At(0, 0), astar.At(2, 0), astar.WithClosest())
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.True(t, res.Partial)
	assert.Zero(t, res.Cost)
}

func TestSearch_WalledEnd(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1, 0}}, gridgraph.Conn4)
	path, err := astar.Search(g, astar.At(0, 0), astar.At(2, 0))
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = astar.Search(g, astar.At(0, 0), astar.At(2, 0), astar.WithClosest())
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 0}}, xy(path))
}

func TestSearch_WalledStartStillExpands(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 1, 1}}, gridgraph.Conn4)
	path, err := astar.Search(g, astar.At(0, 0), astar.At(2, 0))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 0}, {2, 0}}, xy(path))
}

func TestSearch_StartEqualsEnd(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1}}, gridgraph.Conn4)
	res, err := astar.Run(g, astar.At(1, 0), astar.At(1, 0))
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.True(t, res.Found)
	assert.Zero(t, res.Expanded)
	assert.Equal(t, 1, res.Pushed)
}

// TestAt_ColumnRow pins the orientation: At(x, y) is values[y][x].
func TestAt_ColumnRow(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 7},
		{1, 1, 1},
	}, gridgraph.Conn4)

	path, err := astar.Search(g, astar.At(0, 0), astar.At(2, 0))
	require.NoError(t, err)
	require.NotEmpty(t, path)
	end := path[len(path)-1]
	assert.Equal(t, 2, end.X)
	assert.Equal(t, 0, end.Y)
	assert.Equal(t, 7.0, end.Weight)

	_, err = astar.Search(g, astar.At(0, 0), astar.At(0, 2))
	assert.ErrorIs(t, err, astar.ErrOutOfBounds)
}

func TestSearch_ClosestPrefersCheaperOnTie(t *testing.T) {
	// (0,2) and (2,0) are both 2 away from (2,2); reaching (2,0) costs 2,
	// reaching (0,2) costs 6 because of the heavy cell at (0,1).
	g := mustGrid(t, [][]int{
		{1, 1, 1},
		{5, 0, 0},
		{1, 0, 0},
	}, gridgraph.Conn4)
	path, err := astar.Search(g, astar.At(0, 0), astar.At(2, 2), astar.WithClosest())
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 0}, {2, 0}}, xy(path))
}

// ------------------------------------------------------------------------
// 4. State isolation and determinism.
// ------------------------------------------------------------------------

func TestSearch_RepeatedSearchesAreIsolated(t *testing.T) {
	weights := [][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 3, 0, 1},
		{0, 0, 1, 1, 1},
	}
	g := mustGrid(t, weights, gridgraph.Conn4)

	first, err := astar.Search(g, astar.At(0, 0), astar.At(2, 2))
	require.NoError(t, err)
	want := xy(first)
	require.NotEmpty(t, want)
	require.Positive(t, g.DirtyLen())

	// Unrelated searches in between, including a closest fallback.
	_, err = astar.Search(g, astar.At(4, 3), astar.At(0, 2))
	require.NoError(t, err)
	_, err = astar.Search(g, astar.At(4, 0), astar.At(1, 1), astar.WithClosest())
	require.NoError(t, err)

	again, err := astar.Search(g, astar.At(0, 0), astar.At(2, 2))
	require.NoError(t, err)
	assert.Equal(t, want, xy(again))

	fresh, err := astar.Search(mustGrid(t, weights, gridgraph.Conn4), astar.At(0, 0), astar.At(2, 2))
	require.NoError(t, err)
	assert.Equal(t, want, xy(fresh))
}

// ------------------------------------------------------------------------
// 5. Heuristics and options.
// ------------------------------------------------------------------------

func TestHeuristics(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}}, gridgraph.Conn8)
	a, b := g.At(0, 0), g.At(3, 2)

	assert.Equal(t, 5.0, astar.Manhattan(a, b))
	assert.Equal(t, 5.0, astar.Manhattan(b, a))
	assert.InDelta(t, 1+2*math.Sqrt2, astar.Diagonal(a, b), 1e-12)
	assert.Zero(t, astar.Diagonal(a, a))
}

func TestDefaultOptions(t *testing.T) {
	g4 := mustGrid(t, [][]int{{1, 1}, {1, 1}}, gridgraph.Conn4)
	g8 := mustGrid(t, [][]int{{1, 1}, {1, 1}}, gridgraph.Conn8)

	h4 := astar.DefaultOptions(g4).Heuristic
	h8 := astar.DefaultOptions(g8).Heuristic
	assert.Equal(t, 2.0, h4(g4.At(0, 0), g4.At(1, 1)))
	assert.InDelta(t, math.Sqrt2, h8(g8.At(0, 0), g8.At(1, 1)), 1e-12)
	assert.False(t, astar.DefaultOptions(g4).Closest)
}

func TestSearch_ZeroHeuristicMatchesCost(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 9, 1}, {1, 1, 1}}, gridgraph.Conn4)
	zero := func(a, b *gridgraph.Node) float64 { return 0 }

	withA, err := astar.Run(g, astar.At(0, 0), astar.At(2, 0))
	require.NoError(t, err)
	withZero, err := astar.Run(g, astar.At(0, 0), astar.At(2, 0), astar.WithHeuristic(zero))
	require.NoError(t, err)

	assert.Equal(t, 4.0, withA.Cost)
	assert.Equal(t, withA.Cost, withZero.Cost)
	assert.GreaterOrEqual(t, withZero.Expanded, withA.Expanded)
}

func TestSearch_RescoresImprovedNode(t *testing.T) {
	// The heuristic delays the short western route so (1,2) is first reached
	// the long way round and later improved.
	g := mustGrid(t, [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}, gridgraph.Conn4)
	h := func(a, _ *gridgraph.Node) float64 {
		switch {
		case a.X == 0 && a.Y == 1:
			return 100
		case a.X == 1 && a.Y == 2:
			return 200
		}
		return 0
	}

	res, err := astar.Run(g, astar.At(0, 0), astar.At(1, 2), astar.WithHeuristic(h))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, xy(res.Path))
	assert.Equal(t, 3.0, res.Cost)
	assert.Equal(t, 1, res.Rescored)
	assert.Equal(t, 7, res.Expanded)
}

// ------------------------------------------------------------------------
// 6. Stats, logging and observers.
// ------------------------------------------------------------------------

type recorder struct{ seen []astar.Stats }

func (r *recorder) ObserveSearch(s astar.Stats) { r.seen = append(r.seen, s) }

func TestRun_StatsAndObserver(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 9, 1}, {1, 1, 1}}, gridgraph.Conn4)
	rec := &recorder{}

	res, err := astar.Run(g, astar.At(0, 0), astar.At(2, 0), astar.WithObserver(rec))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 4, res.PathLen)
	assert.Equal(t, 4.0, res.Cost)
	assert.Equal(t, 4, res.Expanded)
	assert.Equal(t, 6, res.Pushed)
	assert.Zero(t, res.Rescored)

	require.Len(t, rec.seen, 1)
	assert.Equal(t, res.Stats, rec.seen[0])
}

func TestRun_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := mustGrid(t, [][]int{{1, 1}}, gridgraph.Conn4)

	_, err := astar.Search(g, astar.At(0, 0), astar.At(1, 0), astar.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"astar: search finished"`)
	assert.Contains(t, buf.String(), `"found":true`)
	assert.Contains(t, buf.String(), `"path_len":1`)

	// Errors are returned, not logged.
	buf.Reset()
	_, err = astar.Search(g, astar.At(5, 5), astar.At(1, 0), astar.WithLogger(logger))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestEndpoint_String(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1}}, gridgraph.Conn4)
	assert.Equal(t, "(3,4)", astar.At(3, 4).String())
	assert.Equal(t, "node[1 0]", astar.NodeRef(g.At(1, 0)).String())
	assert.Equal(t, "node(nil)", astar.NodeRef(nil).String())
}
