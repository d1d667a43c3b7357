package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NilGrid(t *testing.T) {
	res, err := search.Run(nil, search.BFS)
	assert.ErrorIs(t, err, search.ErrNilGrid)
	assert.Nil(t, res)
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	g := mustGrid(t, 3, 3, grid.Cell{}, grid.Cell{Row: 2, Col: 2})

	res, err := search.Run(g, search.Algorithm(99))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Nil(t, res)
}

func TestRun_OptionViolations(t *testing.T) {
	g := mustGrid(t, 3, 3, grid.Cell{}, grid.Cell{Row: 2, Col: 2})

	cases := []struct {
		name string
		opt  search.Option
	}{
		{"nil heuristic", search.WithHeuristic(nil)},
		{"weight below one", search.WithWeight(0.5)},
		{"zero iterations", search.WithMaxIterations(0)},
		{"growth limit too small", search.WithThresholdGrowthLimit(1)},
		{"nil expand hook", search.WithOnExpand(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := search.Run(g, search.AStar, tc.opt)
			assert.ErrorIs(t, err, search.ErrOptionViolation)
			assert.Nil(t, res)
		})
	}
}

func TestAlgorithm_StringAndParse(t *testing.T) {
	for _, a := range search.Algorithms() {
		parsed, err := search.ParseAlgorithm(a.String())
		require.NoError(t, err, a.String())
		assert.Equal(t, a, parsed)
	}

	_, err := search.ParseAlgorithm("dykstra")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

// TestRun_Deterministic: identical inputs yield identical results for every
// algorithm — the fixed neighbor order leaves no room for map-iteration or
// heap-tie nondeterminism to leak out.
func TestRun_Deterministic(t *testing.T) {
	for _, a := range search.Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			g := mustGrid(t, 7, 7, grid.Cell{}, grid.Cell{Row: 6, Col: 6},
				wallRowWithGap(7, 3, 3)...)

			first, err := search.Run(g, a)
			require.NoError(t, err)
			second, err := search.Run(g, a)
			require.NoError(t, err)

			assert.Equal(t, first.Trace, second.Trace)
			assert.Equal(t, first.Path, second.Path)
			assert.Equal(t, first.Cost, second.Cost)
			assert.Equal(t, first.Expanded, second.Expanded)
		})
	}
}

// TestRun_AllAlgorithmsFindTheOnlyGap: every algorithm's path on the
// wall-with-one-gap map must pass through the gap, reach both endpoints,
// and stay 4-connected.
func TestRun_AllAlgorithmsFindTheOnlyGap(t *testing.T) {
	gap := grid.Cell{Row: 3, Col: 3}
	for _, a := range search.Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			g := mustGrid(t, 7, 7, grid.Cell{}, grid.Cell{Row: 6, Col: 6},
				wallRowWithGap(7, 3, 3)...)

			res, err := search.Run(g, a)
			require.NoError(t, err)

			require.True(t, res.Found)
			assert.True(t, containsCell(res.Path, gap), "only way across the wall")
			assert.Equal(t, g.Start(), res.Path[0])
			assert.Equal(t, g.Target(), res.Path[len(res.Path)-1])
			assertConnected(t, g, res.Path)
		})
	}
}

// TestRun_AllAlgorithmsReportNoPath: an enclosed target is a negative
// answer, never an error.
func TestRun_AllAlgorithmsReportNoPath(t *testing.T) {
	target := grid.Cell{Row: 2, Col: 2}
	for _, a := range search.Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			g := mustGrid(t, 5, 5, grid.Cell{}, target, enclosure(target)...)

			res, err := search.Run(g, a)
			require.NoError(t, err)

			assert.False(t, res.Found)
			assert.Empty(t, res.Path)
			assert.Zero(t, res.Cost)
		})
	}
}

// TestRun_ExpandedCountsEveryDequeue: on weighted searches the Expanded
// counter includes stale heap entries, so it is never below the trace
// length.
func TestRun_ExpandedCountsEveryDequeue(t *testing.T) {
	g := mustGrid(t, 7, 7, grid.Cell{}, grid.Cell{Row: 6, Col: 6},
		wallRowWithGap(7, 3, 1)...)
	require.NoError(t, g.SetCost(grid.Cell{Row: 1, Col: 1}, 3))
	require.NoError(t, g.SetCost(grid.Cell{Row: 5, Col: 5}, 3))

	for _, a := range search.Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			res, err := search.Run(g, a)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.Expanded, len(res.Trace))
		})
	}
}
