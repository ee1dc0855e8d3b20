package tsp_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/tsp"
)

func TestExhaustive_UnitSquare(t *testing.T) {
	g := square4(t)
	for _, solve := range []func() (tsp.Result, error){
		func() (tsp.Result, error) { return tsp.BreadthFirst(g, startV) },
		func() (tsp.Result, error) { return tsp.DepthFirst(g, startV) },
	} {
		res, err := solve()
		require.NoError(t, err)
		requireTour(t, g, res, startV)
		assert.Equal(t, 4.0, res.Cost)
		assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour, "first optimal cycle wins ties")
		assert.Positive(t, res.Expanded)
	}
}

func TestExhaustive_OtherStart(t *testing.T) {
	g := square4(t)
	res, err := tsp.BreadthFirst(g, 2)
	require.NoError(t, err)
	requireTour(t, g, res, 2)
	assert.Equal(t, []int{2, 1, 0, 3, 2}, res.Tour)

	dres, err := tsp.DepthFirst(g, 2)
	require.NoError(t, err)
	assert.Equal(t, res.Tour, dres.Tour)
}

func TestExhaustive_Trap(t *testing.T) {
	g := trap4(t)
	bfs, err := tsp.BreadthFirst(g, startV)
	require.NoError(t, err)
	dfs, err := tsp.DepthFirst(g, startV)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 3, 1, 0}, bfs.Tour)
	assert.Equal(t, 8.0, bfs.Cost)
	assert.Equal(t, bfs.Tour, dfs.Tour)
}

func TestExhaustive_Infeasible(t *testing.T) {
	noReturn := mustGraph(t, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	})
	for _, tc := range []struct {
		name string
		res  func() (tsp.Result, error)
	}{
		{"bfs no-return", func() (tsp.Result, error) { return tsp.BreadthFirst(noReturn, 0) }},
		{"dfs no-return", func() (tsp.Result, error) { return tsp.DepthFirst(noReturn, 0) }},
		{"bfs empty", func() (tsp.Result, error) { return tsp.BreadthFirst(empty(t, 5), 0) }},
		{"dfs single", func() (tsp.Result, error) { return tsp.DepthFirst(empty(t, 1), 0) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.res()
			require.NoError(t, err)
			assert.False(t, res.Found())
			assert.Nil(t, res.Tour)
			assert.True(t, math.IsInf(res.Cost, 1))
		})
	}
}

func TestExhaustive_Errors(t *testing.T) {
	_, err := tsp.BreadthFirst(nil, 0)
	assert.ErrorIs(t, err, tsp.ErrNilGraph)
	_, err = tsp.DepthFirst(square4(t), 4)
	assert.ErrorIs(t, err, tsp.ErrStartOutOfRange)
	_, err = tsp.BreadthFirst(square4(t), -1)
	assert.ErrorIs(t, err, tsp.ErrStartOutOfRange)
	_, err = tsp.DepthFirst(empty(t, tsp.MaxSearchCities+1), 0)
	assert.ErrorIs(t, err, tsp.ErrTooManyCities)
	_, err = tsp.BreadthFirst(square4(t), 0, tsp.WithWorkers(0))
	assert.ErrorIs(t, err, tsp.ErrOptionViolation)
}

func TestExhaustive_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tsp.BreadthFirst(square4(t), 0, tsp.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = tsp.DepthFirst(square4(t), 0, tsp.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDepthFirst_MemoryStaysQuadratic(t *testing.T) {
	const n = 8
	g := generated(t, n, 1, true, 31)

	dfs, dfsPeak, err := tsp.ExhaustivePeak(g, startV, true)
	require.NoError(t, err)
	bfs, bfsPeak, err := tsp.ExhaustivePeak(g, startV, false)
	require.NoError(t, err)

	assert.InDelta(t, bfs.Cost, dfs.Cost, costTol)
	assert.Greater(t, dfs.Expanded, n*n, "the search must outgrow the bound to mean anything")
	assert.LessOrEqual(t, dfsPeak, n*n, "DFS holds only its stack and the ancestors of it")
	assert.Greater(t, bfsPeak, 10*n*n)

	plain, err := tsp.DepthFirst(g, startV)
	require.NoError(t, err)
	assert.Equal(t, plain, dfs)
}
