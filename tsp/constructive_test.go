package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/tsp"
)

func TestNearestNeighbor_UnitSquare(t *testing.T) {
	g := square4(t)
	res, err := tsp.NearestNeighbor(g, startV)
	require.NoError(t, err)
	requireTour(t, g, res, startV)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour, "ties go to the lowest index")
	assert.Equal(t, 4.0, res.Cost)
}

func TestGreedyLookahead_UnitSquare(t *testing.T) {
	g := square4(t)
	res, err := tsp.GreedyLookahead(g, startV)
	require.NoError(t, err)
	requireTour(t, g, res, startV)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
}

func TestConstructive_TrapFails(t *testing.T) {
	g := trap4(t)
	for _, solve := range []func() (tsp.Result, error){
		func() (tsp.Result, error) { return tsp.NearestNeighbor(g, startV) },
		func() (tsp.Result, error) { return tsp.GreedyLookahead(g, startV) },
	} {
		res, err := solve()
		require.NoError(t, err)
		assert.False(t, res.Found())
		assert.Nil(t, res.Tour)
		assert.Equal(t, -1.0, res.Cost)
	}
}

// lookahead4: the cheap hop 0→1 is followed only by expensive edges, so the
// lookahead prefers 0→2 while nearest neighbour takes 0→1.
func lookahead4(t *testing.T) [][]float64 {
	return [][]float64{
		{0, 1, 2, 9},
		{9, 0, 10, 10},
		{9, 1, 0, 1},
		{1, 1, 10, 0},
	}
}

func TestGreedyLookahead_DiffersFromNearest(t *testing.T) {
	g := mustGraph(t, lookahead4(t))

	nn, err := tsp.NearestNeighbor(g, startV)
	require.NoError(t, err)
	requireTour(t, g, nn, startV)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, nn.Tour)
	assert.Equal(t, 13.0, nn.Cost)

	gr, err := tsp.GreedyLookahead(g, startV)
	require.NoError(t, err)
	requireTour(t, g, gr, startV)
	assert.Equal(t, []int{0, 2, 3, 1, 0}, gr.Tour)
	assert.Equal(t, 13.0, gr.Cost)
}

func TestConstructive_NoClosingEdge(t *testing.T) {
	g := mustGraph(t, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	})
	nn, err := tsp.NearestNeighbor(g, startV)
	require.NoError(t, err)
	assert.Equal(t, -1.0, nn.Cost)

	gr, err := tsp.GreedyLookahead(g, startV)
	require.NoError(t, err)
	assert.Equal(t, -1.0, gr.Cost)
}

func TestConstructive_SingleCity(t *testing.T) {
	g := empty(t, 1)
	res, err := tsp.NearestNeighbor(g, 0)
	require.NoError(t, err)
	assert.False(t, res.Found())
	res, err = tsp.GreedyLookahead(g, 0)
	require.NoError(t, err)
	assert.False(t, res.Found())
}

func TestConstructive_Errors(t *testing.T) {
	_, err := tsp.NearestNeighbor(nil, 0)
	assert.ErrorIs(t, err, tsp.ErrNilGraph)
	_, err = tsp.GreedyLookahead(square4(t), 9)
	assert.ErrorIs(t, err, tsp.ErrStartOutOfRange)
}

// City 1 only leads back to 0, so while other cities remain it has no second
// hop and is scored by its direct cost alone.
func TestGreedyLookahead_NoSecondHop(t *testing.T) {
	t.Run("dead end is cheapest", func(t *testing.T) {
		// scores from 0: city 1 → 5, city 2 → 3+4, city 3 → 9+1
		g := mustGraph(t, [][]float64{
			{0, 5, 3, 9},
			{1, 0, 0, 0},
			{0, 6, 0, 4},
			{2, 1, 4, 0},
		})
		res, err := tsp.GreedyLookahead(g, startV)
		require.NoError(t, err)
		assert.False(t, res.Found())
		assert.Nil(t, res.Tour)
		assert.Equal(t, -1.0, res.Cost)
		assert.Equal(t, 2, res.Expanded, "committed to city 1 and stuck on the next step")
	})

	t.Run("dead end loses on direct cost", func(t *testing.T) {
		// from 0: city 1 → 8, city 2 → 3+4; from 2: city 1 → 6, city 3 → 4+1
		g := mustGraph(t, [][]float64{
			{0, 8, 3, 9},
			{1, 0, 0, 0},
			{0, 6, 0, 4},
			{2, 1, 4, 0},
		})
		res, err := tsp.GreedyLookahead(g, startV)
		require.NoError(t, err)
		requireTour(t, g, res, startV)
		assert.Equal(t, []int{0, 2, 3, 1, 0}, res.Tour)
		assert.Equal(t, 9.0, res.Cost)
	})
}
