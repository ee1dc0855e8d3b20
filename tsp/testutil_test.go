package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/citygen"
	"github.com/katalvlaran/tsplab/citymap"
	"github.com/katalvlaran/tsplab/tsp"
)

const (
	// costTol absorbs summation-order differences between equal-cost tours.
	costTol = 1e-9

	startV = 0
)

// smallColony keeps ACO runs fast on n ≤ 8.
var smallColony = tsp.ColonyParams{Ants: 12, Iterations: 25, Alpha: 1, Beta: 2, Evaporation: 0.1, Q: 1}

// mustGraph wraps citymap.New for literal matrices.
func mustGraph(t testing.TB, costs [][]float64) *citymap.Graph {
	t.Helper()
	g, err := citymap.New(costs, nil)
	require.NoError(t, err)

	return g
}

// square4 is the unit square 0-1-2-3 with √2 diagonals; the optimum is 4.
func square4(t testing.TB) *citymap.Graph {
	d := math.Sqrt2
	return mustGraph(t, [][]float64{
		{0, 1, d, 1},
		{1, 0, 1, d},
		{d, 1, 0, 1},
		{1, d, 1, 0},
	})
}

// trap4 has the single cycle 0→2→3→1→0 (cost 8) while the cheap first hop
// 0→1 leads into a dead end.
func trap4(t testing.TB) *citymap.Graph {
	return mustGraph(t, [][]float64{
		{0, 1, 5, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 1, 0, 0},
	})
}

// empty returns n cities with no edges.
func empty(t testing.TB, n int) *citymap.Graph {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	return mustGraph(t, rows)
}

// generated samples a random instance with the lab generator.
func generated(t testing.TB, n int, density float64, symmetric bool, seed uint64) *citymap.Graph {
	t.Helper()
	g, err := citygen.Generate(n,
		citygen.WithSeed(seed),
		citygen.WithDensity(density),
		citygen.WithSymmetric(symmetric))
	require.NoError(t, err)

	return g
}

// requireTour asserts res is a valid closed tour whose cost recomputes exactly.
func requireTour(t testing.TB, g *citymap.Graph, res tsp.Result, start int) {
	t.Helper()
	require.True(t, res.Found(), "%v found nothing", res.Algorithm)
	require.NoError(t, citymap.ValidateTour(g, res.Tour, start))
	c, err := citymap.TourCost(g, res.Tour)
	require.NoError(t, err)
	require.Equal(t, c, res.Cost, "%v cost must recompute exactly", res.Algorithm)
}

// deterministic lists the solvers whose output depends only on the input.
var deterministic = []tsp.Algorithm{tsp.AlgoBFS, tsp.AlgoDFS, tsp.AlgoNN, tsp.AlgoGreedy, tsp.AlgoAStar, tsp.AlgoHeldKarp}
