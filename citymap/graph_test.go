package citymap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/citymap"
)

// square4 is the unit square 0-1-2-3 with unit sides and √2 diagonals.
func square4() [][]float64 {
	d := math.Sqrt2
	return [][]float64{
		{0, 1, d, 1},
		{1, 0, 1, d},
		{d, 1, 0, 1},
		{1, d, 1, 0},
	}
}

func TestNew_Valid(t *testing.T) {
	g, err := citymap.New(square4(), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 1.0, g.Cost(0, 1))
	assert.True(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(2, 2))
	assert.Equal(t, 12, g.EdgeCount())
	assert.Equal(t, 1.0, g.Density())
	assert.True(t, g.IsSymmetric(0))
	assert.Nil(t, g.Cities())
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		costs [][]float64
		want  error
	}{
		{"empty", nil, citymap.ErrEmptyGraph},
		{"ragged", [][]float64{{0, 1}, {1}}, citymap.ErrNonSquare},
		{"diagonal", [][]float64{{1, 1}, {1, 0}}, citymap.ErrNonZeroDiagonal},
		{"nan", [][]float64{{0, math.NaN()}, {1, 0}}, citymap.ErrInvalidWeight},
		{"inf", [][]float64{{0, math.Inf(1)}, {1, 0}}, citymap.ErrInvalidWeight},
		{"negative", [][]float64{{0, -2}, {1, 0}}, citymap.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := citymap.New(tc.costs, nil)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_CityCountMismatch(t *testing.T) {
	_, err := citymap.New(square4(), []citymap.City{{X: 1}})
	assert.ErrorIs(t, err, citymap.ErrCityCount)
}

func TestNew_CopiesInput(t *testing.T) {
	rows := square4()
	cities := []citymap.City{{ID: 9}, {ID: 9}, {ID: 9}, {ID: 9}}
	g, err := citymap.New(rows, cities)
	require.NoError(t, err)

	rows[0][1] = 42
	cities[0].X = 42
	assert.Equal(t, 1.0, g.Cost(0, 1))

	c, ok := g.City(0)
	require.True(t, ok)
	assert.Equal(t, 0.0, c.X)
	assert.Equal(t, 0, c.ID, "IDs are normalized to the index")
	c3, _ := g.City(3)
	assert.Equal(t, 3, c3.ID)
}

func TestAt_Bounds(t *testing.T) {
	g, err := citymap.New(square4(), nil)
	require.NoError(t, err)

	w, err := g.At(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, w)

	_, err = g.At(4, 0)
	assert.ErrorIs(t, err, citymap.ErrOutOfRange)
	_, err = g.At(0, -1)
	assert.ErrorIs(t, err, citymap.ErrOutOfRange)
}

func TestMinEdge(t *testing.T) {
	g, err := citymap.New([][]float64{
		{0, 5, 0},
		{0, 0, 2.5},
		{7, 0, 0},
	}, nil)
	require.NoError(t, err)

	m, ok := g.MinEdge()
	assert.True(t, ok)
	assert.Equal(t, 2.5, m)
	assert.False(t, g.IsSymmetric(1e9), "one-way edges are never symmetric")
	assert.Equal(t, 1, g.OutDegree(0))
	assert.Equal(t, 0, g.OutDegree(7))

	empty, err := citymap.New([][]float64{{0, 0}, {0, 0}}, nil)
	require.NoError(t, err)
	_, ok = empty.MinEdge()
	assert.False(t, ok)
	assert.Equal(t, 0.0, empty.Density())
}

func TestRowAndRows_AreCopies(t *testing.T) {
	g, err := citymap.New(square4(), nil)
	require.NoError(t, err)

	r := g.Row(0)
	r[1] = 99
	assert.Equal(t, 1.0, g.Cost(0, 1))
	assert.Nil(t, g.Row(-1))

	all := g.Rows()
	assert.Equal(t, square4(), all)
}

func TestDistance(t *testing.T) {
	a := citymap.City{X: 0, Y: 0, Z: 0}
	b := citymap.City{X: 2, Y: 3, Z: 6}
	assert.InDelta(t, 7.0, citymap.Distance(a, b), 1e-12)
	assert.Equal(t, "city0 (2.00, 3.00, 6.00)", b.String())
}
