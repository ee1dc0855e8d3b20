// SPDX-License-Identifier: MIT

// Package citymap - dense cost storage (row-major) & read-only accessors.
//
// Purpose:
//   - Hold the n×n cost matrix in one flat slice with offset i*n + j.
//   - Validate every entry once at construction; hot-path readers (Cost, HasEdge)
//     then run without error returns.
//   - Keep the zero-means-absent convention in a single place (HasEdge, MinEdge).
//
// Complexity quicksheet:
//   - New: O(n²); Cost/HasEdge: O(1); At: O(1) bounds-checked;
//     MinEdge/EdgeCount/IsSymmetric: O(n²); Row: O(n).

package citymap

import (
	"fmt"
	"math"
)

// method tags used in error wrappers
const (
	ctxNew = "New"
	ctxAt  = "At"
)

// Graph is an immutable weighted directed graph over n cities.
//   - n is the city count (matrix order).
//   - w is the row-major cost buffer, len(w) == n*n; w[i*n+j] == 0 means no edge.
//   - cities is optional coordinate metadata (nil when built from costs only).
type Graph struct {
	n      int
	w      []float64
	cities []City
}

// New validates costs (and optional cities) and returns a read-only Graph.
// The rows are copied; later mutation of the caller's slices has no effect.
//
// Contracts:
//   - len(costs) ≥ 1 and every row has len(costs) entries.
//   - costs[i][i] == 0; every entry finite and ≥ 0.
//   - cities is nil or has exactly len(costs) elements; cities[i].ID is reset to i.
//
// Errors: ErrEmptyGraph, ErrNonSquare, ErrNonZeroDiagonal, ErrInvalidWeight,
// ErrNegativeWeight, ErrCityCount (wrapped with the offending coordinates).
//
// Complexity: O(n²) time and space.
func New(costs [][]float64, cities []City) (*Graph, error) {
	n := len(costs)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", ctxNew, ErrEmptyGraph)
	}
	if cities != nil && len(cities) != n {
		return nil, fmt.Errorf("%s: %d cities for order %d: %w", ctxNew, len(cities), n, ErrCityCount)
	}

	w := make([]float64, n*n)

	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		if len(costs[i]) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxNew, i, len(costs[i]), n, ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			x = costs[i][j]
			switch {
			case math.IsNaN(x) || math.IsInf(x, 0):
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, i, j, ErrInvalidWeight)
			case x < 0:
				return nil, fmt.Errorf("%s(%d,%d)=%g: %w", ctxNew, i, j, x, ErrNegativeWeight)
			case i == j && x != 0:
				return nil, fmt.Errorf("%s(%d,%d)=%g: %w", ctxNew, i, j, x, ErrNonZeroDiagonal)
			}
			w[i*n+j] = x
		}
	}

	g := &Graph{n: n, w: w}
	if cities != nil {
		g.cities = make([]City, n)
		copy(g.cities, cities)
		for i = range g.cities {
			g.cities[i].ID = i
		}
	}

	return g, nil
}

// Order returns the number of cities.
func (g *Graph) Order() int { return g.n }

// Cost returns the cost of edge i→j without bounds checks (0 means absent).
// Callers must guarantee 0 ≤ i, j < Order(); solvers validate once up front.
func (g *Graph) Cost(i, j int) float64 { return g.w[i*g.n+j] }

// HasEdge reports whether the directed edge i→j exists (i.e. Cost(i,j) != 0).
func (g *Graph) HasEdge(i, j int) bool { return g.w[i*g.n+j] != 0 }

// At is the bounds-checked variant of Cost.
// Returns ErrOutOfRange (wrapped with coordinates) for invalid indices.
func (g *Graph) At(i, j int) (float64, error) {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}

	return g.w[i*g.n+j], nil
}

// Row returns a copy of the outgoing costs of city i, or nil if i is out of range.
func (g *Graph) Row(i int) []float64 {
	if i < 0 || i >= g.n {
		return nil
	}
	out := make([]float64, g.n)
	copy(out, g.w[i*g.n:(i+1)*g.n])

	return out
}

// Rows returns a deep copy of the cost matrix as [][]float64.
// Complexity: O(n²).
func (g *Graph) Rows() [][]float64 {
	out := make([][]float64, g.n)
	for i := 0; i < g.n; i++ {
		out[i] = g.Row(i)
	}

	return out
}

// Cities returns a copy of the city coordinates (nil for cost-only graphs).
func (g *Graph) Cities() []City {
	if g.cities == nil {
		return nil
	}
	out := make([]City, len(g.cities))
	copy(out, g.cities)

	return out
}

// City returns city i and whether coordinates are available for it.
func (g *Graph) City(i int) (City, bool) {
	if g.cities == nil || i < 0 || i >= g.n {
		return City{}, false
	}

	return g.cities[i], true
}

// MinEdge returns the smallest positive off-diagonal cost in the whole graph.
// ok is false when the graph has no edges at all.
//
// Complexity: O(n²).
func (g *Graph) MinEdge() (float64, bool) {
	var (
		best = math.Inf(1)
		ok   bool
		i, j int
		x    float64
	)
	for i = 0; i < g.n; i++ {
		for j = 0; j < g.n; j++ {
			if i == j {
				continue
			}
			x = g.w[i*g.n+j]
			if x != 0 && x < best {
				best = x
				ok = true
			}
		}
	}
	if !ok {
		return 0, false
	}

	return best, true
}

// EdgeCount returns the number of directed edges (non-zero off-diagonal entries).
func (g *Graph) EdgeCount() int {
	var count, i, j int
	for i = 0; i < g.n; i++ {
		for j = 0; j < g.n; j++ {
			if i != j && g.w[i*g.n+j] != 0 {
				count++
			}
		}
	}

	return count
}

// OutDegree returns the number of outgoing edges of city i (0 if out of range).
func (g *Graph) OutDegree(i int) int {
	if i < 0 || i >= g.n {
		return 0
	}
	var d int
	for j := 0; j < g.n; j++ {
		if j != i && g.w[i*g.n+j] != 0 {
			d++
		}
	}

	return d
}

// Density returns EdgeCount / (n·(n−1)); a single-city graph has density 0.
func (g *Graph) Density() float64 {
	if g.n < 2 {
		return 0
	}

	return float64(g.EdgeCount()) / float64(g.n*(g.n-1))
}

// IsSymmetric reports whether |Cost(i,j) − Cost(j,i)| ≤ tol for every pair.
// An edge present in one direction only makes the graph asymmetric for any tol.
func (g *Graph) IsSymmetric(tol float64) bool {
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			aij = g.w[i*g.n+j]
			aji = g.w[j*g.n+i]
			if (aij == 0) != (aji == 0) {
				return false
			}
			if math.Abs(aij-aji) > tol {
				return false
			}
		}
	}

	return true
}
