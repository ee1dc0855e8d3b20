// SPDX-License-Identifier: MIT

package citygen

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/tsplab/citymap"
)

const (
	methodCities   = "Cities"
	methodCosts    = "Costs"
	methodGenerate = "Generate"
	minCities      = 1
)

// Cities samples n cities uniformly inside the configured bounds.
// Draw order is x, y, z per city in ascending index order.
func Cities(n int, opts ...Option) ([]citymap.City, error) {
	if n < minCities {
		return nil, fmt.Errorf("%s: n=%d: %w", methodCities, n, ErrTooFewCities)
	}
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	return sampleCities(n, &cfg), nil
}

func sampleCities(n int, cfg *config) []citymap.City {
	b := cfg.bounds
	xs := distuv.Uniform{Min: b.XMin, Max: b.XMax, Src: cfg.rng}
	ys := distuv.Uniform{Min: b.YMin, Max: b.YMax, Src: cfg.rng}
	zs := distuv.Uniform{Min: b.ZMin, Max: b.ZMax, Src: cfg.rng}

	out := make([]citymap.City, n)
	for i := range out {
		out[i] = citymap.City{ID: i, X: xs.Rand(), Y: ys.Rand(), Z: zs.Rand()}
	}

	return out
}

// Costs builds the cost matrix over the given cities with the configured
// density and symmetry. The diagonal is always 0.
//
// Errors: ErrTooFewCities, ErrInvalidDensity, ErrInvalidSlope,
// ErrDegenerateEdge.
//
// Complexity: O(n²) time and space.
func Costs(cities []citymap.City, opts ...Option) ([][]float64, error) {
	if len(cities) < minCities {
		return nil, fmt.Errorf("%s: n=%d: %w", methodCosts, len(cities), ErrTooFewCities)
	}
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	return buildCosts(cities, &cfg)
}

func buildCosts(cities []citymap.City, cfg *config) ([][]float64, error) {
	n := len(cities)
	keep := distuv.Bernoulli{P: cfg.density, Src: cfg.rng}

	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, n)
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		// symmetric graphs try each unordered pair once
		for j = 0; j < n; j++ {
			if i == j || (cfg.symmetric && j < i) {
				continue
			}
			if keep.Rand() == 0 {
				continue
			}
			d = citymap.Distance(cities[i], cities[j])
			if d == 0 {
				return nil, fmt.Errorf("%s: cities %d and %d coincide: %w", methodCosts, i, j, ErrDegenerateEdge)
			}
			if cfg.symmetric {
				costs[i][j], costs[j][i] = d, d
				continue
			}
			switch {
			case cities[i].Z < cities[j].Z:
				d *= cfg.uphill
			case cities[i].Z > cities[j].Z:
				d *= cfg.downhill
			}
			costs[i][j] = d
		}
	}

	return costs, nil
}

// Generate samples n cities and their cost matrix and returns the validated
// graph. Cities are drawn before any edge trial, so the coordinates for a
// seed do not depend on density or symmetry.
func Generate(n int, opts ...Option) (*citymap.Graph, error) {
	if n < minCities {
		return nil, fmt.Errorf("%s: n=%d: %w", methodGenerate, n, ErrTooFewCities)
	}
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	cities := sampleCities(n, &cfg)
	costs, err := buildCosts(cities, &cfg)
	if err != nil {
		return nil, err
	}

	return citymap.New(costs, cities)
}
