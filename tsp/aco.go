// SPDX-License-Identifier: MIT

// Package tsp - Ant Colony Optimization.
//
// Iteration:
//  1. Every ant walks from start, choosing the next reachable unvisited city j
//     with probability ∝ τ[i][j]^α / cost[i][j]^β (distuv.Categorical).
//     A stuck ant fails for this iteration and deposits nothing.
//  2. A walk that covers all cities and closes to start is a valid tour; the
//     global best is replaced on strict improvement, in ant-index order.
//  3. τ *= (1 − ρ), floored at minTrail when ρ < 1; then every valid tour
//     adds Q / cost to each edge it used, closing edge included.
//
// Concurrency:
//   - Ants of one iteration run on up to Options.Workers goroutines (errgroup).
//     Pheromone is read-only while they walk; evaporation and deposit run after
//     the join. Each ant has its own RNG stream keyed by (seed, iteration, ant),
//     so a seeded run is identical for any worker count.
//
// Complexity:
//   - O(I · A · n²) time, O(n² + A·n) space.
package tsp

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/tsplab/citymap"
)

const methodACO = "AntColony"

// minTrail is the trail strength floor applied by evaporation when ρ < 1.
const minTrail = math.SmallestNonzeroFloat64

// ColonyParams are the required ACO controls; there are no implicit defaults.
type ColonyParams struct {
	Ants        int     `yaml:"ants"`
	Iterations  int     `yaml:"iterations"`
	Alpha       float64 `yaml:"alpha"`       // pheromone exponent, ≥ 0
	Beta        float64 `yaml:"beta"`        // inverse-cost exponent, ≥ 0
	Evaporation float64 `yaml:"evaporation"` // ρ ∈ [0, 1]
	Q           float64 `yaml:"q"`           // deposit numerator, > 0
}

// ValidateColony rejects parameters that would make pheromone undefined or
// negative. Values are never clamped.
func ValidateColony(p ColonyParams) error {
	switch {
	case p.Ants < 1:
		return fmt.Errorf("ants=%d < 1: %w", p.Ants, ErrBadColonyParams)
	case p.Iterations < 1:
		return fmt.Errorf("iterations=%d < 1: %w", p.Iterations, ErrBadColonyParams)
	case math.IsNaN(p.Evaporation) || p.Evaporation < 0 || p.Evaporation > 1:
		return fmt.Errorf("evaporation=%g not in [0,1]: %w", p.Evaporation, ErrBadColonyParams)
	case math.IsNaN(p.Alpha) || math.IsInf(p.Alpha, 0) || p.Alpha < 0:
		return fmt.Errorf("alpha=%g: %w", p.Alpha, ErrBadColonyParams)
	case math.IsNaN(p.Beta) || math.IsInf(p.Beta, 0) || p.Beta < 0:
		return fmt.Errorf("beta=%g: %w", p.Beta, ErrBadColonyParams)
	case !finitePositive(p.Q):
		return fmt.Errorf("q=%g: %w", p.Q, ErrBadColonyParams)
	}

	return nil
}

// AntColony runs p.Iterations rounds of p.Ants ants from start and returns the
// best tour found, or Result{Tour: []int{}, Cost: -1} if no ant ever closed a
// cycle. The result never beats the exhaustive optimum.
//
// Errors: ErrNilGraph, ErrStartOutOfRange, ErrBadColonyParams,
// ErrOptionViolation, or the context error.
func AntColony(g *citymap.Graph, start int, p ColonyParams, opts ...Option) (Result, error) {
	c, o, err := newColony(g, start, p, opts)
	if err != nil {
		return Result{}, err
	}

	return c.run(&o)
}

func newColony(g *citymap.Graph, start int, p ColonyParams, opts []Option) (*colony, Options, error) {
	n, o, err := prepare(methodACO, g, start, 0, opts)
	if err != nil {
		return nil, o, err
	}
	if err = ValidateColony(p); err != nil {
		return nil, o, fmt.Errorf("%s: %w", methodACO, err)
	}
	if !finitePositive(o.InitialPheromone) {
		return nil, o, fmt.Errorf("%s: initial pheromone=%g: %w", methodACO, o.InitialPheromone, ErrBadColonyParams)
	}

	tau := make([]float64, n*n)
	for i := range tau {
		tau[i] = o.InitialPheromone
	}

	return &colony{g: g, n: n, start: start, p: p, tau: tau, seed: baseSeed(&o)}, o, nil
}

type colony struct {
	g     *citymap.Graph
	n     int
	start int
	p     ColonyParams
	tau   []float64 // row-major pheromone, read-only during a walk
	seed  uint64
}

// antWalk is one ant's outcome for one iteration.
type antWalk struct {
	tour  []int
	cost  float64
	ok    bool
	steps int
}

func (c *colony) run(o *Options) (Result, error) {
	var (
		walks    = make([]antWalk, c.p.Ants)
		best     = math.Inf(1)
		bestTour []int
		expanded int
		iter     int
		err      error
	)
	for iter = 0; iter < c.p.Iterations; iter++ {
		if err = o.Ctx.Err(); err != nil {
			return Result{}, err
		}
		if err = c.iterate(o.Ctx, iter, o.Workers, walks); err != nil {
			return Result{}, err
		}

		stats := IterationStats{Iteration: iter, Best: failureCost}
		for k := range walks {
			expanded += walks[k].steps
			if !walks[k].ok {
				continue
			}
			stats.Completed++
			if stats.Best < 0 || walks[k].cost < stats.Best {
				stats.Best = walks[k].cost
			}
			if walks[k].cost < best {
				best = walks[k].cost
				bestTour = append([]int(nil), walks[k].tour...)
			}
		}
		c.evaporate()
		c.deposit(walks)

		stats.Global = failureCost
		if bestTour != nil {
			stats.Global = best
		}
		o.OnIteration(stats)
	}

	if bestTour == nil {
		return failed(AlgoACO, expanded), nil
	}

	return Result{Algorithm: AlgoACO, Tour: bestTour, Cost: best, Expanded: expanded}, nil
}

// iterate fills walks[k] for every ant k, on up to workers goroutines.
func (c *colony) iterate(ctx context.Context, iter, workers int, walks []antWalk) error {
	if workers <= 1 {
		for k := range walks {
			walks[k] = c.walk(c.antRNG(iter, k))
		}

		return nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for k := range walks {
		k := k
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			walks[k] = c.walk(c.antRNG(iter, k))

			return nil
		})
	}

	return eg.Wait()
}

func (c *colony) antRNG(iter, ant int) *rand.Rand {
	return deriveRNG(c.seed, uint64(iter)*uint64(c.p.Ants)+uint64(ant))
}

// walk builds one ant's path. It reads c.tau and c.g only.
func (c *colony) walk(rng *rand.Rand) antWalk {
	visited := make([]bool, c.n)
	visited[c.start] = true
	tour := make([]int, 1, c.n+1)
	tour[0] = c.start

	cands := make([]int, 0, c.n)
	weights := make([]float64, 0, c.n)

	var (
		cur  = c.start
		next int
		cost float64
		step int
	)
	for step = 1; step < c.n; step++ {
		cands, weights = c.candidates(cur, visited, cands[:0], weights[:0])
		if len(cands) == 0 {
			return antWalk{steps: step}
		}
		next = cands[pick(weights, rng)]
		cost += c.g.Cost(cur, next)
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}

	w := c.g.Cost(cur, c.start)
	if w == 0 {
		return antWalk{steps: c.n}
	}

	return antWalk{tour: append(tour, c.start), cost: cost + w, ok: true, steps: c.n}
}

// candidates lists reachable unvisited cities and their attractiveness.
func (c *colony) candidates(cur int, visited []bool, cands []int, weights []float64) ([]int, []float64) {
	var w float64
	for j := 0; j < c.n; j++ {
		if visited[j] {
			continue
		}
		if w = c.g.Cost(cur, j); w == 0 {
			continue
		}
		cands = append(cands, j)
		weights = append(weights, math.Pow(c.tau[cur*c.n+j], c.p.Alpha)/math.Pow(w, c.p.Beta))
	}

	return cands, weights
}

// pick samples an index of weights proportionally.
//   - NaN weights (0/0 after underflow) count as 0.
//   - If any weight is +Inf, the draw is uniform among those entries.
//   - A finite sum that overflows is rescaled by the largest weight.
//   - With no usable mass at all the choice is uniform.
//
// weights may be rewritten in place.
func pick(weights []float64, rng *rand.Rand) int {
	if len(weights) == 1 {
		return 0
	}

	var (
		sum, top float64
		inf      int
	)
	for i, w := range weights {
		switch {
		case math.IsNaN(w):
			weights[i] = 0
		case math.IsInf(w, 1):
			inf++
		case w > top:
			top = w
		}
		sum += weights[i]
	}

	if inf > 0 {
		k := rng.Intn(inf)
		for i, w := range weights {
			if !math.IsInf(w, 1) {
				continue
			}
			if k == 0 {
				return i
			}
			k--
		}
	}
	if !(sum > 0) {
		return rng.Intn(len(weights))
	}
	if math.IsInf(sum, 1) {
		for i := range weights {
			weights[i] /= top
		}
	}

	return int(distuv.NewCategorical(weights, rng).Rand())
}

// evaporate scales every trail by 1 − ρ. For ρ < 1 a trail never drops
// below minTrail, so edges that are never reinforced stay selectable.
func (c *colony) evaporate() {
	keep := 1 - c.p.Evaporation
	for i := range c.tau {
		c.tau[i] *= keep
		if keep > 0 && c.tau[i] < minTrail {
			c.tau[i] = minTrail
		}
	}
}

func (c *colony) deposit(walks []antWalk) {
	var (
		delta float64
		i     int
	)
	for k := range walks {
		if !walks[k].ok {
			continue
		}
		delta = c.p.Q / walks[k].cost
		for i = 0; i+1 < len(walks[k].tour); i++ {
			c.tau[walks[k].tour[i]*c.n+walks[k].tour[i+1]] += delta
		}
	}
}

// trails returns a copy of the pheromone matrix as rows.
func (c *colony) trails() [][]float64 {
	out := make([][]float64, c.n)
	for i := range out {
		out[i] = append([]float64(nil), c.tau[i*c.n:(i+1)*c.n]...)
	}

	return out
}
