// Package tsp - unified dispatcher.
//
// Solve routes one (graph, start) pair to the solver named by an Algorithm.
// Each solver validates its own input, so Solve adds only the algorithm and
// colony checks.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tsplab/citymap"
)

const methodSolve = "Solve"

// Solve runs algo on g from start. AlgoACO requires WithColony.
//
// Errors: ErrUnsupportedAlgorithm, ErrMissingColonyParams, plus those of the
// selected solver.
func Solve(g *citymap.Graph, start int, algo Algorithm, opts ...Option) (Result, error) {
	switch algo {
	case AlgoBFS:
		return BreadthFirst(g, start, opts...)
	case AlgoDFS:
		return DepthFirst(g, start, opts...)
	case AlgoNN:
		return NearestNeighbor(g, start, opts...)
	case AlgoGreedy:
		return GreedyLookahead(g, start, opts...)
	case AlgoAStar:
		return AStar(g, start, opts...)
	case AlgoHeldKarp:
		return HeldKarp(g, start, opts...)
	case AlgoACO:
		o, err := buildOptions(opts)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", methodSolve, err)
		}
		if o.Colony == nil {
			return Result{}, fmt.Errorf("%s: %w", methodSolve, ErrMissingColonyParams)
		}

		return AntColony(g, start, *o.Colony, opts...)
	}

	return Result{}, fmt.Errorf("%s: %v: %w", methodSolve, algo, ErrUnsupportedAlgorithm)
}
