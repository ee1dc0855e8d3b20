// Package tsp - input validation shared by every solver.
//
// All checks run before any search state is allocated, so an invalid call
// has no side effects and costs O(1) (graph invariants are enforced once by
// citymap.New).
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tsplab/citymap"
)

// validateInput checks the graph, start index and the algorithm's size limit
// (limit ≤ 0 disables it). It returns n on success.
func validateInput(method string, g *citymap.Graph, start, limit int) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	n := g.Order()
	if start < 0 || start >= n {
		return 0, fmt.Errorf("%s: start=%d, n=%d: %w", method, start, n, ErrStartOutOfRange)
	}
	if limit > 0 && n > limit {
		return 0, fmt.Errorf("%s: n=%d > %d: %w", method, n, limit, ErrTooManyCities)
	}

	return n, nil
}

// prepare combines option parsing with input validation.
func prepare(method string, g *citymap.Graph, start, limit int, opts []Option) (int, Options, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, o, fmt.Errorf("%s: %w", method, err)
	}
	n, err := validateInput(method, g, start, limit)

	return n, o, err
}
