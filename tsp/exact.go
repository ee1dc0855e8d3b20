// SPDX-License-Identifier: MIT

package tsp

import (
	"math"

	"github.com/katalvlaran/tsplab/citymap"
)

const methodHeldKarp = "HeldKarp"

// HeldKarp solves the instance exactly with the Held–Karp dynamic programme.
//
// dp[mask][j] is the cheapest path that leaves start, visits exactly the
// cities in mask (start ∈ mask) and ends at j. A cost of 0 is a missing edge.
// After filling dp, the cycle is closed by the edge j→start.
//
// It is independent of the path-enumerating solvers and serves as their
// optimality oracle. Failure: Result{Tour: nil, Cost: +Inf}.
//
// Errors: ErrNilGraph, ErrStartOutOfRange, ErrTooManyCities (n > 20),
// ErrOptionViolation, or the context error.
//
// Time complexity:   O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func HeldKarp(g *citymap.Graph, start int, opts ...Option) (Result, error) {
	n, o, err := prepare(methodHeldKarp, g, start, MaxHeldKarpCities, opts)
	if err != nil {
		return Result{}, err
	}
	if n == 1 {
		return failed(AlgoHeldKarp, 0), nil
	}

	var (
		full     = 1<<uint(n) - 1
		startBit = 1 << uint(start)
		dp       = make([]float64, (full+1)*n)
		parent   = make([]int8, (full+1)*n)
		mask     int
		j, k     int
		prev     int
		c, cand  float64
		relaxed  int
		step     int
	)
	inf := math.Inf(1)
	for i := range dp {
		dp[i] = inf
		parent[i] = -1
	}
	dp[startBit*n+start] = 0

	for mask = startBit; mask <= full; mask++ {
		if mask&startBit == 0 {
			continue
		}
		step++
		if err = o.checkpoint(step); err != nil {
			return Result{}, err
		}
		for j = 0; j < n; j++ {
			if j == start || mask&(1<<uint(j)) == 0 {
				continue
			}
			prev = mask ^ 1<<uint(j)
			for k = 0; k < n; k++ {
				if prev&(1<<uint(k)) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				if c = g.Cost(k, j); c == 0 {
					continue
				}
				relaxed++
				cand = dp[prev*n+k] + c
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = int8(k)
				}
			}
		}
	}

	best := inf
	last := -1
	for j = 0; j < n; j++ {
		if j == start || math.IsInf(dp[full*n+j], 1) {
			continue
		}
		if c = g.Cost(j, start); c == 0 {
			continue
		}
		if cand = dp[full*n+j] + c; cand < best {
			best = cand
			last = j
		}
	}
	if last < 0 {
		return failed(AlgoHeldKarp, relaxed), nil
	}

	tour := make([]int, n+1)
	tour[0], tour[n] = start, start
	mask, j = full, last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		k = int(parent[mask*n+j])
		mask ^= 1 << uint(j)
		j = k
	}

	return Result{Algorithm: AlgoHeldKarp, Tour: tour, Cost: best, Expanded: relaxed}, nil
}
