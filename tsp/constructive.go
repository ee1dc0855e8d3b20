// Package tsp - constructive heuristics: nearest neighbour and greedy with
// one-step lookahead.
//
// Both grow a single path from start, commit to every choice, and fail with
// cost -1 when stuck or when the last city cannot close back to start.
// Ties go to the lowest city index. O(n²) and O(n³) edge examinations.
package tsp

import (
	"math"

	"github.com/katalvlaran/tsplab/citymap"
)

const (
	methodNN     = "NearestNeighbor"
	methodGreedy = "GreedyLookahead"
)

// NearestNeighbor repeatedly follows the cheapest edge to an unvisited city.
// Failure: Result{Tour: nil, Cost: -1}. Never limited in n.
func NearestNeighbor(g *citymap.Graph, start int, opts ...Option) (Result, error) {
	n, o, err := prepare(methodNN, g, start, 0, opts)
	if err != nil {
		return Result{}, err
	}

	return construct(g, n, start, AlgoNN, &o, func(cur int, visited []bool) int {
		var (
			best = math.Inf(1)
			pick = -1
			w    float64
		)
		for c := 0; c < n; c++ {
			if visited[c] {
				continue
			}
			if w = g.Cost(cur, c); w != 0 && w < best {
				best, pick = w, c
			}
		}

		return pick
	})
}

// GreedyLookahead scores each reachable unvisited c1 by
// cost(cur,c1) + min cost(c1,c2) over unvisited c2 ≠ c1 (the direct cost alone
// when c1 has no such hop, or when c1 is the last city left) and commits to
// the lowest score. Failure: Result{Tour: nil, Cost: -1}.
func GreedyLookahead(g *citymap.Graph, start int, opts ...Option) (Result, error) {
	n, o, err := prepare(methodGreedy, g, start, 0, opts)
	if err != nil {
		return Result{}, err
	}

	return construct(g, n, start, AlgoGreedy, &o, func(cur int, visited []bool) int {
		var (
			best   = math.Inf(1)
			pick   = -1
			last   = countUnvisited(visited) == 1
			c1, c2 int
			w1, w2 float64
			hop    float64
			score  float64
		)
		for c1 = 0; c1 < n; c1++ {
			if visited[c1] {
				continue
			}
			if w1 = g.Cost(cur, c1); w1 == 0 {
				continue
			}
			score = w1
			if !last {
				hop = math.Inf(1)
				for c2 = 0; c2 < n; c2++ {
					if c2 == c1 || visited[c2] {
						continue
					}
					if w2 = g.Cost(c1, c2); w2 != 0 && w2 < hop {
						hop = w2
					}
				}
				if !math.IsInf(hop, 1) {
					score += hop
				}
			}
			if score < best {
				best, pick = score, c1
			}
		}

		return pick
	})
}

// construct drives a commit-only path builder. choose returns the next city
// or -1 when no unvisited city is reachable from cur.
func construct(g *citymap.Graph, n, start int, algo Algorithm, o *Options, choose func(cur int, visited []bool) int) (Result, error) {
	visited := make([]bool, n)
	visited[start] = true
	tour := make([]int, 1, n+1)
	tour[0] = start

	var (
		cur  = start
		next int
		cost float64
		step int
		err  error
	)
	for step = 1; step < n; step++ {
		if err = o.checkpoint(step); err != nil {
			return Result{}, err
		}
		if next = choose(cur, visited); next < 0 {
			return failed(algo, step), nil
		}
		cost += g.Cost(cur, next)
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}

	w := g.Cost(cur, start)
	if w == 0 {
		return failed(algo, n), nil
	}

	return Result{Algorithm: algo, Tour: append(tour, start), Cost: cost + w, Expanded: n}, nil
}

func countUnvisited(visited []bool) int {
	var k int
	for _, v := range visited {
		if !v {
			k++
		}
	}

	return k
}
