// SPDX-License-Identifier: MIT

// Package tsp - exhaustive enumeration of Hamiltonian cycles (BFS / DFS).
//
// Purpose:
//   - Try every simple path from start, one reachable unvisited city at a time,
//     and keep the cheapest one that covers all cities and closes to start.
//
// Design:
//   - Partial paths live in an arena; the frontier holds arena indices.
//   - BFS drains the frontier FIFO through a head cursor (level order).
//   - DFS pops LIFO and pushes successors in descending index order, so the
//     ascending successor is expanded first. Frontier indices grow from
//     bottom to top, so every arena node above the popped one belongs to a
//     finished subtree; the arena is cut back to the popped node, which keeps
//     DFS memory at O(n²) nodes.
//   - The best cycle is replaced only on strict improvement (first found wins ties).
//
// Complexity:
//   - Time O(n!) in the worst case (complete graph).
//   - Space O(n!) nodes for BFS, O(n²) for DFS.
package tsp

import (
	"math"

	"github.com/katalvlaran/tsplab/citymap"
)

const (
	methodBFS = "BreadthFirst"
	methodDFS = "DepthFirst"
)

// BreadthFirst enumerates every Hamiltonian cycle from start in level order and
// returns the cheapest. Failure: Result{Tour: nil, Cost: +Inf}.
//
// Errors: ErrNilGraph, ErrStartOutOfRange, ErrTooManyCities (n > 64),
// ErrOptionViolation, or the context error.
func BreadthFirst(g *citymap.Graph, start int, opts ...Option) (Result, error) {
	n, o, err := prepare(methodBFS, g, start, MaxSearchCities, opts)
	if err != nil {
		return Result{}, err
	}

	return enumerate(g, n, start, false, &o)
}

// DepthFirst is the LIFO twin of BreadthFirst; both report the same optimal
// cost, possibly via different equal-cost tours.
func DepthFirst(g *citymap.Graph, start int, opts ...Option) (Result, error) {
	n, o, err := prepare(methodDFS, g, start, MaxSearchCities, opts)
	if err != nil {
		return Result{}, err
	}

	return enumerate(g, n, start, true, &o)
}

// enumerate runs the shared frontier loop; lifo selects DFS order.
func enumerate(g *citymap.Graph, n, start int, lifo bool, o *Options) (Result, error) {
	return enumerateIn(newArena(n*n), g, n, start, lifo, o)
}

func enumerateIn(a *arena, g *citymap.Graph, n, start int, lifo bool, o *Options) (Result, error) {
	algo := AlgoBFS
	if lifo {
		algo = AlgoDFS
	}

	frontier := []int{a.root(start)}

	var (
		head     int // FIFO cursor
		idx      int
		node     pathNode
		next     int
		w        float64
		total    float64
		best     = math.Inf(1)
		bestTour []int
		expanded int
		err      error
	)
	for head < len(frontier) {
		if lifo {
			idx = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
			a.truncate(idx)
		} else {
			idx = frontier[head]
			head++
		}
		expanded++
		if err = o.checkpoint(expanded); err != nil {
			return Result{}, err
		}

		node = a.nodes[idx]
		if node.depth == n {
			if w = g.Cost(node.city, start); w != 0 {
				total = node.cost + w
				if total < best {
					best = total
					bestTour = a.closedTour(idx, start)
				}
			}
			continue
		}

		if lifo {
			for next = n - 1; next >= 0; next-- {
				if w = g.Cost(node.city, next); w != 0 && !node.isVisited(next) {
					frontier = append(frontier, a.extend(idx, next, w))
				}
			}
			continue
		}
		for next = 0; next < n; next++ {
			if w = g.Cost(node.city, next); w != 0 && !node.isVisited(next) {
				frontier = append(frontier, a.extend(idx, next, w))
			}
		}
	}

	if bestTour == nil {
		return failed(algo, expanded), nil
	}

	return Result{Algorithm: algo, Tour: bestTour, Cost: best, Expanded: expanded}, nil
}
