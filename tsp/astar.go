// SPDX-License-Identifier: MIT

// Package tsp - A* best-first search over partial tours.
//
// Heuristic:
//   - hmin is the smallest positive edge weight of the whole graph.
//   - A partial path with L cities still needs (n − L) more cities plus the
//     closing edge, so h = hmin · (n − L + 1). Each of those edges costs ≥ hmin.
//   - A path covering all n cities has exactly one edge left, so its h is the
//     real closing cost; paths that cannot close are dead ends and are dropped.
//
// Design:
//   - Open set: binary heap ordered by (f, insertion sequence), so equal f
//     resolves to the first-found node.
//   - Duplicate index: path key → lowest f seen across open and closed; a
//     successor is discarded when an equal path with f no worse exists.
//   - The first goal popped is optimal because h never overestimates.
//
// Complexity:
//   - Worst case O(n!) nodes like exhaustive search; O(log N) per heap operation.
package tsp

import (
	"container/heap"

	"github.com/katalvlaran/tsplab/citymap"
)

const methodAStar = "AStar"

// AStar returns an optimal Hamiltonian cycle from start, or
// Result{Tour: nil, Cost: -1} when none exists.
//
// Errors: ErrNilGraph, ErrStartOutOfRange, ErrTooManyCities (n > 64),
// ErrOptionViolation, or the context error.
func AStar(g *citymap.Graph, start int, opts ...Option) (Result, error) {
	n, o, err := prepare(methodAStar, g, start, MaxSearchCities, opts)
	if err != nil {
		return Result{}, err
	}
	hmin, ok := g.MinEdge()
	if !ok {
		return failed(AlgoAStar, 0), nil
	}

	s := &astarSearch{
		g:     g,
		n:     n,
		start: start,
		hmin:  hmin,
		a:     newArena(n * n),
		seen:  make(map[string]float64),
	}
	root := s.a.root(start)
	s.seen[s.a.key(root)] = 0
	heap.Push(&s.open, &openItem{idx: root, f: 0, seq: s.nextSeq()})

	return s.run(&o)
}

type astarSearch struct {
	g     *citymap.Graph
	n     int
	start int
	hmin  float64
	a     *arena
	open  openPQ
	seen  map[string]float64
	seq   int
}

func (s *astarSearch) nextSeq() int {
	s.seq++

	return s.seq
}

func (s *astarSearch) run(o *Options) (Result, error) {
	var (
		item     *openItem
		node     pathNode
		expanded int
		err      error
	)
	for s.open.Len() > 0 {
		item = heap.Pop(&s.open).(*openItem)
		expanded++
		if err = o.checkpoint(expanded); err != nil {
			return Result{}, err
		}

		node = s.a.nodes[item.idx]
		if node.depth == s.n {
			// only closable full paths are ever pushed
			w := s.g.Cost(node.city, s.start)
			if w != 0 {
				return Result{
					Algorithm: AlgoAStar,
					Tour:      s.a.closedTour(item.idx, s.start),
					Cost:      node.cost + w,
					Expanded:  expanded,
				}, nil
			}
			continue
		}
		s.expand(item.idx, node)
	}

	return failed(AlgoAStar, expanded), nil
}

// expand pushes every reachable unvisited successor of the node at idx.
func (s *astarSearch) expand(idx int, node pathNode) {
	var (
		next  int
		w     float64
		child int
		f     float64
		key   string
		old   float64
		found bool
	)
	for next = 0; next < s.n; next++ {
		if w = s.g.Cost(node.city, next); w == 0 || node.isVisited(next) {
			continue
		}
		f, found = s.estimate(node, next, w)
		if !found {
			continue
		}
		child = s.a.extend(idx, next, w)
		key = s.a.key(child)
		if old, found = s.seen[key]; found && old <= f {
			s.a.nodes = s.a.nodes[:child] // drop the unused arena slot
			continue
		}
		s.seen[key] = f
		heap.Push(&s.open, &openItem{idx: child, f: f, seq: s.nextSeq()})
	}
}

// estimate returns f for node+[next]; ok is false for a full path that
// cannot close back to start.
func (s *astarSearch) estimate(node pathNode, next int, w float64) (float64, bool) {
	g := node.cost + w
	if node.depth+1 == s.n {
		back := s.g.Cost(next, s.start)
		if back == 0 {
			return 0, false
		}

		return g + back, true
	}

	return g + s.hmin*float64(s.n-node.depth), true
}

// openItem is one open-set entry: arena index, priority f and insertion order.
type openItem struct {
	idx int
	f   float64
	seq int
}

// openPQ is a min-heap of *openItem ordered by (f, seq).
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
