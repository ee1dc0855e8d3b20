// Package tsp - partial-path arena shared by the exhaustive and informed searches.
//
// Each partial path is one node holding its last city, accumulated cost,
// visited mask and the arena index of its parent. Extending a path appends a
// single node; the full city sequence is rebuilt only for a goal.
package tsp

// noParent marks the root node.
const noParent = -1

type pathNode struct {
	parent  int
	city    int
	depth   int // number of cities on the path
	cost    float64
	visited uint64
}

type arena struct {
	nodes []pathNode
	peak  int // largest len(nodes) observed
}

func newArena(capHint int) *arena {
	return &arena{nodes: make([]pathNode, 0, capHint)}
}

// root appends the single-city path [start].
func (a *arena) root(start int) int {
	a.nodes = append(a.nodes, pathNode{parent: noParent, city: start, depth: 1, visited: 1 << uint(start)})
	if len(a.nodes) > a.peak {
		a.peak = len(a.nodes)
	}

	return len(a.nodes) - 1
}

// extend appends parent+[city] with the edge cost w.
func (a *arena) extend(parent, city int, w float64) int {
	p := a.nodes[parent]
	a.nodes = append(a.nodes, pathNode{
		parent:  parent,
		city:    city,
		depth:   p.depth + 1,
		cost:    p.cost + w,
		visited: p.visited | 1<<uint(city),
	})
	if len(a.nodes) > a.peak {
		a.peak = len(a.nodes)
	}

	return len(a.nodes) - 1
}

// truncate drops every node above idx.
func (a *arena) truncate(idx int) {
	a.nodes = a.nodes[:idx+1]
}

// sequence rebuilds the city order of node idx, start first.
func (a *arena) sequence(idx int) []int {
	d := a.nodes[idx].depth
	out := make([]int, d, d+1)
	for i := len(out) - 1; idx != noParent; i-- {
		out[i] = a.nodes[idx].city
		idx = a.nodes[idx].parent
	}

	return out
}

// closedTour returns the sequence of idx followed by start.
func (a *arena) closedTour(idx, start int) []int {
	seq := a.sequence(idx)

	return append(seq, start)
}

// key is a value-comparable encoding of the path of idx, one byte per city
// (n ≤ MaxSearchCities keeps every index below 256).
func (a *arena) key(idx int) string {
	b := make([]byte, a.nodes[idx].depth)
	for i := len(b) - 1; idx != noParent; i-- {
		b[i] = byte(a.nodes[idx].city)
		idx = a.nodes[idx].parent
	}

	return string(b)
}

// isVisited reports whether city is on the path.
func (p *pathNode) isVisited(city int) bool {
	return p.visited&(1<<uint(city)) != 0
}
