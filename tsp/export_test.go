package tsp

import "github.com/katalvlaran/tsplab/citymap"

// ColonyTrails runs AntColony and also returns the final pheromone matrix.
func ColonyTrails(g *citymap.Graph, start int, p ColonyParams, opts ...Option) (Result, [][]float64, error) {
	c, o, err := newColony(g, start, p, opts)
	if err != nil {
		return Result{}, nil, err
	}
	res, err := c.run(&o)

	return res, c.trails(), err
}

// DeriveSeed exposes the stream mixer.
var DeriveSeed = deriveSeed

// Pick exposes the proportional draw of AntColony.
var Pick = pick

// ExhaustivePeak runs BreadthFirst (lifo false) or DepthFirst (lifo true) and
// also returns the largest number of path nodes held at once.
func ExhaustivePeak(g *citymap.Graph, start int, lifo bool) (Result, int, error) {
	o := DefaultOptions()
	a := newArena(0)
	res, err := enumerateIn(a, g, g.Order(), start, lifo, &o)

	return res, a.peak, err
}
