// Package tsp finds minimum-cost Hamiltonian cycles on a citymap.Graph.
//
// Every solver shares one signature family,
//
//	Solver(g *citymap.Graph, start int, opts ...Option) (Result, error)
//
// (AntColony additionally takes ColonyParams), and one cost convention:
// g.Cost(i, j) == 0 means the edge i→j does not exist.
//
// Solvers:
//
//   - BreadthFirst, DepthFirst: exact enumeration of every simple path
//     (FIFO / LIFO). O(n!) time. n ≤ 64.
//   - NearestNeighbor: cheapest outgoing edge at each step. O(n²).
//   - GreedyLookahead: cheapest edge plus the best follow-up hop. O(n³).
//   - AStar: best-first search over partial tours with the
//     global-minimum-edge heuristic; returns the optimum. n ≤ 64.
//   - AntColony: pheromone-guided stochastic construction, optionally with
//     parallel ants. Seeded and reproducible.
//   - HeldKarp: O(n²·2ⁿ) dynamic programme, n ≤ 20; an optimality oracle.
//
// No feasible tour is a normal outcome, reported through Result (see
// Result.Found), never as an error: Cost is +Inf for BreadthFirst,
// DepthFirst and HeldKarp, and -1 for the others. Errors are reserved for
// invalid input (ErrNilGraph, ErrStartOutOfRange, ErrTooManyCities,
// ErrBadColonyParams, ErrOptionViolation) and context cancellation.
//
// Solvers never log and never read configuration; callers observe ACO
// progress through WithOnIteration.
package tsp
