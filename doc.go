// Package tsplab is a laboratory for the travelling salesman problem on
// randomly generated 3-D city maps, where a zero cost means the road does
// not exist.
//
// What is in the box?
//
//	citymap     read-only cost matrix and city coordinates, tour checks
//	citygen     seeded city placement and Bernoulli road generation
//	            (symmetric, or elevation-skewed one-way costs)
//	tsp         BFS and DFS enumeration, nearest neighbour, greedy with
//	            lookahead, A*, ant colony optimisation, Held–Karp
//	config      YAML experiment files layered under CLI flags
//	runner      timed trials, optimality gaps, per-algorithm statistics
//	cmd/tsplab  generate, solve and bench commands
//
// Quick start:
//
//	g, _ := citygen.Generate(8, citygen.WithSeed(42), citygen.WithDensity(0.8))
//	res, _ := tsp.Solve(g, 0, tsp.AlgoAStar)
//	fmt.Println(res.Tour, res.Cost)
//
// Every solver returns a tsp.Result; a failed search is a normal outcome,
// reported through Result.Found, never an error.
package tsplab
