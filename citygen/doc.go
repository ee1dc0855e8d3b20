// Package citygen samples random cities in 3-D space and builds the cost
// matrix that tsplab solvers consume.
//
// Model
//
//   - Coordinates: x, y ~ U(−100, 100), z ~ U(0, 50) by default (WithBounds).
//   - Edges: each admissible edge is kept independently with probability
//     density (a Bernoulli trial). Symmetric graphs try each unordered pair
//     {i,j} once and mirror the cost; asymmetric graphs try each ordered pair.
//   - Costs: 3-D Euclidean distance. Asymmetric graphs scale it by the
//     uphill factor (default 1.1) when z_i < z_j and by the downhill factor
//     (default 0.9) when z_i > z_j.
//
// Determinism
//
//	All draws come from one owned generator (WithSeed or WithRand) in a fixed
//	order: x, y, z per city in index order, then edge trials in row-major
//	order. The same seed and options always yield the same graph.
//
// Invariant
//
//	A kept edge between two distinct cities must have a strictly positive cost,
//	since 0 means "absent" in citymap. Coincident cities therefore fail with
//	ErrDegenerateEdge instead of silently dropping the edge.
package citygen
