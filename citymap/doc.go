// Package citymap defines the read-only weighted graph of cities that every
// tsplab solver consumes.
//
// What
//
//   - City: an index 0..n-1 plus 3-D coordinates (x, y, z).
//   - Graph: an n×n row-major cost matrix over city indices.
//   - Tour helpers: ValidateTour and TourCost recompute and check closed tours.
//
// Missing edges
//
//	Cost(i,j) == 0 means "no directed edge i→j"; it is never a zero-length
//	edge. The diagonal is always 0 and never treated as an edge. Graphs may be
//	asymmetric (Cost(i,j) != Cost(j,i)) and sparse.
//
// Lifecycle
//
//	A Graph is built once by New (which validates every entry) and exposes no
//	mutators afterwards, so it can be shared by concurrent readers.
//
// Errors
//
//   - ErrEmptyGraph, ErrNonSquare, ErrNonZeroDiagonal, ErrInvalidWeight,
//     ErrNegativeWeight, ErrCityCount from New.
//   - ErrOutOfRange from At and the tour helpers.
//   - ErrInvalidTour, ErrMissingEdge from ValidateTour / TourCost.
package citymap
