// SPDX-License-Identifier: MIT
// Package citymap: sentinel error set.
// Every exported function returns one of these (possibly wrapped with call-site
// context via fmt.Errorf("...: %w", ErrX)); callers match with errors.Is.

package citymap

import "errors"

var (
	// ErrEmptyGraph is returned when a graph with zero cities is requested.
	ErrEmptyGraph = errors.New("citymap: graph has no cities")

	// ErrNonSquare signals that a cost row length differs from the city count.
	ErrNonSquare = errors.New("citymap: cost matrix is not square")

	// ErrNonZeroDiagonal signals a self-loop cost; the diagonal must be exactly 0.
	ErrNonZeroDiagonal = errors.New("citymap: diagonal entry is not zero")

	// ErrInvalidWeight signals a NaN or ±Inf cost.
	ErrInvalidWeight = errors.New("citymap: cost is NaN or Inf")

	// ErrNegativeWeight signals a negative cost; real edges are strictly positive.
	ErrNegativeWeight = errors.New("citymap: cost is negative")

	// ErrCityCount signals that the supplied city slice does not match the matrix order.
	ErrCityCount = errors.New("citymap: city count does not match matrix order")

	// ErrOutOfRange indicates a city index outside [0, n).
	ErrOutOfRange = errors.New("citymap: city index out of range")

	// ErrInvalidTour signals a sequence that is not a closed Hamiltonian cycle.
	ErrInvalidTour = errors.New("citymap: not a closed Hamiltonian tour")

	// ErrMissingEdge signals a tour step over an absent (zero-cost) edge.
	ErrMissingEdge = errors.New("citymap: tour uses a missing edge")
)
