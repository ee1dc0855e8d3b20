// Package citymap - tour utilities shared by every solver and its tests.
//
// Provided helpers:
//   - ValidateTour: enforce closed Hamiltonian-cycle invariants on an index sequence.
//   - TourCost: recompute the cost of a tour in path order over existing edges.
//
// Design:
//   - No panics on user input, only sentinels from errors.go.
//   - Summation order follows the tour, so a solver that accumulates the same
//     edges in the same order reports a bit-identical cost.
package citymap

import "fmt"

// ValidateTour checks that tour is a closed Hamiltonian cycle of g from start:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each city in [0, n) appears exactly once in positions [0, n).
//
// Edge existence is not checked here; TourCost reports missing edges.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(g *Graph, tour []int, start int) error {
	n := g.Order()
	if start < 0 || start >= n {
		return fmt.Errorf("ValidateTour: start %d: %w", start, ErrOutOfRange)
	}
	if len(tour) != n+1 {
		return fmt.Errorf("ValidateTour: length %d, want %d: %w", len(tour), n+1, ErrInvalidTour)
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("ValidateTour: endpoints %d..%d, want %d: %w", tour[0], tour[n], start, ErrInvalidTour)
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("ValidateTour: position %d holds %d: %w", i, v, ErrOutOfRange)
		}
		if seen[v] {
			return fmt.Errorf("ValidateTour: city %d repeats: %w", v, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums Cost(tour[i], tour[i+1]) for every consecutive pair.
// The tour is not required to be Hamiltonian; pair it with ValidateTour.
//
// Errors: ErrInvalidTour for fewer than two entries, ErrOutOfRange for bad
// indices, ErrMissingEdge when a step uses an absent edge.
//
// Complexity: O(len(tour)).
func TourCost(g *Graph, tour []int) (float64, error) {
	if len(tour) < 2 {
		return 0, fmt.Errorf("TourCost: length %d: %w", len(tour), ErrInvalidTour)
	}

	var (
		sum  float64
		i    int
		u, v int
		w    float64
		err  error
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if w, err = g.At(u, v); err != nil {
			return 0, err
		}
		if w == 0 {
			return 0, fmt.Errorf("TourCost: %d→%d: %w", u, v, ErrMissingEdge)
		}
		sum += w
	}

	return sum, nil
}
