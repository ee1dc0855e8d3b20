// SPDX-License-Identifier: MIT

// Package tsp - shared types, sentinels and the algorithm catalogue.
package tsp

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors. Infeasibility is never an error; see Result.Found.
var (
	// ErrNilGraph is returned when a nil *citymap.Graph is passed.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrStartOutOfRange is returned when start ∉ [0, n).
	ErrStartOutOfRange = errors.New("tsp: start city out of range")

	// ErrTooManyCities is returned when n exceeds an algorithm's state encoding
	// (64 for bitmask searches, 20 for Held–Karp).
	ErrTooManyCities = errors.New("tsp: too many cities for this algorithm")

	// ErrBadColonyParams is returned for invalid ACO control parameters.
	ErrBadColonyParams = errors.New("tsp: invalid colony parameters")

	// ErrMissingColonyParams is returned when Solve is asked for ACO without WithColony.
	ErrMissingColonyParams = errors.New("tsp: colony parameters required")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tsp: invalid option supplied")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// Limits of the state encodings.
const (
	// MaxSearchCities bounds BFS, DFS and A*, whose visited sets are uint64 masks.
	MaxSearchCities = 64

	// MaxHeldKarpCities bounds the O(n·2ⁿ) dynamic programme.
	MaxHeldKarpCities = 20
)

// failureCost is the sentinel cost of the constructive, informed and
// stochastic solvers; exhaustive solvers report +Inf instead.
const failureCost = -1.0

// Algorithm identifies one solver.
type Algorithm int

const (
	AlgoBFS Algorithm = iota + 1
	AlgoDFS
	AlgoNN
	AlgoGreedy
	AlgoAStar
	AlgoACO
	AlgoHeldKarp
)

var algorithmNames = map[Algorithm]string{
	AlgoBFS:      "bfs",
	AlgoDFS:      "dfs",
	AlgoNN:       "nn",
	AlgoGreedy:   "greedy",
	AlgoAStar:    "astar",
	AlgoACO:      "aco",
	AlgoHeldKarp: "heldkarp",
}

// Algorithms lists every solver in catalogue order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoBFS, AlgoDFS, AlgoNN, AlgoGreedy, AlgoAStar, AlgoACO, AlgoHeldKarp}
}

// String returns the short CLI/YAML name ("bfs", "aco", ...).
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Exact reports whether the algorithm always returns the optimum.
func (a Algorithm) Exact() bool {
	switch a {
	case AlgoBFS, AlgoDFS, AlgoAStar, AlgoHeldKarp:
		return true
	}

	return false
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for a, s := range algorithmNames {
		if s == key {
			return a, nil
		}
	}

	return 0, fmt.Errorf("ParseAlgorithm: %q: %w", name, ErrUnsupportedAlgorithm)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if _, ok := algorithmNames[a]; !ok {
		return nil, fmt.Errorf("MarshalText: %d: %w", int(a), ErrUnsupportedAlgorithm)
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// Result is the outcome of one solver call.
//   - Tour is closed (Tour[0] == Tour[n] == start) on success; nil on failure,
//     except AntColony which reports an empty non-nil slice.
//   - Cost is the exact sum of traversed edges; +Inf (BreadthFirst, DepthFirst,
//     HeldKarp) or -1 (the others) on failure.
//   - Expanded counts search nodes popped, ant steps taken or DP cells relaxed.
type Result struct {
	Algorithm Algorithm
	Tour      []int
	Cost      float64
	Expanded  int
}

// Found reports whether the solver produced a Hamiltonian cycle.
func (r Result) Found() bool {
	return len(r.Tour) > 0 && r.Cost >= 0 && !math.IsInf(r.Cost, 1)
}

func failed(a Algorithm, expanded int) Result {
	switch a {
	case AlgoBFS, AlgoDFS, AlgoHeldKarp:
		return Result{Algorithm: a, Cost: math.Inf(1), Expanded: expanded}
	case AlgoACO:
		return Result{Algorithm: a, Tour: []int{}, Cost: failureCost, Expanded: expanded}
	}

	return Result{Algorithm: a, Cost: failureCost, Expanded: expanded}
}
