package citygen

import "errors"

var (
	// ErrTooFewCities indicates n < 1.
	ErrTooFewCities = errors.New("citygen: at least one city is required")

	// ErrInvalidDensity indicates a density outside [0, 1].
	ErrInvalidDensity = errors.New("citygen: density out of range")

	// ErrInvalidBounds indicates an empty or non-finite coordinate box.
	ErrInvalidBounds = errors.New("citygen: invalid coordinate bounds")

	// ErrInvalidSlope indicates a non-positive or non-finite asymmetry factor.
	ErrInvalidSlope = errors.New("citygen: slope factors must be positive")

	// ErrDegenerateEdge signals a kept edge of cost exactly 0 between distinct
	// cities, which the graph model would misread as a missing edge.
	ErrDegenerateEdge = errors.New("citygen: zero-cost edge between distinct cities")
)
