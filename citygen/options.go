// SPDX-License-Identifier: MIT

// Package citygen - functional options for Cities, Generate and Costs.
//
// Contract:
//   - Option constructors panic on nil inputs (programmer error).
//   - Domain errors (density, bounds, slopes) are recorded on the config and
//     surfaced by the generator as sentinel errors, so values read from
//     user configuration never panic.
//   - Without WithSeed/WithRand the generator seeds itself with DefaultSeed.

package citygen

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Defaults of the sampling model.
const (
	DefaultSeed     uint64  = 1
	DefaultDensity  float64 = 1.0
	DefaultUphill   float64 = 1.1
	DefaultDownhill float64 = 0.9
)

// Bounds is the axis-aligned box cities are sampled from.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// DefaultBounds is x, y ∈ [−100, 100), z ∈ [0, 50).
var DefaultBounds = Bounds{XMin: -100, XMax: 100, YMin: -100, YMax: 100, ZMin: 0, ZMax: 50}

func (b Bounds) valid() bool {
	for _, v := range [...]float64{b.XMin, b.XMax, b.YMin, b.YMax, b.ZMin, b.ZMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return b.XMin <= b.XMax && b.YMin <= b.YMax && b.ZMin <= b.ZMax
}

// Option mutates a config before generation.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	density   float64
	symmetric bool
	bounds    Bounds
	uphill    float64
	downhill  float64
	err       error
}

func newConfig(opts ...Option) config {
	c := config{
		density:   DefaultDensity,
		symmetric: true,
		bounds:    DefaultBounds,
		uphill:    DefaultUphill,
		downhill:  DefaultDownhill,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return c
}

// fail keeps the first recorded option error.
func (c *config) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// WithSeed seeds a private generator; equal seeds give equal graphs.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an existing generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("citygen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithDensity sets the per-edge keep probability p ∈ [0, 1].
func WithDensity(p float64) Option {
	return func(c *config) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			c.fail(fmt.Errorf("WithDensity: p=%g not in [0,1]: %w", p, ErrInvalidDensity))
			return
		}
		c.density = p
	}
}

// WithSymmetric selects mirrored costs (true, default) or elevation-scaled
// one-way costs (false).
func WithSymmetric(symmetric bool) Option {
	return func(c *config) {
		c.symmetric = symmetric
	}
}

// WithBounds overrides the sampling box.
func WithBounds(b Bounds) Option {
	return func(c *config) {
		if !b.valid() {
			c.fail(fmt.Errorf("WithBounds: %+v: %w", b, ErrInvalidBounds))
			return
		}
		c.bounds = b
	}
}

// WithSlope sets the asymmetric multipliers applied when travelling up
// (z_i < z_j) and down (z_i > z_j). Ignored for symmetric graphs.
func WithSlope(uphill, downhill float64) Option {
	return func(c *config) {
		if !(uphill > 0) || !(downhill > 0) || math.IsInf(uphill, 0) || math.IsInf(downhill, 0) {
			c.fail(fmt.Errorf("WithSlope: up=%g down=%g: %w", uphill, downhill, ErrInvalidSlope))
			return
		}
		c.uphill, c.downhill = uphill, downhill
	}
}
