// Package tsp - functional options shared by every solver.
//
// Invalid options are recorded and surfaced as ErrOptionViolation by the
// solver call, never as panics. Options irrelevant to an algorithm are
// ignored (e.g. WithWorkers for A*).
package tsp

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// pollEvery is the number of expansions between context checks.
const pollEvery = 4096

// DefaultInitialPheromone is the uniform starting trail strength of AntColony.
const DefaultInitialPheromone = 1.0

// IterationStats is reported to WithOnIteration after each ACO iteration.
type IterationStats struct {
	Iteration int     // 0-based
	Completed int     // ants that closed a tour this iteration
	Best      float64 // cost of the best tour this iteration (-1 if none)
	Global    float64 // best cost so far (-1 if none)
}

// Option configures a solver call via functional arguments.
type Option func(*Options)

// Options holds per-call settings.
type Options struct {
	// Ctx allows cancellation and deadlines; polled sparsely.
	Ctx context.Context

	// Seed selects the deterministic RNG streams of AntColony (0 ⇒ default seed).
	Seed uint64

	// Rand, when set, supplies the base seed instead of Seed (one draw per call).
	Rand *rand.Rand

	// Workers is the number of goroutines building ant tours in parallel.
	Workers int

	// InitialPheromone is the uniform starting trail strength (> 0).
	InitialPheromone float64

	// OnIteration observes ACO progress; it runs on the calling goroutine.
	OnIteration func(IterationStats)

	// Colony carries ACO parameters for the Solve dispatcher.
	Colony *ColonyParams

	err error
}

// DefaultOptions returns background context, seed 0, one worker,
// DefaultInitialPheromone and a no-op iteration hook.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Workers:          1,
		InitialPheromone: DefaultInitialPheromone,
		OnIteration:      func(IterationStats) {},
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed fixes the RNG seed; equal seeds give equal ACO runs.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Rand = nil
	}
}

// WithRand derives the run seed from r (one Uint64 per call).
// A nil generator is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithWorkers sets the number of goroutines that build ant tours.
//
//	k ≥ 1: use k workers
//	k < 1: invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithInitialPheromone overrides the uniform starting trail strength.
// Values ≤ 0 or non-finite are rejected with ErrBadColonyParams by AntColony.
func WithInitialPheromone(v float64) Option {
	return func(o *Options) {
		o.InitialPheromone = v
	}
}

// WithOnIteration registers a progress hook for AntColony.
func WithOnIteration(fn func(IterationStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithColony attaches ACO parameters for use through Solve.
func WithColony(p ColonyParams) Option {
	return func(o *Options) {
		o.Colony = &p
	}
}

// checkpoint returns ctx.Err() on step 1 and every pollEvery steps after it.
func (o *Options) checkpoint(step int) error {
	if step%pollEvery != 1 {
		return nil
	}
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
	}

	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
