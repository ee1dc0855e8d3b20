// Package tsp - RNG utilities for the stochastic solver.
//
// Goals:
//   - Determinism: same seed ⇒ identical ACO runs, whatever the worker count.
//   - Encapsulation: one seed policy; no time-based or global sources.
//
// Concurrency:
//   - rand.Rand is NOT goroutine-safe. Every ant draws from its own stream,
//     derived from (run seed, iteration, ant index) via deriveRNG.
package tsp

import "golang.org/x/exp/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed uint64 = 1

// baseSeed resolves the run seed: an explicit generator wins over Seed,
// and seed 0 maps to defaultRNGSeed.
func baseSeed(o *Options) uint64 {
	if o.Rand != nil {
		return o.Rand.Uint64()
	}
	if o.Seed == 0 {
		return defaultRNGSeed
	}

	return o.Seed
}

// deriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer, so neighbouring streams are decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// deriveRNG returns the independent stream `stream` of the run seeded by parent.
func deriveRNG(parent, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
