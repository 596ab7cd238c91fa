// SPDX-License-Identifier: MIT

// Package esn - RNG utilities shared by randomization, dataset producers and
// the hyperparameter search.
//
// Goals:
//   - Determinism: same seed ⇒ identical reservoirs across runs.
//   - Encapsulation: a single RNG factory; no time-based or global sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRNG to create independent streams for parallel trials.
package esn

import "math/rand"

// DefaultRNGSeed is the fixed seed used when callers pass seed==0 or a nil *rand.Rand.
const DefaultRNGSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultRNGSeed; otherwise the seed is used verbatim.
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so neighbouring stream ids give
// uncorrelated children.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRNG creates an independent deterministic stream from a base RNG and a
// stream identifier. If base==nil, DefaultRNGSeed is the parent. Otherwise
// base.Int63() is consumed once, so derivations must happen in a fixed order
// (e.g. on the scheduling goroutine, before work is handed out).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// Uniform draws from U[lo, hi) using rng, which must not be nil.
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
