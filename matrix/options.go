// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// dense kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural
	// checks (symmetry validation, Jacobi convergence).
	DefaultEpsilon = 1e-9

	// DefaultSingularEpsilon is the pivot magnitude below which LU-based
	// inversion reports ErrSingular.
	DefaultSingularEpsilon = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = true

	// DefaultEigenMaxIter caps the number of Jacobi rotations used by the
	// fallback eigenvalue path.
	DefaultEigenMaxIter = 10000
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSingularInvalid = "matrix: WithSingularEpsilon: eps must be finite, non-negative"
	panicMaxIterInvalid  = "matrix: WithEigenMaxIter: maxIter must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	singularEps    float64 // >= 0; DefaultSingularEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	eigenMaxIter   int     // > 0; DefaultEigenMaxIter
}

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSingularEpsilon sets the pivot threshold used by Inverse.
// Panics if eps is NaN, ±Inf or negative.
func WithSingularEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicSingularInvalid)
	}

	return func(o *Options) { o.singularEps = eps }
}

// WithValidateNaNInf enables finite-only enforcement on Set/Apply for
// matrices created through NewDenseWithOptions.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-only enforcement; scoring kernels use
// it to carry ±Inf/NaN through without failing.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithEigenMaxIter caps Jacobi rotations in the eigenvalue fallback path.
func WithEigenMaxIter(maxIter int) Option {
	if maxIter <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.eigenMaxIter = maxIter }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		singularEps:    DefaultSingularEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		eigenMaxIter:   DefaultEigenMaxIter,
	}
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
