// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"github.com/katalvlaran/reservoir/esn"
)

// Range is a closed sampling interval [Min, Max].
type Range struct {
	Min, Max float64
}

func (r Range) valid() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) &&
		!math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) && r.Min <= r.Max
}

func (r Range) within(lo, hi float64) bool { return r.Min >= lo && r.Max <= hi }

// sample draws uniformly from the range.
func (r Range) sample(rng *rand.Rand) float64 { return esn.Uniform(rng, r.Min, r.Max) }

// Config drives Run and Refit.
type Config struct {
	Runs    int   // number of random trials
	Workers int   // concurrent trials; 0 ⇒ runtime.NumCPU()
	Nodes   int   // reservoir size N
	Seed    int64 // base seed; 0 ⇒ esn.DefaultRNGSeed

	Betas []float64 // ridge candidates, tried in order

	LeakRate       Range // ⊆ [0,1]
	InputScale     Range
	SpectralRadius Range
	Density        Range // ⊆ [0,1]

	MaxRandomizeAttempts int // 0 ⇒ esn.DefaultMaxRandomizeAttempts
}

// DefaultBetas are the ridge candidates of the classic NARMA-10 sweep.
func DefaultBetas() []float64 { return []float64{1e-1, 1e-3, 1e-5, 1e-7, 1e-9} }

// DefaultConfig returns the classic sweep: 200 nodes, λ ∈ [0,1],
// s_in ∈ [-1,1], ρ ∈ [-1,1], density ∈ [0.005,1].
func DefaultConfig() Config {
	return Config{
		Runs:           100,
		Workers:        runtime.NumCPU(),
		Nodes:          200,
		Seed:           esn.DefaultRNGSeed,
		Betas:          DefaultBetas(),
		LeakRate:       Range{0, 1},
		InputScale:     Range{-1, 1},
		SpectralRadius: Range{-1, 1},
		Density:        Range{0.005, 1},
	}
}

// Validate checks counts, ranges and β candidates.
// Errors: ErrInvalidConfig (wraps esn.ErrInvalidConfiguration).
func (c Config) Validate() error {
	switch {
	case c.Runs <= 0:
		return fmt.Errorf("%w: runs %d", ErrInvalidConfig, c.Runs)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	case c.Nodes <= 0:
		return fmt.Errorf("%w: nodes %d", ErrInvalidConfig, c.Nodes)
	case c.MaxRandomizeAttempts < 0:
		return fmt.Errorf("%w: randomize attempts %d", ErrInvalidConfig, c.MaxRandomizeAttempts)
	case len(c.Betas) == 0:
		return fmt.Errorf("%w: no ridge candidates", ErrInvalidConfig)
	}
	for _, nr := range []struct {
		name string
		r    Range
	}{
		{"leak rate", c.LeakRate},
		{"input scale", c.InputScale},
		{"spectral radius", c.SpectralRadius},
		{"density", c.Density},
	} {
		if !nr.r.valid() {
			return fmt.Errorf("%w: %s range [%g, %g]", ErrInvalidConfig, nr.name, nr.r.Min, nr.r.Max)
		}
	}
	if !c.LeakRate.within(0, 1) {
		return fmt.Errorf("%w: leak rate range must lie in [0,1]", ErrInvalidConfig)
	}
	if !c.Density.within(0, 1) {
		return fmt.Errorf("%w: density range must lie in [0,1]", ErrInvalidConfig)
	}

	return nil
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}

	return c.Workers
}

func (c Config) reservoirOptions() []esn.Option {
	if c.MaxRandomizeAttempts == 0 {
		return nil
	}

	return []esn.Option{esn.WithMaxRandomizeAttempts(c.MaxRandomizeAttempts)}
}
