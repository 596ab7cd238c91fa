// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/reservoir/esn"
	"github.com/katalvlaran/reservoir/matrix"
)

// narmaOrder is the memory depth of the NARMA-10 system.
const narmaOrder = 10

// NARMAConfig parameterises the NARMA-10 benchmark:
//
//	y_i = D·(A·y_{i−1} + B·y_{i−1}·Σ_{j=2..10} y_{i−j} + 1.5·x_i·x_{i−10} + C)
//
// with x_i ~ U[InputMin, InputMax] and history terms before entry 0 taken as 0.
type NARMAConfig struct {
	TrainEntries    int
	ValidateEntries int
	TestEntries     int
	Warmups         int

	A, B, C, D float64

	InputMin, InputMax float64
}

// DefaultNARMAConfig returns the classic benchmark setup: 6000/2000/2000
// entries, 100 warm-ups, a=0.3, b=0.05, c=0.1, d=1, x ∈ [0, 0.5].
func DefaultNARMAConfig() NARMAConfig {
	return NARMAConfig{
		TrainEntries:    6000,
		ValidateEntries: 2000,
		TestEntries:     2000,
		Warmups:         100,
		A:               0.3,
		B:               0.05,
		C:               0.1,
		D:               1.0,
		InputMin:        0,
		InputMax:        0.5,
	}
}

// Validate rejects non-positive entry counts, negative warm-ups, non-finite
// coefficients and an empty or inverted input range.
func (c NARMAConfig) Validate() error {
	switch {
	case c.TrainEntries <= 0 || c.ValidateEntries <= 0 || c.TestEntries <= 0:
		return fmt.Errorf("%w: entries %d/%d/%d must be positive",
			ErrInvalidConfig, c.TrainEntries, c.ValidateEntries, c.TestEntries)
	case c.Warmups < 0:
		return fmt.Errorf("%w: warm-ups %d", ErrInvalidConfig, c.Warmups)
	case c.InputMin > c.InputMax:
		return fmt.Errorf("%w: input range [%g, %g]", ErrInvalidConfig, c.InputMin, c.InputMax)
	}
	for _, v := range []float64{c.A, c.B, c.C, c.D, c.InputMin, c.InputMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite coefficient %g", ErrInvalidConfig, v)
		}
	}

	return nil
}

// NARMA10 generates the three NARMA-10 tables in train, validate, test order
// from rng (DefaultRNGSeed stream when nil). Each table starts from an empty
// history and uses the warm-up input [1, 0].
func NARMA10(rng *rand.Rand, cfg NARMAConfig) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = esn.RNGFromSeed(0)
	}

	var tables [3]*Table
	var err error
	for i, n := range []int{cfg.TrainEntries, cfg.ValidateEntries, cfg.TestEntries} {
		if tables[i], err = narmaTable(rng, cfg, n); err != nil {
			return nil, fmt.Errorf("dataset: NARMA10: %s: %w", Role(i), err)
		}
	}

	return NewDataset(tables[0], tables[1], tables[2])
}

// narmaTable builds one table of n entries.
func narmaTable(rng *rand.Rand, cfg NARMAConfig, n int) (*Table, error) {
	wu, err := matrix.NewColumn([]float64{1, 0})
	if err != nil {
		return nil, err
	}
	t := &Table{
		Warmups:     cfg.Warmups,
		WarmupInput: wu,
		Inputs:      make([]*matrix.Dense, n),
		Targets:     make([]float64, n),
	}
	xs := make([]float64, n)

	var (
		i, j          int
		last, sum, xp float64
	)
	for i = 0; i < n; i++ {
		xs[i] = esn.Uniform(rng, cfg.InputMin, cfg.InputMax)
		if t.Inputs[i], err = matrix.NewColumn([]float64{1, xs[i]}); err != nil {
			return nil, err
		}

		xp, last, sum = 0, 0, 0
		if i >= narmaOrder {
			xp = xs[i-narmaOrder]
		}
		if i > 0 {
			last = t.Targets[i-1]
		}
		for j = 2; j <= narmaOrder && i-j >= 0; j++ {
			sum += t.Targets[i-j]
		}
		t.Targets[i] = cfg.D * (cfg.A*last + cfg.B*last*sum + 1.5*xs[i]*xp + cfg.C)
	}

	return t, nil
}
