// SPDX-License-Identifier: MIT
package train_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/esn"
)

// rampTable is u_i = [1, i·0.1], y_i = 10/(i+1).
func rampTable(t testing.TB, n, warmups int) *dataset.Table {
	t.Helper()
	inputs := make([][]float64, n)
	targets := make([]float64, n)
	for i := range inputs {
		inputs[i] = []float64{1, float64(i) * 0.1}
		targets[i] = 10 / float64(i+1)
	}
	tbl, err := dataset.NewTable(warmups, []float64{1, 0}, inputs, targets)
	require.NoError(t, err)

	return tbl
}

// noiseTable draws x_i ~ U[-1,1] and a smooth nonlinear target of the
// current and previous input.
func noiseTable(t testing.TB, rng *rand.Rand, n int) *dataset.Table {
	t.Helper()
	inputs := make([][]float64, n)
	targets := make([]float64, n)
	var prev float64
	for i := range inputs {
		x := esn.Uniform(rng, -1, 1)
		inputs[i] = []float64{1, x}
		targets[i] = 0.5*x + 0.3*prev*prev - 0.2
		prev = x
	}
	tbl, err := dataset.NewTable(3, []float64{1, 0}, inputs, targets)
	require.NoError(t, err)

	return tbl
}

func mustDataset(t testing.TB, train, validate, test *dataset.Table) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.NewDataset(train, validate, test)
	require.NoError(t, err)

	return ds
}

// mustRandomized builds a 1-input/1-output reservoir and randomizes it.
func mustRandomized(t testing.TB, nodes int, lambda, sIn, rho, density float64, seed int64) *esn.Reservoir {
	t.Helper()
	r, err := esn.New(1, 1, nodes, lambda, sIn, rho)
	require.NoError(t, err)
	require.NoError(t, r.Randomize(esn.RNGFromSeed(seed), density))

	return r
}

func requireAtRest(t testing.TB, r *esn.Reservoir) {
	t.Helper()
	for _, v := range r.State().RawValues() {
		require.Zero(t, v)
	}
}
