// SPDX-License-Identifier: MIT
package train_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/esn"
	"github.com/katalvlaran/reservoir/matrix"
	"github.com/katalvlaran/reservoir/train"
)

// TestSolveRidge_OLSLiteral: with β=0 ridge is ordinary least squares.
// X rows are [bias; feature], targets [1,2,3] lie on y = x, so W = [0, 1].
func TestSolveRidge_OLSLiteral(t *testing.T) {
	x, err := matrix.NewDenseFrom(2, 3, []float64{1, 1, 1, 1, 2, 3})
	require.NoError(t, err)
	y, err := matrix.NewDenseFrom(1, 3, []float64{1, 2, 3})
	require.NoError(t, err)

	w, err := train.SolveRidge(x, y, 0)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 1}, w.RawValues(), 1e-12)

	// Singular normal equations surface as matrix.ErrSingular.
	flat, err := matrix.NewDenseFrom(2, 3, []float64{1, 1, 1, 2, 2, 2})
	require.NoError(t, err)
	_, err = train.SolveRidge(flat, y, 0)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestRidgeRegression_SingleBetaMatchesHandSolve(t *testing.T) {
	rng := esn.RNGFromSeed(8)
	ds := mustDataset(t, noiseTable(t, rng, 60), noiseTable(t, rng, 30), noiseTable(t, rng, 30))
	r := mustRandomized(t, 8, 0.6, 1, 0.9, 0.5, 12)

	const beta = 1e-3
	res, err := train.RidgeRegression(r, ds, dataset.Train, dataset.Validate, []float64{beta})
	require.NoError(t, err)
	require.Equal(t, beta, res.Beta)
	require.Empty(t, res.Skipped)
	requireAtRest(t, r)

	tbl, err := ds.Table(dataset.Train)
	require.NoError(t, err)
	x, err := train.DesignMatrix(r, tbl)
	require.NoError(t, err)
	r.ResetState()
	y, err := matrix.NewDenseFrom(1, tbl.Entries(), tbl.Targets)
	require.NoError(t, err)
	want, err := train.SolveRidge(x, y, beta)
	require.NoError(t, err)
	require.InDeltaSlice(t, want.RawValues(), r.WOut().RawValues(), 1e-9)
}

func TestRidgeRegression_SelectsLowestValidationScore(t *testing.T) {
	rng := esn.RNGFromSeed(4)
	ds := mustDataset(t, noiseTable(t, rng, 80), noiseTable(t, rng, 40), noiseTable(t, rng, 40))
	betas := []float64{1e-1, 1e-3, 1e-5, 1e-7, 1e-9}

	r := mustRandomized(t, 10, 0.5, 1, 0.95, 0.3, 6)
	res, err := train.RidgeRegression(r, ds, dataset.Train, dataset.Validate, betas)
	require.NoError(t, err)
	require.Contains(t, betas, res.Beta)

	// The installed readout is the reported one.
	got, err := train.NMSE(r, ds, dataset.Validate)
	require.NoError(t, err)
	require.InDelta(t, res.Score, got, 1e-12)

	// No single β does strictly better on validation.
	for _, beta := range betas {
		single := mustRandomized(t, 10, 0.5, 1, 0.95, 0.3, 6)
		one, err := train.RidgeRegression(single, ds, dataset.Train, dataset.Validate, []float64{beta})
		require.NoError(t, err)
		require.GreaterOrEqual(t, one.Score, res.Score, "β=%g", beta)
	}
}

// constantInputDataset has an identically zero input row, so X·Xᵗ is
// exactly singular and only β > 0 is viable.
func constantInputDataset(t testing.TB) *dataset.Dataset {
	t.Helper()
	mk := func(n int) *dataset.Table {
		inputs := make([][]float64, n)
		targets := make([]float64, n)
		for i := range inputs {
			inputs[i] = []float64{1, 0}
			targets[i] = float64(i % 3)
		}
		tbl, err := dataset.NewTable(0, []float64{1, 0}, inputs, targets)
		require.NoError(t, err)

		return tbl
	}

	return mustDataset(t, mk(20), mk(10), mk(10))
}

func TestRidgeRegression_SkipsSingular(t *testing.T) {
	ds := constantInputDataset(t)
	r := mustRandomized(t, 4, 0.5, 1, 0.9, 0.5, 2)

	res, err := train.RidgeRegression(r, ds, dataset.Train, dataset.Validate, []float64{0, 1e-2})
	require.NoError(t, err)
	require.Equal(t, []float64{0}, res.Skipped)
	require.Equal(t, 1e-2, res.Beta)
}

func TestRidgeRegression_NoViableBeta(t *testing.T) {
	ds := constantInputDataset(t)
	r := mustRandomized(t, 4, 0.5, 1, 0.9, 0.5, 2)

	prev, err := matrix.NewDense(1, r.FeatureRows())
	require.NoError(t, err)
	require.NoError(t, prev.Set(0, 0, 7))
	require.NoError(t, r.SetWOut(prev))

	_, err = train.RidgeRegression(r, ds, dataset.Train, dataset.Validate, []float64{0})
	require.ErrorIs(t, err, train.ErrNoViableBeta)
	require.ErrorIs(t, err, esn.ErrInvalidConfiguration)
	require.Equal(t, prev.RawValues(), r.WOut().RawValues())
	requireAtRest(t, r)

	_, err = train.RidgeRegression(r, ds, dataset.Train, dataset.Validate, nil)
	require.ErrorIs(t, err, train.ErrNoViableBeta)
}

func TestRidgeRegression_UnknownRole(t *testing.T) {
	ds := constantInputDataset(t)
	r := mustRandomized(t, 4, 0.5, 1, 0.9, 0.5, 2)
	_, err := train.RidgeRegression(r, ds, dataset.Train, dataset.Role(5), []float64{1})
	require.ErrorIs(t, err, dataset.ErrUnknownRole)
}
