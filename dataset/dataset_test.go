// SPDX-License-Identifier: MIT
package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/matrix"
)

// rampTable is u_i = [1, i·0.1], y_i = 10/(i+1).
func rampTable(t testing.TB, n int) *dataset.Table {
	t.Helper()
	inputs := make([][]float64, n)
	targets := make([]float64, n)
	for i := range inputs {
		inputs[i] = []float64{1, float64(i) * 0.1}
		targets[i] = 10 / float64(i+1)
	}
	tbl, err := dataset.NewTable(0, []float64{1, 0}, inputs, targets)
	require.NoError(t, err)

	return tbl
}

func TestNewTable(t *testing.T) {
	tbl := rampTable(t, 5)
	require.Equal(t, 5, tbl.Entries())
	require.Equal(t, 2, tbl.InputWidth())
	v, err := tbl.Inputs[3].At(1, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.3, v, 1e-15)
}

func TestNewTable_Errors(t *testing.T) {
	_, err := dataset.NewTable(0, []float64{1, 0}, nil, nil)
	require.ErrorIs(t, err, dataset.ErrEmptyTable)

	_, err = dataset.NewTable(0, []float64{1, 0}, [][]float64{{1, 0}}, []float64{1, 2})
	require.ErrorIs(t, err, dataset.ErrShapeMismatch)

	_, err = dataset.NewTable(0, []float64{1, 0}, [][]float64{{1, 0, 3}}, []float64{1})
	require.ErrorIs(t, err, dataset.ErrShapeMismatch)

	_, err = dataset.NewTable(-1, []float64{1, 0}, [][]float64{{1, 0}}, []float64{1})
	require.ErrorIs(t, err, dataset.ErrNegativeWarmups)

	_, err = dataset.NewTable(0, nil, [][]float64{{1, 0}}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	var nilTable *dataset.Table
	require.ErrorIs(t, nilTable.Validate(), dataset.ErrEmptyTable)
}

func TestDataset_Table(t *testing.T) {
	a, b, c := rampTable(t, 3), rampTable(t, 4), rampTable(t, 5)
	ds, err := dataset.NewDataset(a, b, c)
	require.NoError(t, err)
	require.Equal(t, 1, ds.Inputs())

	for role, want := range map[dataset.Role]*dataset.Table{dataset.Train: a, dataset.Validate: b, dataset.Test: c} {
		got, err := ds.Table(role)
		require.NoError(t, err)
		require.Same(t, want, got)
	}

	_, err = ds.Table(dataset.Role(7))
	require.ErrorIs(t, err, dataset.ErrUnknownRole)
	_, err = ds.Table(dataset.Role(-1))
	require.ErrorIs(t, err, dataset.ErrUnknownRole)
}

func TestNewDataset_WidthMismatch(t *testing.T) {
	wide, err := dataset.NewTable(0, []float64{1, 0, 0}, [][]float64{{1, 2, 3}}, []float64{1})
	require.NoError(t, err)
	_, err = dataset.NewDataset(rampTable(t, 2), wide, rampTable(t, 2))
	require.ErrorIs(t, err, dataset.ErrShapeMismatch)

	_, err = dataset.NewDataset(nil, rampTable(t, 2), rampTable(t, 2))
	require.ErrorIs(t, err, dataset.ErrEmptyTable)
}

func TestRole_StringParse(t *testing.T) {
	for _, r := range dataset.Roles() {
		got, err := dataset.ParseRole(r.String())
		require.NoError(t, err)
		require.Equal(t, r, got)
	}
	got, err := dataset.ParseRole("TEST")
	require.NoError(t, err)
	require.Equal(t, dataset.Test, got)

	_, err = dataset.ParseRole("holdout")
	require.ErrorIs(t, err, dataset.ErrUnknownRole)
	require.Equal(t, "Role(9)", dataset.Role(9).String())
}
