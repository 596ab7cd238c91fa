// SPDX-License-Identifier: MIT
package train_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/matrix"
	"github.com/katalvlaran/reservoir/train"
)

func TestDesignMatrix_Layout(t *testing.T) {
	const nodes, warmups, entries = 6, 4, 7
	tbl := rampTable(t, entries, warmups)
	r := mustRandomized(t, nodes, 0.4, 0.9, 0.8, 0.5, 21)
	twin := mustRandomized(t, nodes, 0.4, 0.9, 0.8, 0.5, 21)

	x, err := train.DesignMatrix(r, tbl)
	require.NoError(t, err)
	require.Equal(t, 1+1+nodes, x.Rows())
	require.Equal(t, entries, x.Cols())

	// Replay by hand on the twin: warm-ups are not recorded.
	for w := 0; w < warmups; w++ {
		require.NoError(t, twin.Update(tbl.WarmupInput))
	}
	for i, in := range tbl.Inputs {
		require.NoError(t, twin.Update(in))
		col, err := x.Column(i)
		require.NoError(t, err)
		require.Equal(t, in.RawValues(), col[:2], "input rows of column %d", i)
		require.Equal(t, twin.State().RawValues(), col[2:], "state rows of column %d", i)
	}
}

func TestDesignMatrix_DoesNotReset(t *testing.T) {
	tbl := rampTable(t, 5, 0)
	r := mustRandomized(t, 5, 0.5, 1, 1, 0.5, 3)

	x1, err := train.DesignMatrix(r, tbl)
	require.NoError(t, err)
	x2, err := train.DesignMatrix(r, tbl)
	require.NoError(t, err)
	require.NotEqual(t, x1.RawValues(), x2.RawValues())

	r.ResetState()
	x3, err := train.DesignMatrix(r, tbl)
	require.NoError(t, err)
	require.Equal(t, x1.RawValues(), x3.RawValues())
}

func TestDesignMatrix_WidthMismatch(t *testing.T) {
	tbl, err := dataset.NewTable(0, []float64{1, 0, 0}, [][]float64{{1, 2, 3}}, []float64{1})
	require.NoError(t, err)
	r := mustRandomized(t, 4, 0.5, 1, 1, 0.5, 1)
	_, err = train.DesignMatrix(r, tbl)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
