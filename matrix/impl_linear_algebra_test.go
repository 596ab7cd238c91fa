// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reservoir/matrix"
)

// TestHelpers_InterfaceHiding_Fallback ensures the non-*Dense paths produce
// the same results as the flat-buffer fast paths.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 3, 4, 1)
	b := RandFilledDense(t, 4, 2, 2)
	c := RandFilledDense(t, 3, 4, 3)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareClose(t, fast, slow, 0, 1e-12)

	sum1, err := matrix.Add(a, c)
	require.NoError(t, err)
	sum2, err := matrix.Add(hide{a}, c)
	require.NoError(t, err)
	CompareExact(t, toRows(t, sum1), sum2)

	t1, err := matrix.Transpose(a)
	require.NoError(t, err)
	t2, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareExact(t, toRows(t, t1), t2)
}

func TestAddSub(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{4, 3, 2, 1})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 5}, {5, 5}}, sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-3, -1}, {1, 3}}, diff)

	// Inputs untouched.
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_Known(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, got)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulT_MatchesExplicitTranspose(t *testing.T) {
	a := RandFilledDense(t, 4, 3, 11)
	b := RandFilledDense(t, 5, 3, 12)

	// A·Bᵀ
	bt, err := matrix.Transpose(b)
	require.NoError(t, err)
	want, err := matrix.Mul(a, bt)
	require.NoError(t, err)
	got, err := matrix.MulABt(a, b)
	require.NoError(t, err)
	CompareClose(t, want, got, 0, 1e-12)

	// Aᵀ·A
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	want, err = matrix.Mul(at, a)
	require.NoError(t, err)
	got, err = matrix.MulAtB(a, a)
	require.NoError(t, err)
	CompareClose(t, want, got, 0, 1e-12)

	// Aᵀ·Bᵀ via both flags, dense and fallback.
	want, err = matrix.Mul(at, bt)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // 3x4 · 3x5
	require.Nil(t, want)

	c := RandFilledDense(t, 6, 4, 13)
	ct, err := matrix.Transpose(c)
	require.NoError(t, err)
	want, err = matrix.Mul(at, ct)
	require.NoError(t, err)
	got, err = matrix.MulT(a, c, true, true)
	require.NoError(t, err)
	CompareClose(t, want, got, 0, 1e-12)
	got, err = matrix.MulT(hide{a}, hide{c}, true, true)
	require.NoError(t, err)
	CompareClose(t, want, got, 0, 1e-12)
}

func TestTranspose(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)
}

func TestScale(t *testing.T) {
	a := NewFilledDense(t, 1, 3, []float64{1, -2, 3})
	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-2, 4, -6}}, s)
	CompareExact(t, [][]float64{{1, -2, 3}}, a)

	_, err = matrix.Scale(a, math.Inf(-1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestAllClose(t *testing.T) {
	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 1, 2, []float64{1 + 1e-10, 2})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-11)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestIdentityAndZeros(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	a := RandFilledDense(t, 3, 3, 21)
	prod, err := matrix.Mul(a, id)
	require.NoError(t, err)
	CompareExact(t, toRows(t, a), prod)

	z, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	require.Equal(t, 3, z.Rows())
	require.Equal(t, 3, z.Cols())

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestValidators(t *testing.T) {
	var nilDense *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nilDense), matrix.ErrNilMatrix)

	rect := MustDense(t, 2, 3)
	err := matrix.ValidateSquare(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	asym := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-9), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(RandSymmetric(t, 4, 5), 0))

	require.NoError(t, matrix.ValidateMulCompatible(rect, rect, false, true))
	require.ErrorIs(t, matrix.ValidateMulCompatible(rect, rect, false, false), matrix.ErrDimensionMismatch)
}

// toRows reads m back into a [][]float64 for CompareExact.
func toRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}
