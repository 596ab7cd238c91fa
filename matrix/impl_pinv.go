// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultPinvRcond is the relative singular-value cutoff used by callers that
// have no better estimate of the problem's conditioning.
const DefaultPinvRcond = 1e-15

// toGonum copies m into a gonum *mat.Dense.
func toGonum(m Matrix) (*mat.Dense, error) {
	r, c := m.Rows(), m.Cols()
	if dm, ok := m.(*Dense); ok {
		return mat.NewDense(r, c, dm.RawValues()), nil
	}
	buf := make([]float64, r*c)
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if buf[i*c+j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// Pseudoinverse computes the Moore-Penrose pseudoinverse A⁺ = V·Σ⁺·Uᵀ.
// MAIN DESCRIPTION:
//   - Thin SVD A = U·Σ·Vᵀ (gonum), then invert every singular value σ_i with
//     σ_i > rcond·σ_max and map the rest to zero. The result is the
//     minimum-norm least-squares inverse, rank-reduced where A is
//     numerically rank-deficient.
//
// Implementation:
//   - Stage 1: validate m and rcond; copy m into gonum storage (m is never mutated).
//   - Stage 2: SVDThin factorisation; failure → ErrSVDFailed.
//   - Stage 3: accumulate A⁺[a,b] = Σ_i V[a,i]·σ_i⁻¹·U[b,i] over kept i.
//
// Inputs:
//   - m: any r×c matrix.
//   - rcond: relative cutoff, finite and ≥ 0.
//
// Returns:
//   - *Dense with shape c×r.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite rcond), ErrBadShape (negative rcond),
//     ErrSVDFailed.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(r·c).
func Pseudoinverse(m Matrix, rcond float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) {
		return nil, matrixErrorf(opPinv, ErrNaNInf)
	}
	if rcond < 0 {
		return nil, matrixErrorf(opPinv, ErrBadShape)
	}

	a, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, matrixErrorf(opPinv, ErrSVDFailed)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	r, c := m.Rows(), m.Cols()
	res, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	// Singular values come back in descending order; s[0] is σ_max.
	if len(s) == 0 || s[0] == NormZero {
		return res, nil // pseudoinverse of the zero matrix is zero
	}
	cutoff := rcond * s[0]

	var (
		i, row, col int
		inv, vi     float64
	)
	for i = 0; i < len(s); i++ {
		if s[i] <= cutoff {
			break // descending order: every later value is cut too
		}
		inv = 1.0 / s[i]
		for row = 0; row < c; row++ {
			vi = v.At(row, i) * inv
			if vi == 0 {
				continue
			}
			for col = 0; col < r; col++ {
				res.data[row*r+col] += vi * u.At(col, i)
			}
		}
	}

	return res, nil
}
