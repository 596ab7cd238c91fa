// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with partial pivoting and the kernels
// built on it (Determinant, Inverse).
//
// Purpose:
//   - Factor P·A = L·U once on a private copy of A, then reuse the factors.
//   - Detect numerical singularity with an explicit pivot epsilon
//     (DefaultSingularEpsilon, overridable via WithSingularEpsilon).
//
// Determinism:
//   - Pivot choice is the first row with the largest |a[i,k]| (ties keep the
//     lower index), so results are reproducible bit-for-bit.

package matrix

import "math"

// LUFactors holds a packed LU factorization P·A = L·U.
//   - lu stores U on and above the diagonal and the multipliers of L
//     (unit diagonal implied) strictly below it.
//   - piv[i] is the row of A that ended up at row i.
//   - sign is the parity of the permutation (+1 or -1).
//   - singular is set when any pivot magnitude fell below the epsilon.
type LUFactors struct {
	n        int
	lu       *Dense
	piv      []int
	sign     float64
	singular bool
}

// LU computes the partially pivoted Doolittle factorization of a square matrix.
// MAIN DESCRIPTION:
//   - Gaussian elimination with row exchanges on a copy of m.
//
// Implementation:
//   - Stage 1: validate non-nil and square; clone m into a *Dense workspace.
//   - Stage 2: for each column k pick the row p ≥ k maximising |a[p,k]|,
//     swap rows k and p, record the swap in piv/sign.
//   - Stage 3: if |a[k,k]| < eps mark the factorization singular and skip
//     the elimination step for that column; otherwise eliminate below.
//
// Behavior highlights:
//   - A singular input is NOT an error here: Determinant needs the factors
//     and returns 0; Inverse turns the flag into ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	work, err := NewDenseWithOptions(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err = work.AddInPlace(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	f := &LUFactors{n: n, lu: work, piv: make([]int, n), sign: 1}
	var (
		i, j, k, p  int
		maxAbs, abs float64
		pivot, mult float64
		a           = work.data
	)
	for i = 0; i < n; i++ {
		f.piv[i] = i
	}

	for k = 0; k < n; k++ {
		// Stage 2: partial pivot search in column k.
		p, maxAbs = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			abs = math.Abs(a[i*n+k])
			if abs > maxAbs {
				p, maxAbs = i, abs
			}
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			f.piv[k], f.piv[p] = f.piv[p], f.piv[k]
			f.sign = -f.sign
		}

		// Stage 3: singularity guard.
		if maxAbs < o.singularEps {
			f.singular = true
			continue
		}

		pivot = a[k*n+k]
		for i = k + 1; i < n; i++ {
			mult = a[i*n+k] / pivot
			a[i*n+k] = mult
			if mult == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= mult * a[k*n+j]
			}
		}
	}

	return f, nil
}

// Singular reports whether a pivot fell below the singularity epsilon.
func (f *LUFactors) Singular() bool { return f.singular }

// Pivot returns a copy of the row permutation (row i of P·A is row Pivot()[i] of A).
func (f *LUFactors) Pivot() []int {
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}

// L returns the unit lower-triangular factor as a fresh Dense.
func (f *LUFactors) L() *Dense {
	n := f.n
	l, _ := NewDense(n, n) // n > 0 guaranteed by LU
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			l.data[i*n+j] = f.lu.data[i*n+j]
		}
		l.data[i*n+i] = 1.0
	}

	return l
}

// U returns the upper-triangular factor as a fresh Dense.
func (f *LUFactors) U() *Dense {
	n := f.n
	u, _ := NewDenseWithOptions(n, n, WithNoValidateNaNInf())
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			u.data[i*n+j] = f.lu.data[i*n+j]
		}
	}

	return u
}

// Determinant returns sign(P)·Π U[i,i].
func (f *LUFactors) Determinant() float64 {
	det := f.sign
	for i := 0; i < f.n; i++ {
		det *= f.lu.data[i*f.n+i]
	}

	return det
}

// solveInto solves L·U·x = P·e_col into x using y as forward workspace.
// Assumes the factorization is non-singular.
func (f *LUFactors) solveInto(col int, y, x []float64) {
	n := f.n
	a := f.lu.data
	var i, k int
	var sum float64
	// Forward substitution: L*y = P*e_col.
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += a[i*n+k] * y[k]
		}
		if f.piv[i] == col {
			y[i] = 1.0 - sum
		} else {
			y[i] = -sum
		}
	}
	// Backward substitution: U*x = y.
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += a[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / a[i*n+i]
	}
}

// Determinant computes det(A) via LU with partial pivoting.
// MAIN DESCRIPTION:
//   - Non-destructive: works on an internal copy.
//   - A numerically singular matrix yields (≈0, nil), not an error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (also matches ErrDimensionMismatch).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant(m Matrix, opts ...Option) (float64, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return f.Determinant(), nil
}

// Inverse computes A⁻¹ using LU factorization with partial pivoting.
// MAIN DESCRIPTION:
//   - Factor once, then solve one forward/backward substitution per column.
//
// Implementation:
//   - Stage 1: LU(m) on a private copy (input never mutated).
//   - Stage 2: if any pivot magnitude < eps return ErrSingular.
//   - Stage 3: for each column c solve L·U·x = P·e_c and write x into column c.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Callers sweeping a regularisation parameter should treat ErrSingular
//     as "candidate not viable" rather than aborting.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if f.singular {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	y := make([]float64, n) // forward substitution workspace
	x := make([]float64, n) // backward substitution workspace
	for col := 0; col < n; col++ {
		f.solveInto(col, y, x)
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
