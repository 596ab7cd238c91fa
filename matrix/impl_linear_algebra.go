// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, (transposed) matrix
// multiplication, transpose, and scalar scaling. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Factorizations live in impl_decompose.go, spectral routines in
//     impl_spectral.go and the pseudoinverse in impl_pinv.go.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opAllClose    = "AllClose"
	opEigen       = "Eigen"
	opEigenSym    = "EigenvaluesSym"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
	opLU          = "LU"
	opPinv        = "Pseudoinverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c). Inputs are never mutated; see (*Dense).AddInPlace
// for the in-place form.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Thin facade over MulT with no transposition.
func Mul(a, b Matrix) (*Dense, error) { return MulT(a, b, false, false) }

// MulT computes C = op(A) × op(B), where op(X) = Xᵀ when the matching flag is set.
// MAIN DESCRIPTION:
//   - General product with optional transposition of either operand, without
//     ever materialising the transpose.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil checks + inner extents after op()).
//   - Stage 2: If A and B are *Dense, index the flat buffers with stride
//     formulas for each op(); skip zero A-entries (reservoir matrices are sparse).
//   - Stage 3: Otherwise fall back to At with a fixed i→j→k order.
//
// Inputs:
//   - a, b: operands; transA, transB: transposition flags.
//
// Returns:
//   - *Dense with shape (rows(op(A)) × cols(op(B))); inputs unmodified.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (hard error, no partial result).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MulT(a, b Matrix, transA, transB bool) (*Dense, error) {
	if err := ValidateMulCompatible(a, b, transA, transB); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Effective shapes after op().
	rows, inner := a.Rows(), a.Cols()
	if transA {
		rows, inner = inner, rows
	}
	cols := b.Cols()
	if transB {
		cols = b.Rows()
	}

	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		av, bv  float64
		sum     float64
	)

	// Fast path: two Dense operands.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// Element accessors as stride formulas over the raw buffers.
			// op(A)[i,k] = transA ? A[k,i] : A[i,k]; same for B.
			aStrideI, aStrideK := da.c, 1
			if transA {
				aStrideI, aStrideK = 1, da.c
			}
			bStrideK, bStrideJ := db.c, 1
			if transB {
				bStrideK, bStrideJ = 1, db.c
			}
			var rowR int
			for i = 0; i < rows; i++ {
				rowR = i * cols
				for k = 0; k < inner; k++ {
					av = da.data[i*aStrideI+k*aStrideK]
					if av == 0 {
						continue // skip zero for performance
					}
					for j = 0; j < cols; j++ {
						res.data[rowR+j] += av * db.data[k*bStrideK+j*bStrideJ]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				if transA {
					av, err = a.At(k, i)
				} else {
					av, err = a.At(i, k)
				}
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if transB {
					bv, err = b.At(j, k)
				} else {
					bv, err = b.At(k, j)
				}
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// MulABt computes A·Bᵀ (used for XXᵗ and Y·Xᵗ in ridge regression).
func MulABt(a, b Matrix) (*Dense, error) { return MulT(a, b, false, true) }

// MulAtB computes Aᵀ·B.
func MulAtB(a, b Matrix) (*Dense, error) { return MulT(a, b, true, false) }

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix, ErrNaNInf (non-finite alpha).
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	var res *Dense
	if dm, ok := m.(*Dense); ok {
		res = dm.CloneDense()
	} else {
		rows, cols := m.Rows(), m.Cols()
		var err error
		if res, err = NewDense(rows, cols); err != nil {
			return nil, matrixErrorf(opScale, err)
		}
		if err = res.AddInPlace(m); err != nil {
			return nil, matrixErrorf(opScale, err)
		}
	}
	if err := res.ScaleInPlace(alpha); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| element-wise.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
//
// Complexity: O(r*c). Deterministic, early exit on the first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	var err error
	if rtol, err = ValidateTolerance(rtol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if atol, err = ValidateTolerance(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
