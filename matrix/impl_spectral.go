// SPDX-License-Identifier: MIT
// Package matrix: spectral kernels.
//
// Purpose:
//   - EigenvaluesSym / MaxAbsEigenvalue: eigenvalues of a symmetric matrix as
//     seen through its lower triangle, backed by gonum's LAPACK port with a
//     Jacobi fallback. These drive spectral-radius normalisation.
//   - Eigen: a self-contained Jacobi eigen-decomposition (values + vectors)
//     with symmetry validation.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// lowerSymmetric copies the lower triangle of m (diagonal included) into a
// gonum SymDense and into a mirrored *Dense for the Jacobi fallback.
// The strict upper triangle of m is never read.
func lowerSymmetric(m Matrix) (*mat.SymDense, *Dense, error) {
	n := m.Rows()
	sym := mat.NewSymDense(n, nil)
	mirror, err := NewDenseWithOptions(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, err
	}
	dm, fast := m.(*Dense)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			if fast {
				v = dm.data[i*n+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, nil, err
			}
			sym.SetSym(i, j, v)
			mirror.data[i*n+j] = v
			mirror.data[j*n+i] = v
		}
	}

	return sym, mirror, nil
}

// EigenvaluesSym returns the n eigenvalues of a symmetric n×n matrix (unordered).
// MAIN DESCRIPTION:
//   - Only the lower triangle is read, so a non-symmetric input is treated
//     as the symmetric matrix sharing its lower triangle. Symmetry is the
//     caller's contract and is not checked.
//
// Implementation:
//   - Stage 1: validate non-nil and square; copy the lower triangle.
//   - Stage 2: gonum mat.EigenSym (values only).
//   - Stage 3: if gonum reports failure, run Jacobi rotations on the mirror.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrMatrixEigenFailed.
//
// Complexity:
//   - Time O(n³), Space O(n²). Input never mutated.
func EigenvaluesSym(m Matrix, opts ...Option) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opEigenSym, err)
	}
	o := gatherOptions(opts...)

	sym, mirror, err := lowerSymmetric(m)
	if err != nil {
		return nil, matrixErrorf(opEigenSym, err)
	}

	var es mat.EigenSym
	if es.Factorize(sym, false) {
		return es.Values(nil), nil
	}

	vals, _, err := jacobi(mirror, o.eps, o.eigenMaxIter)
	if err != nil {
		return nil, matrixErrorf(opEigenSym, err)
	}

	return vals, nil
}

// MaxAbsEigenvalue returns max |λ| over EigenvaluesSym(m).
// Used for spectral-radius normalisation of reservoir weights.
func MaxAbsEigenvalue(m Matrix, opts ...Option) (float64, error) {
	vals, err := EigenvaluesSym(m, opts...)
	if err != nil {
		return 0, err
	}
	maxAbs := NormZero
	for _, v := range vals {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}

	return maxAbs, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi sweeps.
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol).
//   - Stage 2: rotate the largest off-diagonal entry to zero until
//     max|A[p,q]| < tol or maxIter rotations have been applied.
//
// Returns:
//   - eigenvalues (diagonal of the rotated matrix, unordered),
//   - Q whose columns are the corresponding eigenvectors.
//
// Errors:
//     ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNaNInf (bad tol),
//     ErrMatrixEigenFailed (max off-diagonal ≥ tol after maxIter).
//
// Complexity:
//   - Time O(maxIter·n) per rotation plus O(n²) pivot search, Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := m.Rows()
	work, err := NewDenseWithOptions(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err = work.AddInPlace(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	vals, q, err := jacobi(work, math.Abs(tol), maxIter)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	return vals, q, nil
}

// jacobi diagonalises the symmetric workspace a in place.
// a is destroyed; callers pass a private copy.
func jacobi(a *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	n := a.r
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter, i, j, p, q2  int
		maxOff, off        float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
		d                  = a.data
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: Find pivot (p,q) maximizing |A[p,q]|.
		maxOff = NormZero
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(d[i*n+j])
				if off > maxOff {
					maxOff, p, q2 = off, i, j
				}
			}
		}

		// J.2: Converged (an exactly diagonal matrix converges for tol == 0).
		if maxOff < tol || maxOff == NormZero {
			break
		}

		// J.3: Rotation parameters.
		app = d[p*n+p]
		aqq = d[q2*n+q2]
		apq = d[p*n+q2]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: Apply rotation to A (symmetric update of rows/cols p and q).
		for i = 0; i < n; i++ {
			if i == p || i == q2 {
				continue
			}
			aip = d[i*n+p]
			aiq = d[i*n+q2]
			d[i*n+p], d[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
			d[i*n+q2], d[q2*n+i] = s*aip+c*aiq, s*aip+c*aiq
		}
		d[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		d[q2*n+q2] = s*s*app + 2*c*s*apq + c*c*aqq
		d[p*n+q2], d[q2*n+p] = 0, 0

		// J.5: Accumulate rotation into Q.
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qiq = q.data[i*n+q2]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+q2] = s*qip + c*qiq
		}
	}

	// Final convergence check.
	maxOff = NormZero
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if off = math.Abs(d[i*n+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol && maxOff > NormZero {
		return nil, nil, ErrMatrixEigenFailed
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = d[i*n+i]
	}

	return vals, q, nil
}
