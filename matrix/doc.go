// Package matrix is the dense linear-algebra kernel of the reservoir module.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Products with optional transposition of either operand (MulT, MulABt,
//     MulAtB), element-wise Add/Sub/Scale and their in-place forms.
//   - LU factorization with partial pivoting, Determinant and Inverse
//     (ErrSingular on a pivot below the singularity epsilon).
//   - EigenvaluesSym / MaxAbsEigenvalue for spectral-radius normalisation and
//     a Jacobi Eigen decomposition.
//   - Pseudoinverse, the SVD-based Moore-Penrose inverse with a relative
//     singular-value cutoff.
//
// Every kernel returns a freshly allocated result owned by the caller and
// never mutates its inputs (the *InPlace methods excepted). Dimension
// mismatches are hard errors: kernels return ErrDimensionMismatch and no
// partial result.
package matrix
