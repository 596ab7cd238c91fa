// SPDX-License-Identifier: MIT

package train

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/esn"
	"github.com/katalvlaran/reservoir/matrix"
)

// RidgeResult describes the outcome of a β sweep.
type RidgeResult struct {
	Beta    float64   // selected regularisation parameter
	Score   float64   // validation NMSE of the installed readout
	Skipped []float64 // candidates rejected because X·Xᵗ+βI was singular or β non-finite
}

// SolveRidge returns W = Y·Xᵗ·(X·Xᵗ+βI)⁻¹ for a design matrix x (F×E) and a
// target matrix y (O×E). β = 0 gives the ordinary least-squares solution when
// X·Xᵗ is invertible.
// Errors: matrix.ErrDimensionMismatch, matrix.ErrSingular.
func SolveRidge(x, y matrix.Matrix, beta float64) (*matrix.Dense, error) {
	xxt, err := matrix.MulABt(x, x)
	if err != nil {
		return nil, fmt.Errorf("train: SolveRidge: %w", err)
	}
	yxt, err := matrix.MulABt(y, x)
	if err != nil {
		return nil, fmt.Errorf("train: SolveRidge: %w", err)
	}

	return ridgeReadout(xxt, yxt, beta)
}

// ridgeReadout solves one β candidate from the precomputed Gram products.
// xxt is not modified.
func ridgeReadout(xxt, yxt *matrix.Dense, beta float64) (*matrix.Dense, error) {
	reg, err := matrix.NewIdentity(xxt.Rows())
	if err != nil {
		return nil, err
	}
	if err = reg.ScaleInPlace(beta); err != nil {
		return nil, err
	}
	if err = reg.AddInPlace(xxt); err != nil {
		return nil, err
	}
	inv, err := matrix.Inverse(reg)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(yxt, inv)
}

// RidgeRegression fits W_out by ridge regression on trainRole and selects β
// from betas by validation NMSE on validateRole.
// MAIN DESCRIPTION:
//   - Stage 1: reset state, build X from the training table, form X·Xᵗ and Y·Xᵗ once.
//   - Stage 2: for each β in the given order, solve the candidate readout,
//     install it and score it on the validation table. The first scored
//     candidate seeds the best; later ones replace it only when strictly
//     lower (ties keep the earlier β). A NaN best is replaced by any
//     non-NaN score.
//   - Stage 3: install the best readout and reset the state.
//
// Behavior highlights:
//   - A singular X·Xᵗ+βI (or a non-finite β) skips the candidate instead of
//     aborting the sweep; skipped values are listed in RidgeResult.Skipped.
//   - The reported validation score is optimistic: β was chosen on that
//     table. Use the test role for unbiased reporting.
//
// Errors:
//   - ErrNoViableBeta (wraps esn.ErrInvalidConfiguration) when betas is empty
//     or every candidate was skipped; the previous W_out is restored.
//   - dataset lookup/validation errors, matrix errors.
func RidgeRegression(r *esn.Reservoir, ds *dataset.Dataset, trainRole, validateRole dataset.Role, betas []float64) (RidgeResult, error) {
	var res RidgeResult
	trainTbl, err := lookup(r, ds, trainRole)
	if err != nil {
		return res, fmt.Errorf("train: RidgeRegression: %w", err)
	}
	valTbl, err := lookup(r, ds, validateRole)
	if err != nil {
		return res, fmt.Errorf("train: RidgeRegression: %w", err)
	}
	if len(betas) == 0 {
		return res, fmt.Errorf("train: RidgeRegression: empty β list: %w", ErrNoViableBeta)
	}
	defer r.ResetState()

	prev := r.WOut()
	fail := func(err error) (RidgeResult, error) {
		_ = r.SetWOut(prev) // same shape, cannot fail

		return res, fmt.Errorf("train: RidgeRegression: %w", err)
	}

	x, err := runFromRest(r, trainTbl)
	if err != nil {
		return fail(err)
	}
	y, err := targetRow(trainTbl)
	if err != nil {
		return fail(err)
	}
	xxt, err := matrix.MulABt(x, x)
	if err != nil {
		return fail(err)
	}
	yxt, err := matrix.MulABt(y, x)
	if err != nil {
		return fail(err)
	}

	var (
		best  *matrix.Dense
		cand  *matrix.Dense
		score float64
	)
	for _, beta := range betas {
		if math.IsNaN(beta) || math.IsInf(beta, 0) {
			res.Skipped = append(res.Skipped, beta)
			continue
		}
		cand, err = ridgeReadout(xxt, yxt, beta)
		if errors.Is(err, matrix.ErrSingular) {
			res.Skipped = append(res.Skipped, beta)
			continue
		}
		if err != nil {
			return fail(err)
		}
		if err = r.SetWOut(cand); err != nil {
			return fail(err)
		}
		if score, err = scoreTable(r, valTbl); err != nil {
			return fail(err)
		}
		if best == nil || score < res.Score || (math.IsNaN(res.Score) && !math.IsNaN(score)) {
			best, res.Beta, res.Score = cand, beta, score
		}
	}
	if best == nil {
		return fail(fmt.Errorf("%d candidates skipped: %w", len(res.Skipped), ErrNoViableBeta))
	}
	if err = r.SetWOut(best); err != nil {
		return fail(err)
	}

	return res, nil
}
