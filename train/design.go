// SPDX-License-Identifier: MIT

package train

import (
	"fmt"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/esn"
	"github.com/katalvlaran/reservoir/matrix"
)

// DesignMatrix runs tbl through r and returns X ((1+I+N)×E).
// MAIN DESCRIPTION:
//   - Stage 1: tbl.Warmups updates with tbl.WarmupInput (not recorded).
//   - Stage 2: for entry i, Update(Inputs[i]) then write column i:
//     rows 0..I = Inputs[i], rows I+1..I+N = the resulting state.
//
// DesignMatrix does NOT reset the state; callers that want a run from rest
// call r.ResetState first. Given identical weights and starting state the
// result is a pure function of tbl.
//
// Errors:
//   - dataset validation errors; matrix.ErrDimensionMismatch when the table's
//     input width is not I+1.
//
// Complexity:
//   - Time O((W+E)·N·(N+I)), Space O((1+I+N)·E).
func DesignMatrix(r *esn.Reservoir, tbl *dataset.Table) (*matrix.Dense, error) {
	if err := tbl.Validate(); err != nil {
		return nil, fmt.Errorf("train: DesignMatrix: %w", err)
	}
	if tbl.InputWidth() != r.Inputs()+1 {
		return nil, fmt.Errorf("train: DesignMatrix: table input width %d, reservoir wants %d: %w",
			tbl.InputWidth(), r.Inputs()+1, matrix.ErrDimensionMismatch)
	}

	var err error
	for w := 0; w < tbl.Warmups; w++ {
		if err = r.Update(tbl.WarmupInput); err != nil {
			return nil, fmt.Errorf("train: DesignMatrix: warm-up %d: %w", w, err)
		}
	}

	x, err := matrix.NewDense(r.FeatureRows(), tbl.Entries())
	if err != nil {
		return nil, fmt.Errorf("train: DesignMatrix: %w", err)
	}
	stateRow := r.Inputs() + 1
	for i, in := range tbl.Inputs {
		if err = r.Update(in); err != nil {
			return nil, fmt.Errorf("train: DesignMatrix: entry %d: %w", i, err)
		}
		if err = x.SetColumn(i, 0, in.RawValues()); err != nil {
			return nil, fmt.Errorf("train: DesignMatrix: entry %d: %w", i, err)
		}
		if err = x.SetColumn(i, stateRow, r.State().RawValues()); err != nil {
			return nil, fmt.Errorf("train: DesignMatrix: entry %d: %w", i, err)
		}
	}

	return x, nil
}

// targetRow returns the 1×E matrix of tbl's targets.
func targetRow(tbl *dataset.Table) (*matrix.Dense, error) {
	return matrix.NewDenseFrom(1, tbl.Entries(), tbl.Targets)
}

// lookup fetches and validates a table and checks the reservoir can be
// fitted against scalar targets.
func lookup(r *esn.Reservoir, ds *dataset.Dataset, role dataset.Role) (*dataset.Table, error) {
	tbl, err := ds.Table(role)
	if err != nil {
		return nil, err
	}
	if err = tbl.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", role, err)
	}
	if r.Outputs() != 1 {
		return nil, fmt.Errorf("%d outputs for scalar targets: %w", r.Outputs(), matrix.ErrDimensionMismatch)
	}

	return tbl, nil
}

// runFromRest resets the state and builds X for tbl.
func runFromRest(r *esn.Reservoir, tbl *dataset.Table) (*matrix.Dense, error) {
	r.ResetState()

	return DesignMatrix(r, tbl)
}
