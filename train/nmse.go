// SPDX-License-Identifier: MIT

package train

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/esn"
	"github.com/katalvlaran/reservoir/matrix"
)

// NMSE scores the installed readout on the table selected by role:
//
//	NMSE = (1/E)·Σ_i (y_i − ŷ_i)² / v,   v = population variance of y
//
// where ŷ = W_out·X is computed from a run starting at rest. Constant
// targets give v = 0 and an ±Inf or NaN score; that is not an error.
// The state is zero after the call.
func NMSE(r *esn.Reservoir, ds *dataset.Dataset, role dataset.Role) (float64, error) {
	tbl, err := lookup(r, ds, role)
	if err != nil {
		return 0, fmt.Errorf("train: NMSE: %w", err)
	}
	defer r.ResetState()

	score, err := scoreTable(r, tbl)
	if err != nil {
		return 0, fmt.Errorf("train: NMSE: %w", err)
	}

	return score, nil
}

// outputs resets the state, runs tbl and returns X and ŷ = W_out·X (1×E).
func outputs(r *esn.Reservoir, tbl *dataset.Table) (*matrix.Dense, []float64, error) {
	x, err := runFromRest(r, tbl)
	if err != nil {
		return nil, nil, err
	}
	yHat, err := matrix.Mul(r.WOut(), x)
	if err != nil {
		return nil, nil, err
	}

	return x, yHat.RawValues(), nil
}

// scoreTable is NMSE without the lookup; the state is left dirty.
func scoreTable(r *esn.Reservoir, tbl *dataset.Table) (float64, error) {
	_, yHat, err := outputs(r, tbl)
	if err != nil {
		return 0, err
	}

	return nmse(tbl.Targets, yHat), nil
}

// nmse is the normalised mean squared error of yHat against y.
func nmse(y, yHat []float64) float64 {
	v := stat.PopVariance(y, nil)
	var sum, d float64
	for i := range y {
		d = y[i] - yHat[i]
		sum += d * d
	}

	return sum / v / float64(len(y))
}
