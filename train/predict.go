// SPDX-License-Identifier: MIT

package train

import (
	"fmt"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/esn"
)

// Prediction is the readout for one table entry.
type Prediction struct {
	Input  []float64 // augmented input vector (bias first)
	Target float64
	Output float64
}

// Predict runs the table selected by role from rest and returns one
// Prediction per entry. The state is zero after the call.
func Predict(r *esn.Reservoir, ds *dataset.Dataset, role dataset.Role) ([]Prediction, error) {
	tbl, err := lookup(r, ds, role)
	if err != nil {
		return nil, fmt.Errorf("train: Predict: %w", err)
	}
	defer r.ResetState()

	_, yHat, err := outputs(r, tbl)
	if err != nil {
		return nil, fmt.Errorf("train: Predict: %w", err)
	}
	preds := make([]Prediction, tbl.Entries())
	for i := range preds {
		preds[i] = Prediction{
			Input:  tbl.Inputs[i].RawValues(),
			Target: tbl.Targets[i],
			Output: yHat[i],
		}
	}

	return preds, nil
}
