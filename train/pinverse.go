// SPDX-License-Identifier: MIT

package train

import (
	"fmt"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/esn"
	"github.com/katalvlaran/reservoir/matrix"
)

// PinvRcond is the relative singular-value cutoff of the pseudoinverse fit.
const PinvRcond = 1e-7

// Pseudoinverse fits W_out = Y·X⁺ on the table selected by role: the exact
// least-squares readout, minimum-norm when X is rank-deficient.
// The state is zero before and after the call, also on error.
func Pseudoinverse(r *esn.Reservoir, ds *dataset.Dataset, role dataset.Role) error {
	tbl, err := lookup(r, ds, role)
	if err != nil {
		return fmt.Errorf("train: Pseudoinverse: %w", err)
	}
	defer r.ResetState()

	x, err := runFromRest(r, tbl)
	if err != nil {
		return fmt.Errorf("train: Pseudoinverse: %w", err)
	}
	xp, err := matrix.Pseudoinverse(x, PinvRcond)
	if err != nil {
		return fmt.Errorf("train: Pseudoinverse: %w", err)
	}
	y, err := targetRow(tbl)
	if err != nil {
		return fmt.Errorf("train: Pseudoinverse: %w", err)
	}
	w, err := matrix.Mul(y, xp)
	if err != nil {
		return fmt.Errorf("train: Pseudoinverse: %w", err)
	}
	if err = r.SetWOut(w); err != nil {
		return fmt.Errorf("train: Pseudoinverse: %w", err)
	}

	return nil
}
