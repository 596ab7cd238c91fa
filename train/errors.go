// SPDX-License-Identifier: MIT

package train

import (
	"fmt"

	"github.com/katalvlaran/reservoir/esn"
)

// ErrNoViableBeta is returned by RidgeRegression when the β list is empty or
// every candidate made X·Xᵗ+βI singular. It wraps esn.ErrInvalidConfiguration.
var ErrNoViableBeta = fmt.Errorf("train: no viable ridge parameter: %w", esn.ErrInvalidConfiguration)
