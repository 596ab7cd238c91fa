// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/reservoir/esn"
)

// ErrInvalidConfig is returned by Config.Validate. It wraps
// esn.ErrInvalidConfiguration.
var ErrInvalidConfig = fmt.Errorf("search: invalid config: %w", esn.ErrInvalidConfiguration)
