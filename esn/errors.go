// SPDX-License-Identifier: MIT

package esn

import "errors"

// ErrInvalidConfiguration is returned when a reservoir cannot be built or
// randomized from the given parameters: non-positive input/output/node
// counts, a leak rate outside [0,1], non-finite scalars, a density outside
// [0,1], or a randomization that exhausted its attempt budget.
// Packages layering their own configuration errors wrap it, so
// errors.Is(err, ErrInvalidConfiguration) holds for all of them.
var ErrInvalidConfiguration = errors.New("esn: invalid configuration")
