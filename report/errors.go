// SPDX-License-Identifier: MIT

package report

import "errors"

// ErrNoData is returned when there is nothing to render.
var ErrNoData = errors.New("report: no data")
