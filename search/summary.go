// SPDX-License-Identifier: MIT

package search

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/reservoir/dataset"
)

// RoleStats aggregates one role's scores over the successful trials.
// Non-finite scores (degenerate reservoirs) are excluded from Mean and Best
// and counted in NonFinite.
type RoleStats struct {
	Mean      float64 // NaN when no finite score exists
	Best      float64 // lowest NMSE; +Inf when no finite score exists
	NonFinite int
}

// Summary is the result of Run or Refit.
type Summary struct {
	Trials []Trial // finished trials in index order, failed ones included
	Failed int
	Stats  [3]RoleStats // indexed by dataset.Role

	// Best is the successful trial with the lowest finite validation NMSE
	// (lowest index on ties), or nil.
	Best *Trial
}

// Role returns the statistics for role.
func (s *Summary) Role(role dataset.Role) RoleStats {
	if role < dataset.Train || role > dataset.Test {
		return RoleStats{Mean: nan, Best: math.Inf(1)}
	}

	return s.Stats[role]
}

// summarize builds a Summary from trials already in index order.
func summarize(trials []Trial) *Summary {
	s := &Summary{Trials: trials}

	var finite [3][]float64
	var owner [3][]int
	for i, t := range trials {
		if t.Err != nil {
			s.Failed++
			continue
		}
		for _, role := range dataset.Roles() {
			v := t.Scores[role]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				s.Stats[role].NonFinite++
				continue
			}
			finite[role] = append(finite[role], v)
			owner[role] = append(owner[role], i)
		}
	}

	for _, role := range dataset.Roles() {
		st := &s.Stats[role]
		if len(finite[role]) == 0 {
			st.Mean, st.Best = nan, math.Inf(1)
			continue
		}
		st.Mean = stat.Mean(finite[role], nil)
		idx := floats.MinIdx(finite[role])
		st.Best = finite[role][idx]
		if role == dataset.Validate {
			best := trials[owner[role][idx]]
			s.Best = &best
		}
	}

	return s
}
