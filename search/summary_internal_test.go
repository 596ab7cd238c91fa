// SPDX-License-Identifier: MIT
package search

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reservoir/dataset"
)

func TestSummarize(t *testing.T) {
	trials := []Trial{
		{Index: 0, Scores: [3]float64{0.2, 0.5, 0.6}},
		{Index: 1, Scores: [3]float64{0.1, 0.3, math.Inf(1)}},
		{Index: 2, Err: errors.New("boom"), Scores: [3]float64{nan, nan, nan}},
		{Index: 3, Scores: [3]float64{nan, 0.3, 0.4}},
	}
	s := summarize(trials)

	require.Equal(t, 1, s.Failed)
	require.Len(t, s.Trials, 4)

	tr := s.Role(dataset.Train)
	require.InDelta(t, 0.15, tr.Mean, 1e-15)
	require.Equal(t, 0.1, tr.Best)
	require.Equal(t, 1, tr.NonFinite)

	v := s.Role(dataset.Validate)
	require.InDelta(t, 1.1/3, v.Mean, 1e-15)
	require.Equal(t, 0.3, v.Best)

	te := s.Role(dataset.Test)
	require.InDelta(t, 0.5, te.Mean, 1e-15)
	require.Equal(t, 1, te.NonFinite)

	// Validation tie between 1 and 3 goes to the lower index.
	require.NotNil(t, s.Best)
	require.Equal(t, 1, s.Best.Index)

	bad := s.Role(dataset.Role(9))
	require.True(t, math.IsNaN(bad.Mean))
	require.True(t, math.IsNaN(trials[0].Score(dataset.Role(-1))))
}

func TestSummarize_Empty(t *testing.T) {
	s := summarize(nil)
	require.Nil(t, s.Best)
	require.Zero(t, s.Failed)
	for _, role := range dataset.Roles() {
		require.True(t, math.IsNaN(s.Role(role).Mean))
		require.True(t, math.IsInf(s.Role(role).Best, 1))
	}
}

func TestTrialID_Stable(t *testing.T) {
	require.Equal(t, trialID(5, "search", 3), trialID(5, "search", 3))
	require.NotEqual(t, trialID(5, "search", 3), trialID(5, "refit", 3))
	require.NotEqual(t, trialID(5, "search", 3), trialID(6, "search", 3))
}
