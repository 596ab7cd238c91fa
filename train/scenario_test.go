// SPDX-License-Identifier: MIT
package train_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/esn"
	"github.com/katalvlaran/reservoir/train"
)

// PipelineSuite drives the whole construct → randomize → fit → score path on
// the 1-input/1-output/10-node ramp scenario.
type PipelineSuite struct {
	suite.Suite
	ds *dataset.Dataset
	r  *esn.Reservoir
}

func (s *PipelineSuite) SetupTest() {
	tbl := rampTable(s.T(), 50, 0)
	s.ds = mustDataset(s.T(), tbl, tbl, tbl)

	var err error
	s.r, err = esn.New(1, 1, 10, 0.5, 1.0, 1.0)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.r.Randomize(esn.RNGFromSeed(1234), 0.5))
}

// TestPseudoinverseFit: the ramp targets are learnt well on the training table.
func (s *PipelineSuite) TestPseudoinverseFit() {
	require.NoError(s.T(), train.Pseudoinverse(s.r, s.ds, dataset.Train))

	score, err := train.NMSE(s.r, s.ds, dataset.Train)
	require.NoError(s.T(), err)
	require.Less(s.T(), score, 0.5)
	require.GreaterOrEqual(s.T(), score, 0.0)
}

// TestShapesSurviveTraining: W_out keeps its O×(1+I+N) shape through both fits.
func (s *PipelineSuite) TestShapesSurviveTraining() {
	require.NoError(s.T(), train.Pseudoinverse(s.r, s.ds, dataset.Train))
	w := s.r.WOut()
	require.Equal(s.T(), 1, w.Rows())
	require.Equal(s.T(), 12, w.Cols())

	_, err := train.RidgeRegression(s.r, s.ds, dataset.Train, dataset.Validate, []float64{1e-1, 1e-5})
	require.NoError(s.T(), err)
	w = s.r.WOut()
	require.Equal(s.T(), 1, w.Rows())
	require.Equal(s.T(), 12, w.Cols())
	require.Equal(s.T(), 10, s.r.State().Rows())
}

// TestRidgeNoWorseThanLargestBeta: selection never returns a worse
// validation score than any individual candidate it tried.
func (s *PipelineSuite) TestRidgeNoWorseThanLargestBeta() {
	res, err := train.RidgeRegression(s.r, s.ds, dataset.Train, dataset.Validate, []float64{10, 1e-3})
	require.NoError(s.T(), err)

	_, err = train.RidgeRegression(s.r, s.ds, dataset.Train, dataset.Validate, []float64{10})
	require.NoError(s.T(), err)
	only, err := train.NMSE(s.r, s.ds, dataset.Validate)
	require.NoError(s.T(), err)
	require.LessOrEqual(s.T(), res.Score, only)
}

// TestFitIsDeterministic: same seed and table ⇒ same readout.
func (s *PipelineSuite) TestFitIsDeterministic() {
	require.NoError(s.T(), train.Pseudoinverse(s.r, s.ds, dataset.Train))
	first := s.r.WOut().RawValues()
	require.NoError(s.T(), train.Pseudoinverse(s.r, s.ds, dataset.Train))
	require.Equal(s.T(), first, s.r.WOut().RawValues())
}

// Entry point for running the suite.
func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}
