// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/reservoir/train"
)

const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// PredictionsPlot charts target and readout output against the entry index.
// Errors: ErrNoData for an empty slice; plotter errors for non-finite values.
func PredictionsPlot(preds []train.Prediction) (*plot.Plot, error) {
	if len(preds) == 0 {
		return nil, ErrNoData
	}

	targets := make(plotter.XYs, len(preds))
	outputs := make(plotter.XYs, len(preds))
	ys := make([]float64, 0, 2*len(preds))
	for i, p := range preds {
		targets[i] = plotter.XY{X: float64(i), Y: p.Target}
		outputs[i] = plotter.XY{X: float64(i), Y: p.Output}
		ys = append(ys, p.Target, p.Output)
	}

	p := plot.New()
	p.Title.Text = "target vs output"
	p.X.Label.Text = "entry"
	p.Y.Label.Text = "value"
	if err := plotutil.AddLines(p, "target", targets, "output", outputs); err != nil {
		return nil, fmt.Errorf("report: PredictionsPlot: %w", err)
	}

	lo, hi := floats.Min(ys), floats.Max(ys)
	pad := 0.05 * (hi - lo)
	if pad == 0 {
		pad = 1
	}
	p.Y.Min, p.Y.Max = lo-pad, hi+pad
	p.Legend.Top = true

	return p, nil
}

// PlotPredictions saves the predictions chart to path. The image format
// follows the file extension (png, svg, pdf, ...).
func PlotPredictions(preds []train.Prediction, path string) error {
	p, err := PredictionsPlot(preds)
	if err != nil {
		return err
	}
	if err = p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("report: PlotPredictions: %w", err)
	}

	return nil
}

// WritePredictionsPlot renders the predictions chart to w in format.
func WritePredictionsPlot(w io.Writer, preds []train.Prediction, format string) error {
	p, err := PredictionsPlot(preds)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(plotWidth, plotHeight, format)
	if err != nil {
		return fmt.Errorf("report: WritePredictionsPlot: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("report: WritePredictionsPlot: %w", err)
	}

	return nil
}
