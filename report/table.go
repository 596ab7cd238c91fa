// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/esn"
	"github.com/katalvlaran/reservoir/search"
	"github.com/katalvlaran/reservoir/train"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// WriteTrials prints one row per trial in index order.
func WriteTrials(w io.Writer, trials []search.Trial) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tID\tLEAK\tSCALE\tRADIUS\tDENSITY\tBETA\tTRAIN\tVALIDATE\tTEST\tERROR")
	for _, t := range trials {
		errText := "-"
		if t.Err != nil {
			errText = t.Err.Error()
		}
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%.4f\t%.4f\t%g\t%.6g\t%.6g\t%.6g\t%s\n",
			t.Index, t.ID, t.LeakRate, t.InputScale, t.SpectralRadius, t.Density, t.Beta,
			t.Score(dataset.Train), t.Score(dataset.Validate), t.Score(dataset.Test), errText)
	}

	return tw.Flush()
}

// WriteSummary prints the per-role statistics and the best trial.
func WriteSummary(w io.Writer, s *search.Summary) error {
	if s == nil {
		return ErrNoData
	}
	if _, err := fmt.Fprintf(w, "trials: %d  failed: %d\n", len(s.Trials), s.Failed); err != nil {
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ROLE\tMEAN NMSE\tBEST NMSE\tNON-FINITE")
	for _, role := range dataset.Roles() {
		st := s.Role(role)
		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%d\n", role, st.Mean, st.Best, st.NonFinite)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if s.Best == nil {
		_, err := fmt.Fprintln(w, "best: none")
		return err
	}
	b := s.Best
	_, err := fmt.Fprintf(w,
		"best: trial %d (%s) leak=%.4f scale=%.4f radius=%.4f density=%.4f beta=%g validate=%.6g\n",
		b.Index, b.ID, b.LeakRate, b.InputScale, b.SpectralRadius, b.Density, b.Beta,
		b.Score(dataset.Validate))

	return err
}

// WritePredictions prints the first limit predictions (all when limit ≤ 0).
// The bias entry of each input is omitted.
func WritePredictions(w io.Writer, preds []train.Prediction, limit int) error {
	if limit <= 0 || limit > len(preds) {
		limit = len(preds)
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tINPUT\tTARGET\tOUTPUT\tERROR")
	for i, p := range preds[:limit] {
		fmt.Fprintf(tw, "%d\t%s\t%.6g\t%.6g\t%.3g\n", i, formatInput(p.Input), p.Target, p.Output, p.Output-p.Target)
	}

	return tw.Flush()
}

func formatInput(u []float64) string {
	if len(u) <= 1 {
		return "-"
	}
	parts := make([]string, len(u)-1)
	for i, v := range u[1:] {
		parts[i] = fmt.Sprintf("%.4g", v)
	}

	return strings.Join(parts, ",")
}

// WriteReservoir dumps the hyperparameters and weight matrices of r.
func WriteReservoir(w io.Writer, r *esn.Reservoir) error {
	if r == nil {
		return ErrNoData
	}
	tw := newTable(w)
	fmt.Fprintf(tw, "inputs\t%d\n", r.Inputs())
	fmt.Fprintf(tw, "outputs\t%d\n", r.Outputs())
	fmt.Fprintf(tw, "nodes\t%d\n", r.Nodes())
	fmt.Fprintf(tw, "leak rate\t%g\n", r.LeakRate())
	fmt.Fprintf(tw, "input scale\t%g\n", r.InputScale())
	fmt.Fprintf(tw, "spectral radius\t%g\n", r.SpectralRadius())
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "W_in:\n%sW_res:\n%sW_out:\n%s", r.WIn(), r.WRes(), r.WOut())

	return err
}
