// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/reservoir/matrix"
)

// Table is one time-aligned sequence of augmented inputs and scalar targets.
//   - Warmups: number of state-only updates with WarmupInput before entry 0.
//   - WarmupInput: (I+1)×1 column.
//   - Inputs[i]: (I+1)×1 column, Inputs[i][0] is the bias 1.0.
//   - Targets[i]: the value the readout should produce after Inputs[i].
//
// Trainers only read a Table; sharing one across goroutines is safe as long
// as nobody mutates it.
type Table struct {
	Warmups     int
	WarmupInput *matrix.Dense
	Inputs      []*matrix.Dense
	Targets     []float64
}

// NewTable builds a validated Table from plain slices. warmupInput and every
// inputs[i] are full augmented vectors (bias included); all values are copied.
// Errors: ErrEmptyTable, ErrShapeMismatch, ErrNegativeWarmups, matrix.ErrNaNInf.
func NewTable(warmups int, warmupInput []float64, inputs [][]float64, targets []float64) (*Table, error) {
	wu, err := matrix.NewColumn(warmupInput)
	if err != nil {
		return nil, fmt.Errorf("dataset: NewTable: warm-up input: %w", err)
	}
	t := &Table{
		Warmups:     warmups,
		WarmupInput: wu,
		Inputs:      make([]*matrix.Dense, len(inputs)),
		Targets:     append([]float64(nil), targets...),
	}
	for i, in := range inputs {
		if t.Inputs[i], err = matrix.NewColumn(in); err != nil {
			return nil, fmt.Errorf("dataset: NewTable: input %d: %w", i, err)
		}
	}
	if err = t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Entries returns E, the number of input/target pairs.
func (t *Table) Entries() int { return len(t.Targets) }

// InputWidth returns I+1, the row count of every input column.
func (t *Table) InputWidth() int {
	if t.WarmupInput == nil {
		return 0
	}

	return t.WarmupInput.Rows()
}

// Validate checks the structural invariants trainers rely on.
func (t *Table) Validate() error {
	switch {
	case t == nil || len(t.Targets) == 0:
		return fmt.Errorf("dataset: Validate: %w", ErrEmptyTable)
	case t.Warmups < 0:
		return fmt.Errorf("dataset: Validate: %d: %w", t.Warmups, ErrNegativeWarmups)
	case t.WarmupInput == nil || t.WarmupInput.Cols() != 1:
		return fmt.Errorf("dataset: Validate: warm-up input must be a column: %w", ErrShapeMismatch)
	case len(t.Inputs) != len(t.Targets):
		return fmt.Errorf("dataset: Validate: %d inputs, %d targets: %w",
			len(t.Inputs), len(t.Targets), ErrShapeMismatch)
	}
	width := t.WarmupInput.Rows()
	for i, in := range t.Inputs {
		if in == nil || in.Rows() != width || in.Cols() != 1 {
			return fmt.Errorf("dataset: Validate: input %d is not %dx1: %w", i, width, ErrShapeMismatch)
		}
	}

	return nil
}
