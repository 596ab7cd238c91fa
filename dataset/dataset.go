// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strings"
)

// Role selects one of the three tables of a Dataset.
type Role int

const (
	// Train is the table readouts are fitted on.
	Train Role = iota
	// Validate is the table the ridge β sweep selects on.
	Validate
	// Test is held out for unbiased reporting.
	Test
)

// Roles lists every valid role in table order.
func Roles() []Role { return []Role{Train, Validate, Test} }

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case Train:
		return "train"
	case Validate:
		return "validate"
	case Test:
		return "test"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// ParseRole is the inverse of String (case-insensitive).
func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}

	return 0, fmt.Errorf("dataset: ParseRole %q: %w", s, ErrUnknownRole)
}

// Dataset is a train/validate/test triple of tables with a common input width.
type Dataset struct {
	tables [3]*Table
}

// NewDataset validates and groups three tables. The tables are held by
// reference, not copied.
// Errors: any Table.Validate error; ErrShapeMismatch when input widths differ.
func NewDataset(train, validate, test *Table) (*Dataset, error) {
	d := &Dataset{tables: [3]*Table{train, validate, test}}
	for i, t := range d.tables {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("dataset: NewDataset: %s: %w", Role(i), err)
		}
		if t.InputWidth() != train.InputWidth() {
			return nil, fmt.Errorf("dataset: NewDataset: %s input width %d, train %d: %w",
				Role(i), t.InputWidth(), train.InputWidth(), ErrShapeMismatch)
		}
	}

	return d, nil
}

// Table returns the table for role.
// Errors: ErrUnknownRole.
func (d *Dataset) Table(role Role) (*Table, error) {
	if role < Train || role > Test {
		return nil, fmt.Errorf("dataset: Table: %s: %w", role, ErrUnknownRole)
	}

	return d.tables[role], nil
}

// Inputs returns I, the input count a reservoir needs for this dataset.
func (d *Dataset) Inputs() int { return d.tables[Train].InputWidth() - 1 }
