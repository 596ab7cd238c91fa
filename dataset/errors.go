// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrEmptyTable is returned for a nil table or a table with no entries.
	ErrEmptyTable = errors.New("dataset: table has no entries")

	// ErrShapeMismatch is returned when inputs and targets differ in length,
	// an input column differs in shape from the warm-up input, or the tables
	// of a dataset disagree on the input width.
	ErrShapeMismatch = errors.New("dataset: shape mismatch")

	// ErrNegativeWarmups is returned for a negative warm-up count.
	ErrNegativeWarmups = errors.New("dataset: negative warm-up count")

	// ErrUnknownRole is returned by Dataset.Table for a role other than
	// Train, Validate or Test.
	ErrUnknownRole = errors.New("dataset: unknown table role")

	// ErrInvalidConfig is returned by NARMAConfig.Validate.
	ErrInvalidConfig = errors.New("dataset: invalid producer configuration")
)
