// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the internal options snapshot.
//
// Purpose:
//   - Expose a read-only view of the effective Options to matrix_test without
//     widening the production API.
//   - Keep the bridge in a _test.go file so it never ships in builds.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with the internal Options fields; the
//     default-options test catches drift.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly  = panicEpsilonInvalid
	PanicSingularInvalid_TestOnly = panicSingularInvalid
	PanicMaxIterInvalid_TestOnly  = panicMaxIterInvalid
)

// OptionsSnapshot mirrors Options with exported fields.
type OptionsSnapshot struct {
	Eps            float64
	SingularEps    float64
	ValidateNaNInf bool
	EigenMaxIter   int
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:            o.eps,
		SingularEps:    o.singularEps,
		ValidateNaNInf: o.validateNaNInf,
		EigenMaxIter:   o.eigenMaxIter,
	}
}

// DefaultOptionsSnapshot_TestOnly returns the snapshot of defaultOptions().
func DefaultOptionsSnapshot_TestOnly() OptionsSnapshot { return snapshotOf(defaultOptions()) }

// GatherOptionsSnapshot_TestOnly returns the snapshot of gatherOptions(opts...).
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}
