// SPDX-License-Identifier: MIT

package esn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/reservoir/matrix"
)

// Reservoir is an Echo State Network with I inputs, O outputs and N nodes.
//
// Shapes (held at every point of the lifecycle):
//   - W_in  N×(I+1)   (column 0 multiplies the bias entry of u)
//   - W_res N×N
//   - W_out O×(1+I+N)
//   - state N×1
type Reservoir struct {
	inputs, outputs, nodes int

	leakRate       float64 // λ ∈ [0,1]
	inputScale     float64 // s_in
	spectralRadius float64 // ρ

	wIn, wRes, wOut, state *matrix.Dense

	opts Options
}

// New constructs a zero-filled reservoir.
// MAIN DESCRIPTION:
//   - Validates every parameter before allocating anything; on failure no
//     partial reservoir is returned.
//
// Errors:
//   - ErrInvalidConfiguration: inputs, outputs or nodes ≤ 0; leakRate
//     outside [0,1]; any non-finite scalar.
//
// Complexity:
//   - Time/Space O(N·(N+I) + O·(1+I+N)).
func New(inputs, outputs, nodes int, leakRate, inputScale, spectralRadius float64, opts ...Option) (*Reservoir, error) {
	switch {
	case inputs <= 0, outputs <= 0, nodes <= 0:
		return nil, fmt.Errorf("%w: inputs=%d outputs=%d nodes=%d must be positive",
			ErrInvalidConfiguration, inputs, outputs, nodes)
	case !isFinite(leakRate) || leakRate < 0 || leakRate > 1:
		return nil, fmt.Errorf("%w: leak rate %g outside [0,1]", ErrInvalidConfiguration, leakRate)
	case !isFinite(inputScale) || !isFinite(spectralRadius):
		return nil, fmt.Errorf("%w: input scale %g, spectral radius %g must be finite",
			ErrInvalidConfiguration, inputScale, spectralRadius)
	}

	r := &Reservoir{
		inputs:         inputs,
		outputs:        outputs,
		nodes:          nodes,
		leakRate:       leakRate,
		inputScale:     inputScale,
		spectralRadius: spectralRadius,
		opts:           gatherOptions(opts...),
	}
	var err error
	if r.wIn, err = matrix.NewDense(nodes, inputs+1); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if r.wRes, err = matrix.NewDense(nodes, nodes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if r.wOut, err = matrix.NewDenseWithOptions(outputs, r.FeatureRows(), matrix.WithNoValidateNaNInf()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if r.state, err = matrix.NewDense(nodes, 1); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return r, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Inputs returns I.
func (r *Reservoir) Inputs() int { return r.inputs }

// Outputs returns O.
func (r *Reservoir) Outputs() int { return r.outputs }

// Nodes returns N.
func (r *Reservoir) Nodes() int { return r.nodes }

// FeatureRows returns 1+I+N, the row count of a design matrix and the
// column count of W_out.
func (r *Reservoir) FeatureRows() int { return 1 + r.inputs + r.nodes }

// LeakRate returns λ.
func (r *Reservoir) LeakRate() float64 { return r.leakRate }

// InputScale returns s_in.
func (r *Reservoir) InputScale() float64 { return r.inputScale }

// SpectralRadius returns ρ.
func (r *Reservoir) SpectralRadius() float64 { return r.spectralRadius }

// WIn returns a copy of the N×(I+1) input weights.
func (r *Reservoir) WIn() *matrix.Dense { return r.wIn.CloneDense() }

// WRes returns a copy of the N×N recurrent weights.
func (r *Reservoir) WRes() *matrix.Dense { return r.wRes.CloneDense() }

// WOut returns a copy of the O×(1+I+N) readout.
func (r *Reservoir) WOut() *matrix.Dense { return r.wOut.CloneDense() }

// State returns a copy of the N×1 state vector.
func (r *Reservoir) State() *matrix.Dense { return r.state.CloneDense() }

// ResetState zeroes the state vector in place.
func (r *Reservoir) ResetState() { r.state.Zero() }

// SetWOut installs a copy of w as the readout.
// Errors: ErrDimensionMismatch (matrix) unless w is O×(1+I+N).
func (r *Reservoir) SetWOut(w matrix.Matrix) error {
	if err := matrix.ValidateNotNil(w); err != nil {
		return fmt.Errorf("esn: SetWOut: %w", err)
	}
	if w.Rows() != r.outputs || w.Cols() != r.FeatureRows() {
		return fmt.Errorf("esn: SetWOut: got %dx%d, want %dx%d: %w",
			w.Rows(), w.Cols(), r.outputs, r.FeatureRows(), matrix.ErrDimensionMismatch)
	}
	cp, err := matrix.NewDenseWithOptions(r.outputs, r.FeatureRows(), matrix.WithNoValidateNaNInf())
	if err != nil {
		return fmt.Errorf("esn: SetWOut: %w", err)
	}
	if err = cp.AddInPlace(w); err != nil {
		return fmt.Errorf("esn: SetWOut: %w", err)
	}
	r.wOut = cp

	return nil
}

// Randomize draws fresh input and recurrent weights from rng.
// MAIN DESCRIPTION:
//   - W_in[i,j] ~ U[-1,1].
//   - density == 0 leaves W_res identically zero (no self-feedback).
//   - Otherwise every W_res entry is nonzero with probability density, drawn
//     from U[-0.5,0.5]. The whole fill is redrawn until W_res has a nonzero
//     eigenvalue, then W_res is scaled by 1/max|eig| so its spectral radius
//     is exactly 1 before ρ is applied in Update.
//
// Implementation:
//   - Stage 1: validate density; nil rng ⇒ RNGFromSeed(0).
//   - Stage 2: fill W_in in row-major order.
//   - Stage 3: at most WithMaxRandomizeAttempts draws of W_res.
//
// Errors:
//   - ErrInvalidConfiguration: density outside [0,1], or no draw produced a
//     nonzero eigenvalue within the attempt budget (W_res is left zero).
//   - Eigen solver failures from package matrix.
//
// Determinism:
//   - The sequence of rng draws depends only on N, I and density, so the
//     same seed reproduces the same reservoir.
func (r *Reservoir) Randomize(rng *rand.Rand, density float64) error {
	if !isFinite(density) || density < 0 || density > 1 {
		return fmt.Errorf("%w: density %g outside [0,1]", ErrInvalidConfiguration, density)
	}
	if rng == nil {
		rng = RNGFromSeed(0)
	}

	err := r.wIn.Apply(func(_, _ int, _ float64) float64 { return Uniform(rng, -1, 1) })
	if err != nil {
		return fmt.Errorf("esn: Randomize: %w", err)
	}

	r.wRes.Zero()
	if density == 0 {
		return nil
	}

	var maxEig float64
	for attempt := 0; attempt < r.opts.maxRandomizeAttempts; attempt++ {
		err = r.wRes.Apply(func(_, _ int, _ float64) float64 {
			if rng.Float64() < density {
				return Uniform(rng, -0.5, 0.5)
			}

			return 0
		})
		if err != nil {
			return fmt.Errorf("esn: Randomize: %w", err)
		}
		if maxEig, err = matrix.MaxAbsEigenvalue(r.wRes); err != nil {
			return fmt.Errorf("esn: Randomize: %w", err)
		}
		if maxEig != 0 {
			if err = r.wRes.ScaleInPlace(1 / maxEig); err != nil {
				return fmt.Errorf("esn: Randomize: %w", err)
			}

			return nil
		}
	}
	r.wRes.Zero()

	return fmt.Errorf("%w: W_res had no nonzero eigenvalue after %d attempts at density %g",
		ErrInvalidConfiguration, r.opts.maxRandomizeAttempts, density)
}

// Update advances the state by one step with augmented input u ((I+1)×1,
// u[0] is the bias 1.0):
//
//	pre   = s_in·(W_in·u) + ρ·(W_res·state)
//	state ← (1−λ)·state + λ·tanh(pre)
//
// With λ=1 the new state is exactly tanh(pre).
// Errors: ErrDimensionMismatch (matrix) when u is not (I+1)×1; state is
// untouched on error.
func (r *Reservoir) Update(u matrix.Matrix) error {
	if err := matrix.ValidateNotNil(u); err != nil {
		return fmt.Errorf("esn: Update: %w", err)
	}
	if u.Rows() != r.inputs+1 || u.Cols() != 1 {
		return fmt.Errorf("esn: Update: input is %dx%d, want %dx1: %w",
			u.Rows(), u.Cols(), r.inputs+1, matrix.ErrDimensionMismatch)
	}

	pre, err := matrix.Mul(r.wIn, u)
	if err != nil {
		return fmt.Errorf("esn: Update: %w", err)
	}
	if err = pre.ScaleInPlace(r.inputScale); err != nil {
		return fmt.Errorf("esn: Update: %w", err)
	}
	rec, err := matrix.Mul(r.wRes, r.state)
	if err != nil {
		return fmt.Errorf("esn: Update: %w", err)
	}
	if err = rec.ScaleInPlace(r.spectralRadius); err != nil {
		return fmt.Errorf("esn: Update: %w", err)
	}
	if err = pre.AddInPlace(rec); err != nil {
		return fmt.Errorf("esn: Update: %w", err)
	}

	next := r.state.CloneDense()
	act := pre.RawValues()
	lambda := r.leakRate
	err = next.Apply(func(i, _ int, s float64) float64 {
		return (1-lambda)*s + lambda*math.Tanh(act[i])
	})
	if err != nil {
		return fmt.Errorf("esn: Update: %w", err)
	}
	r.state = next

	return nil
}
