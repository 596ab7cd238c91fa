// Package esn implements the Echo State Network reservoir: a fixed, randomly
// wired recurrent layer of tanh units driven by an input signal, whose only
// trained component is the linear readout W_out.
//
// Lifecycle:
//
//   - New allocates the four matrices zero-filled with validated shapes.
//   - Randomize draws W_in and a sparse W_res (spectral radius normalised to 1)
//     from an explicit *rand.Rand.
//   - Update advances the leaky-integrator state by one time step:
//     state ← (1−λ)·state + λ·tanh(s_in·W_in·u + ρ·W_res·state).
//   - SetWOut installs a readout fitted by package train.
//
// The steps may be called in any order. A Reservoir is not safe for
// concurrent use; parallel sweeps build one Reservoir per worker and derive
// one RNG stream per worker with DeriveRNG.
//
// Accessors return deep copies, so no caller ever shares a buffer with the
// reservoir's weights or state.
package esn
