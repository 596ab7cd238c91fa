// Package train fits and scores the linear readout of an esn.Reservoir.
//
// Every entry point follows one contract:
//
//   - reset the reservoir state to zero,
//   - run the selected table through the reservoir to build the design
//     matrix X ((1+I+N)×E: input rows on top, state rows below),
//   - solve or score,
//   - reset the state again so the reservoir is returned at rest.
//
// Fits are closed form: Pseudoinverse (W_out = Y·X⁺) and RidgeRegression
// (W_out = Y·Xᵗ·(X·Xᵗ+βI)⁻¹ with a β sweep selected on a validation table).
// NMSE normalises the mean squared error by the population variance of the
// targets.
package train
