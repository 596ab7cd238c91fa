// Package reservoir is a small Echo State Network toolkit: a fixed random
// recurrent reservoir of leaky tanh units, a linear readout fitted in closed
// form, and a random hyperparameter search around them.
//
// What is in the box?
//
//	matrix/  dense row-major matrices: products, LU, inverse,
//	         symmetric eigenvalues and the SVD pseudoinverse
//	esn/     the reservoir: construction, randomization with spectral
//	         normalisation, leaky state update, seeded RNG streams
//	dataset/ warm-up + entry tables grouped by role, NARMA-10 producer
//	train/   design matrix, pseudoinverse and ridge readout fits, NMSE,
//	         predictions
//	search/  concurrent random search, refit and reproduction of trials
//	report/  text tables and gonum/plot charts
//	cmd/esnsearch the NARMA-10 search as a command
//
// Quick start:
//
//	ds, _ := dataset.NARMA10(esn.RNGFromSeed(1), dataset.DefaultNARMAConfig())
//	r, _ := esn.New(ds.Inputs(), 1, 200, 0.3, 0.5, 0.9)
//	_ = r.Randomize(esn.RNGFromSeed(2), 0.1)
//	_, _ = train.RidgeRegression(r, ds, dataset.Train, dataset.Validate, search.DefaultBetas())
//	score, _ := train.NMSE(r, ds, dataset.Test)
//
// Reservoirs are not safe for concurrent use; search runs one reservoir per
// worker and shares the dataset read-only.
package reservoir
