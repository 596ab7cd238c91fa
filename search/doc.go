// Package search runs a random hyperparameter search over Echo State Network
// configurations.
//
// Each trial draws a leak rate, input scale, spectral radius and W_res
// density from the configured ranges, builds and randomizes a reservoir,
// fits the readout by ridge regression (β selected on the validation table)
// and scores it on the train, validate and test tables.
//
// Trials run on a bounded worker pool. Every trial owns its reservoir and an
// RNG stream derived from Config.Seed on the scheduling goroutine, so a
// summary depends only on the seed and the dataset, never on scheduling.
// The dataset is shared read-only between workers.
package search
