// Package dataset holds the time-aligned input/target tables an Echo State
// Network is trained and scored on, and the NARMA-10 benchmark producer.
//
// A Table is a warm-up specification plus E augmented input columns
// ((I+1)×1, bias 1.0 first) and E scalar targets. A Dataset groups three
// tables addressed by Role: Train, Validate and Test.
package dataset
