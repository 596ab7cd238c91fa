// SPDX-License-Identifier: MIT

package esn

// DefaultMaxRandomizeAttempts bounds how many W_res draws Randomize makes
// before giving up on finding a matrix with a nonzero eigenvalue.
const DefaultMaxRandomizeAttempts = 100

const panicMaxAttemptsInvalid = "esn: WithMaxRandomizeAttempts: n must be > 0"

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective reservoir configuration after applying Option setters.
type Options struct {
	maxRandomizeAttempts int // > 0; DefaultMaxRandomizeAttempts
}

// WithMaxRandomizeAttempts caps the number of W_res draws in Randomize.
// Panics if n <= 0.
func WithMaxRandomizeAttempts(n int) Option {
	if n <= 0 {
		panic(panicMaxAttemptsInvalid)
	}

	return func(o *Options) { o.maxRandomizeAttempts = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{maxRandomizeAttempts: DefaultMaxRandomizeAttempts}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
