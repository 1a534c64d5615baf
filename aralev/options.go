// SPDX-License-Identifier: MIT

package aralev

// DefaultMaxIterations caps each fixed-point iteration (interior and both
// θ edges).
const DefaultMaxIterations = 10000

const panicIterationsInvalid = "aralev: WithMaxIterations: n must be > 0"

// Option configures Calculate.
type Option func(*Options)

// Options holds the effective Calculate configuration.
type Options struct {
	maxIterations int
}

// WithMaxIterations sets the iteration cap. Panics if n ≤ 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{maxIterations: DefaultMaxIterations}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
