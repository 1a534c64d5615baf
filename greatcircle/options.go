// SPDX-License-Identifier: MIT

package greatcircle

import (
	"math"

	"github.com/golang/geo/s1"
)

// Defaults for Combine.
const (
	// DefaultMaxIterations caps the number of full passes over the circles.
	DefaultMaxIterations = 1000

	// DefaultStableLimit is the largest per-pass movement of any circle point
	// that still counts as converged (0.1°).
	DefaultStableLimit = s1.Angle(math.Pi / 1800)

	// DefaultMinCircles, DefaultMaxA95 and DefaultMinK form the default
	// acceptance policy: N ≥ 3, α95 < 3.5°, k > 3.
	DefaultMinCircles = 3
	DefaultMaxA95     = 3.5 * s1.Degree
	DefaultMinK       = 3.0
)

const (
	panicIterationsInvalid = "greatcircle: WithMaxIterations: n must be > 0"
	panicStableInvalid     = "greatcircle: WithStableLimit: limit must be finite and > 0"
	panicValidityInvalid   = "greatcircle: WithValidity: thresholds must be finite and non-negative"
	panicValidatorNil      = "greatcircle: WithValidator: fn must not be nil"
)

// Option configures Combine.
type Option func(*Options)

// Options holds the effective Combine configuration.
type Options struct {
	maxIterations int
	stableLimit   s1.Angle
	minCircles    int
	maxA95        s1.Angle
	minK          float64
	validator     func(SetResult) bool
}

// WithMaxIterations sets the pass budget. Panics if n ≤ 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithStableLimit sets the convergence threshold. Panics unless limit is finite and positive.
func WithStableLimit(limit s1.Angle) Option {
	if math.IsNaN(float64(limit)) || math.IsInf(float64(limit), 0) || limit <= 0 {
		panic(panicStableInvalid)
	}

	return func(o *Options) { o.stableLimit = limit }
}

// WithValidity replaces the threshold policy used for SetResult.Valid:
// valid iff N ≥ minCircles, α95 < maxA95 and k > minK.
func WithValidity(minCircles int, maxA95 s1.Angle, minK float64) Option {
	if minCircles < 0 || math.IsNaN(float64(maxA95)) || maxA95 < 0 || math.IsNaN(minK) || math.IsInf(minK, 0) {
		panic(panicValidityInvalid)
	}

	return func(o *Options) {
		o.minCircles, o.maxA95, o.minK = minCircles, maxA95, minK
		o.validator = nil
	}
}

// WithValidator installs an arbitrary acceptance predicate in place of the
// threshold policy.
func WithValidator(fn func(SetResult) bool) Option {
	if fn == nil {
		panic(panicValidatorNil)
	}

	return func(o *Options) { o.validator = fn }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxIterations: DefaultMaxIterations,
		stableLimit:   DefaultStableLimit,
		minCircles:    DefaultMinCircles,
		maxA95:        DefaultMaxA95,
		minK:          DefaultMinK,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// valid applies the configured policy to r.
func (o Options) valid(r SetResult) bool {
	if o.validator != nil {
		return o.validator(r)
	}

	return r.N >= o.minCircles && r.A95 < o.maxA95 && r.K > o.minK
}
