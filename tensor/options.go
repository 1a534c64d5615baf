// SPDX-License-Identifier: MIT

package tensor

import "math"

// Defaults (single source of truth).
const (
	// DefaultEpsilon is the relative tolerance used for the symmetry check and
	// for Jacobi convergence. Both are scaled by the Frobenius norm of the
	// input, so the same value serves unit-vector tensors and raw moments.
	DefaultEpsilon = 1e-14

	// DefaultMaxRotations caps the number of Jacobi rotations. A 3×3 matrix
	// normally converges in well under twenty.
	DefaultMaxRotations = 100
)

const (
	panicEpsilonInvalid   = "tensor: WithEpsilon: eps must be finite, non-negative"
	panicRotationsInvalid = "tensor: WithMaxRotations: n must be > 0"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the effective numeric policy.
type Options struct {
	eps          float64
	maxRotations int
}

// WithEpsilon sets the relative tolerance for symmetry and convergence.
//
// Errors:
//   - Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxRotations sets the Jacobi rotation budget.
//
// Errors:
//   - Panics when n ≤ 0.
func WithMaxRotations(n int) Option {
	if n <= 0 {
		panic(panicRotationsInvalid)
	}

	return func(o *Options) { o.maxRotations = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, maxRotations: DefaultMaxRotations}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
