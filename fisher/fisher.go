// SPDX-License-Identifier: MIT

package fisher

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/pmag/vec3"
)

// Params is the common view of a directional mean with Fisher-style
// dispersion statistics.
type Params interface {
	MeanDirection() vec3.Vec3
	Alpha95() s1.Angle
	Kappa() float64
	Resultant() float64
	Count() int
	A95Valid() bool
}

// Result holds the Fisher statistics of a set of directions.
type Result struct {
	// Direction is the unit mean direction.
	Direction vec3.Vec3
	// K is the precision parameter (N−1)/(N−R).
	K float64
	// A95 is the semi-angle of the 95% confidence cone.
	A95 s1.Angle
	// R is the length of the vector resultant.
	R float64
	// N is the number of directions.
	N int
}

// MeanDirection returns r.Direction.
func (r Result) MeanDirection() vec3.Vec3 { return r.Direction }

// Alpha95 returns r.A95.
func (r Result) Alpha95() s1.Angle { return r.A95 }

// Kappa returns r.K.
func (r Result) Kappa() float64 { return r.K }

// Resultant returns r.R.
func (r Result) Resultant() float64 { return r.R }

// Count returns r.N.
func (r Result) Count() int { return r.N }

// A95Valid reports whether A95 is a finite angle.
func (r Result) A95Valid() bool {
	a := float64(r.A95)
	return !math.IsNaN(a) && !math.IsInf(a, 0)
}

// Calculate returns the Fisher statistics of dirs. The vectors are expected
// to be unit length and are used as given.
// Implementation:
//   - Stage 1: R = |Σv|, Direction = normalize(Σv).
//   - Stage 2: k = (N−1)/(N−R); +Inf once N−R ≤ 0.
//   - Stage 3: α95 = acos(1 − ((N−R)/R)(20^(1/(N−1)) − 1)).
//
// Behavior highlights:
//   - N = 1 gives k = +Inf and α95 = 180°.
//   - A cosine below -1 (widely scattered data) gives α95 = NaN.
//
// Errors:
//   - ErrNoVectors if dirs is empty.
//
// Complexity:
//   - Time O(N), Space O(1).
func Calculate(dirs []vec3.Vec3) (Result, error) {
	if len(dirs) == 0 {
		return Result{}, fisherErrorf(opCalculate, ErrNoVectors)
	}

	sum := vec3.Sum(dirs)
	res := Result{
		Direction: sum.Normalize(),
		R:         sum.Norm(),
		N:         len(dirs),
	}
	if res.N == 1 {
		res.K = math.Inf(1)
		res.A95 = 180 * s1.Degree

		return res, nil
	}

	n := float64(res.N)
	if n-res.R <= 0 {
		res.K = math.Inf(1)
		res.A95 = 0

		return res, nil
	}
	res.K = (n - 1) / (n - res.R)

	const p = 0.05
	v := 1 - ((n-res.R)/res.R)*(math.Pow(1/p, 1/(n-1))-1)
	if v < -1 {
		res.A95 = s1.Angle(math.NaN())
	} else {
		res.A95 = s1.Angle(math.Acos(math.Min(v, 1)))
	}

	return res, nil
}
