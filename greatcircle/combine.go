// SPDX-License-Identifier: MIT

package greatcircle

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/pmag/vec3"
)

// SetResult is the combined mean of endpoint directions and great circles.
type SetResult struct {
	// Direction is the unit mean direction.
	Direction vec3.Vec3
	// K is the estimated precision parameter; +Inf when M+N ≤ R.
	K float64
	// A95 is the 95% confidence cone half-angle; NaN when undefined.
	A95 s1.Angle
	// R is the length of the resultant of endpoints and circle points.
	R float64
	// M is the number of endpoint directions, N the number of circles.
	M, N int
	// MinPoints is the smallest point count over the circles (0 if none).
	MinPoints int
	// Iterations is the number of passes run; Converged reports whether
	// the last pass moved every circle point by at most the stable limit.
	Iterations int
	Converged  bool
	// Valid is the outcome of the configured acceptance policy.
	Valid bool
}

// MeanDirection returns r.Direction.
func (r SetResult) MeanDirection() vec3.Vec3 { return r.Direction }

// Alpha95 returns r.A95.
func (r SetResult) Alpha95() s1.Angle { return r.A95 }

// Kappa returns r.K.
func (r SetResult) Kappa() float64 { return r.K }

// Resultant returns r.R.
func (r SetResult) Resultant() float64 { return r.R }

// Count returns the number of contributing samples, M+N.
func (r SetResult) Count() int { return r.M + r.N }

// A95Valid reports whether A95 is a finite angle.
func (r SetResult) A95Valid() bool {
	a := float64(r.A95)
	return !math.IsNaN(a) && !math.IsInf(a, 0)
}

// Combine finds the mean direction best satisfying a set of endpoint
// directions and great-circle constraints (McFadden & McElhinny, 1988).
// Implementation:
//   - Stage 1: Seed. With endpoints, they alone form the working set D.
//     Without, a temporary seed normalize(Σ(last−first)) over the circles
//     is placed in D and dropped after the first pass.
//   - Stage 2: Start each circle's point Gᵢ at the origin. In every pass,
//     for each circle in turn, zero Gᵢ and replace it with the point on
//     circle i nearest to normalize(ΣD + ΣG).
//   - Stage 3: Stop once a pass after the first moves no Gᵢ by more than
//     the stable limit, or when the pass budget is spent.
//   - Stage 4: Direction = normalize(ΣD+ΣG); R = |ΣD+ΣG|;
//     k = (2M+N−2)/(2(M+N−R)); α95 from N' = M + N/2.
//
// Behavior highlights:
//   - Endpoints are normalized before use.
//   - When the running estimate vanishes (e.g. a lone circle once the seed
//     is dropped) the circle keeps its previous point.
//
// Errors:
//   - ErrNoData when both endpoints and circles are empty.
//
// Complexity:
//   - Time O(maxIterations·N·(M+N)), Space O(M+N).
func Combine(endpoints []vec3.Vec3, circles []Circle, opts ...Option) (SetResult, error) {
	if len(endpoints) == 0 && len(circles) == 0 {
		return SetResult{}, gcErrorf(opCombine, ErrNoData)
	}
	o := gatherOptions(opts...)

	d := vec3.NormalizeAll(endpoints)
	seeded := len(d) == 0
	if seeded {
		d = []vec3.Vec3{seedGuess(circles)}
	}

	g := make([]vec3.Vec3, len(circles))
	converged := false
	iter := 0
	for ; iter < o.maxIterations && !converged; iter++ {
		if iter > 0 {
			converged = true
		}
		for i := range g {
			old := g[i]
			g[i] = vec3.Origin
			guess := vec3.Sum(d).Add(vec3.Sum(g)).Normalize()
			if guess.IsZero() {
				guess = old
			}
			g[i] = circles[i].NearestOnCircle(guess)
			if iter > 0 && g[i].AngleTo(old) > o.stableLimit {
				converged = false
			}
		}
		if iter == 0 && seeded {
			d = d[:0]
		}
	}

	sum := vec3.Sum(d).Add(vec3.Sum(g))
	res := SetResult{
		Direction:  sum.Normalize(),
		R:          sum.Norm(),
		M:          len(endpoints),
		N:          len(circles),
		MinPoints:  minPoints(circles),
		Iterations: iter,
		Converged:  converged,
	}
	res.K = kappa(res.M, res.N, res.R)
	res.A95 = alpha95(res.M, res.N, res.K, res.R)
	res.Valid = o.valid(res)

	return res, nil
}

// seedGuess returns the normalized resultant of the circles' last-minus-first
// vectors, falling back to a point on the first circle when that resultant
// is zero.
func seedGuess(circles []Circle) vec3.Vec3 {
	var s vec3.Vec3
	for _, c := range circles {
		if len(c.Points) == 0 {
			continue
		}
		s = s.Add(c.Points[len(c.Points)-1].Sub(c.Points[0]))
	}
	if s.IsZero() {
		return circles[0].NearestOnCircle(vec3.North)
	}

	return s.Normalize()
}

func minPoints(circles []Circle) int {
	if len(circles) == 0 {
		return 0
	}
	m := math.MaxInt
	for _, c := range circles {
		if len(c.Points) < m {
			m = len(c.Points)
		}
	}

	return m
}

// kappa is the McFadden & McElhinny precision estimate.
func kappa(m, n int, r float64) float64 {
	den := 2 * (float64(m+n) - r)
	if den <= 0 {
		return math.Inf(1)
	}

	return float64(2*m+n-2) / den
}

// alpha95 returns the 95% confidence cone, or NaN when N' = M + N/2 ≤ 1 or
// the cosine falls below -1.
func alpha95(m, n int, k, r float64) s1.Angle {
	nn := float64(m) + float64(n)/2
	if nn <= 1 {
		return s1.Angle(math.NaN())
	}
	const p = 0.05
	v := 1 - ((nn-1)/(k*r))*(math.Pow(1/p, 1/(nn-1))-1)
	if v > 1 {
		v = 1
	}

	return s1.Angle(math.Acos(v))
}
