// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/pmag/tensor"
	"github.com/katalvlaran/pmag/vec3"
)

// Result is a PCA line fit.
type Result struct {
	// Direction is the unit vector of the fitted line, pointing against the
	// demagnetization order.
	Direction vec3.Vec3
	// MAD1 is the planar maximum angular deviation.
	MAD1 s1.Angle
	// MAD3 is the linear maximum angular deviation.
	MAD3 s1.Angle
	// Origin is the point the line passes through: the coordinate origin
	// when Anchored, otherwise the centre of mass of the input.
	Origin   vec3.Vec3
	Anchored bool
	// N is the number of points fitted.
	N int
}

// Fit computes a PCA line through points, which must be in treatment order.
// Implementation:
//   - Stage 1: Choose the origin (coordinate origin or centroid) and
//     translate the points onto it.
//   - Stage 2: Eigen-decompose the raw orientation tensor of the moved points.
//   - Stage 3: Take the major axis, inverting it when it has a positive
//     component along (last − first).
//
// Errors:
//   - ErrTooFewPoints when len(points) < 2.
//   - tensor errors (non-finite input, no convergence), wrapped with "Fit".
//
// Complexity:
//   - Time O(n), Space O(n).
func Fit(points []vec3.Vec3, anchored bool, opts ...tensor.Option) (Result, error) {
	if len(points) < 2 {
		return Result{}, pcaErrorf(opFit, ErrTooFewPoints)
	}

	origin := vec3.Origin
	moved := points
	if !anchored {
		origin = vec3.Mean(points)
		moved = make([]vec3.Vec3, len(points))
		for i, p := range points {
			moved[i] = p.Sub(origin)
		}
	}

	eig, err := tensor.FromVectors(moved, false, opts...)
	if err != nil {
		return Result{}, pcaErrorf(opFit, err)
	}

	dir := eig.Major()
	trend := moved[len(moved)-1].Sub(moved[0])
	if trend.Dot(dir) > 0 {
		dir = dir.Invert()
	}

	return Result{
		Direction: dir,
		MAD1:      eig.MAD1(),
		MAD3:      eig.MAD3(),
		Origin:    origin,
		Anchored:  anchored,
		N:         len(points),
	}, nil
}

// Equation renders the fitted line as "origin + direction·t". The origin is
// shown in scaled notation and omitted for anchored fits.
func (r Result) Equation() string {
	var sb strings.Builder
	if !r.Anchored && !r.Origin.IsZero() {
		sb.WriteString(scaled(r.Origin))
		sb.WriteString(" + ")
	}
	fmt.Fprintf(&sb, "(%.2f %.2f %.2f)t", r.Direction.X, r.Direction.Y, r.Direction.Z)

	return sb.String()
}

// scaled prints v with a shared power-of-ten exponent, e.g. "(19.60 -2.00 25.00)e0".
func scaled(v vec3.Vec3) string {
	oom := int(math.Log10(v.Norm())) - 1
	w := v.Scale(1 / math.Pow(10, float64(oom)))

	return fmt.Sprintf("(%.2f %.2f %.2f)e%d", w.X, w.Y, w.Z, oom)
}
