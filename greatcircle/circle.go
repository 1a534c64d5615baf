// SPDX-License-Identifier: MIT

package greatcircle

import (
	"github.com/golang/geo/s1"

	"github.com/katalvlaran/pmag/tensor"
	"github.com/katalvlaran/pmag/vec3"
)

// Circle is a great circle fitted to a demagnetization path.
type Circle struct {
	// Points are the normalized input points, in treatment order.
	Points []vec3.Vec3
	// Pole is the unit normal of the best-fit plane. Its sign is arbitrary.
	Pole vec3.Vec3
	// MAD1 is the planar maximum angular deviation of the fit.
	MAD1 s1.Angle
	// Trend is +1 or -1 according to the sense in which the points travel
	// round the circle, or 0 when they show no net movement.
	Trend int
}

// Fit fits a great circle to points.
// Implementation:
//   - Stage 1: Normalize the points.
//   - Stage 2: Eigen-decompose their orientation tensor; the pole is the
//     eigenvector of the smallest eigenvalue.
//   - Stage 3: Sum the signed angles between the projections of consecutive
//     points onto the circle; the trend is the sign of the total.
//
// Errors:
//   - ErrTooFewPoints when len(points) < 2.
//   - tensor errors, wrapped with "Fit".
func Fit(points []vec3.Vec3, opts ...tensor.Option) (Circle, error) {
	if len(points) < 2 {
		return Circle{}, gcErrorf(opFit, ErrTooFewPoints)
	}
	norm := vec3.NormalizeAll(points)
	eig, err := tensor.FromVectors(norm, true, opts...)
	if err != nil {
		return Circle{}, gcErrorf(opFit, err)
	}

	c := Circle{Points: norm, Pole: eig.Minor().Normalize(), MAD1: eig.MAD1()}

	var total s1.Angle
	for i := 1; i < len(norm); i++ {
		total += c.NearestOnCircle(norm[i-1]).SignedAngleTo(c.NearestOnCircle(norm[i]))
	}
	switch {
	case total > 0:
		c.Trend = 1
	case total < 0:
		c.Trend = -1
	}

	return c, nil
}

// FromPole returns the circle with the given pole and no points.
func FromPole(pole vec3.Vec3) Circle {
	return Circle{Pole: pole.Normalize()}
}

// NearestOnCircle returns the point on c closest to v.
func (c Circle) NearestOnCircle(v vec3.Vec3) vec3.Vec3 {
	return vec3.NearestOnGreatCircle(c.Pole, v)
}

// LastPoint returns the final normalized point of the fitted path.
//
// Errors:
//   - ErrNoPoints for a circle built with FromPole.
func (c Circle) LastPoint() (vec3.Vec3, error) {
	if len(c.Points) == 0 {
		return vec3.Vec3{}, gcErrorf(opLastPoint, ErrNoPoints)
	}

	return c.Points[len(c.Points)-1], nil
}

// AngleFromLast returns the signed angle from the projection of the last
// point onto the circle to v, multiplied by the point trend. Positive values
// lie further along the demagnetization path.
//
// Errors:
//   - ErrNoPoints for a circle built with FromPole.
func (c Circle) AngleFromLast(v vec3.Vec3) (s1.Angle, error) {
	last, err := c.LastPoint()
	if err != nil {
		return 0, gcErrorf(opAngleFromLast, err)
	}

	return c.NearestOnCircle(last).SignedAngleTo(v) * s1.Angle(c.Trend), nil
}

// Strike returns the strike of the fitted plane.
func (c Circle) Strike() s1.Angle { return c.Pole.Strike() }

// Dip returns the dip of the fitted plane.
func (c Circle) Dip() s1.Angle { return c.Pole.Dip() }
