// SPDX-License-Identifier: MIT

package vec3

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// Vec3 is an immutable vector in ℝ³. The zero value is the origin.
type Vec3 struct {
	X, Y, Z float64
}

// Common reference vectors.
var (
	Origin = Vec3{0, 0, 0}
	North  = Vec3{1, 0, 0}
	East   = Vec3{0, 1, 0}
	Down   = Vec3{0, 0, 1}
)

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// FromR3 converts an r3.Vector into a Vec3.
func FromR3(v r3.Vector) Vec3 { return Vec3(v) }

// R3 returns v as an r3.Vector.
func (v Vec3) R3() r3.Vector { return r3.Vector(v) }

// FromPolar builds a vector of magnitude mag from inclination and declination.
func FromPolar(mag float64, inc, dec s1.Angle) Vec3 {
	ci := math.Cos(inc.Radians())
	return Vec3{
		X: mag * ci * math.Cos(dec.Radians()),
		Y: mag * ci * math.Sin(dec.Radians()),
		Z: mag * math.Sin(inc.Radians()),
	}
}

// FromPolarDegrees is FromPolar with inclination and declination in degrees.
func FromPolarDegrees(mag, incDeg, decDeg float64) Vec3 {
	return FromPolar(mag, s1.Angle(incDeg)*s1.Degree, s1.Angle(decDeg)*s1.Degree)
}

func (v Vec3) String() string { return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z) }

// Norm returns the Euclidean magnitude of v.
func (v Vec3) Norm() float64 { return v.R3().Norm() }

// Normalize returns the unit vector parallel to v.
// The zero vector normalizes to itself; callers that need a direction
// must guard against it.
func (v Vec3) Normalize() Vec3 { return Vec3(v.R3().Normalize()) }

// IsUnit reports whether v has approximately unit length.
func (v Vec3) IsUnit() bool { return v.R3().IsUnit() }

// IsZero reports whether v is exactly the origin.
func (v Vec3) IsZero() bool { return v == Origin }

// IsFinite reports whether every component of v is finite.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3(v.R3().Add(o.R3())) }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3(v.R3().Sub(o.R3())) }

// Scale returns k·v.
func (v Vec3) Scale(k float64) Vec3 { return Vec3(v.R3().Mul(k)) }

// Invert returns -v.
func (v Vec3) Invert() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar product v·o.
func (v Vec3) Dot(o Vec3) float64 { return v.R3().Dot(o.R3()) }

// Cross returns the vector product v×o.
func (v Vec3) Cross(o Vec3) Vec3 { return Vec3(v.R3().Cross(o.R3())) }

// ApproxEqual reports whether every component of v and o differs by at most tol.
func (v Vec3) ApproxEqual(o Vec3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol && math.Abs(v.Z-o.Z) <= tol
}

// Dec returns the declination of v in [0, 2π).
func (v Vec3) Dec() s1.Angle {
	d := math.Atan2(v.Y, v.X)
	if d < 0 {
		d += 2 * math.Pi
	}

	return s1.Angle(d)
}

// Inc returns the inclination of v in [-π/2, π/2].
func (v Vec3) Inc() s1.Angle {
	return s1.Angle(math.Atan2(v.Z, math.Hypot(v.X, v.Y)))
}

// AngleTo returns the unsigned angle between the directions of v and o,
// in [0, π]. The cosine is clamped to [-1, 1] so that rounding on nearly
// parallel unit vectors cannot produce NaN.
func (v Vec3) AngleTo(o Vec3) s1.Angle {
	c := v.Normalize().Dot(o.Normalize())

	return s1.Angle(math.Acos(clamp(c, -1, 1)))
}

// SignedAngleTo returns the angle from v to o, in [-π, π].
// The sign is that of the first non-zero component of v×o, taken in
// z, y, x order, so consecutive points on a common great circle yield
// consistently signed steps.
func (v Vec3) SignedAngleTo(o Vec3) s1.Angle {
	a, b := v.Normalize(), o.Normalize()
	cr := a.Cross(b)
	mag := math.Atan2(cr.Norm(), a.Dot(b))

	sign := cr.Z
	if sign == 0 {
		sign = cr.Y
	}
	if sign == 0 {
		sign = cr.X
	}
	switch {
	case sign < 0:
		return s1.Angle(-mag)
	case sign > 0:
		return s1.Angle(mag)
	}

	return 0
}

// SameHemisphere reports whether v and o lie on the same side of the
// horizontal plane. The lower hemisphere is z > 0; vectors on the plane
// count as upper.
func (v Vec3) SameHemisphere(o Vec3) bool {
	return (v.Z > 0) == (o.Z > 0)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
