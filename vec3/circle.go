// SPDX-License-Identifier: MIT

package vec3

import (
	"math"

	"github.com/golang/geo/s1"
)

// NearestOnGreatCircle returns the unit vector on the great circle with the
// given pole that lies closest to point: the component of point orthogonal
// to pole, renormalized.
//
// When point is parallel to the pole every point of the circle is equally
// near; the result is then taken towards North (East when the pole lies on
// the north axis) so the function stays total.
func NearestOnGreatCircle(pole, point Vec3) Vec3 {
	p := pole.Normalize()
	u := point.Normalize()
	tau := p.Dot(u)
	if math.Abs(tau) >= 1 {
		if math.Abs(p.Dot(North)) < 1 {
			return NearestOnGreatCircle(p, North)
		}

		return NearestOnGreatCircle(p, East)
	}
	r := u.Sub(p.Scale(tau))
	if r.IsZero() {
		return NearestOnGreatCircle(p, East)
	}

	return r.Normalize()
}

// Strike returns the strike of the plane whose pole is v, measured
// clockwise from north in [0, 2π), using the right-hand rule on the
// upward-pointing pole.
func (v Vec3) Strike() s1.Angle {
	dec := v.Dec().Radians()
	if v.Inc() > 0 {
		dec += math.Pi
	}
	strike := math.Mod(dec-math.Pi/2, 2*math.Pi)
	if strike < 0 {
		strike += 2 * math.Pi
	}

	return s1.Angle(strike)
}

// Dip returns the dip of the plane whose pole is v, in [0, π/2].
func (v Vec3) Dip() s1.Angle {
	inc := v.Inc()
	if inc > 0 {
		inc = -inc
	}

	return inc + math.Pi/2
}
