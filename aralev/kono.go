// SPDX-License-Identifier: MIT

package aralev

import (
	"math"

	"github.com/golang/geo/s1"
)

// Full-sphere limits for θ63 and α95.
const (
	Theta63Max = 105.070062145 * s1.Degree
	Alpha95Max = 154.158067237 * s1.Degree
)

// theta63 is the angular standard deviation for precision kappa
// (Kono 1980).
func theta63(kappa float64) s1.Angle {
	var co float64
	switch {
	case kappa >= 20:
		co = 1 + math.Log(1-0.63)/kappa
	case kappa > 0.1:
		co = 1 + math.Log(1-0.63*(1-math.Exp(-2*kappa)))/kappa
	default:
		co = -0.26 + 0.4662*kappa
	}

	return angleFromCos(co, Theta63Max)
}

// alpha95 is the 95% confidence limit of the mean of n inclinations with
// precision kappa (Kono 1980).
func alpha95(n int, kappa float64) s1.Angle {
	nf := float64(n)
	co := 1 - (nf-1)*(math.Pow(20, 1/(nf-1))-1)/(nf*(kappa-1)+1)

	return angleFromCos(co, Alpha95Max)
}

// angleFromCos turns a cone cosine into its half-angle: 180° for co < 0
// outside (-1,1), 0 for co ≥ 1, and never above limit.
func angleFromCos(co float64, limit s1.Angle) s1.Angle {
	var a s1.Angle
	if co < 0 {
		a = 180 * s1.Degree
	}
	if math.Abs(co) < 1 {
		a = s1.Angle(math.Pi/2 - math.Atan(co/math.Sqrt(1-co*co)))
	}
	if a > limit {
		a = limit
	}

	return a
}
