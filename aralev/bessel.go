// SPDX-License-Identifier: MIT

package aralev

import "math"

// besselSplit separates the power-series and asymptotic regimes.
const besselSplit = 3.75

// Polynomial coefficients for I0 and I1 (Abramowitz & Stegun 9.8.1–9.8.4).
var (
	i0Small = [...]float64{1, 3.5156229, 3.0899424, 1.2067492, 0.2659732, 0.360768e-1, 0.45813e-2}
	i0Large = [...]float64{
		0.39894228, 0.1328592e-1, 0.225319e-2, -0.157565e-2, 0.916281e-2,
		-0.2057706e-1, 0.2635537e-1, -0.1647633e-1, 0.392377e-2,
	}
	i1Small = [...]float64{0.5, 0.87890594, 0.51498869, 0.15084934, 0.2658733e-1, 0.301532e-2, 0.32411e-3}
	i1Large = [...]float64{
		0.39894228, -0.3988024e-1, -0.362018e-2, 0.163801e-2, -0.1031555e-1,
		0.2282967e-1, -0.2895312e-1, 0.1787654e-1, -0.420059e-2,
	}
)

// scaledBessel holds modified Bessel functions of the first kind scaled by
// exp(-|x|), plus their ratio.
type scaledBessel struct {
	i0e  float64 // I0(x)·exp(-|x|)
	i1e  float64 // I1(x)·exp(-|x|)
	i1i0 float64 // I1(x)/I0(x)
}

// bessel evaluates I0 and I1 at x without overflow for large |x|.
func bessel(x float64) scaledBessel {
	ax := math.Abs(x)
	if ax < besselSplit {
		t := (x / besselSplit) * (x / besselSplit)
		b0 := horner(i0Small[:], t)
		b1 := x * horner(i1Small[:], t)
		e := math.Exp(ax)

		return scaledBessel{i0e: b0 / e, i1e: b1 / e, i1i0: b1 / b0}
	}

	t := besselSplit / ax
	b0 := horner(i0Large[:], t)
	b1 := horner(i1Large[:], t)
	if x < 0 {
		b1 = -b1
	}
	sq := math.Sqrt(ax)

	return scaledBessel{i0e: b0 / sq, i1e: b1 / sq, i1i0: b1 / b0}
}

// horner evaluates c[0] + c[1]t + c[2]t² + ...
func horner(c []float64, t float64) float64 {
	r := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		r = c[i] + t*r
	}

	return r
}
