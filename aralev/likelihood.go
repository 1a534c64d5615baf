// SPDX-License-Identifier: MIT

package aralev

import "math"

const (
	degree = math.Pi / 180

	// Co-inclination limits keeping sin θ away from zero.
	thetaMin = 1e-6 * degree
	thetaMax = 179.999999 * degree
)

// coth is the hyperbolic cotangent, with a series near zero and saturation
// beyond |x| = 15. coth(0) is reported as 0.
func coth(x float64) float64 {
	if x == 0 {
		return 0
	}
	t := math.Abs(x)
	var r float64
	switch {
	case t < 0.001:
		r = 1/t + t/3 - t*t*t/45 + 2*math.Pow(t, 5)/945
	case t <= 15:
		ep, em := math.Exp(t), math.Exp(-t)
		r = (ep + em) / (ep - em)
	default:
		r = 1
	}

	return math.Copysign(r, x)
}

// logLikelihood evaluates the inclination-only log-likelihood of
// co-inclinations th (radians) at mean co-inclination theta and precision
// kappa:
//
//	N[ln κ − ln sinh κ − ln 2] + Σ[κ cos(θᵢ−θ) + ln I0e(κ sinθ sinθᵢ)] + Σ ln sin θᵢ
//
// It returns −1e10 for an empty set or negative kappa.
func logLikelihood(th []float64, theta, kappa float64) float64 {
	n := float64(len(th))
	if len(th) < 1 || kappa < 0 {
		return -1e10
	}

	// N ln κ − N ln sinh κ − N ln 2, regime by regime.
	var a1 float64
	switch {
	case kappa < 0.01:
		k := kappa
		q := -k * (1 - k*(2.0/3-k*(1.0/3-k*(2.0/15-k*2.0/45))))
		a1 = n * (-math.Ln2 - math.Log1p(q) - k)
	case kappa <= 15:
		a1 = n * (math.Log(kappa) - math.Log(1-math.Exp(-2*kappa)) - kappa)
	default:
		a1 = n * (math.Log(kappa) - kappa)
	}

	var a2, a3 float64
	sinT := math.Sin(theta)
	for _, ti := range th {
		a2 += kappa*math.Cos(ti-theta) + math.Log(bessel(kappa*sinT*math.Sin(ti)).i0e)
		a3 += math.Log(math.Sin(clamp(ti, thetaMin, thetaMax)))
	}

	return a1 + a2 + a3
}

// besselSums returns Σ sinθᵢ·(I1/I0)(κ sinθ sinθᵢ) and Σ cosθᵢ.
func besselSums(th []float64, theta, kappa float64) (s, c float64) {
	sinT := math.Sin(theta)
	for _, ti := range th {
		si := math.Sin(ti)
		s += si * bessel(kappa*sinT*si).i1i0
		c += math.Cos(ti)
	}

	return s, c
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
