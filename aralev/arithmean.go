// SPDX-License-Identifier: MIT

package aralev

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ArithResult holds arithmetic-mean statistics of a set of inclinations.
type ArithResult struct {
	MeanInc s1.Angle
	// Kappa is the inverse sample variance of the co-inclinations in
	// radians; -1 for a single inclination.
	Kappa   float64
	Theta63 s1.Angle
	Alpha95 s1.Angle
	N       int
}

// ArithMean computes the arithmetic mean of incs (degrees) with Student t
// dispersion (θ63 = t(0.815, N−1)·sd) and confidence (α95 =
// t(0.975, N−1)·sd/√N) limits. A single inclination returns κ = −1 and the
// full-sphere limits.
//
// Errors:
//   - ErrEmptyInput if incs is empty.
//   - ErrInclinationRange if any value is outside [-90, 90] or NaN.
func ArithMean(incs []float64) (ArithResult, error) {
	n := len(incs)
	if n == 0 {
		return ArithResult{}, aralevErrorf(opArithMean, ErrEmptyInput)
	}
	if n == 1 {
		return ArithResult{
			MeanInc: s1.Angle(incs[0]) * s1.Degree,
			Kappa:   -1,
			Theta63: Theta63Max,
			Alpha95: Alpha95Max,
			N:       1,
		}, nil
	}
	if err := validateRange(incs); err != nil {
		return ArithResult{}, aralevErrorf(opArithMean, err)
	}

	th := make([]float64, n)
	for i, inc := range incs {
		th[i] = 90 - inc
	}
	mean, _ := stats.Mean(th)
	variance, _ := stats.SampleVariance(th)
	sd := math.Sqrt(variance)

	kappa := InfiniteKappa
	if v := variance * degree * degree; v > 0 {
		kappa = 1 / v
	}

	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}

	return ArithResult{
		MeanInc: s1.Angle(90-mean) * s1.Degree,
		Kappa:   kappa,
		Theta63: s1.Angle(t.Quantile((1+0.63)/2)*sd) * s1.Degree,
		Alpha95: s1.Angle(t.Quantile((1+0.95)/2)*sd/math.Sqrt(float64(n))) * s1.Degree,
		N:       n,
	}, nil
}
