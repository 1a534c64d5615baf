// SPDX-License-Identifier: MIT
package aralev_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pmag/aralev"
)

// referenceCase pairs a dataset with published Arason & Levi (2010)
// outputs and arithmetic-mean statistics.
type referenceCase struct {
	incs []float64

	inc, kappa, t63, a95 float64

	arithInc, arithKappa, arithT63, arithA95 float64
}

var referenceCases = []referenceCase{
	{
		incs: []float64{39, 28, 43, 33, 7, -25, 2, -16, 10, 15, 39, -3, -84, -72, 14, -5, -41, 47, -16, 43},
		inc:  8.565, kappa: 1.78808, t63: 61.967, a95: 36.253,
		arithInc: 2.900, arithKappa: 2.36982, arithT63: 34.176, arithA95: 17.419,
	},
	{
		incs: []float64{86, 86.5, 86.1, 87, 87.5, 87.2, 86.7, 86.7, 87.2, 87.1, 89, 89.9},
		inc:  87.495, kappa: 2602.30, t63: 1.584, a95: .851,
		arithInc: 87.242, arithKappa: 2528.55, arithT63: 1.065, arithA95: 0.724,
	},
	{
		incs: []float64{-86, -86.5, -86.1, -87, -87.5, -87.2, -86.7, -86.7, -87.2, -87.1, -89, -89.9},
		inc:  -87.495, kappa: 2602.30, t63: 1.584, a95: .851,
		arithInc: -87.242, arithKappa: 2528.55, arithT63: 1.065, arithA95: 0.724,
	},
	{
		incs: []float64{40, 41, 42, 43, 44, 45, 46, -1},
		inc:  39.530, kappa: 15.0558, t63: 20.939, a95: 14.751,
		arithInc: 37.500, arithKappa: 13.3447, arithT63: 15.025, arithA95: 13.115,
	},
	{
		// θ = 0° edge wins.
		incs: []float64{56.72, -71.16, 38.46, 82.34, -79.92, 6.70, 83.26, -44.58, 22.96, 62.48},
		inc:  90.0, kappa: 0.681026, t63: 85.898, a95: 0,
		arithInc: 15.726, arithKappa: 0.872842, arithT63: 57.870, arithA95: 43.868,
	},
	{
		// θ = 180° edge wins.
		incs: []float64{41.46, -13.07, 23.30, -85.24, -55.97, -82.16, -11.73, 30.60, -26.05, 74.17},
		inc:  -90.0, kappa: 0.349559, t63: 95.173, a95: 0,
		arithInc: -10.469, arithKappa: 1.14787, arithT63: 50.463, arithA95: 38.253,
	},
	{
		// κ = 0 edge wins.
		incs: []float64{-41.73, -13.53, -77.12, 64.31, 30.28, 54.24, -64.10, 11.15, -35.95, 68.74},
		inc:  0.0, kappa: 0.0, t63: 105.070, a95: 0,
		arithInc: -0.371, arithKappa: 1.13131, arithT63: 50.831, arithA95: 38.532,
	},
}

// sigFigDelta is the absolute tolerance for agreement to sigfigs
// significant figures.
func sigFigDelta(expected float64, sigfigs int) float64 {
	if expected == 0 {
		return math.Pow(10, -float64(sigfigs))
	}
	oom := int(math.Ceil(math.Log10(math.Abs(expected))))

	return math.Pow(10, -float64(sigfigs-oom))
}

// TestCalculate_Reference reproduces the published reference outputs.
func TestCalculate_Reference(t *testing.T) {
	t.Parallel()

	for i, tc := range referenceCases {
		r, err := aralev.Calculate(tc.incs)
		require.NoError(t, err, "case %d", i)

		assert.Equal(t, len(tc.incs), r.N, "case %d", i)
		assert.InDelta(t, tc.inc, r.MeanInc.Degrees(), sigFigDelta(tc.inc, 4), "case %d: inc", i)
		assert.InDelta(t, tc.kappa, r.Kappa, sigFigDelta(tc.kappa, 5), "case %d: kappa", i)
		assert.InDelta(t, tc.t63, r.Theta63.Degrees(), 1e-3, "case %d: t63", i)
		assert.InDelta(t, tc.a95, r.Alpha95.Degrees(), 1e-3, "case %d: a95", i)
		assert.True(t, r.Status.OK(), "case %d: status %v", i, r.Status)
	}
}

// TestArithMean_Reference checks the arithmetic-mean companion statistics.
func TestArithMean_Reference(t *testing.T) {
	t.Parallel()

	for i, tc := range referenceCases {
		r, err := aralev.ArithMean(tc.incs)
		require.NoError(t, err, "case %d", i)

		assert.Equal(t, len(tc.incs), r.N, "case %d", i)
		assert.InDelta(t, tc.arithInc, r.MeanInc.Degrees(), 1e-3, "case %d: inc", i)
		assert.InDelta(t, tc.arithKappa, r.Kappa, sigFigDelta(tc.arithKappa, 3), "case %d: kappa", i)
		assert.InDelta(t, tc.arithT63, r.Theta63.Degrees(), 1e-2, "case %d: t63", i)
		assert.InDelta(t, tc.arithA95, r.Alpha95.Degrees(), 1e-2, "case %d: a95", i)
	}
}

// TestCalculate_Symmetry: negating every inclination negates the mean only.
func TestCalculate_Symmetry(t *testing.T) {
	t.Parallel()

	incs := []float64{62, 71, 55, 80, 66, 58, 74}
	neg := make([]float64, len(incs))
	for i, v := range incs {
		neg[i] = -v
	}
	a, err := aralev.Calculate(incs)
	require.NoError(t, err)
	b, err := aralev.Calculate(neg)
	require.NoError(t, err)

	assert.InDelta(t, a.MeanInc.Degrees(), -b.MeanInc.Degrees(), 1e-6)
	assert.InEpsilon(t, a.Kappa, b.Kappa, 1e-6)
	assert.InDelta(t, a.Alpha95.Degrees(), b.Alpha95.Degrees(), 1e-6)
}

// TestCalculate_EndToEnd: a well-behaved set converges cleanly and lands
// near its centre.
func TestCalculate_EndToEnd(t *testing.T) {
	t.Parallel()

	r, err := aralev.Calculate([]float64{45, 50, 40, 55, 35})
	require.NoError(t, err)
	assert.Equal(t, aralev.Status(0), r.Status)
	assert.False(t, r.Status.Has(aralev.RobustnessProblem))
	assert.InDelta(t, 45, r.MeanInc.Degrees(), 5)
	assert.Greater(t, r.Kappa, 1.0)
	assert.Less(t, r.Kappa, aralev.InfiniteKappa)
	assert.Less(t, r.Alpha95, aralev.Alpha95Max)
	assert.Less(t, r.Theta63, aralev.Theta63Max)
}

// TestCalculate_FastPaths covers the degenerate inputs.
func TestCalculate_FastPaths(t *testing.T) {
	t.Parallel()

	r, err := aralev.Calculate([]float64{1})
	require.NoError(t, err)
	assert.InDelta(t, 1, r.MeanInc.Degrees(), 1e-12)
	assert.Equal(t, -1.0, r.Kappa)
	assert.InDelta(t, 105.070, r.Theta63.Degrees(), 1e-3)
	assert.InDelta(t, 154.158, r.Alpha95.Degrees(), 1e-3)
	assert.Equal(t, aralev.ConvergenceProblem, r.Status)
	assert.Equal(t, 1, r.N)

	// A single value is returned before the range check.
	_, err = aralev.Calculate([]float64{120})
	assert.NoError(t, err)

	r, err = aralev.Calculate([]float64{12, 12, 12, 12, 12})
	require.NoError(t, err)
	assert.True(t, r.Status.OK())
	assert.Equal(t, 5, r.N)
	assert.InDelta(t, 12, r.MeanInc.Degrees(), 1e-5)
	assert.Equal(t, aralev.InfiniteKappa, r.Kappa)
	assert.Zero(t, r.Theta63)
	assert.Zero(t, r.Alpha95)
}

// TestCalculate_Errors covers the input contract.
func TestCalculate_Errors(t *testing.T) {
	t.Parallel()

	_, err := aralev.Calculate(nil)
	assert.ErrorIs(t, err, aralev.ErrEmptyInput)
	_, err = aralev.ArithMean(nil)
	assert.ErrorIs(t, err, aralev.ErrEmptyInput)

	for _, incs := range [][]float64{
		{1, -2, 3, 91, 4, -5, 6},
		{1, -2, 3, -91, 4, -5, 6},
		{1, math.NaN()},
	} {
		_, err = aralev.Calculate(incs)
		assert.ErrorIs(t, err, aralev.ErrInclinationRange, "%v", incs)
		_, err = aralev.ArithMean(incs)
		assert.ErrorIs(t, err, aralev.ErrInclinationRange, "%v", incs)
	}

	assert.Panics(t, func() { aralev.WithMaxIterations(0) })
}

// TestCalculate_IterationCap: starving the solver is reported, not raised.
func TestCalculate_IterationCap(t *testing.T) {
	t.Parallel()

	incs := referenceCases[0].incs
	r, err := aralev.Calculate(incs, aralev.WithMaxIterations(2))
	require.NoError(t, err)
	assert.True(t, r.Status.Has(aralev.ConvergenceProblem))
	assert.Equal(t, len(incs), r.N)
}

// TestCalculate_Robustness: near-vertical and near-identical inclinations
// put the optimum at the κ cap, where a neighbouring point scores higher.
func TestCalculate_Robustness(t *testing.T) {
	t.Parallel()

	for _, incs := range [][]float64{{90, 89.9999}, {0, 1e-7}, {89.9999, 90, 89.9998}} {
		r, err := aralev.Calculate(incs)
		require.NoError(t, err)
		assert.Equal(t, aralev.RobustnessProblem, r.Status, "%v", incs)
		assert.True(t, r.Status.Has(aralev.RobustnessProblem))
		assert.False(t, r.Status.OK())
		assert.Equal(t, aralev.InfiniteKappa, r.Kappa, "%v", incs)
	}

	r, err := aralev.Calculate([]float64{90, 89.9999})
	require.NoError(t, err)
	assert.InDelta(t, 90, r.MeanInc.Degrees(), 1e-6)

	// Both flags together once the edge solver is starved as well.
	r, err = aralev.Calculate([]float64{90, 89.9999}, aralev.WithMaxIterations(2))
	require.NoError(t, err)
	assert.Equal(t, aralev.ConvergenceProblem|aralev.RobustnessProblem, r.Status)
	assert.Equal(t, "convergence|robustness", r.Status.String())
}

// TestArithMean_Single mirrors the Calculate fast path.
func TestArithMean_Single(t *testing.T) {
	t.Parallel()

	r, err := aralev.ArithMean([]float64{-30})
	require.NoError(t, err)
	assert.InDelta(t, -30, r.MeanInc.Degrees(), 1e-12)
	assert.Equal(t, -1.0, r.Kappa)
	assert.Equal(t, aralev.Theta63Max, r.Theta63)
	assert.Equal(t, aralev.Alpha95Max, r.Alpha95)
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", aralev.Status(0).String())
	assert.Equal(t, "convergence", aralev.ConvergenceProblem.String())
	assert.Equal(t, "convergence|robustness", (aralev.ConvergenceProblem | aralev.RobustnessProblem).String())
	assert.True(t, (aralev.ConvergenceProblem | aralev.RobustnessProblem).Has(aralev.RobustnessProblem))
	assert.False(t, aralev.ConvergenceProblem.Has(aralev.RobustnessProblem))
}
