// SPDX-License-Identifier: MIT

package mdf

import "github.com/katalvlaran/pmag/pca"

// Step is one treatment step: its level (°C or mT) and remanence intensity.
type Step struct {
	Level     float64
	Intensity float64
}

// Result is the median destructive field of a series.
type Result struct {
	// HalfIntensity is half the intensity of the first step.
	HalfIntensity float64
	// Level is the interpolated treatment level at HalfIntensity, or 0
	// when HalfReached is false.
	Level float64
	// HalfReached reports whether any step fell to HalfIntensity or below.
	HalfReached bool
}

// Calculate returns the MDF of steps, taken in the given order.
//
// Errors:
//   - ErrTooFewSteps if len(steps) < 2.
//   - ErrInitialIntensity if the first intensity is not positive.
func Calculate(steps []Step) (Result, error) {
	if len(steps) < 2 {
		return Result{}, mdfErrorf(opCalculate, ErrTooFewSteps)
	}
	// A positive start keeps every bracketing pair strictly decreasing.
	if !(steps[0].Intensity > 0) {
		return Result{}, mdfErrorf(opCalculate, ErrInitialIntensity)
	}

	half := steps[0].Intensity / 2
	res := Result{HalfIntensity: half}
	for i := 1; i < len(steps); i++ {
		if steps[i].Intensity > half {
			continue
		}
		prev, cur := steps[i-1], steps[i]
		res.HalfReached = true
		res.Level = prev.Level + (cur.Level-prev.Level)*(prev.Intensity-half)/(prev.Intensity-cur.Intensity)

		break
	}

	return res, nil
}

// FromPCASteps builds a series from demagnetization steps, using the
// magnitude of each measured moment as its intensity.
func FromPCASteps(steps []pca.Step) []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = Step{Level: s.Level, Intensity: s.Moment.Norm()}
	}

	return out
}
