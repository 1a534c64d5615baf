// SPDX-License-Identifier: MIT

package pca

import (
	"github.com/katalvlaran/pmag/tensor"
	"github.com/katalvlaran/pmag/vec3"
)

// Step is one treatment step of a demagnetization sequence.
type Step struct {
	// Level is the treatment level (°C or mT).
	Level float64
	// Moment is the measured magnetization vector.
	Moment vec3.Vec3
	// InFit selects the step for the line fit.
	InFit bool
}

// Annotated is a line fit over selected steps with the treatment range it
// covers.
type Annotated struct {
	Result
	// DemagStart and DemagEnd are the levels of the first and last steps used.
	DemagStart float64
	DemagEnd   float64
	// Contiguous is true when the selected steps form a single unbroken run.
	Contiguous bool
}

// FitSteps runs Fit over the steps with InFit set, in their given order.
//
// Errors:
//   - ErrTooFewPoints when fewer than two steps are selected.
//   - Any error of Fit, wrapped with "FitSteps".
func FitSteps(steps []Step, anchored bool, opts ...tensor.Option) (Annotated, error) {
	points := make([]vec3.Vec3, 0, len(steps))
	var first, last *Step
	runs := 0
	prevIn := false
	for i := range steps {
		in := steps[i].InFit
		if in {
			points = append(points, steps[i].Moment)
			if first == nil {
				first = &steps[i]
			}
			last = &steps[i]
			if !prevIn {
				runs++
			}
		}
		prevIn = in
	}
	if len(points) < 2 {
		return Annotated{}, pcaErrorf(opFitSteps, ErrTooFewPoints)
	}

	res, err := Fit(points, anchored, opts...)
	if err != nil {
		return Annotated{}, pcaErrorf(opFitSteps, err)
	}

	return Annotated{
		Result:     res,
		DemagStart: first.Level,
		DemagEnd:   last.Level,
		Contiguous: runs <= 1,
	}, nil
}
