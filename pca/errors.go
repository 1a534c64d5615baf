// SPDX-License-Identifier: MIT

package pca

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints is returned when fewer than two points are supplied.
var ErrTooFewPoints = errors.New("pca: at least two points are required")

const (
	opFit      = "Fit"
	opFitSteps = "FitSteps"
)

func pcaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
