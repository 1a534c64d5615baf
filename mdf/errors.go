// SPDX-License-Identifier: MIT

package mdf

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewSteps is returned for a series of fewer than two steps.
	ErrTooFewSteps = errors.New("mdf: at least two steps are required")

	// ErrInitialIntensity is returned when the first step has no positive
	// intensity to halve.
	ErrInitialIntensity = errors.New("mdf: initial intensity must be positive")
)

const opCalculate = "Calculate"

func mdfErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
