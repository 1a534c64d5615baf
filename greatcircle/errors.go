// SPDX-License-Identifier: MIT

package greatcircle

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewPoints is returned when a circle is fitted to fewer than two points.
	ErrTooFewPoints = errors.New("greatcircle: at least two points are required")

	// ErrNoData is returned by Combine when there are neither endpoints nor circles.
	ErrNoData = errors.New("greatcircle: no endpoints or circles supplied")

	// ErrNoPoints is returned by point-dependent operations on a circle built
	// from a pole alone.
	ErrNoPoints = errors.New("greatcircle: circle has no points")
)

const (
	opFit           = "Fit"
	opLastPoint     = "LastPoint"
	opAngleFromLast = "AngleFromLast"
	opCombine       = "Combine"
)

func gcErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
