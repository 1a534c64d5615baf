// SPDX-License-Identifier: MIT

package aralev

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when no inclinations are supplied.
	ErrEmptyInput = errors.New("aralev: no inclinations supplied")

	// ErrInclinationRange is returned when an inclination lies outside
	// [-90°, 90°] or is NaN.
	ErrInclinationRange = errors.New("aralev: inclination out of range [-90, 90]")
)

const (
	opCalculate = "Calculate"
	opArithMean = "ArithMean"
)

func aralevErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
