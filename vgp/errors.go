// SPDX-License-Identifier: MIT

package vgp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSite is returned for a site latitude outside [-90°, 90°] or a
	// non-finite site coordinate.
	ErrInvalidSite = errors.New("vgp: invalid site location")

	// ErrZeroDirection is returned when the mean direction has no length.
	ErrZeroDirection = errors.New("vgp: zero direction")
)

const (
	opCalculate  = "Calculate"
	opFromParams = "FromParams"
)

func vgpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
