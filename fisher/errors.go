// SPDX-License-Identifier: MIT

package fisher

import (
	"errors"
	"fmt"
)

// ErrNoVectors is returned when statistics are requested for an empty set.
var ErrNoVectors = errors.New("fisher: no vectors supplied")

const opCalculate = "Calculate"

func fisherErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
