// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// Every message is prefixed with "tensor: ". Operations wrap these with
// their tag via tensorErrorf; callers match with errors.Is.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVectors is returned when an orientation tensor is requested for an
	// empty vector set.
	ErrNoVectors = errors.New("tensor: no vectors supplied")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry beyond the configured relative epsilon.
	ErrAsymmetry = errors.New("tensor: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")

	// ErrEigenFailed indicates that the Jacobi iteration did not reduce the
	// off-diagonal mass below tolerance within the rotation budget.
	ErrEigenFailed = errors.New("tensor: eigen decomposition failed")
)

const (
	opDecompose   = "Decompose"
	opFromVectors = "FromVectors"
	opAMS         = "NewAMS"
)

// tensorErrorf wraps err with an operation tag.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
