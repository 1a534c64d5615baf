// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Single place for the finite/symmetry guards run before Jacobi sweeps.
//  - Validators return plain sentinels; callers wrap them with their op tag.

package tensor

import (
	"math"

	"github.com/katalvlaran/pmag/vec3"
)

// validateFinite returns ErrNaNInf if any entry of m is NaN or ±Inf.
func validateFinite(m vec3.Mat3) error {
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			if math.IsNaN(m[i][j]) || math.IsInf(m[i][j], 0) {
				return ErrNaNInf
			}
		}
	}

	return nil
}

// validateSymmetric returns ErrAsymmetry when |A[i,j]-A[j,i]| exceeds tol
// for any i<j. Assumes m is finite.
func validateSymmetric(m vec3.Mat3, tol float64) error {
	var i, j int
	for i = 0; i < 3; i++ {
		for j = i + 1; j < 3; j++ {
			if math.Abs(m[i][j]-m[j][i]) > tol {
				return ErrAsymmetry
			}
		}
	}

	return nil
}

// frobenius returns sqrt(Σ A[i,j]²).
func frobenius(m vec3.Mat3) float64 {
	var s float64
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			s += m[i][j] * m[i][j]
		}
	}

	return math.Sqrt(s)
}
