// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"github.com/katalvlaran/pmag/vec3"
)

// Components are the six independent entries of a symmetric
// susceptibility tensor, in specimen co-ordinates unless corrected.
type Components struct {
	K11, K22, K33, K12, K23, K13 float64
}

// Matrix expands c into the full symmetric 3×3 matrix.
func (c Components) Matrix() vec3.Mat3 {
	return vec3.Mat3{
		{c.K11, c.K12, c.K13},
		{c.K12, c.K22, c.K23},
		{c.K13, c.K23, c.K33},
	}
}

func (c Components) String() string {
	return fmt.Sprintf("%.5f %.5f %.5f %.5f %.5f %.5f", c.K11, c.K22, c.K33, c.K12, c.K23, c.K13)
}

// AMS is an anisotropy of magnetic susceptibility tensor and its principal
// axes (kmax, kint, kmin).
type AMS struct {
	Components Components
	Axes       Eigens
}

// NewAMS builds an AMS tensor from measured components. Each correction
// matrix C is applied in order as K' = C·K·Cᵀ, so sample and formation
// corrections from package vec3 rotate the tensor into geographic or
// tilt-corrected co-ordinates.
//
// Errors:
//   - Any error of Decompose, wrapped with "NewAMS".
func NewAMS(c Components, corrections []vec3.Mat3, opts ...Option) (AMS, error) {
	k := c.Matrix()
	for _, cm := range corrections {
		k = cm.Mul(k).Mul(cm.Transpose())
	}
	k = symmetrize(k)

	axes, err := Decompose(k, opts...)
	if err != nil {
		return AMS{}, tensorErrorf(opAMS, err)
	}

	return AMS{
		Components: Components{
			K11: k[0][0], K22: k[1][1], K33: k[2][2],
			K12: k[0][1], K23: k[1][2], K13: k[0][2],
		},
		Axes: axes,
	}, nil
}

// Axis returns principal axis i (0 = kmax, 1 = kint, 2 = kmin).
func (a AMS) Axis(i int) vec3.Vec3 { return a.Axes.Vectors[i] }

// symmetrize averages m with its transpose, removing rounding asymmetry
// introduced by the correction products.
func symmetrize(m vec3.Mat3) vec3.Mat3 {
	t := m.Transpose()
	var r vec3.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = (m[i][j] + t[i][j]) / 2
		}
	}

	return r
}
