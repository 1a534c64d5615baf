// SPDX-License-Identifier: MIT

package tensor

import (
	"math"
	"sort"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/pmag/vec3"
)

// Eigens holds the three principal axes of a symmetric tensor.
// Values[k] is |λₖ| and Vectors[k] the matching unit eigenvector;
// k=0 is the largest magnitude. The vectors form an orthonormal set.
type Eigens struct {
	Values  [3]float64
	Vectors [3]vec3.Vec3
}

// Major returns the eigenvector of the largest eigenvalue.
func (e Eigens) Major() vec3.Vec3 { return e.Vectors[0] }

// Intermediate returns the eigenvector of the middle eigenvalue.
func (e Eigens) Intermediate() vec3.Vec3 { return e.Vectors[1] }

// Minor returns the eigenvector of the smallest eigenvalue.
func (e Eigens) Minor() vec3.Vec3 { return e.Vectors[2] }

// MAD1 returns atan(√(λmin/λint + λmin/λmax)), the planar maximum angular
// deviation. It is zero when λint or λmax is exactly zero.
func (e Eigens) MAD1() s1.Angle {
	lmax, lint, lmin := e.Values[0], e.Values[1], e.Values[2]
	if lint == 0 || lmax == 0 {
		return 0
	}

	return s1.Angle(math.Atan(math.Sqrt(lmin/lint + lmin/lmax)))
}

// MAD3 returns atan(√((λint+λmin)/λmax)), the linear maximum angular
// deviation. It is zero for an all-zero tensor.
func (e Eigens) MAD3() s1.Angle {
	lmax, lint, lmin := e.Values[0], e.Values[1], e.Values[2]
	if lmax == 0 {
		return 0
	}

	return s1.Angle(math.Atan(math.Sqrt((lint + lmin) / lmax)))
}

// Matrix returns the eigenvectors as the rows of a matrix.
func (e Eigens) Matrix() vec3.Mat3 {
	var m vec3.Mat3
	for k, v := range e.Vectors {
		m[k] = [3]float64{v.X, v.Y, v.Z}
	}

	return m
}

// Orientation returns the orientation tensor Σ vᵢvᵢᵀ. With normalize set,
// each vector is scaled to unit length first.
func Orientation(vs []vec3.Vec3, normalize bool) vec3.Mat3 {
	var t vec3.Mat3
	for _, v := range vs {
		if normalize {
			v = v.Normalize()
		}
		c := [3]float64{v.X, v.Y, v.Z}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				t[i][j] += c[i] * c[j]
			}
		}
	}

	return t
}

// FromVectors eigen-decomposes the orientation tensor of vs.
//
// Errors:
//   - ErrNoVectors when vs is empty.
//   - Any error of Decompose.
func FromVectors(vs []vec3.Vec3, normalize bool, opts ...Option) (Eigens, error) {
	if len(vs) == 0 {
		return Eigens{}, tensorErrorf(opFromVectors, ErrNoVectors)
	}
	e, err := Decompose(Orientation(vs, normalize), opts...)
	if err != nil {
		return Eigens{}, tensorErrorf(opFromVectors, err)
	}

	return e, nil
}

// Decompose computes the principal axes of a symmetric 3×3 matrix.
// Implementation:
//   - Stage 1: Reject non-finite entries and asymmetry beyond eps·‖m‖F.
//   - Stage 2: Jacobi rotations until max|off-diagonal| ≤ eps·‖m‖F.
//   - Stage 3: Order eigenpairs by |λ| descending (stable on column order),
//     store |λ|, and re-orthonormalise the vectors (Gram–Schmidt, with the
//     third taken as v1×v2 and sign-matched to the solver's column).
//
// Behavior highlights:
//   - An all-zero matrix yields zero eigenvalues and the coordinate axes.
//
// Errors:
//   - ErrNaNInf, ErrAsymmetry, ErrEigenFailed, wrapped with "Decompose".
//
// Complexity:
//   - Time O(maxRotations), Space O(1).
func Decompose(m vec3.Mat3, opts ...Option) (Eigens, error) {
	o := gatherOptions(opts...)
	if err := validateFinite(m); err != nil {
		return Eigens{}, tensorErrorf(opDecompose, err)
	}
	norm := frobenius(m)
	tol := o.eps * norm
	if err := validateSymmetric(m, tol); err != nil {
		return Eigens{}, tensorErrorf(opDecompose, err)
	}

	vals, q, ok := jacobi(m, tol, o.maxRotations)
	if !ok {
		return Eigens{}, tensorErrorf(opDecompose, ErrEigenFailed)
	}

	order := []int{0, 1, 2}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(vals[order[a]]) > math.Abs(vals[order[b]])
	})

	var e Eigens
	for k, col := range order {
		e.Values[k] = math.Abs(vals[col])
		e.Vectors[k] = vec3.New(q[0][col], q[1][col], q[2][col])
	}
	e.Vectors = orthonormalize(e.Vectors)

	return e, nil
}

// orthonormalize repairs rounding drift in a near-orthonormal basis.
func orthonormalize(v [3]vec3.Vec3) [3]vec3.Vec3 {
	v1 := v[0].Normalize()
	v2 := v[1].Sub(v1.Scale(v1.Dot(v[1]))).Normalize()
	v3 := v1.Cross(v2)
	if v3.Dot(v[2]) < 0 {
		v3 = v3.Invert()
	}

	return [3]vec3.Vec3{v1, v2, v3}
}
