// SPDX-License-Identifier: MIT

package tensor

import (
	"math"

	"github.com/katalvlaran/pmag/vec3"
)

// jacobi diagonalises a symmetric 3×3 matrix by Jacobi rotations.
// Implementation:
//   - Stage 1: Copy A and start the rotation accumulator Q at identity.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and annihilate it with a plane rotation, accumulating the rotation in Q.
//   - Stage 3: Stop once max|A[p,q]| ≤ tol; fail if the budget runs out first.
//
// Returns:
//   - [3]float64: eigenvalues, the diagonal of the rotated matrix.
//   - vec3.Mat3: Q whose columns are the matching unit eigenvectors.
//   - bool: false when maxRot rotations did not reach tol.
//
// Determinism:
//   - Fixed pivot scan and update order; identical inputs give identical output.
//
// Complexity:
//   - Time O(maxRot), Space O(1).
func jacobi(m vec3.Mat3, tol float64, maxRot int) ([3]float64, vec3.Mat3, bool) {
	var (
		a                  = m
		q                  = vec3.Identity
		iter               int
		i, j, p, r         int     // r is the second pivot index
		maxOff, off        float64 // largest |A[i,j]| this round
		app, arr, apr      float64 // A[p,p], A[r,r], A[p,r]
		aip, air, qip, qir float64
		theta, t, c, s     float64
	)
	for iter = 0; iter <= maxRot; iter++ {
		// J.1: pivot search over the strict upper triangle.
		maxOff = 0
		for i = 0; i < 3; i++ {
			for j = i + 1; j < 3; j++ {
				off = math.Abs(a[i][j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		// J.2: converged.
		if maxOff <= tol {
			return [3]float64{a[0][0], a[1][1], a[2][2]}, q, true
		}
		if iter == maxRot {
			break
		}

		// J.3: rotation parameters. θ = (arr−app)/(2apr), t = sign(θ)/(|θ|+√(θ²+1)).
		app, arr, apr = a[p][p], a[r][r], a[p][r]
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: rotate rows/columns p and r of A, keeping it symmetric.
		for i = 0; i < 3; i++ {
			if i == p || i == r {
				continue
			}
			aip, air = a[i][p], a[i][r]
			a[i][p] = c*aip - s*air
			a[p][i] = a[i][p]
			a[i][r] = s*aip + c*air
			a[r][i] = a[i][r]
		}
		a[p][p] = c*c*app - 2*c*s*apr + s*s*arr
		a[r][r] = s*s*app + 2*c*s*apr + c*c*arr
		a[p][r], a[r][p] = 0, 0

		// J.5: accumulate into Q.
		for i = 0; i < 3; i++ {
			qip, qir = q[i][p], q[i][r]
			q[i][p] = c*qip - s*qir
			q[i][r] = s*qip + c*qir
		}
	}

	return [3]float64{a[0][0], a[1][1], a[2][2]}, q, false
}
