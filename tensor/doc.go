// SPDX-License-Identifier: MIT

// Package tensor builds second-rank symmetric tensors from directional data
// and extracts their principal axes.
//
// The package provides:
//
//   - Orientation: the orientation tensor T = Σ vᵢvᵢᵀ of a vector set.
//   - Decompose / FromVectors: a cyclic Jacobi eigen-solver specialised to
//     3×3 symmetric matrices, returning Eigens with eigenvalues ordered by
//     decreasing magnitude and an orthonormal set of eigenvectors.
//   - MAD1 / MAD3: the maximum angular deviation statistics derived from
//     the three eigenvalues.
//   - AMS: anisotropy of magnetic susceptibility tensors built from six
//     measured components, with optional orientation corrections C·K·Cᵀ.
//
// Ordering is deterministic: eigenpairs are sorted by |λ| descending, and
// ties keep the solver's column order. Eigenvector signs are not
// normalised; callers that need a hemisphere convention (PCA polarity,
// great-circle poles) resolve it themselves.
//
// Numeric policy is configured with functional options (WithEpsilon,
// WithMaxRotations). Input violations return sentinel errors wrapped with
// the operation name; match them with errors.Is.
package tensor
