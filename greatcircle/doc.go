// SPDX-License-Identifier: MIT

// Package greatcircle fits great circles (planes through the origin) to
// demagnetization paths and combines circles with stable endpoints into a
// single mean direction by the iterative method of McFadden & McElhinny
// (1988).
//
// Single-sample fits:
//
//	c, err := greatcircle.Fit(points)   // pole = minor eigenvector
//	c.AngleFromLast(v)                  // signed, along the point trend
//
// Set combination:
//
//	res, err := greatcircle.Combine(endpoints, circles,
//	        greatcircle.WithValidity(3, 3.5*s1.Degree, 3))
//	if res.Valid { ... }
//
// Combine never fails on numerical grounds. Non-convergence is reported in
// SetResult.Converged, an undefined confidence cone in A95Valid, and the
// acceptance policy (N≥3 circles, α95<3.5°, k>3 by default) in Valid.
package greatcircle
