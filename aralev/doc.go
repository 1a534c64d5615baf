// SPDX-License-Identifier: MIT

// Package aralev estimates the mean inclination and precision of
// inclination-only palaeomagnetic data (no declinations, e.g. from
// unoriented drill cores) by the maximum-likelihood method of Arason &
// Levi (2010).
//
// Calculate maximizes the log-likelihood over co-inclination θ ∈ [0°,180°]
// and precision κ ≥ 0. It runs an interior fixed-point iteration seeded from
// the arithmetic mean, solves the θ=0° and θ=180° edges for κ alone, adds
// the closed-form κ=0 edge, and keeps the candidate with the highest
// likelihood. The winner is then probed at 16 nearby points. Angular
// dispersion θ63 and the confidence limit α95 follow Kono (1980).
//
// Numerical trouble is reported, not raised:
//
//	r, err := aralev.Calculate(incs)
//	if r.Status.Has(aralev.ConvergenceProblem) { ... }
//	if r.Status.Has(aralev.RobustnessProblem)  { ... }
//
// Only contract violations (no data, an inclination outside [-90°,90°])
// are returned as errors.
//
// ArithMean gives the naive arithmetic-mean statistics of the same data for
// comparison, with Student t confidence limits.
package aralev
