// SPDX-License-Identifier: MIT

// Package pca fits a straight line through a demagnetization sequence by
// principal component analysis (Kirschvink, 1980).
//
// The fitted direction is the major eigenvector of the orientation tensor of
// the (optionally centred) points, with a polarity rule appended: the
// direction is flipped, if needed, so that it points against the order of
// demagnetization. In other words it points along the component that was
// removed, from the last included step back towards the first.
//
// Two dispersion measures accompany each fit:
//   - MAD3, the linear maximum angular deviation, atan(√((λint+λmin)/λmax));
//   - MAD1, the planar maximum angular deviation, atan(√(λmin/λint+λmin/λmax)).
//
// Anchored fits are forced through the origin; unanchored fits pass through
// the centre of mass. FitSteps runs the same fit over a subset of treatment
// steps and reports the treatment range covered.
package pca
