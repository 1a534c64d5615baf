// SPDX-License-Identifier: MIT

// Package fisher computes Fisher (1953) statistics for a set of unit
// directions: the mean direction, the resultant length R, the precision
// parameter k and the 95% confidence cone α95.
//
//	r, err := fisher.Calculate(dirs)
//	fmt.Println(r.Direction.Dec().Degrees(), r.K, r.A95.Degrees())
//
// The formulas are singular for a single direction. Calculate returns
// k = +Inf and α95 = 180° in that case instead of failing, and reports an
// undefined cone (cosine below -1) as NaN, which A95Valid detects.
//
// Params is the read-only view shared with greatcircle.SetResult so that
// downstream code (for example vgp.FromParams) accepts either.
package fisher
