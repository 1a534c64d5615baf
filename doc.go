// Package pmag is a palaeomagnetic directional-statistics engine: the
// numerical core behind demagnetization analysis, site means and
// inclination-only studies.
//
// What is in the box?
//
//	• Vector geometry: declination/inclination, rotations, sample and
//	  formation corrections
//	• Orientation tensors: Jacobi eigen-decomposition, MAD angles, AMS
//	• Line fits: principal component analysis, anchored or free
//	• Plane fits: great circles and the McFadden–McElhinny combiner
//	• Means: Fisher statistics, hemisphere splits, VGPs
//	• Inclination-only data: Arason–Levi maximum likelihood
//	• Demagnetization: median destructive field
//
// Packages:
//
//	vec3/        Vec3 (+X north, +Y east, +Z down) and Mat3 rotations
//	tensor/      orientation tensor, eigen-solver, AMS tensor
//	pca/         PCA line fit over points or selected treatment steps
//	greatcircle/ great-circle fit and combined set mean
//	fisher/      Fisher mean, k, α95; shared Params view
//	aralev/      Arason–Levi inclination-only estimator, arithmetic mean
//	vgp/         virtual geomagnetic pole from a mean direction
//	mdf/         median destructive field
//
// Every computation is pure and synchronous. Contract violations (too few
// points, out-of-range inclinations) are returned as wrapped sentinel
// errors; numerical trouble (non-convergence, undefined confidence cones)
// is reported inside the result.
//
// Quick example:
//
//	fit, _ := pca.Fit(points, true)
//	mean, _ := fisher.Calculate(directions)
//	pole, _ := vgp.FromParams(mean, s2.LatLngFromDegrees(64.1, 338.4))
//
// See ./examples for complete workflows.
//
//	go get github.com/katalvlaran/pmag
package pmag
