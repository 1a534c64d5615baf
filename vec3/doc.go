// SPDX-License-Identifier: MIT

// Package vec3 provides the immutable 3-D vector used throughout pmag to
// represent magnetization moments and directions on the unit sphere.
//
// Coordinate convention (palaeomagnetic, right-handed):
//   - +X points north, +Y points east, +Z points down.
//   - Declination is the azimuth atan2(y, x) mapped to [0, 2π).
//   - Inclination is the elevation atan2(z, hypot(x, y)); positive values
//     point below the horizontal.
//
// Vec3 shares its memory layout with github.com/golang/geo/r3.Vector and
// delegates the basic linear algebra to it; every method returns a new value
// and never mutates the receiver. Angle-valued inputs and outputs use
// s1.Angle, so the unit travels with the value (call .Degrees() or
// .Radians() at the boundary).
//
// Rotations (RotX, RotY, RotZ) and the sample/formation corrections are
// expressed as Mat3 values so the same matrices can be reused to rotate
// second-rank tensors (see package tensor).
//
// Usage:
//
//	v := vec3.FromPolarDegrees(1, 45, 25) // |v|=1, inc=45°, dec=25°
//	g := v.CorrectSample(az, dip)         // sample → geographic
//	fmt.Println(g.Dec().Degrees(), g.Inc().Degrees())
package vec3
