// SPDX-License-Identifier: MIT

package vec3

import (
	"math"

	"github.com/golang/geo/s1"
)

// Mat3 is a row-major 3×3 matrix acting on column vectors.
type Mat3 [3][3]float64

// Identity is the 3×3 identity matrix.
var Identity = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Axis names one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Transform returns m·v.
func (m Mat3) Transform(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	var i, j, k int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			for k = 0; k < 3; k++ {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}

	return r
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	var r Mat3
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}

	return r
}

// Transform returns m·v. It is the method form of Mat3.Transform.
func (v Vec3) Transform(m Mat3) Vec3 { return m.Transform(v) }

// XRotation returns the right-handed rotation matrix about +X.
func XRotation(a s1.Angle) Mat3 {
	s, c := math.Sincos(a.Radians())
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// YRotation returns the right-handed rotation matrix about +Y.
func YRotation(a s1.Angle) Mat3 {
	s, c := math.Sincos(a.Radians())
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// ZRotation returns the right-handed rotation matrix about +Z.
// With +Z down this turns north towards east, i.e. it adds to declination.
func ZRotation(a s1.Angle) Mat3 {
	s, c := math.Sincos(a.Radians())
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// RotX rotates v about the X axis.
func (v Vec3) RotX(a s1.Angle) Vec3 { return XRotation(a).Transform(v) }

// RotY rotates v about the Y axis.
func (v Vec3) RotY(a s1.Angle) Vec3 { return YRotation(a).Transform(v) }

// RotZ rotates v about the Z axis.
func (v Vec3) RotZ(a s1.Angle) Vec3 { return ZRotation(a).Transform(v) }

// AddDec returns v with a added to its declination.
func (v Vec3) AddDec(a s1.Angle) Vec3 { return v.RotZ(a) }

// Rot180 rotates v by half a turn about the given axis. Rotating about X
// corrects a specimen measured back-to-front in the magnetometer.
func (v Vec3) Rot180(axis Axis) Vec3 {
	switch axis {
	case AxisX:
		return Vec3{v.X, -v.Y, -v.Z}
	case AxisY:
		return Vec3{-v.X, v.Y, -v.Z}
	case AxisZ:
		return Vec3{-v.X, -v.Y, v.Z}
	}

	return v
}

// SampleCorrectionMatrix returns the matrix that rotates specimen
// co-ordinates into geographic co-ordinates for a sample with the given
// azimuth and dip.
func SampleCorrectionMatrix(az, dip s1.Angle) Mat3 {
	sa, ca := math.Sincos(az.Radians())
	sd, cd := math.Sincos(dip.Radians())
	return Mat3{
		{sd * ca, -sa, cd * ca},
		{sd * sa, ca, cd * sa},
		{-cd, 0, sd},
	}
}

// FormationCorrectionMatrix returns the matrix that untilts geographic
// co-ordinates for a bed with the given dip azimuth and dip.
func FormationCorrectionMatrix(az, dip s1.Angle) Mat3 {
	sa, ca := math.Sincos(az.Radians())
	sd, cd := math.Sincos(dip.Radians())

	return planeCorrection(sd, sa, cd, ca)
}

// planeCorrection rotates by the dip about the horizontal strike line.
func planeCorrection(sd, sa, cd, ca float64) Mat3 {
	return Mat3{
		{ca*cd*ca + sa*sa, cd*sa*ca - sa*ca, sd * ca},
		{sa*cd*ca - ca*sa, cd*sa*sa + ca*ca, sd * sa},
		{-ca * sd, -sa * sd, cd},
	}
}

// CorrectSample applies the sample orientation correction.
func (v Vec3) CorrectSample(az, dip s1.Angle) Vec3 {
	return SampleCorrectionMatrix(az, dip).Transform(v)
}

// CorrectFormation applies the bedding (tilt) correction.
func (v Vec3) CorrectFormation(az, dip s1.Angle) Vec3 {
	return FormationCorrectionMatrix(az, dip).Transform(v)
}
