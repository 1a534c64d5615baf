package vec3_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pmag/vec3"
)

const tol = 1e-12

func deg(d float64) s1.Angle { return s1.Angle(d) * s1.Degree }

// TestPolarRoundTrip verifies that FromPolarDegrees and Dec/Inc agree.
func TestPolarRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name     string
		inc, dec float64
	}{
		{"NE-down", 45, 25},
		{"SW-up", -30, 225},
		{"west-horizontal", 0, 270},
		{"near-vertical", 89.5, 10},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v := vec3.FromPolarDegrees(2.5, tc.inc, tc.dec)
			assert.InDelta(t, 2.5, v.Norm(), tol)
			assert.InDelta(t, tc.inc, v.Inc().Degrees(), 1e-9)
			assert.InDelta(t, tc.dec, v.Dec().Degrees(), 1e-9)
		})
	}
}

// TestDecRange checks that declination is mapped into [0, 2π).
func TestDecRange(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 270.0, vec3.New(0, -1, 0).Dec().Degrees(), tol)
	assert.InDelta(t, 0.0, vec3.New(1, 0, 0).Dec().Degrees(), tol)
	assert.InDelta(t, 180.0, vec3.New(-1, 0, 0).Dec().Degrees(), tol)
	assert.InDelta(t, 90.0, vec3.Down.Inc().Degrees(), tol)
}

// TestNormalizeIdempotent checks normalize(normalize(v)) == normalize(v).
func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	for _, v := range []vec3.Vec3{
		vec3.New(3, 4, 12),
		vec3.New(-1e-8, 2e-8, 7e-9),
		vec3.New(1e8, -3e7, 2),
	} {
		n1 := v.Normalize()
		n2 := n1.Normalize()
		assert.True(t, n1.ApproxEqual(n2, tol), "%v vs %v", n1, n2)
		assert.True(t, n1.IsUnit())
	}
	assert.Equal(t, vec3.Origin, vec3.Origin.Normalize(), "zero stays zero")
}

// TestAngleTo covers the clamped acos and its sign-free range.
func TestAngleTo(t *testing.T) {
	t.Parallel()

	a := vec3.New(1, 1e-9, 0)
	ang := a.AngleTo(a)
	assert.False(t, math.IsNaN(ang.Radians()), "parallel vectors must not give NaN")
	assert.InDelta(t, 0, ang.Radians(), 1e-7)

	assert.InDelta(t, 90.0, vec3.North.AngleTo(vec3.East).Degrees(), tol)
	assert.InDelta(t, 180.0, vec3.North.AngleTo(vec3.North.Invert()).Degrees(), 1e-6)
	assert.InDelta(t, 45.0, vec3.North.AngleTo(vec3.New(5, 5, 0)).Degrees(), 1e-9)
}

// TestSignedAngleTo checks the sign convention of SignedAngleTo.
func TestSignedAngleTo(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 90.0, vec3.North.SignedAngleTo(vec3.East).Degrees(), 1e-9)
	assert.InDelta(t, -90.0, vec3.East.SignedAngleTo(vec3.North).Degrees(), 1e-9)
	// cross has zero z; sign comes from y
	assert.InDelta(t, -90.0, vec3.North.SignedAngleTo(vec3.Down).Degrees(), 1e-9)
	assert.Equal(t, s1.Angle(0), vec3.North.SignedAngleTo(vec3.North))
}

// TestSameHemisphere: z > 0 is lower, the horizontal plane is upper.
func TestSameHemisphere(t *testing.T) {
	t.Parallel()

	assert.True(t, vec3.Down.SameHemisphere(vec3.New(3, -1, 0.2)))
	assert.False(t, vec3.Down.SameHemisphere(vec3.Down.Invert()))
	assert.False(t, vec3.Down.SameHemisphere(vec3.North))
	assert.True(t, vec3.North.SameHemisphere(vec3.New(0, 1, -2)))
	assert.True(t, vec3.East.SameHemisphere(vec3.North))
}

// TestRotations checks the three axis rotations on basis vectors.
func TestRotations(t *testing.T) {
	t.Parallel()

	assert.True(t, vec3.North.RotZ(deg(90)).ApproxEqual(vec3.East, tol))
	assert.True(t, vec3.North.RotY(deg(90)).ApproxEqual(vec3.New(0, 0, -1), tol))
	assert.True(t, vec3.East.RotX(deg(90)).ApproxEqual(vec3.Down, tol))

	v := vec3.FromPolarDegrees(1, 30, 100)
	w := v.AddDec(deg(50))
	assert.InDelta(t, 150.0, w.Dec().Degrees(), 1e-9)
	assert.InDelta(t, 30.0, w.Inc().Degrees(), 1e-9)
}

// TestRot180 checks half-turns about each axis.
func TestRot180(t *testing.T) {
	t.Parallel()

	v := vec3.New(1, 2, 3)
	assert.Equal(t, vec3.New(1, -2, -3), v.Rot180(vec3.AxisX))
	assert.Equal(t, vec3.New(-1, 2, -3), v.Rot180(vec3.AxisY))
	assert.Equal(t, vec3.New(-1, -2, 3), v.Rot180(vec3.AxisZ))
	assert.Equal(t, v, v.Rot180(vec3.Axis(7)))
}

// TestMat3 checks products and transposes of rotation matrices.
func TestMat3(t *testing.T) {
	t.Parallel()

	r := vec3.ZRotation(deg(37)).Mul(vec3.YRotation(deg(-12)))
	id := r.Mul(r.Transpose())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, vec3.Identity[i][j], id[i][j], tol)
		}
	}
	v := vec3.New(0.3, -0.2, 0.9)
	assert.True(t, v.Transform(vec3.Identity).ApproxEqual(v, 0))
}

// TestCorrections checks sample and formation corrections on simple cases.
func TestCorrections(t *testing.T) {
	t.Parallel()

	// A vertical sample with zero azimuth leaves specimen axes unchanged.
	v := vec3.New(0.2, 0.5, -0.7)
	assert.True(t, v.CorrectSample(0, deg(90)).ApproxEqual(v, tol))

	// A direction lying down the dip of a northward-dipping bed restores to horizontal.
	d := vec3.FromPolarDegrees(1, 30, 0)
	h := d.CorrectFormation(0, deg(30))
	assert.InDelta(t, 0.0, h.Inc().Degrees(), 1e-9)
	assert.InDelta(t, 0.0, h.Dec().Degrees(), 1e-9)

	// Corrections are rotations: length is preserved.
	u := vec3.New(1, -2, 2)
	assert.InDelta(t, 3.0, u.CorrectSample(deg(123), deg(47)).Norm(), 1e-12)
	assert.InDelta(t, 3.0, u.CorrectFormation(deg(211), deg(18)).Norm(), 1e-12)
}

// TestNearestOnGreatCircle checks projection onto a circle, including the
// degenerate pole-parallel case.
func TestNearestOnGreatCircle(t *testing.T) {
	t.Parallel()

	got := vec3.NearestOnGreatCircle(vec3.Down, vec3.New(1, 0, 1))
	assert.True(t, got.ApproxEqual(vec3.North, tol), "got %v", got)

	got = vec3.NearestOnGreatCircle(vec3.Down.Scale(4), vec3.Down)
	assert.True(t, got.ApproxEqual(vec3.North, tol), "got %v", got)

	got = vec3.NearestOnGreatCircle(vec3.North, vec3.North)
	assert.True(t, got.ApproxEqual(vec3.East, tol), "got %v", got)

	pole := vec3.New(1, 2, -1).Normalize()
	p := vec3.NearestOnGreatCircle(pole, vec3.New(-3, 0.5, 2))
	assert.InDelta(t, 0, p.Dot(pole), tol)
	assert.True(t, p.IsUnit())
}

// TestStrikeDip checks plane attitude from its pole.
func TestStrikeDip(t *testing.T) {
	t.Parallel()

	up := vec3.New(0, 0, -1)
	assert.InDelta(t, 0.0, up.Dip().Degrees(), tol)

	pole := vec3.FromPolarDegrees(1, -45, 0)
	assert.InDelta(t, 45.0, pole.Dip().Degrees(), 1e-9)
	assert.InDelta(t, 270.0, pole.Strike().Degrees(), 1e-9)

	// The downward pole describes the same plane.
	assert.InDelta(t, 45.0, pole.Invert().Dip().Degrees(), 1e-9)
	assert.InDelta(t, 270.0, pole.Invert().Strike().Degrees(), 1e-9)
}

// TestCollections covers Sum, Mean, and MeanDirection.
func TestCollections(t *testing.T) {
	t.Parallel()

	vs := []vec3.Vec3{vec3.New(2, 0, 0), vec3.New(0, 4, 0), vec3.New(1, 2, 3)}
	assert.Equal(t, vec3.New(3, 6, 3), vec3.Sum(vs))
	assert.True(t, vec3.New(1, 2, 1).ApproxEqual(vec3.Mean(vs), tol))
	assert.Equal(t, vec3.Origin, vec3.Mean(nil))

	md := vec3.MeanDirection([]vec3.Vec3{vec3.New(10, 0, 0), vec3.New(0, 0.1, 0)})
	assert.InDelta(t, 45.0, md.Dec().Degrees(), 1e-9)
	require.True(t, md.IsUnit())

	ns := vec3.NormalizeAll(vs)
	require.Len(t, ns, 3)
	for _, n := range ns {
		assert.True(t, n.IsUnit())
	}
}

// TestR3Conversion ensures the r3 bridge is lossless.
func TestR3Conversion(t *testing.T) {
	t.Parallel()

	v := vec3.New(1.5, -2, 7)
	assert.Equal(t, v, vec3.FromR3(v.R3()))
	assert.True(t, v.IsFinite())
	assert.False(t, vec3.New(math.NaN(), 0, 0).IsFinite())
}
