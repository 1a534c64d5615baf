// SPDX-License-Identifier: MIT

package vgp

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/katalvlaran/pmag/fisher"
	"github.com/katalvlaran/pmag/vec3"
)

// VGP is a virtual geomagnetic pole with its confidence oval.
type VGP struct {
	// Pole is the pole position; its longitude lies in [0, 2π).
	Pole s2.LatLng
	// Dp and Dm are the semi-axes of the confidence oval, along and across
	// the site–pole great circle.
	Dp, Dm s1.Angle
}

// LongitudeDegrees returns the pole longitude in [0°, 360°).
func (v VGP) LongitudeDegrees() float64 { return v.Pole.Lng.Degrees() }

// LatitudeDegrees returns the pole latitude.
func (v VGP) LatitudeDegrees() float64 { return v.Pole.Lat.Degrees() }

// Calculate returns the VGP for a mean direction with confidence cone a95
// observed at site.
// Implementation:
//   - Stage 1: Magnetic colatitude p = atan2(2, tan I).
//   - Stage 2: Pole latitude λp = asin(sin λs cos p + cos λs sin p cos D).
//   - Stage 3: β = asin(sin p sin D / cos λp); φp = φs + β when
//     cos p ≥ sin λs sin λp, else φs + π − β.
//   - Stage 4: dp = α95(1 + 3cos²p)/2, dm = α95 sin p / cos I.
//
// Errors:
//   - ErrZeroDirection if direction is the zero vector.
//   - ErrInvalidSite for an out-of-range or non-finite site.
func Calculate(direction vec3.Vec3, a95 s1.Angle, site s2.LatLng) (VGP, error) {
	if direction.IsZero() {
		return VGP{}, vgpErrorf(opCalculate, ErrZeroDirection)
	}
	if !validSite(site) {
		return VGP{}, vgpErrorf(opCalculate, ErrInvalidSite)
	}

	dec := direction.Dec().Radians()
	inc := direction.Inc().Radians()
	slat, slng := site.Lat.Radians(), site.Lng.Radians()

	p := math.Atan2(2, math.Tan(inc))
	sinP, cosP := math.Sincos(p)
	plat := math.Asin(clampUnit(math.Sin(slat)*cosP + math.Cos(slat)*sinP*math.Cos(dec)))
	beta := math.Asin(clampUnit(sinP * math.Sin(dec) / math.Cos(plat)))

	plng := slng + beta
	if cosP < math.Sin(slat)*math.Sin(plat) {
		plng = slng + math.Pi - beta
	}
	plng = math.Mod(plng, 2*math.Pi)
	if plng < 0 {
		plng += 2 * math.Pi
	}

	return VGP{
		Pole: s2.LatLng{Lat: s1.Angle(plat), Lng: s1.Angle(plng)},
		Dp:   a95 * s1.Angle((1+3*cosP*cosP)/2),
		Dm:   a95 * s1.Angle(sinP/math.Cos(inc)),
	}, nil
}

// FromParams computes the VGP of a directional mean such as fisher.Result
// or greatcircle.SetResult.
func FromParams(p fisher.Params, site s2.LatLng) (VGP, error) {
	v, err := Calculate(p.MeanDirection(), p.Alpha95(), site)
	if err != nil {
		return VGP{}, vgpErrorf(opFromParams, err)
	}

	return v, nil
}

func validSite(site s2.LatLng) bool {
	lat, lng := float64(site.Lat), float64(site.Lng)
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}

	return math.Abs(lat) <= math.Pi/2
}

func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
