// SPDX-License-Identifier: MIT

package vec3

// Sum returns the vector sum of vs. The sum of no vectors is the origin.
func Sum(vs []Vec3) Vec3 {
	var s Vec3
	for _, v := range vs {
		s = s.Add(v)
	}

	return s
}

// Mean returns the arithmetic mean of vs, or the origin for an empty slice.
func Mean(vs []Vec3) Vec3 {
	if len(vs) == 0 {
		return Origin
	}

	return Sum(vs).Scale(1 / float64(len(vs)))
}

// MeanDirection returns the unit vector along the sum of the unit vectors
// of vs. Magnitudes are discarded before summing.
func MeanDirection(vs []Vec3) Vec3 {
	var s Vec3
	for _, v := range vs {
		s = s.Add(v.Normalize())
	}

	return s.Normalize()
}

// NormalizeAll returns a new slice holding the unit vector of each element.
func NormalizeAll(vs []Vec3) []Vec3 {
	out := make([]Vec3, len(vs))
	for i, v := range vs {
		out[i] = v.Normalize()
	}

	return out
}
