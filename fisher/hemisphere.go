// SPDX-License-Identifier: MIT

package fisher

import "github.com/katalvlaran/pmag/vec3"

// Means holds Fisher statistics over a whole set and over its two
// hemispheres. A nil entry means the corresponding subset was empty.
type Means struct {
	All   *Result
	Upper *Result // z ≤ 0
	Lower *Result // z > 0
}

// HemisphereMeans splits dirs into upper (z ≤ 0) and lower (z > 0)
// hemisphere subsets and computes Fisher statistics for each and for the
// whole set.
func HemisphereMeans(dirs []vec3.Vec3) Means {
	var upper, lower []vec3.Vec3
	for _, d := range dirs {
		if d.SameHemisphere(vec3.Down) {
			lower = append(lower, d)
		} else {
			upper = append(upper, d)
		}
	}

	return Means{
		All:   calculateOrNil(dirs),
		Upper: calculateOrNil(upper),
		Lower: calculateOrNil(lower),
	}
}

func calculateOrNil(dirs []vec3.Vec3) *Result {
	r, err := Calculate(dirs)
	if err != nil {
		return nil
	}

	return &r
}
