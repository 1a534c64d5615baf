// SPDX-License-Identifier: MIT
package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/pmag/tensor"
	"github.com/katalvlaran/pmag/vec3"
)

// ExampleFromVectors decomposes the orientation tensor of a flat-lying
// set of directions: the minor axis is the plane's pole.
func ExampleFromVectors() {
	vs := []vec3.Vec3{
		vec3.FromPolarDegrees(1, 0, 10),
		vec3.FromPolarDegrees(1, 0, 70),
		vec3.FromPolarDegrees(1, 0, 130),
		vec3.FromPolarDegrees(1, 0, 200),
	}
	e, err := tensor.FromVectors(vs, true)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("|inc(minor)|=%.1f λmin=%.3f MAD1=%.1f\n",
		abs(e.Minor().Inc().Degrees()), e.Values[2], e.MAD1().Degrees())
	// Output:
	// |inc(minor)|=90.0 λmin=0.000 MAD1=0.0
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
