// SPDX-License-Identifier: MIT
package pca_test

import (
	"fmt"

	"github.com/katalvlaran/pmag/pca"
	"github.com/katalvlaran/pmag/vec3"
)

// ExampleFit fits an anchored line to a decaying single-component signal.
// The returned direction points along the removed component.
func ExampleFit() {
	comp := vec3.FromPolarDegrees(1, 30, 200)
	var pts []vec3.Vec3
	for _, f := range []float64{1, 0.8, 0.55, 0.3, 0.1} {
		pts = append(pts, comp.Scale(f))
	}
	r, err := pca.Fit(pts, true)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("dec=%.1f inc=%.1f MAD3=%.1f\n",
		r.Direction.Dec().Degrees(), r.Direction.Inc().Degrees(), r.MAD3.Degrees())
	// Output:
	// dec=200.0 inc=30.0 MAD3=0.0
}
