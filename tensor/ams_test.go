// SPDX-License-Identifier: MIT
package tensor_test

import (
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pmag/tensor"
	"github.com/katalvlaran/pmag/vec3"
)

// TestNewAMS_Uncorrected checks the principal axes of a diagonal tensor.
func TestNewAMS_Uncorrected(t *testing.T) {
	t.Parallel()

	a, err := tensor.NewAMS(tensor.Components{K11: 1.02, K22: 1.00, K33: 0.98}, nil)
	require.NoError(t, err)
	assertSameAxis(t, vec3.North, a.Axis(0), 1e-12)
	assertSameAxis(t, vec3.East, a.Axis(1), 1e-12)
	assertSameAxis(t, vec3.Down, a.Axis(2), 1e-12)
	assert.Equal(t, "1.02000 1.00000 0.98000 0.00000 0.00000 0.00000", a.Components.String())
}

// TestNewAMS_Corrected checks that correction matrices rotate the axes the
// same way they rotate vectors.
func TestNewAMS_Corrected(t *testing.T) {
	t.Parallel()

	c := tensor.Components{K11: 1.05, K22: 0.99, K33: 0.96, K12: 0.01, K23: -0.005, K13: 0.002}
	sample := vec3.SampleCorrectionMatrix(40*s1.Degree, 65*s1.Degree)
	form := vec3.FormationCorrectionMatrix(120*s1.Degree, 20*s1.Degree)

	raw, err := tensor.NewAMS(c, nil)
	require.NoError(t, err)
	corr, err := tensor.NewAMS(c, []vec3.Mat3{sample, form})
	require.NoError(t, err)

	for k := 0; k < 3; k++ {
		want := raw.Axis(k).CorrectSample(40*s1.Degree, 65*s1.Degree).
			CorrectFormation(120*s1.Degree, 20*s1.Degree)
		assertSameAxis(t, want, corr.Axis(k), 1e-9)
		assert.InDelta(t, raw.Axes.Values[k], corr.Axes.Values[k], 1e-12)
	}

	// Rotation preserves the trace.
	assert.InDelta(t, c.K11+c.K22+c.K33,
		corr.Components.K11+corr.Components.K22+corr.Components.K33, 1e-12)
}

// TestNewAMS_Error propagates decomposition errors.
func TestNewAMS_Error(t *testing.T) {
	t.Parallel()

	_, err := tensor.NewAMS(tensor.Components{K11: 1, K12: 0.3, K13: 0.2, K22: 2, K23: 0.1, K33: 3}, nil,
		tensor.WithMaxRotations(1))
	assert.ErrorIs(t, err, tensor.ErrEigenFailed)
}
