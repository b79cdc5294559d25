// SPDX-License-Identifier: MIT
package propagator_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/berreman/delta"
	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
)

// randomDeltas RETURNS n Delta matrices of weakly absorbing biaxial media
// with random orientation and Kx ∈ [0, 1). Deterministic for a given seed.
func randomDeltas(t testing.TB, seed int64, n int) []matrix.Mat4 {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	out := make([]matrix.Mat4, n)
	for i := range out {
		eps := optics.Diagonal(
			complex(2+rng.Float64(), 0.01*rng.Float64()),
			complex(2+rng.Float64(), 0.01*rng.Float64()),
			complex(2+rng.Float64(), 0.01*rng.Float64()),
		).Rotate(optics.Euler(360*rng.Float64(), 180*rng.Float64(), 360*rng.Float64()))
		d, err := delta.BuildOne(rng.Float64(), eps)
		require.NoError(t, err)
		out[i] = d
	}

	return out
}

// grid RETURNS n wavelengths spread over the visible range.
func grid(n int) []float64 {
	return optics.Wavelengths(400, 800, n)
}

// maxDiff RETURNS the largest entry-wise |a−b| over all samples.
func maxDiff(a, b []matrix.Mat4) float64 {
	var m float64
	for s := range a {
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				if d := cmplx.Abs(a[s][i][j] - b[s][i][j]); d > m {
					m = d
				}
			}
		}
	}

	return m
}
