// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded random matrices) for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/katalvlaran/berreman/matrix"
)

// randomMat4 RETURNS a 4×4 matrix with entries uniform in [−1,1]+i[−1,1].
// Deterministic for a given seed.
func randomMat4(seed int64) matrix.Mat4 {
	rng := rand.New(rand.NewSource(seed))
	var m matrix.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
		}
	}

	return m
}

// isotropicDelta RETURNS the Berreman generator of an isotropic medium with
// permittivity eps at reduced wavenumber kx (two doubly repeated eigenvalues).
func isotropicDelta(eps complex128, kx float64) matrix.Mat4 {
	k2 := complex(kx*kx, 0)

	return matrix.Mat4{
		{0, 0, 0, 1 - k2/eps},
		{0, 0, -1, 0},
		{0, k2 - eps, 0, 0},
		{eps, 0, 0, 0},
	}
}

// requireClose4 FAILS the test unless a ≈ b element-wise within atol.
func requireClose4(t testing.TB, want, got matrix.Mat4, atol float64) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if d := cmplx.Abs(want[i][j] - got[i][j]); d > atol {
				t.Fatalf("[%d,%d]: want %v, got %v (|Δ|=%.3g > %.3g)", i, j, want[i][j], got[i][j], d, atol)
			}
		}
	}
}
