// SPDX-License-Identifier: MIT

package delta

import (
	"fmt"

	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
)

const opDelta = "delta"

// BuildOne returns Δ for a single sample.
//
//	row 0: (−Kx·ε₂₀/ε₂₂, −Kx·ε₂₁/ε₂₂, 0, 1 − Kx²/ε₂₂)
//	row 1: (0, 0, −1, 0)
//	row 2: (ε₁₂·ε₂₀/ε₂₂ − ε₁₀, Kx² − ε₁₁ + ε₁₂·ε₂₁/ε₂₂, 0, Kx·ε₁₂/ε₂₂)
//	row 3: (ε₀₀ − ε₀₂·ε₂₀/ε₂₂, ε₀₁ − ε₀₂·ε₂₁/ε₂₂, 0, −Kx·ε₀₂/ε₂₂)
//
// Errors:
//   - optics.ErrDegenerateGeometry when ε₂₂ = 0.
//   - matrix.ErrNaNInf for a non-finite tensor or Kx.
func BuildOne(kx float64, eps optics.Tensor) (matrix.Mat4, error) {
	if !eps.IsFinite() || !matrix.IsFinite(complex(kx, 0)) {
		return matrix.Mat4{}, matrix.ErrNaNInf
	}
	e22 := eps[2][2]
	if e22 == 0 {
		return matrix.Mat4{}, optics.ErrDegenerateGeometry
	}

	k := complex(kx, 0)
	k2 := k * k

	return matrix.Mat4{
		{-k * eps[2][0] / e22, -k * eps[2][1] / e22, 0, 1 - k2/e22},
		{0, 0, -1, 0},
		{eps[1][2]*eps[2][0]/e22 - eps[1][0], k2 - eps[1][1] + eps[1][2]*eps[2][1]/e22, 0, k * eps[1][2] / e22},
		{eps[0][0] - eps[0][2]*eps[2][0]/e22, eps[0][1] - eps[0][2]*eps[2][1]/e22, 0, -k * eps[0][2] / e22},
	}, nil
}

// Build returns one Δ per wavelength sample. kx and eps are per-sample
// arrays of equal length.
//
// Errors:
//   - optics.ErrLengthMismatch when len(kx) != len(eps).
//   - BuildOne failures, wrapped in an *optics.SampleError naming the sample.
func Build(kx []float64, eps []optics.Tensor) ([]matrix.Mat4, error) {
	if len(kx) != len(eps) {
		return nil, fmt.Errorf("%s: %d wavenumbers for %d tensors: %w", opDelta, len(kx), len(eps), optics.ErrLengthMismatch)
	}
	out := make([]matrix.Mat4, len(eps))
	var err error
	for i := range eps {
		if out[i], err = BuildOne(kx[i], eps[i]); err != nil {
			return nil, optics.AtSample(opDelta, i, err)
		}
	}

	return out, nil
}
