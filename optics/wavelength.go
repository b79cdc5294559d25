// SPDX-License-Identifier: MIT

package optics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// K0 returns the vacuum wavenumber 2π/λ.
func K0(lambda float64) float64 {
	return 2 * math.Pi / lambda
}

// Wavelengths returns n evenly spaced samples from lo to hi inclusive.
// n = 1 yields [lo]. Panics on n < 1 (programmer error), like floats.Span.
func Wavelengths(lo, hi float64, n int) []float64 {
	if n < 1 {
		panic("optics: Wavelengths: n must be ≥ 1")
	}
	if n == 1 {
		return []float64{lo}
	}

	return floats.Span(make([]float64, n), lo, hi)
}

// ValidateWavelengths rejects empty arrays and non-positive or non-finite samples.
func ValidateWavelengths(lambda []float64) error {
	if len(lambda) == 0 {
		return ErrEmptyWavelengths
	}
	for i, l := range lambda {
		if math.IsNaN(l) || math.IsInf(l, 0) || l <= 0 {
			return fmt.Errorf("sample %d (λ=%g): %w", i, l, ErrNonPositiveWavelength)
		}
	}

	return nil
}

// ReducedWavenumbers returns Kx = Re(n_i)·sin θ for each sample, where n_i is
// the refractive index of the (isotropic) front medium.
//
// Errors:
//   - ErrInvalidAngle for non-finite θ or |θ| ≥ 90°.
//   - ErrAnisotropicFront (in a SampleError) when a front tensor is not isotropic within eps.
func ReducedWavenumbers(front []Tensor, angleDeg, eps float64) ([]float64, error) {
	if math.IsNaN(angleDeg) || math.IsInf(angleDeg, 0) || math.Abs(angleDeg) >= 90 {
		return nil, fmt.Errorf("θ=%g: %w", angleDeg, ErrInvalidAngle)
	}
	sin := math.Sin(angleDeg * math.Pi / 180)
	kx := make([]float64, len(front))
	for i, t := range front {
		if !t.IsIsotropic(eps) {
			return nil, AtSample("kx", i, ErrAnisotropicFront)
		}
		kx[i] = real(t.Index()) * sin
	}

	return kx, nil
}

// ReducedWavenumber returns Kx = n·sin θ for a real front index n.
func ReducedWavenumber(n, angleDeg float64) float64 {
	return n * math.Sin(angleDeg*math.Pi/180)
}
