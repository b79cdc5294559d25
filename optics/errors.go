// SPDX-License-Identifier: MIT

package optics

import (
	"errors"
	"fmt"
)

// Numeric failure taxonomy. All are local, data-dependent and never retried.
var (
	// ErrDegenerateGeometry indicates ε₂₂ = 0 while building a Delta matrix,
	// or an exactly grazing (cos Φ = 0) isotropic half-space.
	ErrDegenerateGeometry = errors.New("optics: degenerate geometry")

	// ErrSingularTransfer indicates that the 2×2 transmission block of the
	// transfer matrix is not invertible.
	ErrSingularTransfer = errors.New("optics: singular transfer block")

	// ErrNormalization indicates r_ss = 0, so the ellipsometric ratio cannot be formed.
	ErrNormalization = errors.New("optics: zero r_ss normalization")

	// ErrUnstableDiagonalization indicates a Delta matrix that is not
	// (numerically) diagonalizable.
	ErrUnstableDiagonalization = errors.New("optics: unstable diagonalization")
)

// Input validation.
var (
	// ErrEmptyWavelengths indicates an empty wavelength array.
	ErrEmptyWavelengths = errors.New("optics: empty wavelength array")

	// ErrNonPositiveWavelength indicates a wavelength ≤ 0 or non-finite.
	ErrNonPositiveWavelength = errors.New("optics: wavelength must be finite and > 0")

	// ErrLengthMismatch indicates per-sample arrays of different lengths.
	ErrLengthMismatch = errors.New("optics: per-sample length mismatch")

	// ErrAnisotropicFront indicates an anisotropic incidence medium: the
	// reduced wavenumber needs a scalar refractive index.
	ErrAnisotropicFront = errors.New("optics: front half-space must be isotropic")

	// ErrInvalidAngle indicates a non-finite incidence angle or |θ| ≥ 90°.
	ErrInvalidAngle = errors.New("optics: invalid incidence angle")
)

// NoLayer marks a SampleError that is not tied to a stack layer
// (half-spaces, result extraction).
const NoLayer = -1

// SampleError attaches the failing operation, sample index, layer index and
// wavelength to an underlying error. errors.Is/As see through it.
type SampleError struct {
	Op         string  // failing operation, e.g. "delta", "halfspace", "jones"
	Sample     int     // wavelength sample index
	Layer      int     // layer index in the stack, NoLayer when not applicable
	Wavelength float64 // wavelength of the sample, 0 when unknown
	Err        error
}

func (e *SampleError) Error() string {
	if e.Layer == NoLayer {
		return fmt.Sprintf("%s: sample %d (λ=%g): %v", e.Op, e.Sample, e.Wavelength, e.Err)
	}

	return fmt.Sprintf("%s: layer %d, sample %d (λ=%g): %v", e.Op, e.Layer, e.Sample, e.Wavelength, e.Err)
}

func (e *SampleError) Unwrap() error {
	return e.Err
}

// AtSample wraps err for sample i with no layer or wavelength information.
func AtSample(op string, i int, err error) error {
	return &SampleError{Op: op, Sample: i, Layer: NoLayer, Err: err}
}

// WithContext returns err enriched with layer and wavelength information:
// an existing *SampleError is copied and completed, anything else is
// returned unchanged.
func WithContext(err error, layer int, lambda []float64) error {
	var se *SampleError
	if !errors.As(err, &se) {
		return err
	}
	out := *se
	if out.Layer == NoLayer {
		out.Layer = layer
	}
	if out.Wavelength == 0 && out.Sample >= 0 && out.Sample < len(lambda) {
		out.Wavelength = lambda[out.Sample]
	}

	return &out
}
