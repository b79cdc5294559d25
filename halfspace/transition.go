// SPDX-License-Identifier: MIT

package halfspace

import (
	"fmt"

	"github.com/katalvlaran/berreman/delta"
	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
)

const opHalfspace = "halfspace"

// Modes describes a half-space at one wavelength sample.
type Modes struct {
	// L holds the mode fields as columns (s+, s−, p+, p−).
	L matrix.Mat4

	// Li is L⁻¹.
	Li matrix.Mat4

	// Q holds the normal wavevector components Kz of the modes.
	Q [4]complex128

	// Isotropic reports whether the closed form was used.
	Isotropic bool
}

// Transition returns the modes of a half-space with tensor t at reduced
// wavenumber kx. Isotropic tensors (within the configured epsilon) use the
// closed form unless WithForceGeneral is set; all others go through General.
//
// Errors:
//   - optics.ErrDegenerateGeometry (grazing incidence, ε₂₂ = 0).
//   - optics.ErrUnstableDiagonalization (general route, singular L).
func Transition(kx float64, t optics.Tensor, opts ...Option) (Modes, error) {
	o := gatherOptions(opts...)
	if !o.forceGeneral && t.IsIsotropic(o.eps) {
		l, li, err := Isotropic(kx, t)
		if err != nil {
			return Modes{}, err
		}
		kz := l[3][PPlus] * l[0][PPlus] // n·c

		return Modes{L: l, Li: li, Q: [4]complex128{kz, -kz, kz, -kz}, Isotropic: true}, nil
	}

	d, err := delta.BuildOne(kx, t)
	if err != nil {
		return Modes{}, err
	}
	l, q, err := General(d, opts...)
	if err != nil {
		return Modes{}, err
	}
	li, err := matrix.Inverse4(l)
	if err != nil {
		return Modes{}, fmt.Errorf("%w: %w", optics.ErrUnstableDiagonalization, err)
	}

	return Modes{L: l, Li: li, Q: q}, nil
}

// Transitions evaluates Transition for every sample. Failures are wrapped
// in an *optics.SampleError naming the sample and wavelength.
func Transitions(kx []float64, ts []optics.Tensor, lambda []float64, opts ...Option) ([]Modes, error) {
	if len(kx) != len(ts) || len(ts) != len(lambda) {
		return nil, fmt.Errorf("%s: %d/%d/%d samples: %w", opHalfspace, len(kx), len(ts), len(lambda), optics.ErrLengthMismatch)
	}
	out := make([]Modes, len(ts))
	var err error
	for i := range ts {
		if out[i], err = Transition(kx[i], ts[i], opts...); err != nil {
			return nil, &optics.SampleError{Op: opHalfspace, Sample: i, Layer: optics.NoLayer, Wavelength: lambda[i], Err: err}
		}
	}

	return out, nil
}
