// SPDX-License-Identifier: MIT

package solver

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/berreman/matrix"
)

// Polarization is an incident polarization state.
type Polarization interface {
	// Coherency returns the 2×2 coherency matrix ⟨E·Eᴴ⟩ in (p, s) order.
	Coherency() matrix.Mat2
	// Stokes returns (S0, S1, S2, S3).
	Stokes() StokesVector
}

// JonesVector is a fully polarized state (Ep, Es).
type JonesVector [2]complex128

// StokesVector is (S0, S1, S2, S3) with S1 = |Ep|² − |Es|²,
// S2 = 2·Re(Ep·Es*), S3 = −2·Im(Ep·Es*).
type StokesVector [4]float64

// Linear45 is the default incident polarization: p = s = 1/√2.
var Linear45 = JonesVector{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)}

// Coherency implements Polarization.
func (j JonesVector) Coherency() matrix.Mat2 {
	return matrix.Mat2{
		{j[0] * cmplx.Conj(j[0]), j[0] * cmplx.Conj(j[1])},
		{j[1] * cmplx.Conj(j[0]), j[1] * cmplx.Conj(j[1])},
	}
}

// Stokes implements Polarization.
func (j JonesVector) Stokes() StokesVector {
	pp := real(j[0] * cmplx.Conj(j[0]))
	ss := real(j[1] * cmplx.Conj(j[1]))
	ps := j[0] * cmplx.Conj(j[1])

	return StokesVector{pp + ss, pp - ss, 2 * real(ps), -2 * imag(ps)}
}

// Coherency implements Polarization.
func (s StokesVector) Coherency() matrix.Mat2 {
	return matrix.Mat2{
		{complex((s[0]+s[1])/2, 0), complex(s[2]/2, -s[3]/2)},
		{complex(s[2]/2, s[3]/2), complex((s[0]-s[1])/2, 0)},
	}
}

// Stokes implements Polarization.
func (s StokesVector) Stokes() StokesVector { return s }

// Degree returns the degree of polarization √(S1²+S2²+S3²)/S0.
func (s StokesVector) Degree() float64 {
	if s[0] == 0 {
		return 0
	}

	return math.Sqrt(s[1]*s[1]+s[2]*s[2]+s[3]*s[3]) / s[0]
}

// Jones returns a Jones vector with real, non-negative Ep describing s.
// ErrPartialPolarization unless the degree of polarization is 1 within tol.
func (s StokesVector) Jones(tol float64) (JonesVector, error) {
	if s[0] <= 0 {
		return JonesVector{}, ErrInvalidPolarization
	}
	if math.Abs(s.Degree()-1) > tol {
		return JonesVector{}, ErrPartialPolarization
	}
	ep := math.Sqrt(math.Max(0, (s[0]+s[1])/2))
	if ep == 0 {
		return JonesVector{0, complex(math.Sqrt(s[0]), 0)}, nil
	}

	return JonesVector{complex(ep, 0), complex(s[2], s[3]) / complex(2*ep, 0)}, nil
}

// jonesOf returns the Jones vector behind p.
func jonesOf(p Polarization) (JonesVector, error) {
	switch v := p.(type) {
	case JonesVector:
		return v, nil
	case StokesVector:
		return v.Jones(1e-9)
	}

	return p.Stokes().Jones(1e-9)
}

// validPolarization reports whether p carries power.
func validPolarization(p Polarization) bool {
	s := p.Stokes()

	return s[0] > 0 && !math.IsNaN(s[0]) && !math.IsInf(s[0], 0) && s.Degree() <= 1+1e-9
}
