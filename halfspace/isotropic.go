// SPDX-License-Identifier: MIT

package halfspace

import (
	"math/cmplx"

	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
)

// Mode indices inside L and the amplitude vector.
const (
	SPlus = iota
	SMinus
	PPlus
	PMinus
)

// cosPhi returns n = √ε_xx and cos Φ = √(1 − (Kx/n)²) (principal branches,
// so evanescent forward modes decay towards +z).
func cosPhi(kx float64, t optics.Tensor) (n, c complex128, err error) {
	n = t.Index()
	if n == 0 {
		return 0, 0, optics.ErrDegenerateGeometry
	}
	r := complex(kx, 0) / n
	c = cmplx.Sqrt(1 - r*r)
	if c == 0 {
		return 0, 0, optics.ErrDegenerateGeometry
	}

	return n, c, nil
}

// Isotropic returns the closed-form L and Li of an isotropic medium:
//
//	L  = [[0, 0, c, c], [1, 1, 0, 0], [−n·c, n·c, 0, 0], [0, 0, n, −n]]
//	Li = ½·[[0, 1, −1/(n·c), 0], [0, 1, 1/(n·c), 0], [1/c, 0, 0, 1/n], [1/c, 0, 0, −1/n]]
//
// Only t[0][0] is read. Grazing incidence (cos Φ = 0) and n = 0 fail with
// optics.ErrDegenerateGeometry.
func Isotropic(kx float64, t optics.Tensor) (matrix.Mat4, matrix.Mat4, error) {
	n, c, err := cosPhi(kx, t)
	if err != nil {
		return matrix.Mat4{}, matrix.Mat4{}, err
	}
	nc := n * c

	l := matrix.Mat4{
		{0, 0, c, c},
		{1, 1, 0, 0},
		{-nc, nc, 0, 0},
		{0, 0, n, -n},
	}
	li := matrix.Mat4{
		{0, 0.5, -0.5 / nc, 0},
		{0, 0.5, 0.5 / nc, 0},
		{0.5 / c, 0, 0, 0.5 / n},
		{0.5 / c, 0, 0, -0.5 / n},
	}

	return l, li, nil
}

// Kz returns the normal wavevector component n·cos Φ of an isotropic medium.
func Kz(kx float64, t optics.Tensor) (complex128, error) {
	n, c, err := cosPhi(kx, t)
	if err != nil {
		return 0, err
	}

	return n * c, nil
}

// Flux returns the time-averaged z-component of the Poynting vector carried
// by column col of L, Re(Ex·Hy* − Ey·Hx*), up to the common factor ½.
func Flux(l matrix.Mat4, col int) float64 {
	return FieldFlux(l.Col(col))
}

// FieldFlux returns Re(Ex·Hy* − Ey·Hx*) for a field vector Ψ.
func FieldFlux(v matrix.Vec4) float64 {
	return real(v[0]*cmplx.Conj(v[3]) - v[1]*cmplx.Conj(v[2]))
}
