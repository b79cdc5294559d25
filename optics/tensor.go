// SPDX-License-Identifier: MIT

package optics

import (
	"math/cmplx"
)

// Tensor is a 3×3 complex relative permittivity tensor for one wavelength
// sample, indexed [row][col] over (x, y, z). z is the stack normal and x
// lies in the plane of incidence.
type Tensor [3][3]complex128

// Isotropic returns ε·I.
func Isotropic(eps complex128) Tensor {
	return Diagonal(eps, eps, eps)
}

// FromIndex returns the isotropic tensor of a (complex) refractive index n: ε = n².
func FromIndex(n complex128) Tensor {
	return Isotropic(n * n)
}

// Diagonal returns diag(exx, eyy, ezz).
func Diagonal(exx, eyy, ezz complex128) Tensor {
	return Tensor{{exx, 0, 0}, {0, eyy, 0}, {0, 0, ezz}}
}

// Uniaxial returns no²·I + (ne² − no²)·a·aᵀ for the optic axis a (normalized here).
// A zero axis yields the isotropic no² tensor.
func Uniaxial(no, ne complex128, axis [3]float64) Tensor {
	var n2 float64
	for _, c := range axis {
		n2 += c * c
	}
	t := FromIndex(no)
	if n2 == 0 {
		return t
	}
	d := ne*ne - no*no
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] += d * complex(axis[i]*axis[j]/n2, 0)
		}
	}

	return t
}

// IsIsotropic reports whether t equals t[0][0]·I within the absolute
// tolerance eps (scaled by |t[0][0]| when that exceeds one).
func (t Tensor) IsIsotropic(eps float64) bool {
	ref := t[0][0]
	tol := eps
	if a := cmplx.Abs(ref); a > 1 {
		tol *= a
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := complex128(0)
			if i == j {
				want = ref
			}
			if cmplx.Abs(t[i][j]-want) > tol {
				return false
			}
		}
	}

	return true
}

// Index returns √ε_xx, the scalar refractive index of an isotropic tensor
// (principal branch: Re ≥ 0).
func (t Tensor) Index() complex128 {
	return cmplx.Sqrt(t[0][0])
}

// IsFinite reports whether every entry is finite.
func (t Tensor) IsFinite() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if cmplx.IsNaN(t[i][j]) || cmplx.IsInf(t[i][j]) {
				return false
			}
		}
	}

	return true
}
