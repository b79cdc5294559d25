// SPDX-License-Identifier: MIT

package solver

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/berreman/matrix"
)

var (
	// stokesA maps J⊗J* (ordering pp, ps, sp, ss) to the Stokes basis.
	stokesA = matrix.Mat4{
		{1, 0, 0, 1},
		{1, 0, 0, -1},
		{0, 1, 1, 0},
		{0, 1i, -1i, 0},
	}
	stokesAInv = matrix.Mat4{
		{0.5, 0.5, 0, 0},
		{0, 0, 0.5, -0.5i},
		{0, 0, 0.5, 0.5i},
		{0.5, -0.5, 0, 0},
	}

	// circular basis changes for transmission (C) and reflection (D)
	circC = matrix.Mat2{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(0, 1/math.Sqrt2), complex(0, -1/math.Sqrt2)},
	}
	circD = matrix.Mat2{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(0, -1/math.Sqrt2), complex(0, 1/math.Sqrt2)},
	}
	// unitary inverses Cᴴ, Dᴴ
	circCInv = conjTranspose2(circC)
	circDInv = conjTranspose2(circD)
)

// Mueller returns the unnormalized Mueller matrix Re(A·(J⊗J*)·A⁻¹) of a
// Jones matrix.
func Mueller(j matrix.Mat2) matrix.Real4 {
	return stokesA.Mul(matrix.Kron(j, j.Conj())).Mul(stokesAInv).Real()
}

// PsiDelta returns the ellipsometric angles of a complex ratio in degrees:
// Psi = atan|rho|, Delta = −arg(rho).
func PsiDelta(rho complex128) (float64, float64) {
	return math.Atan(cmplx.Abs(rho)) * 180 / math.Pi, -cmplx.Phase(rho) * 180 / math.Pi
}

func psiOf(rho complex128) float64 {
	psi, _ := PsiDelta(rho)

	return psi
}

func deltaOf(rho complex128) float64 {
	_, delta := PsiDelta(rho)

	return delta
}

func conjTranspose2(m matrix.Mat2) matrix.Mat2 {
	return matrix.Mat2{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}
