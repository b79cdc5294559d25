// SPDX-License-Identifier: MIT
// Package matrix: matrix exponential backends.
//
// Two interchangeable implementations satisfy Exponentiator:
//   - PadeExp: scaling and squaring with the degree-13 Padé approximant
//     (Higham 2005), computed natively in complex arithmetic.
//   - EmbeddedExp: the real 8×8 embedding φ(A) = [[Re A, −Im A], [Im A, Re A]]
//     is a ring homomorphism, so exp(A) is read back from gonum's real
//     exponential of φ(A).
//
// Which backend runs is a performance choice only; both agree to ~1e-13.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Exponentiator computes exp(A) for a 4×4 complex matrix.
type Exponentiator interface {
	Exp(a Mat4) (Mat4, error)
}

// padeTheta13 is the 1-norm bound below which the [13/13] approximant is
// accurate to double precision without scaling.
const padeTheta13 = 5.371920351148152

// padeB13 holds the numerator coefficients of the [13/13] Padé approximant.
var padeB13 = [14]float64{
	64764752532480000, 32382376266240000, 7771770303897600,
	1187353796428800, 129060195264000, 10559470521600,
	670442572800, 33522128640, 1323241920,
	40840800, 960960, 16380, 182, 1,
}

// PadeExp is the native scaling-and-squaring exponential. The zero value is ready to use.
type PadeExp struct{}

// Exp returns exp(a).
// Implementation:
//   - Stage 1: s = max(0, ⌈log₂(‖a‖₁/θ₁₃)⌉), a ← a/2ˢ.
//   - Stage 2: U, V from even powers A², A⁴, A⁶; R = (V − U)⁻¹·(V + U).
//   - Stage 3: square R s times.
//
// Errors:
//   - ErrNaNInf for non-finite input; ErrSingular if V − U is singular
//     (cannot happen for finite input within θ₁₃, kept as a guard).
func (PadeExp) Exp(a Mat4) (Mat4, error) {
	if err := ValidateFinite4(a); err != nil {
		return Mat4{}, matrixErrorf(opExp, err)
	}

	s := 0
	if n := a.Norm1(); n > padeTheta13 {
		s = int(math.Ceil(math.Log2(n / padeTheta13)))
		a = a.Scale(complex(math.Ldexp(1, -s), 0))
	}

	b := padeB13
	id := Identity4()
	a2 := a.Mul(a)
	a4 := a2.Mul(a2)
	a6 := a4.Mul(a2)

	w1 := lin3(a6, b[13], a4, b[11], a2, b[9])
	w2 := lin3(a6, b[7], a4, b[5], a2, b[3]).Add(id.Scale(complex(b[1], 0)))
	u := a.Mul(a6.Mul(w1).Add(w2))

	z1 := lin3(a6, b[12], a4, b[10], a2, b[8])
	z2 := lin3(a6, b[6], a4, b[4], a2, b[2]).Add(id.Scale(complex(b[0], 0)))
	v := a6.Mul(z1).Add(z2)

	r, err := Solve4(v.Sub(u), v.Add(u))
	if err != nil {
		return Mat4{}, matrixErrorf(opExp, err)
	}
	for ; s > 0; s-- {
		r = r.Mul(r)
	}

	return r, nil
}

// lin3 returns ca·a + cb·b + cc·c for real coefficients.
func lin3(a Mat4, ca float64, b Mat4, cb float64, c Mat4, cc float64) Mat4 {
	return a.Scale(complex(ca, 0)).Add(b.Scale(complex(cb, 0))).Add(c.Scale(complex(cc, 0)))
}

// EmbeddedExp computes exp(a) with gonum's real matrix exponential on the
// 8×8 real embedding of a. The zero value is ready to use.
type EmbeddedExp struct{}

// Exp returns exp(a).
func (EmbeddedExp) Exp(a Mat4) (Mat4, error) {
	if err := ValidateFinite4(a); err != nil {
		return Mat4{}, matrixErrorf(opExp, err)
	}

	phi := Embed(a)
	var e mat.Dense
	e.Exp(phi)

	out, err := Unembed(&e)
	if err != nil {
		return Mat4{}, matrixErrorf(opExp, err)
	}

	return out, nil
}

// Embed returns the 8×8 real matrix [[Re a, −Im a], [Im a, Re a]].
func Embed(a Mat4) *mat.Dense {
	data := make([]float64, 64)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			re, im := real(a[i][j]), imag(a[i][j])
			data[i*8+j] = re
			data[i*8+j+4] = -im
			data[(i+4)*8+j] = im
			data[(i+4)*8+j+4] = re
		}
	}

	return mat.NewDense(8, 8, data)
}

// Unembed reads a Mat4 back from the left block column of an 8×8 embedding.
func Unembed(m mat.Matrix) (Mat4, error) {
	if r, c := m.Dims(); r != 8 || c != 8 {
		return Mat4{}, fmt.Errorf("unembed %dx%d: want 8x8: %w", r, c, ErrDimensionMismatch)
	}
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = complex(m.At(i, j), m.At(i+4, j))
		}
	}

	return out, ValidateFinite4(out)
}
