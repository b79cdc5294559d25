// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with partial pivoting, 4×4 inversion and
// linear solves, plus closed-form 2×2 inversion.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// LU4 holds a packed LU factorization P·A = L·U of a 4×4 matrix: the strict
// lower triangle stores L (unit diagonal implied), the upper triangle U.
type LU4 struct {
	lu  Mat4
	piv [4]int // row i of P·A is row piv[i] of A
}

// Factorize computes the LU factorization with partial (row) pivoting.
// Implementation:
//   - Stage 1: copy A; piv = identity permutation.
//   - Stage 2: for each column k pick the row of largest |a[i][k]| (i ≥ k), swap,
//     eliminate below the pivot and store the multipliers in place.
//
// Errors:
//   - ErrNaNInf when A holds a non-finite entry.
//   - ErrSingular when a pivot column is exactly zero.
//
// Complexity:
//   - Time O(4³), no allocations.
func Factorize(a Mat4) (LU4, error) {
	if err := ValidateFinite4(a); err != nil {
		return LU4{}, matrixErrorf(opLU, err)
	}
	f := LU4{lu: a, piv: [4]int{0, 1, 2, 3}}

	var (
		i, j, k, p int
		best, v    float64
		mult       complex128
	)
	for k = 0; k < 4; k++ {
		// partial pivoting: largest modulus in column k
		p, best = k, cmplx.Abs(f.lu[k][k])
		for i = k + 1; i < 4; i++ {
			if v = cmplx.Abs(f.lu[i][k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return LU4{}, matrixErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", k, ErrSingular))
		}
		if p != k {
			f.lu[p], f.lu[k] = f.lu[k], f.lu[p]
			f.piv[p], f.piv[k] = f.piv[k], f.piv[p]
		}
		// eliminate below the pivot
		for i = k + 1; i < 4; i++ {
			mult = f.lu[i][k] / f.lu[k][k]
			f.lu[i][k] = mult
			for j = k + 1; j < 4; j++ {
				f.lu[i][j] -= mult * f.lu[k][j]
			}
		}
	}

	return f, nil
}

// SolveVec solves A·x = b using the factorization.
func (f LU4) SolveVec(b Vec4) Vec4 {
	var (
		x   Vec4
		i   int
		k   int
		sum complex128
	)
	// forward substitution on the permuted right-hand side (unit L)
	for i = 0; i < 4; i++ {
		sum = b[f.piv[i]]
		for k = 0; k < i; k++ {
			sum -= f.lu[i][k] * x[k]
		}
		x[i] = sum
	}
	// backward substitution with U
	for i = 3; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < 4; k++ {
			sum -= f.lu[i][k] * x[k]
		}
		x[i] = sum / f.lu[i][i]
	}

	return x
}

// Solve solves A·X = B column by column.
func (f LU4) Solve(b Mat4) Mat4 {
	var out Mat4
	for j := 0; j < 4; j++ {
		out = out.SetCol(j, f.SolveVec(b.Col(j)))
	}

	return out
}

// Inverse4 returns A⁻¹ through LU with partial pivoting.
//
// Errors:
//   - ErrNaNInf, ErrSingular (wrapped with the "Inverse" tag).
//
// Complexity:
//   - Time O(4³), no allocations.
func Inverse4(a Mat4) (Mat4, error) {
	f, err := Factorize(a)
	if err != nil {
		return Mat4{}, matrixErrorf(opInverse, err)
	}

	return f.Solve(Identity4()), nil
}

// Solve4 returns A⁻¹·B without forming the inverse.
func Solve4(a, b Mat4) (Mat4, error) {
	f, err := Factorize(a)
	if err != nil {
		return Mat4{}, matrixErrorf(opSolve, err)
	}

	return f.Solve(b), nil
}

// Inverse returns m⁻¹ in closed form (adjugate over determinant).
// ErrSingular when the determinant is exactly zero or m is non-finite.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Det()
	if cmplx.IsNaN(det) || cmplx.IsInf(det) {
		return Mat2{}, matrixErrorf(opInverse, ErrNaNInf)
	}
	if det == 0 {
		return Mat2{}, matrixErrorf(opInverse, ErrSingular)
	}

	return Mat2{
		{m[1][1] / det, -m[0][1] / det},
		{-m[1][0] / det, m[0][0] / det},
	}, nil
}

// Cond1 returns the 1-norm condition number ‖A‖₁·‖A⁻¹‖₁.
// ErrSingular is returned for an exactly singular A.
func Cond1(a Mat4) (float64, error) {
	inv, err := Inverse4(a)
	if err != nil {
		return 0, err
	}

	return a.Norm1() * inv.Norm1(), nil
}
