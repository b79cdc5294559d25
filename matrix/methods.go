// SPDX-License-Identifier: MIT
// Package matrix provides value-receiver operations on Mat2/Mat4: products,
// sums, scaling, conjugation, Kronecker products, block extraction and norms.
//
// Purpose:
//   - Keep the hot kernels allocation-free (all receivers and results are arrays).
//   - Fix the loop order (i→j→k) so results are bit-for-bit deterministic.
//
// Notes:
//   - None of these kernels can fail; fallible kernels (Inverse, Eigen, Exp)
//     live in dedicated impl_*.go files and return errors.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Operation name constants for unified error wrapping.
const (
	opInverse = "Inverse"
	opSolve   = "Solve"
	opLU      = "LU"
	opEigen   = "Eigen"
	opExp     = "Exp"
	opPow     = "Pow"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product m·b.
// Complexity: O(4³).
func (m Mat4) Mul(b Mat4) Mat4 {
	var (
		out     Mat4
		i, j, k int
		sum     complex128
	)
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			sum = 0
			for k = 0; k < 4; k++ {
				sum += m[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// Add returns m + b.
func (m Mat4) Add(b Mat4) Mat4 {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] += b[i][j]
		}
	}

	return m
}

// Sub returns m − b.
func (m Mat4) Sub(b Mat4) Mat4 {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] -= b[i][j]
		}
	}

	return m
}

// Scale returns alpha·m.
func (m Mat4) Scale(alpha complex128) Mat4 {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] *= alpha
		}
	}

	return m
}

// MulVec returns m·v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	var out Vec4
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			out[i] += m[i][k] * v[k]
		}
	}

	return out
}

// Col returns column j.
func (m Mat4) Col(j int) Vec4 {
	return Vec4{m[0][j], m[1][j], m[2][j], m[3][j]}
}

// SetCol returns a copy of m with column j replaced by v.
func (m Mat4) SetCol(j int, v Vec4) Mat4 {
	for i := 0; i < 4; i++ {
		m[i][j] = v[i]
	}

	return m
}

// ConjTranspose returns the Hermitian adjoint mᴴ.
func (m Mat4) ConjTranspose() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[j][i] = cmplx.Conj(m[i][j])
		}
	}

	return out
}

// Block returns the 2×2 sub-block at the given rows and columns, in the
// order given: out[a][b] = m[rows[a]][cols[b]].
func (m Mat4) Block(rows, cols [2]int) Mat2 {
	return Mat2{
		{m[rows[0]][cols[0]], m[rows[0]][cols[1]]},
		{m[rows[1]][cols[0]], m[rows[1]][cols[1]]},
	}
}

// Norm1 returns the maximum absolute column sum ‖m‖₁.
func (m Mat4) Norm1() float64 {
	var best, s float64
	for j := 0; j < 4; j++ {
		s = 0
		for i := 0; i < 4; i++ {
			s += cmplx.Abs(m[i][j])
		}
		best = math.Max(best, s)
	}

	return best
}

// MaxAbs returns max |m[i][j]|.
func (m Mat4) MaxAbs() float64 {
	var best float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			best = math.Max(best, cmplx.Abs(m[i][j]))
		}
	}

	return best
}

// Real returns the element-wise real part of m.
func (m Mat4) Real() Real4 {
	var out Real4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = real(m[i][j])
		}
	}

	return out
}

// Norm2 returns the Euclidean norm of v.
func (v Vec4) Norm2() float64 {
	var s float64
	for i := 0; i < 4; i++ {
		s += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
	}

	return math.Sqrt(s)
}

// Scale returns alpha·v.
func (v Vec4) Scale(alpha complex128) Vec4 {
	for i := 0; i < 4; i++ {
		v[i] *= alpha
	}

	return v
}

// Add returns v + b.
func (v Vec4) Add(b Vec4) Vec4 {
	for i := 0; i < 4; i++ {
		v[i] += b[i]
	}

	return v
}

// Sub returns v − b.
func (v Vec4) Sub(b Vec4) Vec4 {
	for i := 0; i < 4; i++ {
		v[i] -= b[i]
	}

	return v
}

// Mul returns the product m·b.
func (m Mat2) Mul(b Mat2) Mat2 {
	return Mat2{
		{m[0][0]*b[0][0] + m[0][1]*b[1][0], m[0][0]*b[0][1] + m[0][1]*b[1][1]},
		{m[1][0]*b[0][0] + m[1][1]*b[1][0], m[1][0]*b[0][1] + m[1][1]*b[1][1]},
	}
}

// MulVec returns m·v for a 2-vector v.
func (m Mat2) MulVec(v [2]complex128) [2]complex128 {
	return [2]complex128{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

// Scale returns alpha·m.
func (m Mat2) Scale(alpha complex128) Mat2 {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m[i][j] *= alpha
		}
	}

	return m
}

// Conj returns the element-wise complex conjugate.
func (m Mat2) Conj() Mat2 {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m[i][j] = cmplx.Conj(m[i][j])
		}
	}

	return m
}

// Det returns the determinant.
func (m Mat2) Det() complex128 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Abs2 returns |m[i][j]|² element-wise.
func (m Mat2) Abs2() Real2 {
	var out Real2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = real(m[i][j])*real(m[i][j]) + imag(m[i][j])*imag(m[i][j])
		}
	}

	return out
}

// Scale returns alpha·m.
func (m Real2) Scale(alpha float64) Real2 {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m[i][j] *= alpha
		}
	}

	return m
}

// Scale returns alpha·m.
func (m Real4) Scale(alpha float64) Real4 {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] *= alpha
		}
	}

	return m
}

// MulVec returns m·v.
func (m Real4) MulVec(v [4]float64) [4]float64 {
	var out [4]float64
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			out[i] += m[i][k] * v[k]
		}
	}

	return out
}

// Kron returns the Kronecker product a ⊗ b:
// (a⊗b)[2i+k][2j+l] = a[i][j]·b[k][l].
func Kron(a, b Mat2) Mat4 {
	var out Mat4
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				for l := 0; l < 2; l++ {
					out[2*i+k][2*j+l] = a[i][j] * b[k][l]
				}
			}
		}
	}

	return out
}
