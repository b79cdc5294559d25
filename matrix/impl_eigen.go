// SPDX-License-Identifier: MIT
// Package matrix: complex Schur eigen-decomposition of 4×4 matrices.
//
// Blueprint:
//
//	Stage 1 (Reduce):  A = Q·H·Qᴴ with H upper Hessenberg (Householder).
//	Stage 2 (Iterate): single-shift QR sweeps (Wilkinson shift, implicit bulge
//	                   chase with complex Givens rotations) drive H to upper
//	                   triangular T, accumulating Z so that A = Z·T·Zᴴ.
//	Stage 3 (Vectors): solve (T − λₖI)·x = 0 by back-substitution for each k,
//	                   map back with Z and normalize to unit 2-norm.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// tinyScale guards divisions in the triangular back-substitution.
const tinyScale = 1e-300

// Eigen4 returns the eigenvalues of a and the matching unit-norm eigenvectors
// as the columns of the second result (vecs.Col(k) belongs to vals[k]).
//
// Behavior highlights:
//   - Eigenvalues come out in Schur order (no sorting); callers that need an
//     ordering convention apply it themselves.
//   - Repeated eigenvalues of a diagonalizable matrix still yield independent
//     eigenvectors because every x keeps a unit entry at its own Schur index.
//     For a defective matrix two columns come out (nearly) parallel; callers
//     detect that through the condition number of vecs.
//
// Errors:
//   - ErrNaNInf if a holds a non-finite entry.
//   - ErrEigenFailed if the QR sweeps do not converge.
//
// Complexity:
//   - O(4³) per sweep; typically 2–4 sweeps per eigenvalue.
func Eigen4(a Mat4, opts ...Option) ([4]complex128, Mat4, error) {
	if err := ValidateFinite4(a); err != nil {
		return [4]complex128{}, Mat4{}, matrixErrorf(opEigen, err)
	}
	o := gatherOptions(opts...)

	h, z := hessenberg(a)
	if err := schur(&h, &z, o); err != nil {
		return [4]complex128{}, Mat4{}, matrixErrorf(opEigen, err)
	}

	var vals [4]complex128
	for k := 0; k < 4; k++ {
		vals[k] = h[k][k]
	}

	return vals, normalizeColumns(z.Mul(triangularVectors(h))), nil
}

// hessenberg reduces a to upper Hessenberg form with Householder reflectors,
// returning H and the accumulated unitary Q (A = Q·H·Qᴴ).
func hessenberg(a Mat4) (Mat4, Mat4) {
	q := Identity4()

	var (
		i, j, k int
		norm    float64
		alpha   complex128
		v       [4]complex128
		dot     complex128
	)
	for k = 0; k < 2; k++ {
		// x = a[k+1:, k]
		norm = 0
		for i = k + 1; i < 4; i++ {
			norm += real(a[i][k])*real(a[i][k]) + imag(a[i][k])*imag(a[i][k])
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}
		// alpha = −e^{i·arg(x0)}·‖x‖ avoids cancellation in v0
		alpha = complex(-norm, 0)
		if x0 := a[k+1][k]; x0 != 0 {
			alpha = -x0 / complex(cmplx.Abs(x0), 0) * complex(norm, 0)
		}
		v = [4]complex128{}
		for i = k + 1; i < 4; i++ {
			v[i] = a[i][k]
		}
		v[k+1] -= alpha
		vn := 0.0
		for i = k + 1; i < 4; i++ {
			vn += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
		}
		vn = math.Sqrt(vn)
		if vn == 0 {
			continue
		}
		for i = k + 1; i < 4; i++ {
			v[i] /= complex(vn, 0)
		}

		// A ← (I − 2vvᴴ)·A
		for j = 0; j < 4; j++ {
			dot = 0
			for i = k + 1; i < 4; i++ {
				dot += cmplx.Conj(v[i]) * a[i][j]
			}
			for i = k + 1; i < 4; i++ {
				a[i][j] -= 2 * v[i] * dot
			}
		}
		// A ← A·(I − 2vvᴴ), Q ← Q·(I − 2vvᴴ)
		for i = 0; i < 4; i++ {
			dot = 0
			for j = k + 1; j < 4; j++ {
				dot += a[i][j] * v[j]
			}
			for j = k + 1; j < 4; j++ {
				a[i][j] -= 2 * dot * cmplx.Conj(v[j])
			}
			dot = 0
			for j = k + 1; j < 4; j++ {
				dot += q[i][j] * v[j]
			}
			for j = k + 1; j < 4; j++ {
				q[i][j] -= 2 * dot * cmplx.Conj(v[j])
			}
		}
		// exact zeros below the sub-diagonal
		for i = k + 2; i < 4; i++ {
			a[i][k] = 0
		}
	}

	return a, q
}

// givens returns (c, s) with c real such that
// [c s; −s̄ c]·[x; y] = [r; 0].
func givens(x, y complex128) (float64, complex128) {
	ax, ay := cmplx.Abs(x), cmplx.Abs(y)
	if ay == 0 {
		return 1, 0
	}
	if ax == 0 {
		return 0, 1
	}
	r := math.Hypot(ax, ay)

	return ax / r, x / complex(ax, 0) * cmplx.Conj(y) / complex(r, 0)
}

// schur runs shifted QR sweeps on the Hessenberg matrix h until it is upper
// triangular, accumulating the rotations into z.
func schur(h, z *Mat4, o Options) error {
	var (
		hi, lo, iter, k, i, j int
		scale                 float64
		shift                 complex128
		x, y                  complex128
		c                     float64
		s                     complex128
		t1, t2                complex128
	)
	norm := h.MaxAbs()
	if norm == 0 {
		return nil
	}

	hi = 3
	for hi > 0 {
		// find the active block [lo, hi]: first negligible sub-diagonal from below
		for lo = hi; lo > 0; lo-- {
			scale = cmplx.Abs(h[lo-1][lo-1]) + cmplx.Abs(h[lo][lo])
			if scale == 0 {
				scale = norm
			}
			if cmplx.Abs(h[lo][lo-1]) <= o.eps*scale {
				h[lo][lo-1] = 0

				break
			}
		}
		if lo == hi { // 1×1 block converged
			hi--
			iter = 0

			continue
		}
		iter++
		if iter > o.maxIter {
			return fmt.Errorf("no convergence at index %d after %d sweeps: %w", hi, o.maxIter, ErrEigenFailed)
		}

		shift = wilkinsonShift(h[hi-1][hi-1], h[hi-1][hi], h[hi][hi-1], h[hi][hi])
		if iter%exceptionalShiftEvery == 0 {
			shift = h[hi][hi] + complex(0.75*cmplx.Abs(h[hi][hi-1]), 0)
		}

		// implicit single-shift bulge chase over the active block
		x, y = h[lo][lo]-shift, h[lo+1][lo]
		for k = lo; k < hi; k++ {
			if k > lo {
				x, y = h[k][k-1], h[k+1][k-1]
			}
			c, s = givens(x, y)

			// rows k, k+1 from the left (all columns to the right of the bulge)
			for j = max(k-1, lo); j < 4; j++ {
				t1, t2 = h[k][j], h[k+1][j]
				h[k][j] = complex(c, 0)*t1 + s*t2
				h[k+1][j] = -cmplx.Conj(s)*t1 + complex(c, 0)*t2
			}
			if k > lo {
				h[k+1][k-1] = 0
			}
			// columns k, k+1 from the right
			for i = 0; i <= min(k+2, hi); i++ {
				t1, t2 = h[i][k], h[i][k+1]
				h[i][k] = complex(c, 0)*t1 + cmplx.Conj(s)*t2
				h[i][k+1] = -s*t1 + complex(c, 0)*t2
			}
			for i = 0; i < 4; i++ {
				t1, t2 = z[i][k], z[i][k+1]
				z[i][k] = complex(c, 0)*t1 + cmplx.Conj(s)*t2
				z[i][k+1] = -s*t1 + complex(c, 0)*t2
			}
		}
	}

	return nil
}

// wilkinsonShift returns the eigenvalue of [[a b] [c d]] closest to d.
func wilkinsonShift(a, b, c, d complex128) complex128 {
	mid := (a + d) / 2
	disc := cmplx.Sqrt((a-d)*(a-d)/4 + b*c)
	mu1, mu2 := mid+disc, mid-disc
	if cmplx.Abs(mu1-d) <= cmplx.Abs(mu2-d) {
		return mu1
	}

	return mu2
}

// triangularVectors returns the eigenvectors of the upper triangular t as
// columns: column k solves (t − t[k][k]·I)·x = 0 with x[k] = 1, x[j>k] = 0.
// Near-zero denominators are replaced by smin so repeated eigenvalues of a
// diagonalizable matrix still produce independent vectors.
func triangularVectors(t Mat4) Mat4 {
	smin := math.Max(1e-16*t.MaxAbs(), tinyScale)

	var (
		out     Mat4
		x       Vec4
		j, k, m int
		sum, d  complex128
	)
	for k = 0; k < 4; k++ {
		x = Vec4{}
		x[k] = 1
		for j = k - 1; j >= 0; j-- {
			sum = 0
			for m = j + 1; m <= k; m++ {
				sum += t[j][m] * x[m]
			}
			d = t[j][j] - t[k][k]
			if cmplx.Abs(d) < smin {
				d = complex(smin, 0)
			}
			x[j] = -sum / d
		}
		out = out.SetCol(k, x)
	}

	return out
}

// normalizeColumns scales every column of m to unit 2-norm.
func normalizeColumns(m Mat4) Mat4 {
	for j := 0; j < 4; j++ {
		col := m.Col(j)
		if n := col.Norm2(); n > 0 {
			m = m.SetCol(j, col.Scale(complex(1/n, 0)))
		}
	}

	return m
}
