// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for finite-value checks and
//    tolerance comparisons used by kernels and by downstream packages.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"math"
	"math/cmplx"
)

// IsFinite reports whether z has finite real and imaginary parts.
func IsFinite(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}

// ValidateFinite4 returns ErrNaNInf when any entry of m is NaN or ±Inf.
// Complexity: O(16).
func ValidateFinite4(m Mat4) error {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !IsFinite(m[i][j]) {
				return ErrNaNInf
			}
		}
	}

	return nil
}

// ValidateFinite2 is ValidateFinite4 for 2×2 matrices.
func ValidateFinite2(m Mat2) error {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !IsFinite(m[i][j]) {
				return ErrNaNInf
			}
		}
	}

	return nil
}

// AllClose4 reports whether |a[i][j] − b[i][j]| ≤ atol + rtol·|b[i][j]| for all entries.
func AllClose4(a, b Mat4, rtol, atol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if cmplx.Abs(a[i][j]-b[i][j]) > atol+rtol*cmplx.Abs(b[i][j]) {
				return false
			}
		}
	}

	return true
}

// AllClose2 is AllClose4 for 2×2 matrices.
func AllClose2(a, b Mat2, rtol, atol float64) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if cmplx.Abs(a[i][j]-b[i][j]) > atol+rtol*cmplx.Abs(b[i][j]) {
				return false
			}
		}
	}

	return true
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
