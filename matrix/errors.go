// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (wrapped with an operation tag via
// matrixErrorf) and tests check them via errors.Is. No kernel panics on
// data-dependent conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Callers add context with fmt.Errorf("ctx: %w", ErrX)
// and still match with errors.Is.

var (
	// ErrSingular is returned when a zero pivot is met during LU factorization
	// or a 2×2 determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrEigenFailed indicates that the shifted QR iteration did not converge
	// within the configured number of sweeps.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrDimensionMismatch indicates an operand of the wrong shape (gonum interop).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNegativePower is returned by Pow4 for a negative exponent.
	ErrNegativePower = errors.New("matrix: negative power")
)
