// SPDX-License-Identifier: MIT
// Package matrix: binary exponentiation of 4×4 matrices.

package matrix

import "fmt"

// Pow4 returns mⁿ by exponentiation by squaring: O(log n) products instead
// of n − 1. Pow4(m, 0) is the identity.
//
// Errors:
//   - ErrNegativePower for n < 0.
//
// Complexity:
//   - Time O(4³·log₂ n), no allocations.
func Pow4(m Mat4, n int) (Mat4, error) {
	if n < 0 {
		return Mat4{}, matrixErrorf(opPow, fmt.Errorf("n=%d: %w", n, ErrNegativePower))
	}
	result := Identity4()
	for base := m; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		if n > 1 {
			base = base.Mul(base)
		}
	}

	return result, nil
}
