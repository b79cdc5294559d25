// SPDX-License-Identifier: MIT

// Package matrix: value types.
// This file contains ONLY the fixed-size value types and their constructors.
// Kernels live in methods.go and the impl_*.go files.
package matrix

// Mat2 is a 2×2 complex matrix, indexed [row][col].
// Jones matrices use it with component order (p, s).
type Mat2 [2][2]complex128

// Mat4 is a 4×4 complex matrix, indexed [row][col].
// Delta, propagation, transition and transfer matrices are all Mat4.
type Mat4 [4][4]complex128

// Vec4 is a complex 4-vector (a column of a Mat4).
type Vec4 [4]complex128

// Real2 is a 2×2 real matrix (power coefficients).
type Real2 [2][2]float64

// Real4 is a 4×4 real matrix (Mueller matrices).
type Real4 [4][4]float64

// Identity4 returns the 4×4 identity.
// Complexity: O(1).
func Identity4() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}

	return m
}

// Identity2 returns the 2×2 identity.
func Identity2() Mat2 {
	return Mat2{{1, 0}, {0, 1}}
}

// Diag4 returns a diagonal Mat4 with the given entries.
func Diag4(d Vec4) Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i][i] = d[i]
	}

	return m
}
