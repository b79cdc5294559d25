// SPDX-License-Identifier: MIT

// Package matrix provides the small, fixed-size complex linear-algebra kernels
// used by the Berreman 4×4 transfer-matrix solver.
//
// The matrix package provides:
//
//   - Value types Mat2, Mat4, Vec4 (complex) and Real2, Real4 (float64) that
//     live on the stack and never allocate.
//   - Products, Kronecker products, binary powers (Pow4) and norms.
//   - LU factorization with partial pivoting (Factorize, Inverse4, Solve),
//     and closed-form 2×2 inversion.
//   - A complex Schur eigen-solver (Eigen4): Householder reduction to upper
//     Hessenberg form followed by shifted QR sweeps and triangular
//     back-substitution for the eigenvectors.
//   - Matrix exponentials behind the Exponentiator interface: PadeExp
//     (scaling-and-squaring, Padé degree 13) and EmbeddedExp (gonum's real
//     exponential applied to the 8×8 real embedding of a complex matrix).
//
// Numeric policy follows the rest of the module: kernels never panic on data,
// they return sentinels from errors.go, wrapped with an operation tag.
//
// Complexity: every kernel is O(1) in the sense that sizes are fixed (n ≤ 4);
// an Eigen4 call is a few hundred complex multiplications.
package matrix
