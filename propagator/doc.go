// SPDX-License-Identifier: MIT

// Package propagator computes single-layer propagation matrices
//
//	P = exp(i·k0·h·Δ),   k0 = 2π/λ,
//
// one per wavelength sample, behind the Propagator strategy interface.
//
// Strategies:
//
//   - Linear: first-order Taylor P ≈ I + i·k0·h·Δ. Cheap, with a local error
//     of O((k0·h)²); intended for thin slices of graded layers only.
//   - Exact: the full matrix exponential through a matrix.Exponentiator
//     (Padé scaling and squaring by default, or gonum on the real embedding).
//     Satisfies P(h)·P(−h) = I to rounding.
//   - Eigen: Δ = W·diag(q)·W⁻¹ so P = W·diag(exp(i·k0·h·q))·W⁻¹. Diagonalize
//     once and call Diagonalization.At for many thicknesses. A Δ whose
//     eigenvector matrix is singular or ill-conditioned is rejected with
//     optics.ErrUnstableDiagonalization rather than returning garbage.
//
// The strategy is picked once, at construction time (New / ParseMethod);
// which Exact backend runs is a performance choice with no effect on results
// beyond rounding.
package propagator
