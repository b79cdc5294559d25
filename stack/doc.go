// SPDX-License-Identifier: MIT

// Package stack describes the internal layers of a structure and folds
// their propagation matrices into one stack propagator per wavelength.
//
// Layers report their permittivity profile as a list of homogeneous slices
// (Layer.Profile). Homogeneous layers yield one slice; Graded layers sample
// a position-dependent material at slice midpoints (twisted nematics,
// gradient-index coatings). Repeat describes a periodic sub-stack with
// optional boundary layers before and after the repeated core.
//
// Composer multiplies the slice propagators in one of two directions:
//
//   - Backward: P = P₁(−h₁)·P₂(−h₂)···P_N(−h_N), layers in physical
//     (front-to-back) order. It transports the field from the back boundary
//     to the front one and is what the structure solver uses.
//   - Forward: P = P_N(h_N)···P₂(h₂)·P₁(h₁), transporting front to back.
//
// Forward·Backward is the identity. A Repeat computes its period once and
// raises it to the N-th power by binary exponentiation.
//
// Half-spaces are never stack layers: an infinite thickness is rejected.
package stack
