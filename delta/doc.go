// SPDX-License-Identifier: MIT

// Package delta builds the Berreman Delta matrix: the 4×4 generator of
// z-propagation of the tangential field vector Ψ = (Ex, Ey, Hx, Hy),
//
//	dΨ/dz = i·k0·Δ·Ψ,
//
// for a homogeneous medium with relative permittivity ε and reduced in-plane
// wavenumber Kx (x in the plane of incidence, z along the stack normal,
// H in units of the vacuum impedance).
//
// Every entry is a rational function of the tensor components normalized by
// ε₂₂, so ε₂₂ = 0 is rejected with optics.ErrDegenerateGeometry instead of
// leaking Inf/NaN into the solver.
package delta
