// SPDX-License-Identifier: MIT

// Package solver assembles the transfer matrix of a layered structure and
// derives everything an optical measurement reports from it.
//
// Per wavelength sample the solver computes
//
//	T = Li_front · P_stack · L_back
//
// where Li_front is the inverse transition matrix of the (isotropic) front
// half-space, P_stack the Backward stack propagator and L_back the
// transition matrix of the back half-space. The blocks
//
//	T_it = T[{2,0},{2,0}]   T_ti = T_it⁻¹          (transmission)
//	T_rt = T[{3,1},{2,0}]   T_ri = T_rt · T_ti     (reflection)
//
// are the Jones matrices in the (p, s) order: entry (1,1) is r_ss.
//
// Result exposes power coefficients, ellipsometric Psi/Delta, the complex
// ratio rho for the configured incident polarization, normalized Mueller
// matrices and circular-basis variants. Quantities that can fail (those
// that divide by r_ss, or need an isotropic back medium) return errors
// instead of NaN.
//
// Wavelength samples are independent; WithWorkers splits them into chunks
// solved concurrently, with results identical to the sequential path.
package solver
