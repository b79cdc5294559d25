// SPDX-License-Identifier: MIT

// Package optics holds the shared vocabulary of the Berreman solver:
// permittivity tensors, the Provider boundary through which collaborators
// supply them, small rotation helpers, wavelength utilities and the error
// taxonomy used by every solver package.
//
// What lives here:
//
//   - Tensor: a 3×3 complex permittivity tensor for one wavelength sample,
//     with constructors for isotropic, diagonal and uniaxial media.
//   - Rotation: real 3×3 rotations (z-axis, z-x-z Euler angles) applied as
//     R·ε·Rᵀ.
//   - Provider: Tensors(wavelengths) → one Tensor per sample. Constant,
//     Index, Func and Rotated cover the needs of the solver and its tests; real
//     dispersion models stay outside this module.
//   - Cache: an explicit, opt-in memoization of a Provider keyed by a
//     fingerprint of the wavelength array. Nothing in the solver caches
//     implicitly.
//   - Errors: ErrDegenerateGeometry, ErrSingularTransfer, ErrNormalization,
//     ErrUnstableDiagonalization and friends, plus SampleError which carries
//     the sample index, layer index and wavelength of a failure.
//
// Units: wavelengths and thicknesses share one length unit (nanometres in
// all examples); only their ratio enters through k0·h = 2π·h/λ.
package optics
