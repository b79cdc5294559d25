// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrMissingHalfspace indicates a Structure without Front or Back provider.
	ErrMissingHalfspace = errors.New("solver: front and back half-spaces are required")

	// ErrAnisotropicBack indicates a quantity whose power normalization is
	// only defined for an isotropic back half-space.
	ErrAnisotropicBack = errors.New("solver: quantity needs an isotropic back half-space")

	// ErrPartialPolarization indicates a partially polarized Stokes input
	// where a Jones vector is required (rho).
	ErrPartialPolarization = errors.New("solver: incident light is not fully polarized")

	// ErrInvalidPolarization indicates a zero or non-physical incident polarization.
	ErrInvalidPolarization = errors.New("solver: invalid incident polarization")
)
