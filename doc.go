// Package berreman computes the optical response of planar layered media
// with the Berreman 4×4 transfer-matrix method: reflection and transmission
// Jones matrices, power coefficients and ellipsometric quantities of stacks
// of arbitrarily anisotropic, possibly absorbing layers.
//
// 🚀 What is berreman?
//
//	A pure-Go numeric library that brings together:
//		• Complex 4×4 kernels: LU inverse, Schur eigen-decomposition, Padé exponential
//		• Permittivity tensors, rotations and wavelength-dependent material providers
//		• Delta matrices and three slice propagators (linear, exact, eigen)
//		• Half-space eigenmodes: isotropic closed form and the general anisotropic route
//		• Layer stacks: homogeneous, graded (twisted nematics), periodic repeats
//		• Solver: Jones matrices, R/T, Psi/Delta, Mueller matrices, circular basis
//
// ✨ Why choose berreman?
//
//   - Small, explicit API: every tunable is a functional option with a documented default
//   - Deterministic: no global state, no hidden caching
//   - Errors name the operation, sample, layer and wavelength that failed
//   - Optional wavelength-parallel solves with identical results
//
// Packages:
//
//	matrix/      complex 2×2 / 4×4 algebra, eigen and exponential kernels
//	optics/      tensors, rotations, providers, wavelength helpers, error taxonomy
//	delta/       Delta matrices per wavelength sample
//	propagator/  slice propagators P = exp(i·k0·h·Δ) and approximations
//	halfspace/   transition matrices L and L⁻¹ of semi-infinite media
//	stack/       layers, slicing and stack composition
//	solver/      the structure solver and its Result
//
// Quick example (air / glass at normal incidence):
//
//	st := solver.Structure{Front: optics.Index(1), Back: optics.Index(1.5)}
//	res, _ := solver.New().Solve(st, solver.Experiment{Wavelengths: []float64{550}})
//	fmt.Println(res.R()[0][1][1]) // 0.04
//
//	go get github.com/katalvlaran/berreman
package berreman
