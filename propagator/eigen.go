// SPDX-License-Identifier: MIT

package propagator

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
)

// Eigen propagates through the eigen-decomposition of Δ. The zero value
// uses DefaultConditionLimit.
type Eigen struct {
	ConditionLimit float64
	EigenOptions   []matrix.Option
}

// Name returns "eigen".
func (Eigen) Name() string { return MethodEigen.String() }

// Propagate implements Propagator by diagonalizing and evaluating once.
func (e Eigen) Propagate(deltas []matrix.Mat4, h float64, lambda []float64) ([]matrix.Mat4, error) {
	if err := validate(deltas, h, lambda); err != nil {
		return nil, err
	}
	d, err := e.Diagonalize(deltas)
	if err != nil {
		return nil, err
	}

	return d.At(h, lambda)
}

// Diagonalization holds W, W⁻¹ and the eigenvalues q of every Δ, so that P
// can be re-evaluated at many thicknesses for O(4³) per sample.
type Diagonalization struct {
	w, wi []matrix.Mat4
	q     [][4]complex128
}

// Diagonalize decomposes every Δ.
//
// Errors (wrapped in *optics.SampleError):
//   - optics.ErrUnstableDiagonalization when the QR iteration fails, W is
//     singular, or cond₁(W) exceeds the limit (defective or nearly
//     defective Δ).
func (e Eigen) Diagonalize(deltas []matrix.Mat4) (*Diagonalization, error) {
	limit := e.ConditionLimit
	if limit == 0 {
		limit = DefaultConditionLimit
	}

	out := &Diagonalization{
		w:  make([]matrix.Mat4, len(deltas)),
		wi: make([]matrix.Mat4, len(deltas)),
		q:  make([][4]complex128, len(deltas)),
	}
	for i, d := range deltas {
		q, w, err := matrix.Eigen4(d, e.EigenOptions...)
		if err != nil {
			return nil, optics.AtSample(opPropagate, i, fmt.Errorf("%w: %w", optics.ErrUnstableDiagonalization, err))
		}
		wi, err := matrix.Inverse4(w)
		if err != nil {
			return nil, optics.AtSample(opPropagate, i, fmt.Errorf("%w: %w", optics.ErrUnstableDiagonalization, err))
		}
		if c := w.Norm1() * wi.Norm1(); c > limit {
			return nil, optics.AtSample(opPropagate, i, fmt.Errorf("cond(W)=%.3g > %.3g: %w", c, limit, optics.ErrUnstableDiagonalization))
		}
		out.w[i], out.wi[i], out.q[i] = w, wi, q
	}

	return out, nil
}

// Len returns the number of samples.
func (d *Diagonalization) Len() int { return len(d.q) }

// Eigenvalues returns q for sample i.
func (d *Diagonalization) Eigenvalues(i int) [4]complex128 { return d.q[i] }

// At returns P(h) for every sample.
func (d *Diagonalization) At(h float64, lambda []float64) ([]matrix.Mat4, error) {
	if err := validate(d.w, h, lambda); err != nil {
		return nil, err
	}
	out := make([]matrix.Mat4, len(d.q))
	var diag matrix.Vec4
	for i := range d.q {
		s := phase(h, lambda[i])
		for k, q := range d.q[i] {
			diag[k] = cmplx.Exp(s * q)
		}
		out[i] = d.w[i].Mul(matrix.Diag4(diag)).Mul(d.wi[i])
		if err := matrix.ValidateFinite4(out[i]); err != nil {
			return nil, &optics.SampleError{Op: opPropagate, Sample: i, Layer: optics.NoLayer, Wavelength: lambda[i], Err: err}
		}
	}

	return out, nil
}
