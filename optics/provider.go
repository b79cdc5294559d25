// SPDX-License-Identifier: MIT

package optics

import "fmt"

// Provider supplies one permittivity tensor per wavelength sample.
// Implementations must return a fresh slice of len(lambda) tensors and must
// not retain or mutate lambda.
type Provider interface {
	Tensors(lambda []float64) ([]Tensor, error)
}

// Constant is a dispersionless medium.
type Constant Tensor

// Tensors returns len(lambda) copies of the tensor.
func (c Constant) Tensors(lambda []float64) ([]Tensor, error) {
	if err := ValidateWavelengths(lambda); err != nil {
		return nil, err
	}
	out := make([]Tensor, len(lambda))
	for i := range out {
		out[i] = Tensor(c)
	}

	return out, nil
}

// Index returns a dispersionless isotropic medium of refractive index n.
func Index(n complex128) Constant {
	return Constant(FromIndex(n))
}

// Func adapts a per-wavelength function to a Provider (dispersive media).
type Func func(lambda float64) (Tensor, error)

// Tensors evaluates f at every sample.
func (f Func) Tensors(lambda []float64) ([]Tensor, error) {
	if err := ValidateWavelengths(lambda); err != nil {
		return nil, err
	}
	out := make([]Tensor, len(lambda))
	for i, l := range lambda {
		t, err := f(l)
		if err != nil {
			return nil, &SampleError{Op: "tensor", Sample: i, Layer: NoLayer, Wavelength: l, Err: err}
		}
		out[i] = t
	}

	return out, nil
}

// Rotated applies a fixed rotation to every tensor of Source.
type Rotated struct {
	Source   Provider
	Rotation Rotation
}

// Tensors returns R·ε·Rᵀ per sample.
func (r Rotated) Tensors(lambda []float64) ([]Tensor, error) {
	ts, err := r.Source.Tensors(lambda)
	if err != nil {
		return nil, err
	}
	for i := range ts {
		ts[i] = ts[i].Rotate(r.Rotation)
	}

	return ts, nil
}

// Evaluate calls p and checks the contract: one finite tensor per sample.
func Evaluate(p Provider, lambda []float64) ([]Tensor, error) {
	if p == nil {
		return nil, fmt.Errorf("evaluate: nil provider: %w", ErrLengthMismatch)
	}
	ts, err := p.Tensors(lambda)
	if err != nil {
		return nil, err
	}
	if len(ts) != len(lambda) {
		return nil, fmt.Errorf("evaluate: %d tensors for %d samples: %w", len(ts), len(lambda), ErrLengthMismatch)
	}
	for i, t := range ts {
		if !t.IsFinite() {
			return nil, &SampleError{Op: "tensor", Sample: i, Layer: NoLayer, Wavelength: lambda[i], Err: ErrDegenerateGeometry}
		}
	}

	return ts, nil
}
