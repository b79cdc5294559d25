// SPDX-License-Identifier: MIT

package propagator

import (
	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
)

// Exact is P = exp(i·k0·h·Δ) through Backend. A nil Backend means
// matrix.PadeExp.
type Exact struct {
	Backend matrix.Exponentiator
}

// Name returns "exact".
func (Exact) Name() string { return MethodExact.String() }

// Propagate implements Propagator.
func (e Exact) Propagate(deltas []matrix.Mat4, h float64, lambda []float64) ([]matrix.Mat4, error) {
	if err := validate(deltas, h, lambda); err != nil {
		return nil, err
	}
	backend := e.Backend
	if backend == nil {
		backend = matrix.PadeExp{}
	}

	out := make([]matrix.Mat4, len(deltas))
	var err error
	for i, d := range deltas {
		if h == 0 {
			out[i] = matrix.Identity4()

			continue
		}
		if out[i], err = backend.Exp(d.Scale(phase(h, lambda[i]))); err != nil {
			return nil, &optics.SampleError{Op: opPropagate, Sample: i, Layer: optics.NoLayer, Wavelength: lambda[i], Err: err}
		}
	}

	return out, nil
}
