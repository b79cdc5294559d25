// SPDX-License-Identifier: MIT

package propagator

import "github.com/katalvlaran/berreman/matrix"

// Linear is P ≈ I + i·k0·h·Δ. The local error is O((k0·h)²) and the result
// is not unitary; use it only for slices much thinner than the wavelength.
type Linear struct{}

// Name returns "linear".
func (Linear) Name() string { return MethodLinear.String() }

// Propagate implements Propagator.
func (Linear) Propagate(deltas []matrix.Mat4, h float64, lambda []float64) ([]matrix.Mat4, error) {
	if err := validate(deltas, h, lambda); err != nil {
		return nil, err
	}
	id := matrix.Identity4()
	out := make([]matrix.Mat4, len(deltas))
	for i, d := range deltas {
		out[i] = id.Add(d.Scale(phase(h, lambda[i])))
	}

	return out, nil
}
