// SPDX-License-Identifier: MIT

package stack

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/berreman/delta"
	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
	"github.com/katalvlaran/berreman/propagator"
)

const opCompose = "compose"

// Direction selects the traversal order of Composer.
type Direction int

const (
	// Backward transports the field from the back boundary to the front.
	Backward Direction = iota
	// Forward transports the field from the front boundary to the back.
	Forward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}

	return "backward"
}

// Composer folds layers into a stack propagator.
type Composer struct {
	// Propagator computes slice propagators; nil means propagator.Exact{}.
	Propagator propagator.Propagator

	// Kx holds the reduced wavenumber of every wavelength sample.
	Kx []float64

	Direction Direction
}

// Compose returns the stack propagator of layers (front to back) for every
// sample. An empty stack yields identities.
//
// Errors:
//   - optics.ErrLengthMismatch when len(Kx) != len(lambda).
//   - ErrNegativeThickness, ErrInfiniteThickness, ErrInvalidSlices,
//     ErrNegativeRepeat, naming the layer index.
//   - per-sample failures from delta.Build and the Propagator, as an
//     *optics.SampleError completed with the layer index and wavelength.
func (c Composer) Compose(layers []Layer, lambda []float64) ([]matrix.Mat4, error) {
	if err := optics.ValidateWavelengths(lambda); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompose, err)
	}
	if len(c.Kx) != len(lambda) {
		return nil, fmt.Errorf("%s: %d wavenumbers for %d samples: %w", opCompose, len(c.Kx), len(lambda), optics.ErrLengthMismatch)
	}
	if c.Propagator == nil {
		c.Propagator = propagator.Exact{}
	}

	acc := identities(len(lambda))
	for i, l := range layers {
		m, err := c.layer(l, lambda)
		if err != nil {
			return nil, c.wrap(err, i, lambda)
		}
		c.chain(acc, m)
	}

	return acc, nil
}

// layer returns the propagator of one layer in the configured direction.
func (c Composer) layer(l Layer, lambda []float64) ([]matrix.Mat4, error) {
	if r, ok := l.(Repeat); ok {
		return c.repeat(r, lambda)
	}
	slices, err := l.Profile(lambda)
	if err != nil {
		return nil, err
	}

	sign := -1.0
	if c.Direction == Forward {
		sign = 1
	}
	acc := identities(len(lambda))
	for _, s := range slices {
		if err = checkThickness(s.Thickness); err != nil {
			return nil, err
		}
		if s.Thickness == 0 {
			continue
		}
		deltas, err := delta.Build(c.Kx, s.Tensors)
		if err != nil {
			return nil, err
		}
		p, err := c.Propagator.Propagate(deltas, sign*s.Thickness, lambda)
		if err != nil {
			return nil, err
		}
		c.chain(acc, p)
	}

	return acc, nil
}

// repeat composes Before, Periodᴺ, After with one evaluation of the period.
func (c Composer) repeat(r Repeat, lambda []float64) ([]matrix.Mat4, error) {
	if r.N < 0 {
		return nil, fmt.Errorf("n=%d: %w", r.N, ErrNegativeRepeat)
	}
	before, err := c.sub(r.Before, lambda)
	if err != nil {
		return nil, err
	}
	period, err := c.sub(r.Period, lambda)
	if err != nil {
		return nil, err
	}
	after, err := c.sub(r.After, lambda)
	if err != nil {
		return nil, err
	}

	for i := range period {
		if period[i], err = matrix.Pow4(period[i], r.N); err != nil {
			return nil, err
		}
	}
	c.chain(before, period)
	c.chain(before, after)

	return before, nil
}

// sub composes nested layers without re-validating the sample arrays.
func (c Composer) sub(layers []Layer, lambda []float64) ([]matrix.Mat4, error) {
	acc := identities(len(lambda))
	for _, l := range layers {
		m, err := c.layer(l, lambda)
		if err != nil {
			return nil, err
		}
		c.chain(acc, m)
	}

	return acc, nil
}

// chain appends m to acc in place: acc·m (Backward) or m·acc (Forward).
func (c Composer) chain(acc, m []matrix.Mat4) {
	for i := range acc {
		if c.Direction == Forward {
			acc[i] = m[i].Mul(acc[i])
		} else {
			acc[i] = acc[i].Mul(m[i])
		}
	}
}

// wrap attaches the layer index to err.
func (c Composer) wrap(err error, layer int, lambda []float64) error {
	var se *optics.SampleError
	if errors.As(err, &se) {
		return fmt.Errorf("%s: %w", opCompose, optics.WithContext(err, layer, lambda))
	}

	return fmt.Errorf("%s: layer %d: %w", opCompose, layer, err)
}

func identities(n int) []matrix.Mat4 {
	out := make([]matrix.Mat4, n)
	for i := range out {
		out[i] = matrix.Identity4()
	}

	return out
}
