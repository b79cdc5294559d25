// SPDX-License-Identifier: MIT

package stack

import (
	"fmt"
	"math"

	"github.com/katalvlaran/berreman/optics"
)

// Slice is a homogeneous piece of a layer: a thickness and one tensor per
// wavelength sample.
type Slice struct {
	Thickness float64
	Tensors   []optics.Tensor
}

// Layer is anything that can report its permittivity profile.
type Layer interface {
	Profile(lambda []float64) ([]Slice, error)
}

// Homogeneous is a single-material layer.
type Homogeneous struct {
	Thickness float64
	Material  optics.Provider
}

// Profile returns one slice.
func (l Homogeneous) Profile(lambda []float64) ([]Slice, error) {
	if err := checkThickness(l.Thickness); err != nil {
		return nil, err
	}
	ts, err := optics.Evaluate(l.Material, lambda)
	if err != nil {
		return nil, err
	}

	return []Slice{{Thickness: l.Thickness, Tensors: ts}}, nil
}

// Graded is an inhomogeneous layer sampled in Slices equal slices.
// Material(frac) is evaluated at the slice midpoints frac = (k+½)/Slices,
// frac = 0 being the front face.
type Graded struct {
	Thickness float64
	Slices    int
	Material  func(frac float64) optics.Provider
}

// Profile returns Slices slices of Thickness/Slices each.
func (l Graded) Profile(lambda []float64) ([]Slice, error) {
	if err := checkThickness(l.Thickness); err != nil {
		return nil, err
	}
	if l.Slices < 1 || l.Material == nil {
		return nil, fmt.Errorf("slices=%d: %w", l.Slices, ErrInvalidSlices)
	}
	h := l.Thickness / float64(l.Slices)
	out := make([]Slice, l.Slices)
	for k := range out {
		ts, err := optics.Evaluate(l.Material((float64(k)+0.5)/float64(l.Slices)), lambda)
		if err != nil {
			return nil, err
		}
		out[k] = Slice{Thickness: h, Tensors: ts}
	}

	return out, nil
}

// Twisted returns a Graded layer whose material is base rotated about the
// stack normal by twist·frac degrees: a twisted nematic cell when base is
// uniaxial with its axis in the layer plane.
func Twisted(thickness float64, slices int, base optics.Provider, twist float64) Graded {
	return Graded{
		Thickness: thickness,
		Slices:    slices,
		Material: func(frac float64) optics.Provider {
			return optics.Rotated{Source: base, Rotation: optics.RotationZ(twist * frac)}
		},
	}
}

// Repeat is Before, then Period repeated N times, then After.
type Repeat struct {
	Before []Layer
	Period []Layer
	After  []Layer
	N      int
}

// Profile returns the explicitly expanded slice list. Composer does not
// use it for the periodic core; it serves callers that need the slices.
func (r Repeat) Profile(lambda []float64) ([]Slice, error) {
	if r.N < 0 {
		return nil, fmt.Errorf("n=%d: %w", r.N, ErrNegativeRepeat)
	}
	before, err := profiles(r.Before, lambda)
	if err != nil {
		return nil, err
	}
	period, err := profiles(r.Period, lambda)
	if err != nil {
		return nil, err
	}
	after, err := profiles(r.After, lambda)
	if err != nil {
		return nil, err
	}

	out := make([]Slice, 0, len(before)+r.N*len(period)+len(after))
	out = append(out, before...)
	for i := 0; i < r.N; i++ {
		out = append(out, period...)
	}

	return append(out, after...), nil
}

// profiles concatenates the slices of layers.
func profiles(layers []Layer, lambda []float64) ([]Slice, error) {
	var out []Slice
	for _, l := range layers {
		s, err := l.Profile(lambda)
		if err != nil {
			return nil, err
		}
		out = append(out, s...)
	}

	return out, nil
}

// checkThickness rejects NaN, negative and infinite thicknesses.
func checkThickness(h float64) error {
	switch {
	case math.IsInf(h, 0):
		return fmt.Errorf("h=%g: %w", h, ErrInfiniteThickness)
	case math.IsNaN(h) || h < 0:
		return fmt.Errorf("h=%g: %w", h, ErrNegativeThickness)
	}

	return nil
}
