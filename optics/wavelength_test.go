// SPDX-License-Identifier: MIT
package optics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/berreman/optics"
)

func TestWavelengths(t *testing.T) {
	l := optics.Wavelengths(400, 800, 5)
	require.Equal(t, []float64{400, 500, 600, 700, 800}, l)
	require.Equal(t, []float64{633}, optics.Wavelengths(633, 900, 1))
	require.Panics(t, func() { optics.Wavelengths(1, 2, 0) })

	grid := optics.Wavelengths(380, 780, 41)
	step := make([]float64, len(grid)-1)
	floats.SubTo(step, grid[1:], grid[:len(grid)-1])
	want := make([]float64, len(step))
	floats.AddConst(10, want)
	require.True(t, floats.EqualApprox(want, step, 1e-9))
	require.Equal(t, 780.0, grid[len(grid)-1])
}

func TestValidateWavelengths(t *testing.T) {
	cases := []struct {
		name   string
		lambda []float64
		want   error
	}{
		{"empty", nil, optics.ErrEmptyWavelengths},
		{"zero", []float64{500, 0}, optics.ErrNonPositiveWavelength},
		{"negative", []float64{-1}, optics.ErrNonPositiveWavelength},
		{"nan", []float64{math.NaN()}, optics.ErrNonPositiveWavelength},
		{"inf", []float64{math.Inf(1)}, optics.ErrNonPositiveWavelength},
		{"ok", []float64{1e-3, 1e6}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := optics.ValidateWavelengths(tc.lambda)
			if tc.want == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestK0(t *testing.T) {
	require.InDelta(t, 2*math.Pi/500, optics.K0(500), 1e-18)
}

func TestReducedWavenumbers(t *testing.T) {
	front := []optics.Tensor{optics.FromIndex(1.5), optics.FromIndex(1.0)}
	kx, err := optics.ReducedWavenumbers(front, 30, 1e-12)
	require.NoError(t, err)
	require.InDelta(t, 0.75, kx[0], 1e-15)
	require.InDelta(t, 0.5, kx[1], 1e-15)
	require.InDelta(t, optics.ReducedWavenumber(1.5, 30), kx[0], 1e-15)

	_, err = optics.ReducedWavenumbers(front, 90, 1e-12)
	require.ErrorIs(t, err, optics.ErrInvalidAngle)
	_, err = optics.ReducedWavenumbers(front, math.NaN(), 1e-12)
	require.ErrorIs(t, err, optics.ErrInvalidAngle)

	aniso := []optics.Tensor{optics.FromIndex(1), optics.Diagonal(2, 2, 3)}
	_, err = optics.ReducedWavenumbers(aniso, 10, 1e-12)
	require.ErrorIs(t, err, optics.ErrAnisotropicFront)
	var se *optics.SampleError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 1, se.Sample)
}
