// SPDX-License-Identifier: MIT
package stack_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/berreman/delta"
	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
	"github.com/katalvlaran/berreman/propagator"
	"github.com/katalvlaran/berreman/stack"
)

// fixture RETURNS a wavelength grid and a constant Kx per sample.
func fixture(n int, kx float64) ([]float64, []float64) {
	lambda := optics.Wavelengths(450, 750, n)
	k := make([]float64, n)
	for i := range k {
		k[i] = kx
	}

	return lambda, k
}

func requireAllClose(t *testing.T, want, got []matrix.Mat4, atol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for s := range want {
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				require.LessOrEqual(t, cmplx.Abs(want[s][i][j]-got[s][i][j]), atol,
					"sample %d [%d,%d]: want %v got %v", s, i, j, want[s][i][j], got[s][i][j])
			}
		}
	}
}

func identities(n int) []matrix.Mat4 {
	out := make([]matrix.Mat4, n)
	for i := range out {
		out[i] = matrix.Identity4()
	}

	return out
}

// sampleLayers RETURNS a mixed isotropic / anisotropic stack.
func sampleLayers() []stack.Layer {
	crystal := optics.Rotated{
		Source:   optics.Constant(optics.Uniaxial(1.55, 1.75, [3]float64{1, 0, 0})),
		Rotation: optics.Euler(30, 40, 0),
	}

	return []stack.Layer{
		stack.Homogeneous{Thickness: 120, Material: optics.Index(2.1)},
		stack.Homogeneous{Thickness: 300, Material: crystal},
		stack.Homogeneous{Thickness: 0, Material: optics.Index(1.3)},
		stack.Twisted(500, 10, crystal, 45),
	}
}

func TestRoundTrip(t *testing.T) {
	lambda, kx := fixture(8, 0.4)
	layers := sampleLayers()

	back, err := stack.Composer{Kx: kx, Direction: stack.Backward}.Compose(layers, lambda)
	require.NoError(t, err)
	fwd, err := stack.Composer{Kx: kx, Direction: stack.Forward}.Compose(layers, lambda)
	require.NoError(t, err)

	prod := make([]matrix.Mat4, len(lambda))
	for i := range prod {
		prod[i] = fwd[i].Mul(back[i])
	}
	requireAllClose(t, identities(len(lambda)), prod, 1e-9)
}

func TestBackwardOrder(t *testing.T) {
	lambda, kx := fixture(3, 0.2)
	a := stack.Homogeneous{Thickness: 80, Material: optics.Index(1.4)}
	b := stack.Homogeneous{Thickness: 150, Material: optics.Constant(optics.Diagonal(2.2, 2.6, 2.4))}

	got, err := stack.Composer{Kx: kx}.Compose([]stack.Layer{a, b}, lambda)
	require.NoError(t, err)

	pa := slicePropagator(t, kx, a, -80, lambda)
	pb := slicePropagator(t, kx, b, -150, lambda)
	want := make([]matrix.Mat4, len(lambda))
	for i := range want {
		want[i] = pa[i].Mul(pb[i])
	}
	requireAllClose(t, want, got, 1e-12)

	got, err = stack.Composer{Kx: kx, Direction: stack.Forward}.Compose([]stack.Layer{a, b}, lambda)
	require.NoError(t, err)
	pa = slicePropagator(t, kx, a, 80, lambda)
	pb = slicePropagator(t, kx, b, 150, lambda)
	for i := range want {
		want[i] = pb[i].Mul(pa[i])
	}
	requireAllClose(t, want, got, 1e-12)
}

// slicePropagator RETURNS exp(i·k0·h·Δ) of a homogeneous layer.
func slicePropagator(t *testing.T, kx []float64, l stack.Homogeneous, h float64, lambda []float64) []matrix.Mat4 {
	t.Helper()
	ts, err := l.Material.Tensors(lambda)
	require.NoError(t, err)
	d, err := delta.Build(kx, ts)
	require.NoError(t, err)
	p, err := propagator.Exact{}.Propagate(d, h, lambda)
	require.NoError(t, err)

	return p
}

func TestRepeatMatchesExpansion(t *testing.T) {
	lambda, kx := fixture(5, 0.3)
	hi := stack.Homogeneous{Thickness: 55, Material: optics.Index(2.23)}
	lo := stack.Homogeneous{Thickness: 85, Material: optics.Index(1.47)}
	capLayer := stack.Homogeneous{Thickness: 20, Material: optics.Index(1.9)}
	glue := stack.Homogeneous{Thickness: 1000, Material: optics.Index(1.5)}

	for _, dir := range []stack.Direction{stack.Backward, stack.Forward} {
		for _, n := range []int{0, 1, 2, 7} {
			c := stack.Composer{Kx: kx, Direction: dir}
			rep := stack.Repeat{Before: []stack.Layer{capLayer}, Period: []stack.Layer{hi, lo}, After: []stack.Layer{glue}, N: n}

			got, err := c.Compose([]stack.Layer{rep}, lambda)
			require.NoError(t, err)

			expanded := []stack.Layer{capLayer}
			for i := 0; i < n; i++ {
				expanded = append(expanded, hi, lo)
			}
			expanded = append(expanded, glue)
			want, err := c.Compose(expanded, lambda)
			require.NoError(t, err)
			requireAllClose(t, want, got, 1e-9)

			slices, err := rep.Profile(lambda)
			require.NoError(t, err)
			require.Len(t, slices, 2+2*n)
		}
	}
}

func TestNestedRepeat(t *testing.T) {
	lambda, kx := fixture(2, 0)
	a := stack.Homogeneous{Thickness: 40, Material: optics.Index(1.6)}
	b := stack.Homogeneous{Thickness: 60, Material: optics.Index(1.4)}
	inner := stack.Repeat{Period: []stack.Layer{a, b}, N: 3}
	outer := stack.Repeat{Period: []stack.Layer{inner, a}, N: 2}

	got, err := stack.Composer{Kx: kx}.Compose([]stack.Layer{outer}, lambda)
	require.NoError(t, err)

	var flat []stack.Layer
	for i := 0; i < 2; i++ {
		flat = append(flat, a, b, a, b, a, b, a)
	}
	want, err := stack.Composer{Kx: kx}.Compose(flat, lambda)
	require.NoError(t, err)
	requireAllClose(t, want, got, 1e-10)
}

// Slicing a homogeneous material changes nothing.
func TestGradedUniform(t *testing.T) {
	lambda, kx := fixture(4, 0.5)
	m := optics.Constant(optics.Uniaxial(1.5, 1.65, [3]float64{1, 1, 0}))
	g := stack.Graded{Thickness: 400, Slices: 5, Material: func(float64) optics.Provider { return m }}
	h := stack.Homogeneous{Thickness: 400, Material: m}

	c := stack.Composer{Kx: kx}
	want, err := c.Compose([]stack.Layer{h}, lambda)
	require.NoError(t, err)
	got, err := c.Compose([]stack.Layer{g}, lambda)
	require.NoError(t, err)
	requireAllClose(t, want, got, 1e-10)
}

func TestTwistedProfile(t *testing.T) {
	base := optics.Constant(optics.Uniaxial(1.5, 1.6, [3]float64{1, 0, 0}))
	slices, err := stack.Twisted(1000, 4, base, 90).Profile([]float64{600})
	require.NoError(t, err)
	require.Len(t, slices, 4)

	for k, s := range slices {
		require.InDelta(t, 250, s.Thickness, 1e-12)
		angle := 90 * (float64(k) + 0.5) / 4
		rad := angle * math.Pi / 180
		axis := [3]float64{math.Cos(rad), math.Sin(rad), 0}
		want := optics.Uniaxial(1.5, 1.6, axis)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				require.InDelta(t, 0, cmplx.Abs(want[i][j]-s.Tensors[0][i][j]), 1e-12)
			}
		}
	}
}

func TestEmptyStack(t *testing.T) {
	lambda, kx := fixture(3, 0.1)
	got, err := stack.Composer{Kx: kx}.Compose(nil, lambda)
	require.NoError(t, err)
	requireAllClose(t, identities(3), got, 0)
}

func TestPropagatorChoice(t *testing.T) {
	lambda, kx := fixture(4, 0.3)
	layers := sampleLayers()[:2]

	exact, err := stack.Composer{Kx: kx, Propagator: propagator.Exact{Backend: matrix.EmbeddedExp{}}}.Compose(layers, lambda)
	require.NoError(t, err)
	eig, err := stack.Composer{Kx: kx, Propagator: propagator.Eigen{}}.Compose(layers, lambda)
	require.NoError(t, err)
	requireAllClose(t, exact, eig, 1e-8)
}

func TestComposeErrors(t *testing.T) {
	lambda, kx := fixture(3, 0.2)
	ok := stack.Homogeneous{Thickness: 10, Material: optics.Index(1.5)}

	cases := []struct {
		name   string
		layers []stack.Layer
		want   error
	}{
		{"negative", []stack.Layer{ok, stack.Homogeneous{Thickness: -1, Material: optics.Index(1)}}, stack.ErrNegativeThickness},
		{"nan", []stack.Layer{stack.Homogeneous{Thickness: math.NaN(), Material: optics.Index(1)}}, stack.ErrNegativeThickness},
		{"infinite", []stack.Layer{stack.Homogeneous{Thickness: math.Inf(1), Material: optics.Index(1)}}, stack.ErrInfiniteThickness},
		{"no slices", []stack.Layer{stack.Graded{Thickness: 10}}, stack.ErrInvalidSlices},
		{"negative repeat", []stack.Layer{stack.Repeat{Period: []stack.Layer{ok}, N: -2}}, stack.ErrNegativeRepeat},
		{"nil material", []stack.Layer{stack.Homogeneous{Thickness: 10}}, optics.ErrLengthMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := stack.Composer{Kx: kx}.Compose(tc.layers, lambda)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := stack.Composer{Kx: kx[:1]}.Compose([]stack.Layer{ok}, lambda)
	require.ErrorIs(t, err, optics.ErrLengthMismatch)
}

func TestComposeErrorContext(t *testing.T) {
	lambda, kx := fixture(3, 0.2)
	flat := optics.Func(func(l float64) (optics.Tensor, error) {
		if l > 700 {
			return optics.Diagonal(2, 2, 0), nil
		}

		return optics.FromIndex(1.5), nil
	})
	layers := []stack.Layer{
		stack.Homogeneous{Thickness: 10, Material: optics.Index(1.2)},
		stack.Homogeneous{Thickness: 10, Material: flat},
	}

	_, err := stack.Composer{Kx: kx}.Compose(layers, lambda)
	require.ErrorIs(t, err, optics.ErrDegenerateGeometry)
	var se *optics.SampleError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 1, se.Layer)
	require.Equal(t, 2, se.Sample)
	require.Equal(t, 750.0, se.Wavelength)

	// zero-thickness slices are never propagated
	layers[1] = stack.Homogeneous{Thickness: 0, Material: flat}
	_, err = stack.Composer{Kx: kx}.Compose(layers, lambda)
	require.NoError(t, err)
}
