// SPDX-License-Identifier: MIT
package solver_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
	"github.com/katalvlaran/berreman/solver"
	"github.com/katalvlaran/berreman/stack"
)

// iface RETURNS a bare two-medium structure.
func iface(n1, n2 complex128) solver.Structure {
	return solver.Structure{Front: optics.Index(n1), Back: optics.Index(n2)}
}

// solve RUNS the default solver and fails the test on error.
func solve(t *testing.T, st solver.Structure, ex solver.Experiment, opts ...solver.Option) *solver.Result {
	t.Helper()
	res, err := solver.New(opts...).Solve(st, ex)
	require.NoError(t, err)

	return res
}

// fresnel RETURNS the s and p amplitude reflection coefficients of a bare
// interface for incidence angle theta (degrees) in medium n1.
func fresnel(n1, n2, theta float64) (complex128, complex128) {
	s1 := n1 * math.Sin(theta*math.Pi/180)
	c1 := complex(math.Cos(theta*math.Pi/180), 0)
	c2 := cmplx.Sqrt(complex(1-(s1/n2)*(s1/n2), 0))
	a, b := complex(n1, 0), complex(n2, 0)
	rs := (a*c1 - b*c2) / (a*c1 + b*c2)
	rp := (b*c1 - a*c2) / (b*c1 + a*c2)

	return rs, rp
}

// quarterWave RETURNS the quarter-wave layer of index n at wavelength l.
func quarterWave(n, l float64) stack.Homogeneous {
	return stack.Homogeneous{Thickness: l / (4 * n), Material: optics.Index(complex(n, 0))}
}

// mixedStack RETURNS lossless isotropic, tilted uniaxial and twisted layers.
func mixedStack() []stack.Layer {
	crystal := optics.Rotated{
		Source:   optics.Constant(optics.Uniaxial(1.5, 1.7, [3]float64{1, 0, 0})),
		Rotation: optics.Euler(25, 35, 10),
	}

	return []stack.Layer{
		stack.Homogeneous{Thickness: 95, Material: optics.Index(2.23)},
		stack.Homogeneous{Thickness: 310, Material: crystal},
		stack.Twisted(800, 16, optics.Constant(optics.Uniaxial(1.5, 1.6, [3]float64{1, 0, 0})), 60),
	}
}

// colSums RETURNS the column sums of a 2×2 power matrix.
func colSums(m matrix.Real2) [2]float64 {
	return [2]float64{m[0][0] + m[1][0], m[0][1] + m[1][1]}
}
