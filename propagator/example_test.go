// SPDX-License-Identifier: MIT
package propagator_test

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/berreman/delta"
	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
	"github.com/katalvlaran/berreman/propagator"
)

// ExampleNew propagates through a half-wave plate of glass at normal
// incidence: the Ey field picks up a phase of π.
func ExampleNew() {
	p, _ := propagator.New(propagator.MethodExact)
	d, _ := delta.BuildOne(0, optics.FromIndex(1.5))
	// n·h = λ/2
	out, _ := p.Propagate([]matrix.Mat4{d}, 200, []float64{600})
	fmt.Printf("%s: Ey→Ey = %.3f\n", p.Name(), real(out[0][1][1]))
	fmt.Printf("|Ey→Hx| = %.3f\n", cmplx.Abs(out[0][1][2]))
	// Output:
	// exact: Ey→Ey = -1.000
	// |Ey→Hx| = 0.000
}
