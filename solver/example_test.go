// SPDX-License-Identifier: MIT
package solver_test

import (
	"fmt"

	"github.com/katalvlaran/berreman/optics"
	"github.com/katalvlaran/berreman/solver"
	"github.com/katalvlaran/berreman/stack"
)

// ExampleSolver_Solve reflects light off bare glass at normal incidence.
func ExampleSolver_Solve() {
	st := solver.Structure{Front: optics.Index(1), Back: optics.Index(1.5)}
	res, err := solver.New().Solve(st, solver.Experiment{Wavelengths: []float64{550}})
	if err != nil {
		fmt.Println(err)
		return
	}
	r, t := res.R()[0], res.T()[0]
	fmt.Printf("R_ss=%.4f T_ss=%.4f\n", r[1][1], t[1][1])
	// Output:
	// R_ss=0.0400 T_ss=0.9600
}

// ExampleSolver_Solve_ellipsometry reads Psi and Delta off an oxide film on silicon.
func ExampleSolver_Solve_ellipsometry() {
	st := solver.Structure{
		Front:  optics.Index(1),
		Layers: []stack.Layer{stack.Homogeneous{Thickness: 100, Material: optics.Index(1.46)}},
		Back:   optics.Index(complex(3.88, 0.02)),
	}
	res, err := solver.New().Solve(st, solver.Experiment{Wavelengths: []float64{633}, Angle: 70})
	if err != nil {
		fmt.Println(err)
		return
	}
	psi, _ := res.Psi()
	fmt.Println(psi[0] > 0 && psi[0] < 90)
	// Output:
	// true
}

// ExampleStokesVector shows the Stokes parameters of circular light.
func ExampleStokesVector() {
	rcp := solver.JonesVector{complex(0.6, 0), complex(0, 0.8)}
	s := rcp.Stokes()
	fmt.Printf("S=(%.2f, %.2f, %.2f, %.2f) degree=%.1f\n", s[0], s[1], s[2], s[3], s.Degree())
	// Output:
	// S=(1.00, -0.28, 0.00, 0.96) degree=1.0
}
