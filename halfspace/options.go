// SPDX-License-Identifier: MIT

package halfspace

import (
	"math"

	"github.com/katalvlaran/berreman/matrix"
)

const (
	// DefaultEpsilon is the relative tolerance under which Re q counts as
	// zero in the direction sort, and under which off-isotropic tensor
	// entries are ignored by Transition.
	DefaultEpsilon = 1e-10

	// DefaultDegeneracyTolerance is the relative eigenvalue gap under which
	// a direction pair is treated as degenerate and re-split into s/p.
	DefaultDegeneracyTolerance = 1e-6

	panicEpsilon    = "halfspace: WithEpsilon: eps must be finite and in (0, 1)"
	panicDegeneracy = "halfspace: WithDegeneracyTolerance: tol must be finite and in (0, 1)"
)

// Option configures Transition and General.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	eps          float64
	degTol       float64
	forceGeneral bool
	eigenOpts    []matrix.Option
}

// WithEpsilon sets the zero tolerance. Panics unless 0 < eps < 1.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || eps <= 0 || eps >= 1 {
		panic(panicEpsilon)
	}

	return func(o *Options) { o.eps = eps }
}

// WithDegeneracyTolerance sets the degenerate-pair threshold. Panics unless 0 < tol < 1.
func WithDegeneracyTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol <= 0 || tol >= 1 {
		panic(panicDegeneracy)
	}

	return func(o *Options) { o.degTol = tol }
}

// WithForceGeneral makes Transition use the eigen route even for isotropic media.
func WithForceGeneral() Option {
	return func(o *Options) { o.forceGeneral = true }
}

// WithEigenOptions forwards options to matrix.Eigen4.
func WithEigenOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.eigenOpts = append(o.eigenOpts, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, degTol: DefaultDegeneracyTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
