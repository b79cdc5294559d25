// SPDX-License-Identifier: MIT

// Package propagator: functional configuration of the strategies.
package propagator

import (
	"math"

	"github.com/katalvlaran/berreman/matrix"
)

const (
	// DefaultConditionLimit bounds the 1-norm condition number of the
	// eigenvector matrix W accepted by the Eigen strategy.
	DefaultConditionLimit = 1e10

	panicConditionLimit = "propagator: WithConditionLimit: limit must be finite and > 1"
	panicNilBackend     = "propagator: WithBackend: backend must not be nil"
)

// Option configures New.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	backend   matrix.Exponentiator
	condLimit float64
	eigenOpts []matrix.Option
}

// WithBackend selects the matrix exponential used by the Exact strategy.
// Panics on nil.
func WithBackend(b matrix.Exponentiator) Option {
	if b == nil {
		panic(panicNilBackend)
	}

	return func(o *Options) { o.backend = b }
}

// WithConditionLimit sets the largest acceptable cond₁(W) for the Eigen
// strategy. Panics unless limit > 1.
func WithConditionLimit(limit float64) Option {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit <= 1 {
		panic(panicConditionLimit)
	}

	return func(o *Options) { o.condLimit = limit }
}

// WithEigenOptions forwards options to matrix.Eigen4.
func WithEigenOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.eigenOpts = append(o.eigenOpts, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{backend: matrix.PadeExp{}, condLimit: DefaultConditionLimit}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
