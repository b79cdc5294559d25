// SPDX-License-Identifier: MIT

package solver

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/berreman/halfspace"
	"github.com/katalvlaran/berreman/propagator"
)

// DefaultWorkers solves all samples on the calling goroutine.
const DefaultWorkers = 1

const (
	panicNilPropagator = "solver: WithPropagator: propagator must not be nil"
	panicWorkers       = "solver: WithWorkers: n must be ≥ 1"
)

// Option configures New.
type Option func(*Solver)

// WithPropagator sets the slice propagator. Panics on nil.
func WithPropagator(p propagator.Propagator) Option {
	if p == nil {
		panic(panicNilPropagator)
	}

	return func(s *Solver) { s.prop = p }
}

// WithMethod resolves a built-in propagator once, at construction time.
// Panics on an unknown method (programmer error).
func WithMethod(m propagator.Method, opts ...propagator.Option) Option {
	p, err := propagator.New(m, opts...)
	if err != nil {
		panic("solver: WithMethod: " + err.Error())
	}

	return WithPropagator(p)
}

// WithWorkers solves wavelength chunks on up to n goroutines. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkers)
	}

	return func(s *Solver) { s.workers = n }
}

// WithLogger sets the structured logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) {
		if l == nil {
			l = zap.NewNop()
		}
		s.log = l
	}
}

// WithHalfspaceOptions forwards options to halfspace.Transition for both
// half-spaces.
func WithHalfspaceOptions(opts ...halfspace.Option) Option {
	return func(s *Solver) { s.hsOpts = append(s.hsOpts, opts...) }
}
