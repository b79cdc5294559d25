// SPDX-License-Identifier: MIT

package propagator

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
)

const opPropagate = "propagate"

// Propagator computes P = exp(i·k0·h·Δ) for every wavelength sample.
// deltas and lambda are per-sample arrays of equal length; h may be
// negative (backward propagation) but must be finite.
type Propagator interface {
	Propagate(deltas []matrix.Mat4, h float64, lambda []float64) ([]matrix.Mat4, error)
	Name() string
}

// Method enumerates the built-in strategies.
type Method int

const (
	// MethodExact is the matrix exponential (default).
	MethodExact Method = iota
	// MethodEigen is the eigen-decomposition strategy.
	MethodEigen
	// MethodLinear is the first-order approximation.
	MethodLinear
)

var methodNames = [...]string{MethodExact: "exact", MethodEigen: "eigen", MethodLinear: "linear"}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod resolves a method name, case-insensitively. "expm" is accepted
// as an alias of "exact".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "expm":
		return MethodExact, nil
	case "eigen":
		return MethodEigen, nil
	case "linear":
		return MethodLinear, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// New returns the strategy for m.
func New(m Method, opts ...Option) (Propagator, error) {
	o := gatherOptions(opts...)
	switch m {
	case MethodExact:
		return Exact{Backend: o.backend}, nil
	case MethodEigen:
		return Eigen{ConditionLimit: o.condLimit, EigenOptions: o.eigenOpts}, nil
	case MethodLinear:
		return Linear{}, nil
	}

	return nil, fmt.Errorf("%v: %w", m, ErrUnknownMethod)
}

// validate checks the shared preconditions of every strategy.
func validate(deltas []matrix.Mat4, h float64, lambda []float64) error {
	if err := optics.ValidateWavelengths(lambda); err != nil {
		return fmt.Errorf("%s: %w", opPropagate, err)
	}
	if len(deltas) != len(lambda) {
		return fmt.Errorf("%s: %d deltas for %d samples: %w", opPropagate, len(deltas), len(lambda), optics.ErrLengthMismatch)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return fmt.Errorf("%s: h=%g: %w", opPropagate, h, matrix.ErrNaNInf)
	}

	return nil
}

// phase returns the generator scale i·k0·h.
func phase(h, lambda float64) complex128 {
	return complex(0, optics.K0(lambda)*h)
}
