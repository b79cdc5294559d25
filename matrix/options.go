// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the iterative kernels
// (currently the QR sweeps of Eigen4).
//
// Every option validates its argument when constructed and panics on
// values that can only be programmer errors; gatherOptions layers the
// setters over the defaults below.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative deflation threshold for the QR sweeps:
	// a sub-diagonal entry is treated as zero once it is below
	// eps·(|h[k-1][k-1]| + |h[k][k]|).
	DefaultEpsilon = 1e-15

	// DefaultMaxIter caps the QR sweeps spent on a single eigenvalue.
	DefaultMaxIter = 60

	// exceptionalShiftEvery forces an ad-hoc shift every N stalled sweeps.
	exceptionalShiftEvery = 10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, positive and < 1"
	panicMaxIterInvalid = "matrix: WithMaxIter: maxIter must be > 0"
)

// ---------- Public option type (functional) ----------

// Option configures Eigen4.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	eps     float64 // deflation threshold; DefaultEpsilon
	maxIter int     // sweeps per eigenvalue; DefaultMaxIter
}

// WithEpsilon sets the relative deflation threshold of Eigen4.
// Panics unless 0 < eps < 1.
// Values much larger than machine epsilon trade eigenvector accuracy for speed.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps <= 0 || eps >= 1 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIter sets the number of QR sweeps allowed per eigenvalue before
// Eigen4 gives up with ErrEigenFailed. Panics on maxIter ≤ 0.
func WithMaxIter(maxIter int) Option {
	if maxIter <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = maxIter }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon, maxIter: DefaultMaxIter}
}

// gatherOptions applies setters over the defaults in order; last write wins.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
