// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/berreman/halfspace"
	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
	"github.com/katalvlaran/berreman/propagator"
	"github.com/katalvlaran/berreman/stack"
)

const (
	opSolve    = "solve"
	opTransfer = "transfer"
)

// Jones block indices inside the transfer matrix.
var (
	incidentIdx  = [2]int{halfspace.PPlus, halfspace.SPlus}
	reflectedIdx = [2]int{halfspace.PMinus, halfspace.SMinus}
)

// Structure is the layered sample: a front half-space (incidence side,
// must be isotropic), internal layers front to back, and a back half-space.
type Structure struct {
	Front  optics.Provider
	Layers []stack.Layer
	Back   optics.Provider
}

// Experiment holds the measurement parameters.
type Experiment struct {
	Wavelengths []float64
	// Angle of incidence in degrees, measured in the front medium.
	Angle float64
	// Polarization of the incident light; nil means Linear45.
	Polarization Polarization
}

// Solver holds immutable configuration and may be reused across solves.
type Solver struct {
	prop    propagator.Propagator
	hsOpts  []halfspace.Option
	workers int
	log     *zap.Logger
}

// New returns a Solver using the exact propagator, one worker and a no-op logger.
func New(opts ...Option) *Solver {
	s := &Solver{prop: propagator.Exact{}, workers: DefaultWorkers, log: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Solve computes the transfer matrix and Jones matrices of st for every
// wavelength of ex.
//
// Errors:
//   - ErrMissingHalfspace, ErrInvalidPolarization; optics input errors
//     (ErrEmptyWavelengths, ErrNonPositiveWavelength, ErrInvalidAngle).
//   - per-sample failures as *optics.SampleError: ErrAnisotropicFront,
//     ErrDegenerateGeometry, ErrUnstableDiagonalization, ErrSingularTransfer.
func (s *Solver) Solve(st Structure, ex Experiment) (*Result, error) {
	if st.Front == nil || st.Back == nil {
		return nil, ErrMissingHalfspace
	}
	if err := optics.ValidateWavelengths(ex.Wavelengths); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	pol := ex.Polarization
	if pol == nil {
		pol = Linear45
	}
	if !validPolarization(pol) {
		return nil, fmt.Errorf("%s: %w", opSolve, ErrInvalidPolarization)
	}

	n := len(ex.Wavelengths)
	res := newResult(ex.Wavelengths, pol)
	chunks := chunkBounds(n, s.workers)
	start := time.Now()
	s.log.Debug("solve",
		zap.Int("samples", n),
		zap.Int("layers", len(st.Layers)),
		zap.String("propagator", s.prop.Name()),
		zap.Int("workers", s.workers),
		zap.Int("chunks", len(chunks)-1))

	hs, err := evaluateHalfspaces(st, ex)
	if err == nil {
		if len(chunks) == 2 {
			err = s.solveRange(st, hs, res, 0, n)
		} else {
			var g errgroup.Group
			g.SetLimit(s.workers)
			for c := 0; c+1 < len(chunks); c++ {
				lo, hi := chunks[c], chunks[c+1]
				g.Go(func() error {
					return s.solveRange(st, hs, res, lo, hi)
				})
			}
			err = g.Wait()
		}
	}
	if err != nil {
		s.logFailure(err)

		return nil, err
	}
	s.log.Debug("solved", zap.Int("samples", n), zap.Duration("elapsed", time.Since(start)))

	return res, nil
}

// halfspaces holds the half-space tensors and kx over the full wavelength array.
type halfspaces struct {
	front, back []optics.Tensor
	kx          []float64
}

// evaluateHalfspaces evaluates both half-space providers once on the full
// wavelength array, so a caching provider sees a single request per solve.
func evaluateHalfspaces(st Structure, ex Experiment) (halfspaces, error) {
	front, err := optics.Evaluate(st.Front, ex.Wavelengths)
	if err != nil {
		return halfspaces{}, shiftSample(err, 0, ex.Wavelengths)
	}
	back, err := optics.Evaluate(st.Back, ex.Wavelengths)
	if err != nil {
		return halfspaces{}, shiftSample(err, 0, ex.Wavelengths)
	}
	kx, err := optics.ReducedWavenumbers(front, ex.Angle, halfspace.DefaultEpsilon)
	if err != nil {
		return halfspaces{}, shiftSample(err, 0, ex.Wavelengths)
	}

	return halfspaces{front: front, back: back, kx: kx}, nil
}

// solveRange fills res for samples [lo, hi).
func (s *Solver) solveRange(st Structure, hs halfspaces, res *Result, lo, hi int) error {
	lambda := res.Wavelengths[lo:hi]
	front, back, kx := hs.front[lo:hi], hs.back[lo:hi], hs.kx[lo:hi]

	fm, err := halfspace.Transitions(kx, front, lambda, s.hsOpts...)
	if err != nil {
		return shiftSample(err, lo, res.Wavelengths)
	}
	bm, err := halfspace.Transitions(kx, back, lambda, s.hsOpts...)
	if err != nil {
		return shiftSample(err, lo, res.Wavelengths)
	}
	p, err := stack.Composer{Propagator: s.prop, Kx: kx, Direction: stack.Backward}.Compose(st.Layers, lambda)
	if err != nil {
		return shiftSample(err, lo, res.Wavelengths)
	}

	for i := range lambda {
		k := lo + i
		t := fm[i].Li.Mul(p[i]).Mul(bm[i].L)
		tti, err := t.Block(incidentIdx, incidentIdx).Inverse()
		if err == nil {
			err = matrix.ValidateFinite2(tti)
		}
		if err != nil {
			return &optics.SampleError{Op: opTransfer, Sample: k, Layer: optics.NoLayer, Wavelength: lambda[i],
				Err: fmt.Errorf("%w: %w", optics.ErrSingularTransfer, err)}
		}

		res.Kx[k] = kx[i]
		res.Transfer[k] = t
		res.JonesT[k] = tti
		res.JonesR[k] = t.Block(reflectedIdx, incidentIdx).Mul(tti)
		res.front[k] = fm[i]
		res.back[k] = bm[i]
	}

	return nil
}

// chunkBounds splits n samples into at most workers contiguous chunks and
// returns the boundaries (len = chunks+1).
func chunkBounds(n, workers int) []int {
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers
	bounds := []int{0}
	for lo := size; lo < n; lo += size {
		bounds = append(bounds, lo)
	}

	return append(bounds, n)
}

// shiftSample moves the sample index of a chunk-local SampleError to the
// full wavelength array.
func shiftSample(err error, lo int, lambda []float64) error {
	var se *optics.SampleError
	if !errors.As(err, &se) {
		return err
	}
	out := *se
	out.Sample += lo
	if out.Sample >= 0 && out.Sample < len(lambda) {
		out.Wavelength = lambda[out.Sample]
	}

	return &out
}

func (s *Solver) logFailure(err error) {
	fields := []zap.Field{zap.Error(err)}
	var se *optics.SampleError
	if errors.As(err, &se) {
		fields = append(fields,
			zap.String("op", se.Op),
			zap.Int("sample", se.Sample),
			zap.Int("layer", se.Layer),
			zap.Float64("wavelength", se.Wavelength))
	}
	s.log.Debug("solve failed", fields...)
}
