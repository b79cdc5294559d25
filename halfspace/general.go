// SPDX-License-Identifier: MIT

package halfspace

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
)

// tinyFlux rejects modes that carry (numerically) no field at all.
const tinyFlux = 1e-300

// mode is one eigenpair during sorting.
type mode struct {
	q complex128
	v matrix.Vec4
}

// General returns L and the matching eigenvalues q, ordered
// (s+, s−, p+, p−), from the eigen-decomposition of delta.
//
// Errors:
//   - optics.ErrUnstableDiagonalization when the eigen solver fails or a
//     degenerate pair cannot be split into independent s/p modes.
//   - optics.ErrDegenerateGeometry when a mode carries no field (grazing).
func General(delta matrix.Mat4, opts ...Option) (matrix.Mat4, [4]complex128, error) {
	o := gatherOptions(opts...)

	vals, vecs, err := matrix.Eigen4(delta, o.eigenOpts...)
	if err != nil {
		return matrix.Mat4{}, [4]complex128{}, fmt.Errorf("%w: %w", optics.ErrUnstableDiagonalization, err)
	}

	// Stage 1: direction sort
	modes := make([]mode, 4)
	var scale float64
	for k := 0; k < 4; k++ {
		modes[k] = mode{q: vals[k], v: vecs.Col(k)}
		scale = math.Max(scale, cmplx.Abs(vals[k]))
	}
	zero := o.eps * math.Max(scale, 1)
	var forward, backward []mode
	for _, m := range modes {
		if isForward(m.q, zero) {
			forward = append(forward, m)
		} else {
			backward = append(backward, m)
		}
	}
	if len(forward) != 2 {
		return matrix.Mat4{}, [4]complex128{}, fmt.Errorf("%d forward modes in %v: %w", len(forward), vals, optics.ErrUnstableDiagonalization)
	}
	cmp := func(a, b mode) int { return compareDirection(a.q, b.q, zero) }
	slices.SortStableFunc(forward, cmp)
	slices.SortStableFunc(backward, cmp)

	// Stage 2: s/p split inside each direction pair
	fwd, err := splitPair(forward[0], forward[1], o.degTol)
	if err != nil {
		return matrix.Mat4{}, [4]complex128{}, err
	}
	bwd, err := splitPair(backward[0], backward[1], o.degTol)
	if err != nil {
		return matrix.Mat4{}, [4]complex128{}, err
	}
	ordered := [4]mode{SPlus: fwd[0], SMinus: bwd[0], PPlus: fwd[1], PMinus: bwd[1]}

	// Stage 3: flux scaling and phase normalization
	var (
		l matrix.Mat4
		q [4]complex128
	)
	for k, m := range ordered {
		v := m.v
		f := cmplx.Abs(v[0]*cmplx.Conj(v[3]) - v[1]*cmplx.Conj(v[2]))
		if f < tinyFlux {
			return matrix.Mat4{}, [4]complex128{}, fmt.Errorf("mode %d carries no flux: %w", k, optics.ErrDegenerateGeometry)
		}
		v = v.Scale(complex(1/math.Sqrt(f), 0))

		ref := v[0] // p modes: Ex
		if k == SPlus || k == SMinus {
			ref = v[1] // s modes: Ey
		}
		if a := cmplx.Abs(ref); a != 0 {
			v = v.Scale(cmplx.Conj(ref) / complex(a, 0))
		}
		l = l.SetCol(k, v)
		q[k] = m.q
	}

	// Stage 4: global rescale; the mean Ey of the s pair matches Isotropic's Ey = 1 columns
	c := (l[1][SPlus] + l[1][SMinus]) / 2
	if cmplx.Abs(c) == 0 {
		c = 1
	}

	return l.Scale(1 / c), q, nil
}

// isForward reports whether q decays towards +z (Im q > 0) or, for a
// propagating mode, travels towards +z (Re q > 0).
func isForward(q complex128, zero float64) bool {
	if im := imag(q); math.Abs(im) > zero {
		return im > 0
	}

	return real(q) > 0
}

// compareDirection orders eigenvalues of one direction group by decreasing
// Re q, then by decreasing Im q.
func compareDirection(a, b complex128, zero float64) int {
	switch d := real(a) - real(b); {
	case d > zero:
		return -1
	case d < -zero:
		return 1
	}
	switch {
	case imag(a) > imag(b):
		return -1
	case imag(a) < imag(b):
		return 1
	}

	return 0
}

// splitPair returns the pair as (s, p): larger |Ey| first. A degenerate pair
// is first replaced by its pure s (Ex = 0) and pure p (Ey = 0) combinations.
func splitPair(a, b mode, tol float64) ([2]mode, error) {
	if cmplx.Abs(a.q-b.q) <= tol*math.Max(1, cmplx.Abs(a.q)) {
		q := (a.q + b.q) / 2
		s := a.v.Scale(b.v[0]).Sub(b.v.Scale(a.v[0]))
		p := a.v.Scale(b.v[1]).Sub(b.v.Scale(a.v[1]))
		ns, np := s.Norm2(), p.Norm2()
		if ns < tol || np < tol {
			return [2]mode{}, fmt.Errorf("degenerate pair q=%v has no s/p split: %w", q, optics.ErrUnstableDiagonalization)
		}
		a = mode{q: q, v: s.Scale(complex(1/ns, 0))}
		b = mode{q: q, v: p.Scale(complex(1/np, 0))}
	}
	if cmplx.Abs(a.v[1]) < cmplx.Abs(b.v[1]) {
		a, b = b, a
	}

	return [2]mode{a, b}, nil
}
