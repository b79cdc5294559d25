// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/berreman/matrix"
)

var backends = map[string]matrix.Exponentiator{
	"pade":     matrix.PadeExp{},
	"embedded": matrix.EmbeddedExp{},
}

func TestExpZeroIsIdentity(t *testing.T) {
	for name, b := range backends {
		t.Run(name, func(t *testing.T) {
			e, err := b.Exp(matrix.Mat4{})
			require.NoError(t, err)
			requireClose4(t, matrix.Identity4(), e, 1e-15)
		})
	}
}

func TestExpDiagonal(t *testing.T) {
	d := matrix.Vec4{1, -2i, 0.5 + 3i, -4}
	var want matrix.Vec4
	for i := range d {
		want[i] = cmplx.Exp(d[i])
	}
	for name, b := range backends {
		t.Run(name, func(t *testing.T) {
			e, err := b.Exp(matrix.Diag4(d))
			require.NoError(t, err)
			requireClose4(t, matrix.Diag4(want), e, 1e-12)
		})
	}
}

// TestExpInverse checks exp(A)·exp(−A) = I, including norms that force scaling.
func TestExpInverse(t *testing.T) {
	for _, scale := range []complex128{0.1, 1, 10i, 40} {
		a := randomMat4(17).Scale(scale)
		for name, b := range backends {
			t.Run(fmt.Sprintf("%s/scale=%v", name, scale), func(t *testing.T) {
				p, err := b.Exp(a)
				require.NoError(t, err)
				m, err := b.Exp(a.Scale(-1))
				require.NoError(t, err)
				requireClose4(t, matrix.Identity4(), p.Mul(m), 1e-8*p.MaxAbs()*m.MaxAbs())
			})
		}
	}
}

func TestExpBackendsAgree(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		a := randomMat4(seed).Scale(3i)
		p, err := matrix.PadeExp{}.Exp(a)
		require.NoError(t, err)
		e, err := matrix.EmbeddedExp{}.Exp(a)
		require.NoError(t, err)
		requireClose4(t, p, e, 1e-10*p.MaxAbs())
	}
}

func TestExpRejectsInf(t *testing.T) {
	a := matrix.Identity4()
	a[0][3] = cmplx.Inf()
	for name, b := range backends {
		t.Run(name, func(t *testing.T) {
			_, err := b.Exp(a)
			require.ErrorIs(t, err, matrix.ErrNaNInf)
		})
	}
}
