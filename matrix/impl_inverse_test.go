// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/berreman/matrix"
)

func TestInverse4RoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			a := randomMat4(seed)
			inv, err := matrix.Inverse4(a)
			require.NoError(t, err)
			requireClose4(t, matrix.Identity4(), a.Mul(inv), 1e-12)
			requireClose4(t, matrix.Identity4(), inv.Mul(a), 1e-12)
		})
	}
}

// TestInverse4MatchesGonum cross-checks the pivoted LU against gonum's real
// inverse of the 8×8 embedding.
func TestInverse4MatchesGonum(t *testing.T) {
	a := randomMat4(42)
	got, err := matrix.Inverse4(a)
	require.NoError(t, err)

	var inv mat.Dense
	require.NoError(t, inv.Inverse(matrix.Embed(a)))
	want, err := matrix.Unembed(&inv)
	require.NoError(t, err)
	requireClose4(t, want, got, 1e-12)
}

func TestInverse4NeedsPivoting(t *testing.T) {
	// zero leading entry: an unpivoted Doolittle LU would fail here
	a := matrix.Mat4{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 2i},
		{0, 0, 3, 0},
	}
	inv, err := matrix.Inverse4(a)
	require.NoError(t, err)
	requireClose4(t, matrix.Identity4(), a.Mul(inv), 0)
}

func TestInverse4Singular(t *testing.T) {
	a := randomMat4(3)
	for i := 0; i < 4; i++ {
		a[i][3] = 0
	}
	_, err := matrix.Inverse4(a)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolve4(t *testing.T) {
	a, b := randomMat4(8), randomMat4(9)
	x, err := matrix.Solve4(a, b)
	require.NoError(t, err)
	requireClose4(t, b, a.Mul(x), 1e-12)
}

func TestCond1(t *testing.T) {
	c, err := matrix.Cond1(matrix.Identity4())
	require.NoError(t, err)
	require.InDelta(t, 1.0, c, 1e-15)

	d := matrix.Diag4(matrix.Vec4{1, 1, 1, 1e-9})
	c, err = matrix.Cond1(d)
	require.NoError(t, err)
	require.InDelta(t, 1e9, c, 1)
}
