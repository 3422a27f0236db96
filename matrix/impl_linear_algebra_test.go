// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestAddSubScale checks element-wise arithmetic on a small literal case.
func TestAddSubScale(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{11, 22, 33, 44}, sum.Data())

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 18, 27, 36}, diff.Data())

	sc, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -4, -6, -8}, sc.Data())
	require.Equal(t, []float64{1, 2, 3, 4}, a.Data(), "inputs are never mutated")

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec compares y = A·x against gonum for several shapes.
func TestMatVec(t *testing.T) {
	rng := newRand(1)
	for _, tc := range []struct{ r, c int }{{1, 1}, {3, 3}, {4, 7}, {9, 2}} {
		t.Run(fmt.Sprintf("%dx%d", tc.r, tc.c), func(t *testing.T) {
			a := RandomDense(t, rng, tc.r, tc.c)
			x := RandomVec(rng, tc.c)

			got, err := matrix.MatVec(a, x)
			require.NoError(t, err)

			var want mat.VecDense
			want.MulVec(toGonum(a), mat.NewVecDense(tc.c, x))
			require.Len(t, got, tc.r)
			for i := range got {
				require.InDelta(t, want.AtVec(i), got[i], 1e-13)
			}
		})
	}

	a := MustDense(t, 2, 3)
	_, err := matrix.MatVec(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVecTransMatchesTranspose verifies Aᵀ·x equals Transpose(A)·x.
func TestMatVecTransMatchesTranspose(t *testing.T) {
	rng := newRand(2)
	a := RandomDense(t, rng, 5, 3)
	x := RandomVec(rng, 5)

	got, err := matrix.MatVecTrans(a, x)
	require.NoError(t, err)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	want, err := matrix.MatVec(at, x)
	require.NoError(t, err)
	require.True(t, matrix.SliceAllClose(got, want, 1e-14, 1e-14))

	_, err = matrix.MatVecTrans(a, RandomVec(rng, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulAgainstGonum compares the product with gonum's Mul.
func TestMulAgainstGonum(t *testing.T) {
	rng := newRand(3)
	for _, tc := range []struct{ r, k, c int }{{1, 1, 1}, {2, 3, 4}, {6, 6, 6}, {7, 1, 5}} {
		t.Run(fmt.Sprintf("%dx%dx%d", tc.r, tc.k, tc.c), func(t *testing.T) {
			a := RandomDense(t, rng, tc.r, tc.k)
			b := RandomDense(t, rng, tc.k, tc.c)
			got, err := matrix.Mul(a, b)
			require.NoError(t, err)

			var want mat.Dense
			want.Mul(toGonum(a), toGonum(b))
			requireMatchesGonum(t, &want, got)
		})
	}
}

// TestMulIdentityAndMismatch covers I·A = A and inner-dimension errors.
func TestMulIdentityAndMismatch(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	got, err := matrix.Mul(id, a)
	require.NoError(t, err)
	require.Equal(t, a.Data(), got.Data())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestHelpers_InterfaceHiding_Fallback ensures that a wrapper hiding the
// concrete type produces the same results as the bare Dense.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	rng := newRand(4)
	base := RandomDense(t, rng, 3, 3)
	x := RandomVec(rng, 3)

	sum1, err := matrix.Add(base, base)
	require.NoError(t, err)
	sum2, err := matrix.Add(hide{base}, base)
	require.NoError(t, err)
	require.Equal(t, sum1.Data(), sum2.Data())

	p1, err := matrix.Mul(base, base)
	require.NoError(t, err)
	p2, err := matrix.Mul(hide{base}, hide{base})
	require.NoError(t, err)
	require.Equal(t, p1.Data(), p2.Data())

	y1, err := matrix.MatVec(base, x)
	require.NoError(t, err)
	y2, err := matrix.MatVec(hide{base}, x)
	require.NoError(t, err)
	require.Equal(t, y1, y2)
}

// TestTranspose checks shape and entries.
func TestTranspose(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	r, c := at.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, at.Data())
}
