// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the dense kernels.
//   - Bridge to gonum/mat, which serves as the reference implementation.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// Tolerances used when comparing against the gonum reference.
const (
	rtolRef = 1e-12
	atolRef = 1e-12
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the AsDense fallback path in the code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows builds a *Dense from nested rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// newRand returns a deterministic generator; every test seeds its own.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomDense fills an r×c matrix with uniform values in [-1, 1).
func RandomDense(t *testing.T, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// RandomVec returns n uniform values in [-1, 1).
func RandomVec(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 2*rng.Float64() - 1
	}

	return v
}

// toGonum copies a *Dense into a gonum matrix.
func toGonum(m *matrix.Dense) *mat.Dense {
	r, c := m.Dims()

	return mat.NewDense(r, c, m.Data())
}

// requireMatchesGonum asserts got equals the gonum reference entry by entry.
func requireMatchesGonum(t *testing.T, want mat.Matrix, got *matrix.Dense) {
	t.Helper()
	r, c := want.Dims()
	require.Equal(t, r, got.Rows(), "rows")
	require.Equal(t, c, got.Cols(), "cols")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(t, want.At(i, j), MustAt(t, got, i, j), atolRef+rtolRef*abs(want.At(i, j)), "[%d,%d]", i, j)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
