// SPDX-License-Identifier: MIT
package ops_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// hide masks the concrete *Dense type to exercise the interface path.
type hide struct{ matrix.Matrix }

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randomSquare returns an n×n matrix with entries in [-1, 1) plus shift on
// the diagonal; shift > 0 keeps the system comfortably nonsingular.
func randomSquare(t *testing.T, rng *rand.Rand, n int, shift float64) *matrix.Dense {
	t.Helper()
	data := make([]float64, n*n)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
	for i := 0; i < n; i++ {
		data[i*n+i] += shift
	}
	m, err := matrix.NewDenseFrom(n, n, data)
	require.NoError(t, err)

	return m
}

func randomVec(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 2*rng.Float64() - 1
	}

	return v
}

func fromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func toGonum(m *matrix.Dense) *mat.Dense {
	r, c := m.Dims()

	return mat.NewDense(r, c, m.Data())
}

// requireClose compares two slices with a mixed absolute/relative tolerance.
func requireClose(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	require.True(t, matrix.SliceAllClose(got, want, tol, tol), "got %v\nwant %v", got, want)
}
