// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// MandelSize is the length of a Mandel-encoded symmetric 3×3 tensor.
const MandelSize = 6

const (
	opSym  = "Sym"
	opUsym = "Usym"
)

// mandelIndex maps Mandel slots 3..5 to the (row, col) pair they encode.
// Order is [s11, s22, s33, s23, s13, s12].
var mandelIndex = [3][2]int{{1, 2}, {0, 2}, {0, 1}}

// Sym packs a symmetric 3×3 matrix into Mandel notation:
// [a00, a11, a22, √2·a12, √2·a02, √2·a01].
// Only the upper triangle is read; symmetry is checked within DefaultEpsilon
// (relative to the largest entry) unless WithEpsilon overrides it.
//
// Errors:
//   - ErrShape when m is not 3×3.
//   - ErrAsymmetry when m is not symmetric within the tolerance.
func Sym(m Matrix, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opSym, err)
	}
	if d.r != 3 || d.c != 3 {
		return nil, matrixErrorf(opSym, fmt.Errorf("%dx%d: %w", d.r, d.c, ErrShape))
	}
	tol := o.eps * math.Max(1, MaxAbsSlice(d.data))
	for _, rc := range mandelIndex {
		i, j := rc[0], rc[1]
		if math.Abs(d.data[i*3+j]-d.data[j*3+i]) > tol {
			return nil, matrixErrorf(opSym, fmt.Errorf("a(%d,%d) != a(%d,%d): %w", i, j, j, i, ErrAsymmetry))
		}
	}

	v := make([]float64, MandelSize)
	for i := 0; i < 3; i++ {
		v[i] = d.data[i*3+i]
	}
	for k, rc := range mandelIndex {
		v[3+k] = math.Sqrt2 * d.data[rc[0]*3+rc[1]]
	}

	return v, nil
}

// Usym unpacks a Mandel 6-vector into the full symmetric 3×3 matrix.
//
// Errors:
//   - ErrDimensionMismatch when len(v) != 6.
func Usym(v []float64) (*Dense, error) {
	if err := ValidateVecLen(v, MandelSize); err != nil {
		return nil, matrixErrorf(opUsym, err)
	}
	m, err := NewDense(3, 3)
	if err != nil {
		return nil, matrixErrorf(opUsym, err)
	}
	for i := 0; i < 3; i++ {
		m.data[i*3+i] = v[i]
	}
	for k, rc := range mandelIndex {
		off := v[3+k] / math.Sqrt2
		m.data[rc[0]*3+rc[1]] = off
		m.data[rc[1]*3+rc[0]] = off
	}

	return m, nil
}
