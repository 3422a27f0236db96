// SPDX-License-Identifier: MIT
// Package matrix - element-wise reductions and comparisons.
//
// Purpose:
//   - Matrix norms used by factorization thresholds and condition numbers.
//   - AllClose for tolerance-based comparison of two matrices.
//
// Determinism:
//   - Fixed flat traversal order 0..r*c-1 (or column sweeps for Norm1).

package matrix

import "math"

const (
	opNorm1    = "Norm1"
	opNormInf  = "NormInf"
	opMaxAbs   = "MaxAbs"
	opAllClose = "AllClose"
)

// Norm1 returns the maximum absolute column sum ‖m‖₁.
// Complexity: Time O(r*c), Space O(c).
func Norm1(m Matrix) (float64, error) {
	d, err := AsDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm1, err)
	}

	return norm1(d.data, d.r, d.c), nil
}

// NormInf returns the maximum absolute row sum ‖m‖∞.
// Complexity: Time O(r*c), Space O(1).
func NormInf(m Matrix) (float64, error) {
	d, err := AsDense(m)
	if err != nil {
		return 0, matrixErrorf(opNormInf, err)
	}

	var best, sum float64
	for i := 0; i < d.r; i++ {
		sum = ZeroSum
		for _, v := range d.data[i*d.c : (i+1)*d.c] {
			sum += math.Abs(v)
		}
		if sum > best {
			best = sum
		}
	}

	return best, nil
}

// MaxAbs returns the largest absolute entry of m (the scale used by pivot thresholds).
func MaxAbs(m Matrix) (float64, error) {
	d, err := AsDense(m)
	if err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}

	return MaxAbsSlice(d.data), nil
}

// MaxAbsSlice returns the largest absolute value in x (0 for an empty slice).
func MaxAbsSlice(x []float64) float64 {
	var best float64
	for _, v := range x {
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best
}

// norm1 computes the max absolute column sum over a row-major buffer.
func norm1(data []float64, r, c int) float64 {
	sums := make([]float64, c)
	for i := 0; i < r; i++ {
		for j, v := range data[i*c : (i+1)*c] {
			sums[j] += math.Abs(v)
		}
	}

	return MaxAbsSlice(sums)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Time: O(r*c). Space: O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return SliceAllClose(da.data, db.data, rtol, atol), nil
}

// SliceAllClose is AllClose for equal-length slices; differing lengths are never close.
func SliceAllClose(a, b []float64, rtol, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			return false
		}
	}

	return true
}
