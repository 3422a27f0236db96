// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/matrix"
)

// Sentinels re-exported from matrix so callers of this package need only one import.
var (
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrDegenerate        = matrix.ErrDegenerate
)

// DevSize is the length of a Mandel/Voigt-encoded symmetric tensor.
const DevSize = matrix.MandelSize

const (
	opAdd       = "vector.Add"
	opSub       = "vector.Sub"
	opDot       = "vector.Dot"
	opNormalize = "vector.Normalize"
	opDev       = "vector.Dev"
)

func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Negate returns -v.
func Negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}

	return out
}

// Add returns a + b. Errors: ErrDimensionMismatch if len(a) != len(b).
func Add(a, b []float64) ([]float64, error) {
	if err := matrix.ValidateSameLen(a, b); err != nil {
		return nil, vectorErrorf(opAdd, err)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// Sub returns a - b. Errors: ErrDimensionMismatch if len(a) != len(b).
func Sub(a, b []float64) ([]float64, error) {
	if err := matrix.ValidateSameLen(a, b); err != nil {
		return nil, vectorErrorf(opSub, err)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// Scale returns alpha*v.
func Scale(alpha float64, v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = alpha * x
	}

	return out
}

// Dot returns Σ a[i]*b[i]. Errors: ErrDimensionMismatch if len(a) != len(b).
func Dot(a, b []float64) (float64, error) {
	if err := matrix.ValidateSameLen(a, b); err != nil {
		return 0, vectorErrorf(opDot, err)
	}

	return dot(a, b), nil
}

func dot(a, b []float64) float64 {
	sum := matrix.ZeroSum
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Norm2 returns the Euclidean norm of a.
// Implementation:
//   - Scaled sum of squares: track scale = max|a[i]| seen so far and
//     ssq = Σ (a[i]/scale)², so no intermediate square overflows or
//     underflows; result = scale*sqrt(ssq).
//
// Complexity: Time O(n), Space O(1). An empty vector has norm 0.
func Norm2(a []float64) float64 {
	scale, ssq := 0.0, 1.0
	for _, x := range a {
		if x == 0 {
			continue
		}
		ax := math.Abs(x)
		if scale < ax {
			r := scale / ax
			ssq = 1 + ssq*r*r
			scale = ax
		} else {
			r := ax / scale
			ssq += r * r
		}
	}
	if scale == 0 {
		return 0
	}

	return scale * math.Sqrt(ssq)
}

// Normalize returns a / ‖a‖₂.
// Errors: ErrDegenerate when ‖a‖₂ == 0 (including the empty vector).
func Normalize(a []float64) ([]float64, error) {
	n := Norm2(a)
	if n == 0 {
		return nil, vectorErrorf(opNormalize, ErrDegenerate)
	}

	return Scale(1/n, a), nil
}

// Dev returns the deviatoric part of a Mandel/Voigt 6-vector
// [s11, s22, s33, s23, s13, s12]: the mean of the first three
// components is subtracted from those three only.
//
// Errors: ErrDimensionMismatch when len(s) != 6.
func Dev(s []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(s, DevSize); err != nil {
		return nil, vectorErrorf(opDev, err)
	}
	out := make([]float64, DevSize)
	copy(out, s)
	mean := (s[0] + s[1] + s[2]) / 3
	for i := 0; i < 3; i++ {
		out[i] -= mean
	}

	return out, nil
}

// AllClose reports whether |a[i]-b[i]| ≤ atol + rtol*|b[i]| for all i.
// Vectors of different length are never close.
func AllClose(a, b []float64, rtol, atol float64) bool {
	return matrix.SliceAllClose(a, b, rtol, atol)
}
