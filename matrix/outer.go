// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	opOuter            = "Outer"
	opOuterUpdate      = "OuterUpdate"
	opOuterUpdateMinus = "OuterUpdateMinus"
)

// Outer returns the outer product M = a bᵀ, M[i,j] = a[i]*b[j].
//
// Errors:
//   - ErrInvalidDimensions when a or b is empty.
//
// Complexity: Time O(len(a)*len(b)), Space O(len(a)*len(b)).
func Outer(a, b []float64) (*Dense, error) {
	res, err := NewDense(len(a), len(b))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	fillOuter(res, a, b)

	return res, nil
}

// OuterUpdate returns C + a bᵀ as a new matrix; C is left untouched.
//
// Errors:
//   - ErrNilMatrix for nil C.
//   - ErrDimensionMismatch unless C is len(a)×len(b).
func OuterUpdate(a, b []float64, c Matrix) (*Dense, error) {
	return outerUpdate(a, b, c, +1, opOuterUpdate)
}

// OuterUpdateMinus returns C - a bᵀ as a new matrix; C is left untouched.
// Same contract as OuterUpdate.
func OuterUpdateMinus(a, b []float64, c Matrix) (*Dense, error) {
	return outerUpdate(a, b, c, -1, opOuterUpdateMinus)
}

// outerUpdate validates the shape of c against (len(a), len(b)) before any
// arithmetic and then reuses addSub on the materialized outer product.
func outerUpdate(a, b []float64, c Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateNotNil(c); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if c.Rows() != len(a) || c.Cols() != len(b) {
		return nil, matrixErrorf(opTag, fmt.Errorf("C is %dx%d, outer is %dx%d: %w",
			c.Rows(), c.Cols(), len(a), len(b), ErrDimensionMismatch))
	}
	ab, err := Outer(a, b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return addSub(c, ab, sign, opTag)
}

func fillOuter(dst *Dense, a, b []float64) {
	var base int
	for i, ai := range a {
		base = i * dst.c
		for j, bj := range b {
			dst.data[base+j] = ai * bj
		}
	}
}
