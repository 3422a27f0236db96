// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/lvmath/matrix"

// Inverse returns the inverse of the square matrix m, or an error if m is not
// square or is singular.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is non-nil and square.
//	Stage 2 (Decompose): P·A = L·U with partial pivoting.
//	Stage 3 (Execute): for each identity column eᵢ, solve L·y = P·eᵢ then U·x = y.
//	Stage 4 (Finalize): assemble columns into the inverse and return.
//
// Errors: ErrNilMatrix, ErrShape (not square; host buffers that are not 2-D
// are rejected earlier by matrix.NewDenseShape with the same sentinel),
// ErrSingular.
//
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func Inverse(m matrix.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	f, err := Factorize(m, opts...)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}
	inv, err := f.Inverse()
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}

	return inv, nil
}

// Solve returns x with m·x = b.
// Shape is checked before length: a non-square m is ErrShape even when
// len(b) also mismatches.
//
// Errors: ErrNilMatrix, ErrShape, ErrDimensionMismatch (len(b) != m.Rows()),
// ErrSingular.
//
// Complexity: O(n³) for the factorization plus O(n²) for the substitutions.
func Solve(m matrix.Matrix, b []float64, opts ...matrix.Option) ([]float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opsErrorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, m.Rows()); err != nil {
		return nil, opsErrorf(opSolve, err)
	}
	f, err := Factorize(m, opts...)
	if err != nil {
		return nil, opsErrorf(opSolve, err)
	}

	return f.Solve(b)
}
