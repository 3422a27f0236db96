// SPDX-License-Identifier: MIT

package ops

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvmath/matrix"
)

// Condition returns the 1-norm condition number κ₁(A) = ‖A‖₁·‖A⁻¹‖₁.
// Implementation:
//   - Stage 1: validate m non-nil and square.
//   - Stage 2: factorize with pivot tolerance 0, so only an exactly zero
//     pivot counts as singular; ill-conditioned input is still factorized.
//   - Stage 3: form A⁻¹ from the factors and take the product of 1-norms.
//
// Behavior highlights:
//   - Never fails because A is ill-conditioned: the result is simply large.
//   - Exactly singular input (or overflow of the product) returns
//     math.MaxFloat64, keeping the result finite.
//   - The result is clamped to ≥ 1, the mathematical lower bound.
//
// Errors: ErrNilMatrix, ErrShape only.
// Complexity: O(n³) time, O(n²) memory.
func Condition(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, opsErrorf(opCondition, err)
	}
	f, err := Factorize(m, matrix.WithPivotTolerance(0))
	if errors.Is(err, matrix.ErrSingular) {
		return math.MaxFloat64, nil
	}
	if err != nil {
		return 0, opsErrorf(opCondition, err)
	}
	inv, err := f.Inverse()
	if err != nil {
		return 0, opsErrorf(opCondition, err)
	}
	invNorm, err := matrix.Norm1(inv)
	if err != nil {
		return 0, opsErrorf(opCondition, err)
	}

	return finiteCondition(f.anorm * invNorm), nil
}

// Condition2 returns the 2-norm condition number σmax/σmin, with singular
// values from SingularValues. Same finiteness contract as Condition.
//
// Errors: ErrNilMatrix, ErrShape only.
func Condition2(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, opsErrorf(opCondition2, err)
	}
	sv, err := SingularValues(m)
	if err != nil {
		return 0, opsErrorf(opCondition2, err)
	}
	smax, smin := sv[0], sv[len(sv)-1]
	if smin == 0 {
		return math.MaxFloat64, nil
	}

	return finiteCondition(smax / smin), nil
}

func finiteCondition(k float64) float64 {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return math.MaxFloat64
	}

	return math.Max(1, k)
}
