// SPDX-License-Identifier: MIT

// Package ops provides the factorization-based operations of lvmath:
// LU with partial pivoting, linear solves, inversion and condition numbers.
package ops

import (
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
)

// Operation tags for error wrapping.
const (
	opFactorize  = "Factorize"
	opLUSolve    = "LU.Solve"
	opLUSolveT   = "LU.SolveTrans"
	opLUInverse  = "LU.Inverse"
	opSolve      = "Solve"
	opInverse    = "Inverse"
	opCondition  = "Condition"
	opCondition2 = "Condition2"
	opSingular   = "SingularValues"
)

func opsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU is the factorization P·A = L·U of a square matrix A.
// L (unit lower) and U (upper) are packed into one row-major buffer:
// the strict lower triangle holds the multipliers of L, the upper triangle
// including the diagonal holds U. The value is owned by the caller between
// Factorize and its Solve/Inverse calls; it is never mutated by them.
type LU struct {
	n     int
	lu    []float64 // packed L\U, len n*n
	piv   []int     // piv[i] = row of A that ended up at position i
	sign  float64   // determinant sign of P (+1 or -1)
	anorm float64   // ‖A‖₁ of the factorized matrix
}

// Factorize computes the LU factorization of m with partial pivoting.
// Implementation:
//   - Stage 1: validate m non-nil and square; copy it into a packed buffer.
//   - Stage 2: for each column k pick the largest |a(i,k)|, i ≥ k, swap rows,
//     store multipliers below the pivot and update the trailing block.
//   - Stage 3: a pivot with |p| ≤ PivotThreshold(n, max|a|) aborts with ErrSingular.
//
// Behavior highlights:
//   - The input is never mutated.
//   - Pivot policy comes from matrix options (WithPivotTolerance).
//
// Errors:
//   - ErrNilMatrix, ErrShape (not square), ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(m matrix.Matrix, opts ...matrix.Option) (*LU, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opsErrorf(opFactorize, err)
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, opsErrorf(opFactorize, err)
	}
	o := matrix.NewOptions(opts...)

	n := d.Rows()
	f := &LU{
		n:    n,
		lu:   d.Data(),
		piv:  make([]int, n),
		sign: 1,
	}
	f.anorm, _ = matrix.Norm1(d)
	for i := range f.piv {
		f.piv[i] = i
	}
	thr := o.PivotThreshold(n, matrix.MaxAbsSlice(f.lu))

	a := f.lu
	var (
		i, j, k, p int
		pv, mult   float64
		rowK, rowI int
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below the diagonal.
		p = k
		pv = abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := abs(a[i*n+k]); v > pv {
				pv, p = v, i
			}
		}
		if pv <= thr {
			return nil, opsErrorf(opFactorize, fmt.Errorf("pivot %d: |%g| <= %g: %w", k, pv, thr, matrix.ErrSingular))
		}
		if p != k {
			swapRows(a, n, p, k)
			f.piv[p], f.piv[k] = f.piv[k], f.piv[p]
			f.sign = -f.sign
		}

		rowK = k * n
		for i = k + 1; i < n; i++ {
			rowI = i * n
			mult = a[rowI+k] / a[rowK+k]
			a[rowI+k] = mult
			if mult == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[rowI+j] -= mult * a[rowK+j]
			}
		}
	}

	return f, nil
}

// Dim returns n for an n×n factorization.
func (f *LU) Dim() int { return f.n }

// Pivots returns a copy of the row permutation: position i holds row Pivots()[i] of A.
func (f *LU) Pivots() []int {
	out := make([]int, f.n)
	copy(out, f.piv)

	return out
}

// Det returns det(A) = sign(P) · Π U(i,i).
func (f *LU) Det() float64 {
	det := f.sign
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}

	return det
}

// Solve returns x with A·x = b.
// Implementation:
//   - Stage 1: permute b by the pivot record.
//   - Stage 2: forward substitution with unit L.
//   - Stage 3: back substitution with U.
//
// Errors: ErrDimensionMismatch if len(b) != n.
// Complexity: Time O(n²), Space O(n).
func (f *LU) Solve(b []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(b, f.n); err != nil {
		return nil, opsErrorf(opLUSolve, err)
	}
	x := make([]float64, f.n)
	for i, p := range f.piv {
		x[i] = b[p]
	}
	f.solveInPlace(x)

	return x, nil
}

// solveInPlace overwrites the permuted right-hand side x with the solution.
func (f *LU) solveInPlace(x []float64) {
	n, a := f.n, f.lu
	var (
		i, k, row int
		sum       float64
	)
	for i = 1; i < n; i++ {
		row = i * n
		sum = x[i]
		for k = 0; k < i; k++ {
			sum -= a[row+k] * x[k]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		row = i * n
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= a[row+k] * x[k]
		}
		x[i] = sum / a[row+i]
	}
}

// SolveTrans returns x with Aᵀ·x = b, reusing the same factors:
// Aᵀ = Uᵀ·Lᵀ·P, so solve Uᵀz = b, Lᵀw = z, then x = Pᵀw.
//
// Errors: ErrDimensionMismatch if len(b) != n.
func (f *LU) SolveTrans(b []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(b, f.n); err != nil {
		return nil, opsErrorf(opLUSolveT, err)
	}
	n, a := f.n, f.lu
	w := make([]float64, n)
	copy(w, b)
	var (
		i, k int
		sum  float64
	)
	for i = 0; i < n; i++ {
		sum = w[i]
		for k = 0; k < i; k++ {
			sum -= a[k*n+i] * w[k]
		}
		w[i] = sum / a[i*n+i]
	}
	for i = n - 2; i >= 0; i-- {
		sum = w[i]
		for k = i + 1; k < n; k++ {
			sum -= a[k*n+i] * w[k]
		}
		w[i] = sum
	}
	x := make([]float64, n)
	for i, p := range f.piv {
		x[p] = w[i]
	}

	return x, nil
}

// Inverse returns A⁻¹ by solving against each identity column.
// Complexity: Time O(n³), Space O(n²).
func (f *LU) Inverse() (*matrix.Dense, error) {
	n := f.n
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, opsErrorf(opLUInverse, err)
	}
	out := inv.RawData()
	col := make([]float64, n)
	for j := 0; j < n; j++ {
		// P·e_j: position i is 1 where piv[i] == j.
		for i, p := range f.piv {
			if p == j {
				col[i] = 1
			} else {
				col[i] = 0
			}
		}
		f.solveInPlace(col)
		for i := 0; i < n; i++ {
			out[i*n+j] = col[i]
		}
	}

	return inv, nil
}

func swapRows(a []float64, n, r1, r2 int) {
	o1, o2 := r1*n, r2*n
	for j := 0; j < n; j++ {
		a[o1+j], a[o2+j] = a[o2+j], a[o1+j]
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
