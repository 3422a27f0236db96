// SPDX-License-Identifier: MIT

package tridiag

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/matrix"
)

const (
	opFactor = "tridiag.Factor"
	opSolve  = "tridiag.Solve"
	opDense  = "tridiag.Dense"
)

func tridiagErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU is the factorization of a tridiagonal matrix A = P·L·U produced by Factor.
//
// Fields follow the banded LU layout:
//   - DL  (n-1): multipliers of the unit lower bidiagonal L.
//   - D   (n):   diagonal of U.
//   - DU  (n-1): first super-diagonal of U.
//   - DU2 (n-2): second super-diagonal of U, the fill-in created by row swaps.
//   - Ipiv (n):  at step i row i was interchanged with row Ipiv[i]
//     (Ipiv[i] is i or i+1; the last entry is always n-1).
//
// The fields are exported so the two-stage protocol stays explicit; Solve
// checks their lengths against each other before touching the data.
type LU struct {
	DL   []float64
	D    []float64
	DU   []float64
	DU2  []float64
	Ipiv []int
}

// Dim returns n, the order of the factorized system.
func (f *LU) Dim() int { return len(f.D) }

// Factor computes the LU factorization of the tridiagonal matrix with
// sub-diagonal sub (n-1), diagonal diag (n) and super-diagonal super (n-1),
// using elimination with partial pivoting and row interchanges.
// Implementation:
//   - Stage 1: validate n ≥ 1 and the three band lengths.
//   - Stage 2: copy the bands; for i = 0..n-2 pick the larger of |d[i]| and
//     |dl[i]| as pivot, swapping rows i and i+1 when the sub-diagonal wins.
//     A swap moves the next super-diagonal entry into DU2 (fill-in).
//   - Stage 3: every pivot, and the last diagonal entry, must exceed the
//     pivot threshold; otherwise ErrSingular.
//
// Behavior highlights:
//   - Inputs are never mutated.
//   - Pivot policy comes from matrix options (WithPivotTolerance) with
//     scale = largest absolute entry over the three bands.
//
// Errors:
//   - ErrInvalidDimensions (n == 0), ErrDimensionMismatch (band lengths),
//     ErrSingular (zero pivot).
//
// Complexity:
//   - Time O(n), Space O(n).
func Factor(sub, diag, super []float64, opts ...matrix.Option) (*LU, error) {
	n := len(diag)
	if n == 0 {
		return nil, tridiagErrorf(opFactor, matrix.ErrInvalidDimensions)
	}
	if err := validateBands(sub, diag, super); err != nil {
		return nil, tridiagErrorf(opFactor, err)
	}
	o := matrix.NewOptions(opts...)

	f := &LU{
		DL:   append([]float64(nil), sub...),
		D:    append([]float64(nil), diag...),
		DU:   append([]float64(nil), super...),
		DU2:  make([]float64, max(n-2, 0)),
		Ipiv: make([]int, n),
	}
	scale := math.Max(matrix.MaxAbsSlice(diag), math.Max(matrix.MaxAbsSlice(sub), matrix.MaxAbsSlice(super)))
	thr := o.PivotThreshold(n, scale)

	dl, d, du, du2 := f.DL, f.D, f.DU, f.DU2
	var fact, temp float64
	for i := 0; i < n-1; i++ {
		f.Ipiv[i] = i
		if math.Abs(d[i]) >= math.Abs(dl[i]) {
			// No row interchange required; eliminate dl[i].
			if math.Abs(d[i]) <= thr {
				return nil, singular(i, d[i], thr)
			}
			fact = dl[i] / d[i]
			dl[i] = fact
			d[i+1] -= fact * du[i]
			continue
		}
		// Interchange rows i and i+1; eliminate the old d[i].
		if math.Abs(dl[i]) <= thr {
			return nil, singular(i, dl[i], thr)
		}
		fact = d[i] / dl[i]
		d[i] = dl[i]
		dl[i] = fact
		temp = du[i]
		du[i] = d[i+1]
		d[i+1] = temp - fact*d[i+1]
		if i < n-2 {
			du2[i] = du[i+1]
			du[i+1] = -fact * du[i+1]
		}
		f.Ipiv[i] = i + 1
	}
	f.Ipiv[n-1] = n - 1
	if math.Abs(d[n-1]) <= thr {
		return nil, singular(n-1, d[n-1], thr)
	}

	return f, nil
}

func singular(i int, pivot, thr float64) error {
	return tridiagErrorf(opFactor, fmt.Errorf("pivot %d: |%g| <= %g: %w", i, pivot, thr, matrix.ErrSingular))
}

// Solve returns x with A·x = rhs, where f = Factor(sub, diag, super).
// Implementation:
//   - Stage 1: validate the artifact lengths against n = len(f.D) and len(rhs) == n.
//   - Stage 2: forward elimination with L, applying the recorded interchanges.
//   - Stage 3: back substitution with the three bands of U (D, DU, DU2).
//
// Errors:
//   - ErrNilMatrix (nil f), ErrDimensionMismatch (rhs or artifact lengths).
//
// Complexity:
//   - Time O(n), Space O(n).
func Solve(f *LU, rhs []float64) ([]float64, error) {
	if f == nil {
		return nil, tridiagErrorf(opSolve, matrix.ErrNilMatrix)
	}
	if err := f.validate(); err != nil {
		return nil, tridiagErrorf(opSolve, err)
	}
	n := len(f.D)
	if err := matrix.ValidateVecLen(rhs, n); err != nil {
		return nil, tridiagErrorf(opSolve, err)
	}

	b := append([]float64(nil), rhs...)
	dl, d, du, du2 := f.DL, f.D, f.DU, f.DU2

	// L·y = P·b
	var temp float64
	for i := 0; i < n-1; i++ {
		if f.Ipiv[i] == i {
			b[i+1] -= dl[i] * b[i]
		} else {
			temp = b[i]
			b[i] = b[i+1]
			b[i+1] = temp - dl[i]*b[i]
		}
	}

	// U·x = y
	b[n-1] /= d[n-1]
	if n > 1 {
		b[n-2] = (b[n-2] - du[n-2]*b[n-1]) / d[n-2]
	}
	for i := n - 3; i >= 0; i-- {
		b[i] = (b[i] - du[i]*b[i+1] - du2[i]*b[i+2]) / d[i]
	}

	return b, nil
}

// SolveSystem factors the tridiagonal system and solves it for rhs in one call.
func SolveSystem(sub, diag, super, rhs []float64, opts ...matrix.Option) ([]float64, error) {
	f, err := Factor(sub, diag, super, opts...)
	if err != nil {
		return nil, err
	}

	return Solve(f, rhs)
}

// Dense returns the full n×n matrix with the given bands.
//
// Errors: ErrInvalidDimensions (n == 0), ErrDimensionMismatch (band lengths).
func Dense(sub, diag, super []float64) (*matrix.Dense, error) {
	n := len(diag)
	if n == 0 {
		return nil, tridiagErrorf(opDense, matrix.ErrInvalidDimensions)
	}
	if err := validateBands(sub, diag, super); err != nil {
		return nil, tridiagErrorf(opDense, err)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, tridiagErrorf(opDense, err)
	}
	a := m.RawData()
	for i := 0; i < n; i++ {
		a[i*n+i] = diag[i]
		if i < n-1 {
			a[i*n+i+1] = super[i]
			a[(i+1)*n+i] = sub[i]
		}
	}

	return m, nil
}

func validateBands(sub, diag, super []float64) error {
	n := len(diag)
	if len(sub) != n-1 {
		return fmt.Errorf("sub-diagonal has %d entries, want %d: %w", len(sub), n-1, matrix.ErrDimensionMismatch)
	}
	if len(super) != n-1 {
		return fmt.Errorf("super-diagonal has %d entries, want %d: %w", len(super), n-1, matrix.ErrDimensionMismatch)
	}

	return nil
}

// validate checks that every artifact has the length implied by len(D).
func (f *LU) validate() error {
	n := len(f.D)
	if n == 0 {
		return matrix.ErrInvalidDimensions
	}
	switch {
	case len(f.DL) != n-1, len(f.DU) != n-1:
		return fmt.Errorf("band lengths %d/%d/%d: %w", len(f.DL), n, len(f.DU), matrix.ErrDimensionMismatch)
	case len(f.DU2) != max(n-2, 0):
		return fmt.Errorf("fill-in has %d entries, want %d: %w", len(f.DU2), max(n-2, 0), matrix.ErrDimensionMismatch)
	case len(f.Ipiv) != n:
		return fmt.Errorf("pivot record has %d entries, want %d: %w", len(f.Ipiv), n, matrix.ErrDimensionMismatch)
	}

	return nil
}
