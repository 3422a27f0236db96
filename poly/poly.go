// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
)

// ErrEmpty is returned for an empty coefficient slice. It wraps
// matrix.ErrDimensionMismatch, so either sentinel matches with errors.Is.
var ErrEmpty = fmt.Errorf("poly: %w", errEmpty)
var errEmpty = fmt.Errorf("no coefficients: %w", matrix.ErrDimensionMismatch)

// Polyval evaluates the polynomial with coefficients in descending powers,
// coeffs[0]*x^k + coeffs[1]*x^(k-1) + ... + coeffs[k], at x.
//
// Horner's scheme: p = (...((c0·x + c1)·x + c2)...)·x + ck, O(len(coeffs)).
// An empty coefficient slice is a contract violation (ErrEmpty).
func Polyval(coeffs []float64, x float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, ErrEmpty
	}
	p := coeffs[0]
	for _, c := range coeffs[1:] {
		p = p*x + c
	}

	return p, nil
}

// Polyder returns the coefficients of the derivative, in descending powers.
// The derivative of a constant is the zero polynomial [0].
func Polyder(coeffs []float64) ([]float64, error) {
	k := len(coeffs) - 1
	if k < 0 {
		return nil, ErrEmpty
	}
	if k == 0 {
		return []float64{0}, nil
	}
	out := make([]float64, k)
	for i := 0; i < k; i++ {
		out[i] = coeffs[i] * float64(k-i)
	}

	return out, nil
}

// FromRoots returns the monic polynomial Π (x - rᵢ) in descending powers.
// No roots yields the constant polynomial [1].
func FromRoots(roots []float64) []float64 {
	out := make([]float64, 1, len(roots)+1)
	out[0] = 1
	for _, r := range roots {
		// Multiply by (x - r): shift up one power, subtract r times the old polynomial.
		out = append(out, 0)
		for i := len(out) - 1; i > 0; i-- {
			out[i] -= r * out[i-1]
		}
	}

	return out
}
