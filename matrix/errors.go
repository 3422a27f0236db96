// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across lvmath.
// All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// with fmt.Errorf("Op: %w", ErrX) at the facade; callers still match with
// errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape (rank/square) -> dimension mismatch -> numeric (singular/degenerate).

var (
	// ErrDimensionMismatch indicates incompatible operand lengths or shapes,
	// e.g. Add on vectors of different length, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrShape signals that an input does not have the required rank (not 2-D)
	// or is not square where a square matrix is required.
	ErrShape = errors.New("matrix: invalid shape")

	// ErrSingular is returned when a factorization meets a pivot whose
	// magnitude is at or below the configured pivot threshold.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDegenerate signals that an operation cannot proceed because of a
	// degenerate value, e.g. normalizing a zero-length vector.
	ErrDegenerate = errors.New("matrix: degenerate input")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (ingestion, Set, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNoConvergence indicates that an iterative routine (Newton iteration)
	// did not reach its tolerance within the iteration cap.
	ErrNoConvergence = errors.New("matrix: iteration did not converge")
)

// ErrNonSquare names the "square required" flavour of ErrShape.
// It aliases ErrShape so errors.Is(err, ErrShape) holds for both.
var ErrNonSquare = ErrShape
