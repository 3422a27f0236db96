// Package matrix provides dense row-major storage and the basic kernels of
// lvmath: matrix-vector and matrix-matrix products, outer products and
// rank-1 updates, norms, and Mandel conversions for symmetric 3×3 tensors.
//
// The package also owns the error taxonomy shared by every lvmath package:
//
//   - ErrDimensionMismatch: operand lengths or shapes are incompatible.
//   - ErrShape: input is not 2-D, or not square where required.
//   - ErrSingular: a factorization met a (numerically) zero pivot.
//   - ErrDegenerate: a degenerate value, e.g. normalizing a zero vector.
//
// All kernels validate before computing, never mutate their inputs and
// return freshly allocated results. Match failures with errors.Is.
//
// Factorizations live in matrix/ops (dense LU) and tridiag (banded LU);
// both read the pivot policy configured through Option values from here.
package matrix
