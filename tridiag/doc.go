// Package tridiag factors and solves tridiagonal linear systems.
//
// A tridiagonal system of order n is given by three bands: the
// sub-diagonal (n-1 entries), the diagonal (n) and the super-diagonal (n-1).
// Factor performs Gaussian elimination with partial pivoting specialised to
// the band, recording row interchanges in a pivot record and the resulting
// fill-in in a second super-diagonal. Solve consumes that factorization for
// one right-hand side:
//
//	f, err := tridiag.Factor(sub, diag, super)
//	if err != nil {
//		return err // matrix.ErrSingular, matrix.ErrDimensionMismatch, ...
//	}
//	x, err := tridiag.Solve(f, rhs)
//
// Both stages run in O(n) time. The factorization is a plain value owned by
// the caller and may be reused for any number of right-hand sides.
package tridiag
