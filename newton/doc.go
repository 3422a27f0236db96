// Package newton solves square nonlinear systems R(x) = 0 with plain
// Newton-Raphson iteration on top of the dense LU kernels in matrix/ops.
//
// A System supplies the residual and its Jacobian; Solve iterates
//
//	x ← x − J(x)⁻¹·R(x)
//
// until ‖R‖₂ falls below Options.Tol (optionally relative to the initial
// residual) or Options.MaxIter steps have been taken.
//
// Diagnostics:
//   - DiffJac builds a forward-difference Jacobian.
//   - DiffJacCheck measures how far an analytic Jacobian is from it.
//   - With Options.Verbose set, each iteration is logged through the
//     package logger (see SetLogger) at debug level.
//
// Errors:
//   - ErrMaxIterations (wraps matrix.ErrNoConvergence).
//   - ErrBadSystem (wraps matrix.ErrDimensionMismatch).
//   - matrix.ErrSingular from the linear solve, wrapped.
package newton
