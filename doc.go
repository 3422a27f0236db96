// Package lvmath is a small dense and banded linear-algebra kernel for
// numerical models: the building blocks a constitutive-model or circuit
// solver calls inside its Newton loop.
//
// What is in the box?
//
//	A pure-Go library of deterministic, allocation-explicit kernels:
//		• Vectors: add, subtract, scale, dot, Euclidean norm, normalize, deviator
//		• Dense matrices: row-major storage, products, transpose, outer updates
//		• Factorizations: LU with partial pivoting, solve, inverse, condition numbers
//		• Banded systems: tridiagonal factor + solve in O(n)
//		• Polynomials: Horner evaluation, derivative, construction from roots
//		• Nonlinear systems: Newton-Raphson with finite-difference Jacobian checks
//
// Every operation returns a fresh result and never mutates its inputs.
// Contract violations (mismatched lengths, non-square matrices, singular
// systems) are reported as wrapped sentinel errors from package matrix,
// so callers match them with errors.Is regardless of which package raised them.
//
// Packages:
//
//	matrix/     — Dense type, products, outer updates, norms, Mandel packing, error taxonomy
//	matrix/ops/ — LU factorization, Solve, Inverse, Condition, SingularValues
//	vector/     — 1-D vector kernels
//	tridiag/    — tridiagonal LU (factor once, solve many)
//	poly/       — dense polynomials in descending powers
//	newton/     — Newton-Raphson driver over matrix/ops
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 3}})
//	x, _ := ops.Solve(a, []float64{3, 5}) // [0.8 1.4]
//	k, _ := ops.Condition(a)              // κ₁(A)
//
//	go get github.com/katalvlaran/lvmath
package lvmath
