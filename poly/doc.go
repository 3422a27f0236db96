// Package poly evaluates and manipulates dense polynomials.
//
// Coefficients are stored in descending powers, highest power first:
// []float64{c0, c1, ..., ck} is c0·x^k + c1·x^(k-1) + ... + ck.
// Evaluation uses Horner's scheme.
package poly
