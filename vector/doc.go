// Package vector implements the elementwise vector kernel of lvmath:
// negate, add, subtract, scale, dot product, Euclidean norm, normalization
// and the deviatoric projection of a Mandel/Voigt-encoded symmetric tensor.
//
// Vectors are plain []float64 values. Every function returns a new slice;
// inputs are never modified. Binary operations require equal lengths and
// fail with ErrDimensionMismatch otherwise.
package vector
