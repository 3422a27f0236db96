// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - NewOptions / gatherOptions which resolve setters on top of defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Pivot policy: a factorization declares a pivot singular when
//     |pivot| <= PivotTolerance * n * scale, where scale is the largest
//     absolute entry of the input. The default tolerance is machine epsilon,
//     so the threshold tracks both the problem size and the magnitude of data.
//   - PivotTolerance == 0 restores exact-zero detection (used by condition
//     estimation, which must not fail on ill-conditioned input).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks
	// (symmetry, AllClose-like comparisons with no explicit tolerance).
	DefaultEpsilon = 1e-9

	// DefaultPivotTolerance is the relative pivot tolerance (machine epsilon, 2^-52).
	DefaultPivotTolerance = 0x1p-52

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotInvalid   = "matrix: WithPivotTolerance: tolerance must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; sibling packages read them through accessors.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotTolerance sets the relative pivot tolerance used by LU-type
// factorizations (dense and tridiagonal).
// Implementation:
//   - Stage 1: validate rtol is finite and ≥ 0.
//   - Stage 2: return a setter that writes rtol into Options.
//
// Behavior highlights:
//   - rtol == 0 ⇒ only exactly-zero pivots are singular.
//   - Larger rtol rejects near-singular systems earlier.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPivotTolerance(rtol float64) Option {
	if isNonFinite(rtol) || rtol < 0 {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivotTol = rtol }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation on ingestion and Set.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves setters on top of the documented defaults.
// Most public entry points accept ...Option and call it internally; it is
// exported so sibling packages (ops, tridiag) share the same policy.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the structural-check tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// PivotTolerance returns the relative pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// PivotThreshold returns the absolute pivot threshold for an n-dimensional
// system whose largest absolute entry is scale.
// A pivot p is singular when |p| <= PivotThreshold(n, scale).
func (o Options) PivotThreshold(n int, scale float64) float64 {
	return o.pivotTol * float64(n) * scale
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
