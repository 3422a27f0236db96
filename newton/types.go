// SPDX-License-Identifier: MIT

package newton

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
)

// ErrMaxIterations is returned when the residual is still above tolerance
// after MaxIter iterations. It wraps matrix.ErrNoConvergence.
var ErrMaxIterations = fmt.Errorf("newton: %w", errMaxIterations)
var errMaxIterations = fmt.Errorf("maximum iterations reached: %w", matrix.ErrNoConvergence)

// ErrBadSystem is returned when a System reports inconsistent sizes.
var ErrBadSystem = fmt.Errorf("newton: %w", matrix.ErrDimensionMismatch)

// System is a square nonlinear system R(x) = 0 with Jacobian J = ∂R/∂x.
type System interface {
	// NParams returns the number of unknowns (and residual equations).
	NParams() int
	// Initial returns the starting point; the slice is owned by the caller.
	Initial() []float64
	// Residual evaluates R(x) and J(x) at x. J must be NParams×NParams.
	Residual(x []float64) (r []float64, j *matrix.Dense, err error)
}

// Options configures Solve.
//   - Tol: absolute residual tolerance (or relative, see Relative). Default 1e-8.
//   - MaxIter: iteration cap. Default 50.
//   - Relative: also stop when ‖R‖/‖R₀‖ ≤ Tol.
//   - Verbose: log each iteration with Jacobian check and condition number.
//   - JacobianEps: finite-difference step used by the Verbose Jacobian check. Default 1e-6.
//   - Ctx: cancellation; checked before every iteration. Default context.Background().
type Options struct {
	Tol         float64
	MaxIter     int
	Relative    bool
	Verbose     bool
	JacobianEps float64
	Ctx         context.Context
}

// Defaults.
const (
	DefaultTol         = 1e-8
	DefaultMaxIter     = 50
	DefaultJacobianEps = 1e-6
)

// DefaultOptions returns Options with documented defaults.
func DefaultOptions() Options {
	return Options{
		Tol:         DefaultTol,
		MaxIter:     DefaultMaxIter,
		JacobianEps: DefaultJacobianEps,
		Ctx:         context.Background(),
	}
}

// normalize fills zero-valued fields with defaults.
func (o *Options) normalize() {
	if o.Tol <= 0 {
		o.Tol = DefaultTol
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultMaxIter
	}
	if o.JacobianEps <= 0 {
		o.JacobianEps = DefaultJacobianEps
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// Result reports the outcome of Solve.
type Result struct {
	X          []float64 // final iterate
	Iterations int       // Newton steps taken
	Residual   float64   // ‖R(X)‖₂
}
