// SPDX-License-Identifier: MIT

package newton

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/matrix/ops"
	"github.com/katalvlaran/lvmath/vector"
)

// Solve drives the system's residual to zero by plain Newton-Raphson:
//
//	x ← x − J(x)⁻¹·R(x)
//
// Implementation:
//   - Stage 1: normalize options; evaluate R and J at sys.Initial().
//   - Stage 2: stop when ‖R‖₂ ≤ Tol, or, with Relative set, when ‖R‖₂/‖R₀‖₂ ≤ Tol.
//   - Stage 3: otherwise solve J·Δ = R with LU (ops.Solve), step x -= Δ and
//     re-evaluate; repeat at most MaxIter times.
//
// Behavior highlights:
//   - opts.Ctx is checked before every step; cancellation returns ctx.Err().
//   - With Verbose set, every iteration logs residual norm, the finite
//     difference Jacobian check and the 1-norm condition number of J.
//   - The returned Result is filled in on ErrMaxIterations too, so callers
//     can inspect the last iterate.
//
// Errors:
//   - ErrBadSystem if the residual or Jacobian sizes disagree with NParams.
//   - matrix.ErrSingular (wrapped) if a Jacobian cannot be factorized.
//   - ErrMaxIterations when the tolerance is not reached.
//   - Any error returned by sys.Residual, wrapped.
func Solve(sys System, opts Options) (Result, error) {
	opts.normalize()
	n := sys.NParams()
	x := append([]float64(nil), sys.Initial()...)
	if len(x) != n {
		return Result{}, fmt.Errorf("%w: initial point has %d entries, want %d", ErrBadSystem, len(x), n)
	}

	r, j, err := evaluate(sys, x, n)
	if err != nil {
		return Result{}, err
	}
	nR0 := vector.Norm2(r)
	nR := nR0
	res := Result{X: x, Residual: nR}
	var dx []float64

	for res.Iterations = 0; !converged(nR, nR0, opts); res.Iterations++ {
		if res.Iterations >= opts.MaxIter {
			return res, fmt.Errorf("%w: ‖R‖=%g after %d iterations", ErrMaxIterations, nR, res.Iterations)
		}
		if err = opts.Ctx.Err(); err != nil {
			return res, err
		}
		if opts.Verbose {
			logIteration(opts, sys, x, j, res.Iterations, nR)
		}

		if dx, err = ops.Solve(j, r); err != nil {
			return res, fmt.Errorf("newton: iteration %d: %w", res.Iterations, err)
		}
		for i := range x {
			x[i] -= dx[i]
		}

		if r, j, err = evaluate(sys, x, n); err != nil {
			return res, err
		}
		nR = vector.Norm2(r)
		res.Residual = nR
	}

	return res, nil
}

func converged(nR, nR0 float64, opts Options) bool {
	if nR <= opts.Tol {
		return true
	}

	return opts.Relative && nR0 > 0 && nR/nR0 <= opts.Tol
}

// evaluate calls sys.Residual and checks the returned sizes.
func evaluate(sys System, x []float64, n int) ([]float64, *matrix.Dense, error) {
	r, j, err := sys.Residual(x)
	if err != nil {
		return nil, nil, fmt.Errorf("newton: residual: %w", err)
	}
	if len(r) != n {
		return nil, nil, fmt.Errorf("%w: residual has %d entries, want %d", ErrBadSystem, len(r), n)
	}
	if j == nil || j.Rows() != n || j.Cols() != n {
		return nil, nil, fmt.Errorf("%w: jacobian must be %dx%d", ErrBadSystem, n, n)
	}

	return r, j, nil
}

func logIteration(opts Options, sys System, x []float64, j *matrix.Dense, iter int, nR float64) {
	l := Logger()
	if !l.Enabled(opts.Ctx, slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.Int("iter", iter),
		slog.Float64("residual", nR),
	}
	if check, err := DiffJacCheck(sys, x, j, opts.JacobianEps); err == nil {
		attrs = append(attrs, slog.Float64("jacobian_check", check))
	}
	if cond, err := ops.Condition(j); err == nil {
		attrs = append(attrs, slog.Float64("condition", cond))
	}
	l.LogAttrs(opts.Ctx, slog.LevelDebug, "newton: iteration", attrs...)
}

// DiffJac approximates the Jacobian of sys at x by forward differences.
// Column k uses the step h = eps·|x[k]|, floored at eps.
//
// Errors: ErrBadSystem on size mismatch; errors from sys.Residual, wrapped.
func DiffJac(sys System, x []float64, eps float64) (*matrix.Dense, error) {
	n := sys.NParams()
	if len(x) != n {
		return nil, fmt.Errorf("%w: point has %d entries, want %d", ErrBadSystem, len(x), n)
	}
	if eps <= 0 {
		eps = DefaultJacobianEps
	}
	r0, _, err := evaluate(sys, x, n)
	if err != nil {
		return nil, err
	}

	jn, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	a := jn.RawData()
	xp := append([]float64(nil), x...)
	var h float64
	for k := 0; k < n; k++ {
		h = math.Max(eps*math.Abs(x[k]), eps)
		xp[k] = x[k] + h
		rk, _, err := evaluate(sys, xp, n)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			a[i*n+k] = (rk[i] - r0[i]) / h
		}
		xp[k] = x[k]
	}

	return jn, nil
}

// DiffJacCheck compares j against the finite-difference Jacobian Jₙ at x
// and returns Σ(J − Jₙ)² / ΣJ². When J is all zeros the unnormalized sum
// is returned.
func DiffJacCheck(sys System, x []float64, j *matrix.Dense, eps float64) (float64, error) {
	if err := matrix.ValidateNotNil(j); err != nil {
		return 0, fmt.Errorf("newton: %w", err)
	}
	jn, err := DiffJac(sys, x, eps)
	if err != nil {
		return 0, err
	}
	if err = matrix.ValidateSameShape(j, jn); err != nil {
		return 0, fmt.Errorf("newton: %w", err)
	}
	var ss, js, d float64
	an := jn.RawData()
	for k, v := range j.RawData() {
		d = v - an[k]
		ss += d * d
		js += v * v
	}
	if js == 0 {
		return ss, nil
	}

	return ss / js, nil
}
