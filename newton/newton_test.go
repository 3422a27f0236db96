// SPDX-License-Identifier: MIT
package newton_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/newton"
	"github.com/stretchr/testify/suite"
)

// circleLine intersects x² + y² = 4 with x = y.
type circleLine struct {
	x0 []float64
}

func (s circleLine) NParams() int       { return 2 }
func (s circleLine) Initial() []float64 { return s.x0 }

func (s circleLine) Residual(x []float64) ([]float64, *matrix.Dense, error) {
	r := []float64{x[0]*x[0] + x[1]*x[1] - 4, x[0] - x[1]}
	j, err := matrix.NewDenseFrom(2, 2, []float64{
		2 * x[0], 2 * x[1],
		1, -1,
	})

	return r, j, err
}

// wrongJacobian reports a Jacobian that is off by a factor of two.
type wrongJacobian struct{ circleLine }

func (s wrongJacobian) Residual(x []float64) ([]float64, *matrix.Dense, error) {
	r, j, err := s.circleLine.Residual(x)
	if err != nil {
		return nil, nil, err
	}
	j, err = matrix.Scale(j, 2)

	return r, j, err
}

// flat has a zero Jacobian at the origin.
type flat struct{}

func (flat) NParams() int       { return 1 }
func (flat) Initial() []float64 { return []float64{0} }
func (flat) Residual(x []float64) ([]float64, *matrix.Dense, error) {
	j, err := matrix.NewDenseFrom(1, 1, []float64{2 * x[0]})

	return []float64{x[0]*x[0] + 1}, j, err
}

// shortResidual returns fewer equations than unknowns.
type shortResidual struct{ circleLine }

func (s shortResidual) Residual(x []float64) ([]float64, *matrix.Dense, error) {
	r, j, err := s.circleLine.Residual(x)

	return r[:1], j, err
}

// failing returns an error from Residual.
type failing struct{ circleLine }

var errModel = errors.New("model blew up")

func (failing) Residual([]float64) ([]float64, *matrix.Dense, error) {
	return nil, nil, errModel
}

type NewtonSuite struct {
	suite.Suite
	sys circleLine
}

func (s *NewtonSuite) SetupTest() {
	s.sys = circleLine{x0: []float64{1, 0.5}}
}

func (s *NewtonSuite) TestConverges() {
	res, err := newton.Solve(s.sys, newton.DefaultOptions())
	s.Require().NoError(err)
	s.InDelta(math.Sqrt2, res.X[0], 1e-8)
	s.InDelta(math.Sqrt2, res.X[1], 1e-8)
	s.LessOrEqual(res.Residual, newton.DefaultTol)
	s.Positive(res.Iterations)
	s.Equal([]float64{1, 0.5}, s.sys.x0, "initial point must not be mutated")
}

func (s *NewtonSuite) TestZeroValueOptionsNormalized() {
	res, err := newton.Solve(s.sys, newton.Options{})
	s.Require().NoError(err)
	s.LessOrEqual(res.Residual, newton.DefaultTol)
}

func (s *NewtonSuite) TestAlreadyConverged() {
	res, err := newton.Solve(circleLine{x0: []float64{math.Sqrt2, math.Sqrt2}}, newton.DefaultOptions())
	s.Require().NoError(err)
	s.Zero(res.Iterations)
}

func (s *NewtonSuite) TestRelativeTolerance() {
	opts := newton.DefaultOptions()
	opts.Tol = 1e-3
	opts.Relative = true
	r0 := math.Hypot(1+0.25-4, 0.5)

	res, err := newton.Solve(s.sys, opts)
	s.Require().NoError(err)
	s.LessOrEqual(res.Residual, 1e-3*r0)
}

func (s *NewtonSuite) TestMaxIterations() {
	opts := newton.DefaultOptions()
	opts.Tol = 1e-14
	opts.MaxIter = 1

	res, err := newton.Solve(s.sys, opts)
	s.Require().ErrorIs(err, newton.ErrMaxIterations)
	s.ErrorIs(err, matrix.ErrNoConvergence)
	s.Equal(1, res.Iterations)
	s.Len(res.X, 2)
}

func (s *NewtonSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := newton.DefaultOptions()
	opts.Ctx = ctx

	_, err := newton.Solve(s.sys, opts)
	s.ErrorIs(err, context.Canceled)
}

func (s *NewtonSuite) TestSingularJacobian() {
	_, err := newton.Solve(flat{}, newton.DefaultOptions())
	s.ErrorIs(err, matrix.ErrSingular)
}

func (s *NewtonSuite) TestBadSystems() {
	_, err := newton.Solve(shortResidual{s.sys}, newton.DefaultOptions())
	s.ErrorIs(err, newton.ErrBadSystem)
	s.ErrorIs(err, matrix.ErrDimensionMismatch)

	_, err = newton.Solve(circleLine{x0: []float64{1}}, newton.DefaultOptions())
	s.ErrorIs(err, newton.ErrBadSystem)

	_, err = newton.Solve(failing{s.sys}, newton.DefaultOptions())
	s.ErrorIs(err, errModel)
}

func (s *NewtonSuite) TestDiffJac() {
	x := []float64{1.3, -0.7}
	_, want, err := s.sys.Residual(x)
	s.Require().NoError(err)

	got, err := newton.DiffJac(s.sys, x, 1e-7)
	s.Require().NoError(err)
	ok, err := matrix.AllClose(got, want, 1e-5, 1e-6)
	s.Require().NoError(err)
	s.True(ok, "finite difference:\n%v\nanalytic:\n%v", got, want)

	_, err = newton.DiffJac(s.sys, []float64{1}, 1e-7)
	s.ErrorIs(err, newton.ErrBadSystem)
}

func (s *NewtonSuite) TestDiffJacCheck() {
	x := []float64{1.3, -0.7}
	_, j, err := s.sys.Residual(x)
	s.Require().NoError(err)

	good, err := newton.DiffJacCheck(s.sys, x, j, 1e-7)
	s.Require().NoError(err)
	s.Less(good, 1e-8)

	_, bad, err := wrongJacobian{s.sys}.Residual(x)
	s.Require().NoError(err)
	off, err := newton.DiffJacCheck(s.sys, x, bad, 1e-7)
	s.Require().NoError(err)
	s.InDelta(0.25, off, 1e-4) // (2J - J)² / (2J)²

	_, err = newton.DiffJacCheck(s.sys, x, nil, 1e-7)
	s.ErrorIs(err, matrix.ErrNilMatrix)
}

func (s *NewtonSuite) TestVerboseLogging() {
	var buf bytes.Buffer
	newton.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	s.T().Cleanup(func() { newton.SetLogger(nil) })

	opts := newton.DefaultOptions()
	opts.Verbose = true
	res, err := newton.Solve(s.sys, opts)
	s.Require().NoError(err)

	out := buf.String()
	s.Contains(out, "newton: iteration")
	s.Contains(out, "residual=")
	s.Contains(out, "jacobian_check=")
	s.Contains(out, "condition=")
	s.Equal(res.Iterations, bytes.Count(buf.Bytes(), []byte("newton: iteration")))
}

func (s *NewtonSuite) TestQuietByDefault() {
	var buf bytes.Buffer
	newton.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	s.T().Cleanup(func() { newton.SetLogger(nil) })

	_, err := newton.Solve(s.sys, newton.DefaultOptions())
	s.Require().NoError(err)
	s.Empty(buf.String(), "Verbose is off")

	newton.SetLogger(nil)
	s.False(newton.Logger().Enabled(context.Background(), slog.LevelError))
}

func TestNewtonSuite(t *testing.T) {
	suite.Run(t, new(NewtonSuite))
}
