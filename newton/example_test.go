// SPDX-License-Identifier: MIT
package newton_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/newton"
)

// sqrtTwo solves x² - 2 = 0.
type sqrtTwo struct{}

func (sqrtTwo) NParams() int       { return 1 }
func (sqrtTwo) Initial() []float64 { return []float64{1} }
func (sqrtTwo) Residual(x []float64) ([]float64, *matrix.Dense, error) {
	j, err := matrix.NewDenseFrom(1, 1, []float64{2 * x[0]})

	return []float64{x[0]*x[0] - 2}, j, err
}

func ExampleSolve() {
	res, err := newton.Solve(sqrtTwo{}, newton.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("x = %.6f\n", res.X[0])
	// Output:
	// x = 1.414214
}
