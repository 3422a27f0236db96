// SPDX-License-Identifier: MIT
package poly_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/poly"
)

func ExamplePolyval() {
	// x² - 3x + 2 at x = 4
	v, _ := poly.Polyval([]float64{1, -3, 2}, 4)
	fmt.Println(v)
	// Output:
	// 6
}
