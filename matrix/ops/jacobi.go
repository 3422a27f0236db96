// SPDX-License-Identifier: MIT

package ops

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvmath/matrix"
)

// jacobiMaxSweeps caps the number of full column-pair sweeps.
// One-sided Jacobi converges quadratically; small matrices need well under 20.
const jacobiMaxSweeps = 60

// SingularValues returns the singular values of m in descending order,
// computed by one-sided (Hestenes) Jacobi rotations.
// Implementation:
//   - Stage 1: copy m into a working buffer U (r×c).
//   - Stage 2: sweep all column pairs (p,q); rotate them until they are
//     orthogonal within machine precision relative to their norms.
//   - Stage 3: σⱼ = ‖U[:,j]‖₂; sort descending.
//
// Behavior highlights:
//   - Works on any r×c input; the rotations act on columns only.
//   - Zero columns are skipped, so rank-deficient input yields zero singular values.
//   - If the sweep cap is reached the current column norms are returned;
//     they are accurate approximations at that point.
//
// Errors: ErrNilMatrix.
// Complexity: O(sweeps·c²·r) time, O(r·c) memory.
func SingularValues(m matrix.Matrix) ([]float64, error) {
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, opsErrorf(opSingular, err)
	}
	r, c := d.Dims()
	u := d.Data()

	const eps = 0x1p-52
	var (
		sweep, i, p, q          int
		alpha, beta, gamma      float64
		zeta, t, cs, sn, up, uq float64
		rotated                 bool
	)
	for sweep = 0; sweep < jacobiMaxSweeps; sweep++ {
		rotated = false
		for p = 0; p < c-1; p++ {
			for q = p + 1; q < c; q++ {
				alpha, beta, gamma = 0, 0, 0
				for i = 0; i < r; i++ {
					up, uq = u[i*c+p], u[i*c+q]
					alpha += up * up
					beta += uq * uq
					gamma += up * uq
				}
				if gamma == 0 || math.Abs(gamma) <= eps*math.Sqrt(alpha*beta) {
					continue
				}
				rotated = true
				zeta = (beta - alpha) / (2 * gamma)
				t = math.Copysign(1/(math.Abs(zeta)+math.Hypot(1, zeta)), zeta)
				cs = 1 / math.Hypot(1, t)
				sn = cs * t
				for i = 0; i < r; i++ {
					up, uq = u[i*c+p], u[i*c+q]
					u[i*c+p] = cs*up - sn*uq
					u[i*c+q] = sn*up + cs*uq
				}
			}
		}
		if !rotated {
			break
		}
	}

	sv := make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		for i = 0; i < r; i++ {
			col[i] = u[i*c+j]
		}
		sv[j] = math.Sqrt(sumSquares(col))
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sv)))
	if r < c {
		// Only min(r,c) singular values are meaningful; the rest are zero.
		sv = sv[:r]
	}

	return sv, nil
}

// sumSquares returns Σ x[i]² with scaling against overflow.
func sumSquares(x []float64) float64 {
	scale := matrix.MaxAbsSlice(x)
	if scale == 0 {
		return 0
	}
	var s float64
	for _, v := range x {
		v /= scale
		s += v * v
	}

	return s * scale * scale
}
