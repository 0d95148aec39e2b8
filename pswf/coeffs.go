package pswf

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

const (
	// machEps is the double-precision machine epsilon; trailing rows
	// below this magnitude carry no information.
	machEps = 0x1p-52

	// parityRepairTol classifies a column as odd-parity when its
	// constant-term coefficient is this small relative to the column
	// peak.
	parityRepairTol = 1e-10
)

// legendreColumns extracts the requested eigenvector columns and undoes
// the sqrt(j+1/2) normalization of the operator basis, yielding plain
// Legendre coefficient columns and the matching eigenvalues.
func legendreColumns(v *mat.Dense, lam []float64, orders []int) (cols [][]float64, eigs []float64) {
	rows, _ := v.Dims()

	cols = make([][]float64, len(orders))
	eigs = make([]float64, len(orders))

	for i, n := range orders {
		col := make([]float64, rows)
		for j := 0; j < rows; j++ {
			col[j] = v.At(j, n) * math.Sqrt(float64(j)+0.5)
		}

		cols[i] = col
		eigs[i] = lam[n]
	}

	return cols, eigs
}

// trimColumns truncates all columns past the last row whose magnitude
// exceeds machine epsilon in at least one column. Idempotent: a second
// trim changes nothing.
func trimColumns(cols [][]float64) [][]float64 {
	cut := 1 // always keep the constant row

	for _, col := range cols {
		for j := len(col) - 1; j >= cut-1; j-- {
			if math.Abs(col[j]) > machEps {
				if j+1 > cut {
					cut = j + 1
				}
				break
			}
		}
	}

	out := make([][]float64, len(cols))
	for i, col := range cols {
		if len(col) > cut {
			col = col[:cut:cut]
		}
		out[i] = col
	}

	return out
}

// repairParity forces exact even/odd symmetry on each Chebyshev
// coefficient column. Rounding in the basis conversion leaves small
// nonzero terms of the wrong parity; a column whose constant-term
// coefficient is negligible relative to its peak is odd, so its
// even-index rows are zeroed, and vice versa.
func repairParity(cols [][]float64) {
	for _, col := range cols {
		if len(col) == 0 {
			continue
		}

		peak := vecmath.MaxAbs(col)
		if peak == 0 {
			continue
		}

		start := 1
		if math.Abs(col[0]) < parityRepairTol*peak {
			start = 0
		}

		for j := start; j < len(col); j += 2 {
			col[j] = 0
		}
	}
}
