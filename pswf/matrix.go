package pswf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operator entries in the normalized Legendre basis. The matrix is
// pentadiagonal with zero first off-diagonals; only the main diagonal
// and the +-2 offsets are populated. subDiagonal(j+2) == superDiagonal(j)
// holds identically, so storing the upper triangle keeps the matrix
// exactly symmetric.

func subDiagonal(c float64, j int) float64 {
	fj := float64(j)
	return c * c * fj * (fj - 1) / ((2*fj - 1) * math.Sqrt((2*fj-3)*(2*fj+1)))
}

func mainDiagonal(c float64, j int) float64 {
	fj := float64(j)
	return fj*(fj+1) + c*c*(2*fj*(fj+1)-1)/((2*fj+3)*(2*fj-1))
}

func superDiagonal(c float64, j int) float64 {
	fj := float64(j)
	return c * c * (fj + 2) * (fj + 1) / ((2*fj + 3) * math.Sqrt((2*fj+5)*(2*fj+1)))
}

// operatorMatrix assembles the (m+1)x(m+1) operator for bandwidth c.
func operatorMatrix(c float64, m int) (*mat.SymBandDense, error) {
	n := m + 1
	a := mat.NewSymBandDense(n, 2, nil)

	for j := 0; j < n; j++ {
		d := mainDiagonal(c, j)
		if !isFinite(d) {
			return nil, fmt.Errorf("%w: diagonal %d is %v", ErrNonFinite, j, d)
		}
		a.SetSymBand(j, j, d)

		if j <= m-2 {
			s := superDiagonal(c, j)
			if !isFinite(s) {
				return nil, fmt.Errorf("%w: offset +2 entry %d is %v", ErrNonFinite, j, s)
			}
			a.SetSymBand(j, j+2, s)
		}
	}

	return a, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
