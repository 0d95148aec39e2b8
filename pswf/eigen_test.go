package pswf

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSolveParityEigenpairs(t *testing.T) {
	a, err := operatorMatrix(2.5, 8)
	if err != nil {
		t.Fatal(err)
	}

	v, lam, err := solveParity(a)
	if err != nil {
		t.Fatal(err)
	}

	n := 9
	for col := 0; col < n; col++ {
		// Residual ||A*x - lam*x|| must vanish.
		for i := 0; i < n; i++ {
			ax := 0.0
			for k := 0; k < n; k++ {
				ax += a.At(i, k) * v.At(k, col)
			}
			if !almostEqual(ax, lam[col]*v.At(i, col), 1e-10*math.Max(1, math.Abs(lam[col]))) {
				t.Fatalf("column %d row %d: A*x=%v, lam*x=%v", col, i, ax, lam[col]*v.At(i, col))
			}
		}

		// Eigenvectors keep the parity of their column slot.
		for i := 0; i < n; i++ {
			if (i+col)%2 == 1 && v.At(i, col) != 0 {
				t.Fatalf("column %d row %d breaks parity: %v", col, i, v.At(i, col))
			}
		}
	}
}

func TestSolveParityAscendingWithinParity(t *testing.T) {
	a, err := operatorMatrix(7, 20)
	if err != nil {
		t.Fatal(err)
	}

	_, lam, err := solveParity(a)
	if err != nil {
		t.Fatal(err)
	}

	for i := 2; i < len(lam); i++ {
		if lam[i] <= lam[i-2] {
			t.Fatalf("parity class not ascending at %d: %v <= %v", i, lam[i], lam[i-2])
		}
	}
}

func TestEigenSymSortsAscending(t *testing.T) {
	s := mat.NewSymDense(3, []float64{
		4, 0, 0,
		0, 1, 0,
		0, 0, 9,
	})

	_, vals, err := eigenSym(s)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{1, 4, 9}
	for i, w := range want {
		if !almostEqual(vals[i], w, 1e-12) {
			t.Fatalf("eigenvalue %d = %v, want %v", i, vals[i], w)
		}
	}
}
