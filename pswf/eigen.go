package pswf

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// solveParity diagonalizes a by splitting it along index parity. The
// operator couples only indices of equal parity, so rows/columns
// {0,2,4,...} and {1,3,5,...} form two independent symmetric
// eigenproblems of half size. The two solutions are interleaved back:
// even-parity eigenpairs fill even row/column slots of the returned
// matrix, odd-parity pairs fill odd slots. Within each parity class
// eigenvalues ascend.
func solveParity(a mat.Symmetric) (*mat.Dense, []float64, error) {
	n := a.SymmetricDim()
	nEven := (n + 1) / 2
	nOdd := n / 2

	even := mat.NewSymDense(nEven, nil)
	for i := 0; i < nEven; i++ {
		for k := i; k < nEven; k++ {
			even.SetSym(i, k, a.At(2*i, 2*k))
		}
	}

	vEven, lamEven, err := eigenSym(even)
	if err != nil {
		return nil, nil, err
	}

	v := mat.NewDense(n, n, nil)
	lam := make([]float64, n)

	for col := 0; col < nEven; col++ {
		lam[2*col] = lamEven[col]
		for i := 0; i < nEven; i++ {
			v.Set(2*i, 2*col, vEven.At(i, col))
		}
	}

	if nOdd == 0 {
		return v, lam, nil
	}

	odd := mat.NewSymDense(nOdd, nil)
	for i := 0; i < nOdd; i++ {
		for k := i; k < nOdd; k++ {
			odd.SetSym(i, k, a.At(2*i+1, 2*k+1))
		}
	}

	vOdd, lamOdd, err := eigenSym(odd)
	if err != nil {
		return nil, nil, err
	}

	for col := 0; col < nOdd; col++ {
		lam[2*col+1] = lamOdd[col]
		for i := 0; i < nOdd; i++ {
			v.Set(2*i+1, 2*col+1, vOdd.At(i, col))
		}
	}

	return v, lam, nil
}

// eigenSym solves one symmetric eigenproblem and returns orthonormal
// eigenvectors as columns, sorted ascending by eigenvalue. Ties keep
// the solver-returned order.
func eigenSym(s *mat.SymDense) (*mat.Dense, []float64, error) {
	var es mat.EigenSym
	if !es.Factorize(s, true) {
		return nil, nil, ErrEigenFailure
	}

	vals := es.Values(nil)
	for _, v := range vals {
		if !isFinite(v) {
			return nil, nil, fmt.Errorf("%w: non-finite eigenvalue %v", ErrEigenFailure, v)
		}
	}

	var vecs mat.Dense
	es.VectorsTo(&vecs)

	perm := make([]int, len(vals))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return vals[perm[a]] < vals[perm[b]]
	})

	sortedVals := make([]float64, len(vals))
	sorted := mat.NewDense(len(vals), len(vals), nil)
	for col, p := range perm {
		sortedVals[col] = vals[p]
		for i := 0; i < len(vals); i++ {
			sorted.Set(i, col, vecs.At(i, p))
		}
	}

	return sorted, sortedVals, nil
}
