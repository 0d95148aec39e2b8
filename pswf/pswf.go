package pswf

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-prolate/approx"
	"github.com/cwbudde/algo-prolate/basis"
)

const (
	// convergenceTol bounds the trailing-coefficient metric below which
	// a discretization is accepted.
	convergenceTol = 1e-14

	// maxRefinements caps the adaptive loop; on the final failed
	// iteration the last computed result is returned unconverged.
	maxRefinements = 10

	// minInitialSize is the smallest seed discretization.
	minInitialSize = 20

	// tailRows is the number of trailing coefficient rows inspected by
	// the convergence test.
	tailRows = 4
)

// Result holds the outcome of a PSWF computation.
type Result struct {
	// Funs are the evaluable approximants, one per requested order.
	// Nil for [Coefficients].
	Funs []*approx.Fun

	// Coeffs are the coefficient columns, one per requested order:
	// Chebyshev coefficients from [Compute], Legendre coefficients
	// from [Coefficients]. Ordered by increasing degree.
	Coeffs [][]float64

	// Eigenvalues are the operator eigenvalues of the requested orders.
	Eigenvalues []float64

	// Converged reports whether the refinement loop passed the
	// convergence test before hitting its cap. An unconverged result
	// is still returned and may be of degraded quality.
	Converged bool

	// Size is the final discretization size M; the operator matrix had
	// dimension M+1.
	Size int
}

// Compute returns evaluable PSWF approximants of the requested orders
// for bandwidth c, together with the operator eigenvalues.
func Compute(orders []int, c float64, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts...)

	if err := validateOrders(orders); err != nil {
		return nil, err
	}
	if err := validateBandwidth(c); err != nil {
		return nil, err
	}
	if err := validateDomain(cfg.domain); err != nil {
		return nil, err
	}

	res, err := solve(orders, c)
	if err != nil {
		return nil, err
	}

	res.Coeffs = basis.LegendreToChebyshevColumns(res.Coeffs)
	repairParity(res.Coeffs)

	res.Funs = make([]*approx.Fun, len(res.Coeffs))
	for i, col := range res.Coeffs {
		f, err := approx.New(col, cfg.domain)
		if err != nil {
			return nil, err
		}
		res.Funs[i] = f
	}

	return res, nil
}

// Coefficients returns the Legendre coefficient columns of the
// requested orders for bandwidth c, together with the operator
// eigenvalues. No basis conversion or approximant construction takes
// place.
func Coefficients(orders []int, c float64) (*Result, error) {
	if err := validateOrders(orders); err != nil {
		return nil, err
	}
	if err := validateBandwidth(c); err != nil {
		return nil, err
	}

	return solve(orders, c)
}

// solve runs the adaptive eigensolve and post-processes the accepted
// eigenvectors into trimmed Legendre coefficient columns.
func solve(orders []int, c float64) (*Result, error) {
	v, lam, converged, size, err := refine(orders, c)
	if err != nil {
		return nil, err
	}

	cols, eigs := legendreColumns(v, lam, orders)

	return &Result{
		Coeffs:      trimColumns(cols),
		Eigenvalues: eigs,
		Converged:   converged,
		Size:        size,
	}, nil
}

// refine drives the adaptive loop: assemble the operator at the current
// size, solve by parity, accept once the requested columns have
// negligible trailing coefficients, otherwise double the size. After
// maxRefinements iterations the last computed solution is returned
// with converged == false.
func refine(orders []int, c float64) (v *mat.Dense, lam []float64, converged bool, m int, err error) {
	m = initialSize(orders, c)

	for iter := 0; iter < maxRefinements; iter++ {
		a, err := operatorMatrix(c, m)
		if err != nil {
			return nil, nil, false, m, err
		}

		v, lam, err = solveParity(a)
		if err != nil {
			return nil, nil, false, m, err
		}

		if tailMetric(v, orders) < convergenceTol {
			return v, lam, true, m, nil
		}

		if iter < maxRefinements-1 {
			m *= 2
		}
	}

	return v, lam, false, m, nil
}

// initialSize seeds the discretization from the bandwidth and the
// highest requested order.
func initialSize(orders []int, c float64) int {
	maxOrder := 0
	for _, n := range orders {
		if n > maxOrder {
			maxOrder = n
		}
	}

	m := minInitialSize
	if s := ceilToSize(2 * math.Sqrt(c) * float64(maxOrder)); s > m {
		m = s
	}
	if s := ceilToSize(2 * c); s > m {
		m = s
	}

	// The eigenvector matrix must have a column for every requested
	// order.
	if m < maxOrder+tailRows {
		m = maxOrder + tailRows
	}

	return m
}

// ceilToSize rounds up to int, saturating so that extreme bandwidths
// cannot overflow the conversion.
func ceilToSize(x float64) int {
	const maxSeed = 1 << 30
	if x >= maxSeed {
		return maxSeed
	}

	return int(math.Ceil(x))
}

// tailMetric averages the trailing coefficient magnitudes of the
// requested eigenvector columns.
func tailMetric(v *mat.Dense, orders []int) float64 {
	rows, _ := v.Dims()

	sum := 0.0
	for _, n := range orders {
		for i := rows - tailRows; i < rows; i++ {
			sum += math.Abs(v.At(i, n))
		}
	}

	return sum / float64(2*len(orders))
}
