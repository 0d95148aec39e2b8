package approx

import (
	"math"

	"github.com/cwbudde/algo-prolate/basis"
)

// Fun is an evaluable function represented by a Chebyshev series over
// an interval.
type Fun struct {
	coeffs []float64
	iv     Interval
	m      mapping
}

// New constructs a Fun from Chebyshev coefficients (ascending degree)
// over the given interval.
func New(coeffs []float64, iv Interval) (*Fun, error) {
	if err := validateCoeffs(coeffs); err != nil {
		return nil, err
	}

	if err := validateInterval(iv); err != nil {
		return nil, err
	}

	return &Fun{
		coeffs: append([]float64(nil), coeffs...),
		iv:     iv,
		m:      newMapping(iv),
	}, nil
}

// Eval evaluates the approximant at x.
func (f *Fun) Eval(x float64) float64 {
	return basis.EvalChebyshev(f.coeffs, f.m.backward(x))
}

// EvalMany evaluates the approximant at each point in xs.
func (f *Fun) EvalMany(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f.Eval(x)
	}

	return out
}

// Coeffs returns a copy of the Chebyshev coefficients.
func (f *Fun) Coeffs() []float64 {
	return append([]float64(nil), f.coeffs...)
}

// Interval returns the approximation interval.
func (f *Fun) Interval() Interval {
	return f.iv
}

// Degree returns the polynomial degree of the representation.
func (f *Fun) Degree() int {
	return len(f.coeffs) - 1
}

// Sample returns len(f.coeffs) Chebyshev grid points mapped into the
// interval together with the approximant values there.
func (f *Fun) Sample() (pts, vals []float64) {
	vals = basis.ChebyshevValues(f.coeffs)

	pts = basis.ChebyshevPoints(len(f.coeffs))
	for i, t := range pts {
		pts[i] = f.m.forward(t)
	}

	return pts, vals
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
