package basis

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ChebyshevPoints returns n Chebyshev points of the second kind on
// [-1, 1] in ascending order: x_k = -cos(k*pi/(n-1)).
// For n == 1 the single point is 0.
func ChebyshevPoints(n int) []float64 {
	if n <= 0 {
		return nil
	}

	if n == 1 {
		return []float64{0}
	}

	pts := make([]float64, n)
	m := float64(n - 1)
	for k := range pts {
		pts[k] = -math.Cos(float64(k) * math.Pi / m)
	}

	// Force exact endpoints; cos rounding leaves them off by an ulp.
	pts[0] = -1
	pts[n-1] = 1

	return pts
}

// EvalChebyshev evaluates the Chebyshev series sum_j coeffs[j]*T_j(x)
// by Clenshaw recurrence.
func EvalChebyshev(coeffs []float64, x float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	b1, b2 := 0.0, 0.0
	for j := len(coeffs) - 1; j >= 1; j-- {
		b1, b2 = 2*x*b1-b2+coeffs[j], b1
	}

	return x*b1 - b2 + coeffs[0]
}

// ChebyshevValues evaluates the series at the [ChebyshevPoints] grid of
// the same length as coeffs. Inverse of [ChebyshevCoeffs].
func ChebyshevValues(coeffs []float64) []float64 {
	pts := ChebyshevPoints(len(coeffs))

	out := make([]float64, len(pts))
	for i, x := range pts {
		out[i] = EvalChebyshev(coeffs, x)
	}

	return out
}

// ChebyshevCoeffs computes the Chebyshev interpolant coefficients of
// values sampled at the ascending [ChebyshevPoints] grid of the same
// length. For polynomial data of degree < len(vals) the result is the
// exact coefficient vector up to floating tolerance.
func ChebyshevCoeffs(vals []float64) []float64 {
	n := len(vals)
	if n == 0 {
		return nil
	}

	if n == 1 {
		return []float64{vals[0]}
	}

	m := n - 1
	if isPowerOf2(2 * m) {
		if coeffs, err := chebCoeffsFFT(vals); err == nil {
			return coeffs
		}
	}

	return chebCoeffsDirect(vals)
}

// chebCoeffsFFT computes the DCT-I underlying the transform through a
// length-2m complex FFT of the even extension of the samples.
func chebCoeffsFFT(vals []float64) ([]float64, error) {
	m := len(vals) - 1

	plan, err := algofft.NewPlan64(2 * m)
	if err != nil {
		return nil, err
	}

	// Mirror the samples; vals is ascending in x, the DCT indexing is
	// descending (theta_k = k*pi/m), hence the m-k flip.
	in := make([]complex128, 2*m)
	for k := 0; k <= m; k++ {
		in[k] = complex(vals[m-k], 0)
	}
	for k := 1; k < m; k++ {
		in[2*m-k] = complex(vals[m-k], 0)
	}

	out := make([]complex128, 2*m)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	coeffs := make([]float64, m+1)
	for j := 0; j <= m; j++ {
		c := real(out[j]) / float64(m)
		if j == 0 || j == m {
			c /= 2
		}
		coeffs[j] = c
	}

	return coeffs, nil
}

// chebCoeffsDirect evaluates the same DCT-I by direct cosine sums.
func chebCoeffsDirect(vals []float64) []float64 {
	m := len(vals) - 1
	fm := float64(m)

	coeffs := make([]float64, m+1)
	for j := 0; j <= m; j++ {
		// Trapezoid weights: endpoints k=0 (x=1) and k=m (x=-1) halved.
		sum := 0.5 * vals[m]
		if j%2 == 0 {
			sum += 0.5 * vals[0]
		} else {
			sum -= 0.5 * vals[0]
		}

		for k := 1; k < m; k++ {
			sum += vals[m-k] * math.Cos(float64(j*k)*math.Pi/fm)
		}

		c := 2 * sum / fm
		if j == 0 || j == m {
			c /= 2
		}
		coeffs[j] = c
	}

	return coeffs
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
