package basis

// EvalLegendre evaluates the Legendre series sum_j coeffs[j]*P_j(x)
// using the forward three-term recurrence
// (j+1)*P_{j+1} = (2j+1)*x*P_j - j*P_{j-1}.
func EvalLegendre(coeffs []float64, x float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	sum := coeffs[0]
	if len(coeffs) == 1 {
		return sum
	}

	pPrev := 1.0
	p := x
	sum += coeffs[1] * p

	for j := 2; j < len(coeffs); j++ {
		k := float64(j - 1)
		pNext := ((2*k+1)*x*p - k*pPrev) / (k + 1)
		pPrev, p = p, pNext
		sum += coeffs[j] * p
	}

	return sum
}

// LegendreValues evaluates the Legendre series at each point in pts.
func LegendreValues(coeffs, pts []float64) []float64 {
	out := make([]float64, len(pts))
	for i, x := range pts {
		out[i] = EvalLegendre(coeffs, x)
	}

	return out
}
