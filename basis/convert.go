package basis

// LegendreToChebyshev converts a Legendre coefficient vector into the
// Chebyshev coefficients of the same polynomial. The output has the
// same length as the input. The conversion samples the Legendre series
// at the Chebyshev grid and re-expands, which is exact for polynomial
// data up to floating tolerance.
func LegendreToChebyshev(leg []float64) []float64 {
	n := len(leg)
	if n == 0 {
		return nil
	}

	if n == 1 {
		// P_0 == T_0
		return []float64{leg[0]}
	}

	return ChebyshevCoeffs(LegendreValues(leg, ChebyshevPoints(n)))
}

// LegendreToChebyshevColumns converts each coefficient column
// independently, preserving shape.
func LegendreToChebyshevColumns(cols [][]float64) [][]float64 {
	out := make([][]float64, len(cols))
	for i, col := range cols {
		out[i] = LegendreToChebyshev(col)
	}

	return out
}
