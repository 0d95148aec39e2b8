package approx

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCoeffs     = errors.New("approx: coefficients must not be empty")
	ErrNonFiniteCoeff  = errors.New("approx: coefficients must be finite")
	ErrInvalidInterval = errors.New("approx: interval must be increasing")
)

func validateCoeffs(coeffs []float64) error {
	if len(coeffs) == 0 {
		return ErrEmptyCoeffs
	}
	for i, c := range coeffs {
		if !isFinite(c) {
			return fmt.Errorf("%w: coefficient %d is %v", ErrNonFiniteCoeff, i, c)
		}
	}
	return nil
}

func validateInterval(iv Interval) error {
	if !iv.valid() {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, iv.Lo, iv.Hi)
	}
	return nil
}
