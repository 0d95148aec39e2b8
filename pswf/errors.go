package pswf

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-prolate/approx"
)

var (
	ErrInvalidOrder     = errors.New("pswf: orders must be non-negative")
	ErrInvalidBandwidth = errors.New("pswf: bandwidth must be finite and non-negative")
	ErrInvalidDomain    = errors.New("pswf: domain must be a finite increasing interval")
	ErrNonFinite        = errors.New("pswf: operator matrix has non-finite entries")
	ErrEigenFailure     = errors.New("pswf: symmetric eigendecomposition failed")
)

func validateOrders(orders []int) error {
	if len(orders) == 0 {
		return fmt.Errorf("%w: empty order list", ErrInvalidOrder)
	}

	for _, n := range orders {
		if n < 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidOrder, n)
		}
	}

	return nil
}

func validateBandwidth(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidBandwidth, c)
	}

	return nil
}

func validateDomain(iv approx.Interval) error {
	if math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi) || !iv.IsFinite() || iv.Lo >= iv.Hi {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidDomain, iv.Lo, iv.Hi)
	}

	return nil
}
