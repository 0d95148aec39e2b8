package basis

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChebyshevPoints(t *testing.T) {
	require.Nil(t, ChebyshevPoints(0))
	require.Equal(t, []float64{0}, ChebyshevPoints(1))

	pts := ChebyshevPoints(9)
	require.Len(t, pts, 9)
	assert.Equal(t, -1.0, pts[0])
	assert.Equal(t, 1.0, pts[8])
	assert.InDelta(t, 0.0, pts[4], 1e-15)

	for k := 0; k < len(pts)/2; k++ {
		assert.InDelta(t, -pts[len(pts)-1-k], pts[k], 1e-15, "grid must be symmetric")
	}

	for k := 1; k < len(pts); k++ {
		assert.Greater(t, pts[k], pts[k-1])
	}
}

func TestEvalChebyshevKnownSeries(t *testing.T) {
	// 1 + 2*T_1 + 3*T_2 at x: 1 + 2x + 3*(2x^2-1)
	coeffs := []float64{1, 2, 3}
	for _, x := range []float64{-1, -0.3, 0, 0.5, 1} {
		want := 1 + 2*x + 3*(2*x*x-1)
		assert.InDelta(t, want, EvalChebyshev(coeffs, x), 1e-14)
	}

	assert.Equal(t, 0.0, EvalChebyshev(nil, 0.5))
	assert.Equal(t, 7.0, EvalChebyshev([]float64{7}, -0.2))
}

func TestEvalLegendreKnownSeries(t *testing.T) {
	// P_0 = 1, P_1 = x, P_2 = (3x^2-1)/2, P_3 = (5x^3-3x)/2
	coeffs := []float64{0.5, -1, 2, 1.5}
	for _, x := range []float64{-1, -0.7, 0, 0.25, 1} {
		p2 := (3*x*x - 1) / 2
		p3 := (5*x*x*x - 3*x) / 2
		want := 0.5 - x + 2*p2 + 1.5*p3
		assert.InDelta(t, want, EvalLegendre(coeffs, x), 1e-14)
	}
}

func TestChebyshevRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Both transform paths: n=17 mirrors to 32 (FFT), n=12 to 22 (direct).
	for _, n := range []int{2, 3, 12, 17, 33} {
		coeffs := make([]float64, n)
		for i := range coeffs {
			coeffs[i] = rng.NormFloat64()
		}

		got := ChebyshevCoeffs(ChebyshevValues(coeffs))
		require.Len(t, got, n)
		for i := range coeffs {
			assert.InDelta(t, coeffs[i], got[i], 1e-12, "n=%d coeff %d", n, i)
		}
	}
}

func TestChebyshevCoeffsPathsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	vals := make([]float64, 17) // mirror length 32, FFT-eligible
	for i := range vals {
		vals[i] = rng.NormFloat64()
	}

	fast, err := chebCoeffsFFT(vals)
	require.NoError(t, err)

	direct := chebCoeffsDirect(vals)
	require.Len(t, fast, len(direct))
	for i := range direct {
		assert.InDelta(t, direct[i], fast[i], 1e-12)
	}
}

func TestLegendreToChebyshevIdentities(t *testing.T) {
	cases := []struct {
		name string
		leg  []float64
		want []float64
	}{
		{"P0", []float64{1}, []float64{1}},
		{"P1", []float64{0, 1}, []float64{0, 1}},
		{"P2", []float64{0, 0, 1}, []float64{0.25, 0, 0.75}},
		{"P3", []float64{0, 0, 0, 1}, []float64{0, 3.0 / 8, 0, 5.0 / 8}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LegendreToChebyshev(tc.leg)
			require.Len(t, got, len(tc.want))
			for i := range tc.want {
				assert.InDelta(t, tc.want[i], got[i], 1e-14)
			}
		})
	}
}

func TestLegendreToChebyshevAgainstPointwise(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	leg := make([]float64, 20)
	for i := range leg {
		leg[i] = rng.NormFloat64()
	}

	cheb := LegendreToChebyshev(leg)
	require.Len(t, cheb, len(leg))

	for _, x := range []float64{-1, -0.9, -0.31, 0, 0.44, 0.99, 1} {
		assert.InDelta(t, EvalLegendre(leg, x), EvalChebyshev(cheb, x), 1e-11)
	}
}

func TestLegendreToChebyshevColumns(t *testing.T) {
	cols := [][]float64{{1}, {0, 1}, {0, 0, 1}}
	out := LegendreToChebyshevColumns(cols)
	require.Len(t, out, 3)
	for i := range cols {
		assert.Len(t, out[i], len(cols[i]))
	}
	assert.InDelta(t, 0.75, out[2][2], 1e-14)
}

func TestMachineToleranceStability(t *testing.T) {
	// A pure even series must convert to a pure even series up to rounding.
	leg := []float64{0.3, 0, -0.2, 0, 0.1}
	cheb := LegendreToChebyshev(leg)

	for j := 1; j < len(cheb); j += 2 {
		assert.Less(t, math.Abs(cheb[j]), 1e-14)
	}
}
