package pswf_test

import (
	"fmt"

	"github.com/cwbudde/algo-prolate/pswf"
)

func ExampleCoefficients() {
	res, _ := pswf.Coefficients([]int{0, 1, 2}, 0)
	fmt.Printf("%.0f %.0f %.0f converged=%v\n",
		res.Eigenvalues[0], res.Eigenvalues[1], res.Eigenvalues[2], res.Converged)
	// Output:
	// 0 2 6 converged=true
}

func ExampleCompute() {
	res, _ := pswf.Compute([]int{0, 1}, 0)
	fmt.Printf("modes=%d degree=%d eig=%.0f\n",
		len(res.Funs), res.Funs[0].Degree(), res.Eigenvalues[1])
	// Output:
	// modes=2 degree=1 eig=2
}
