// Package pswf computes prolate spheroidal wave functions: the
// bandlimited, orthogonal eigenfunctions of the prolate differential
// operator, parameterized by an integer order and a bandwidth c.
//
// The computation expands each function in normalized Legendre
// coefficients and diagonalizes the operator in that basis. The
// operator matrix couples only coefficients of equal index parity, so
// the eigenproblem splits into two symmetric halves that are solved
// independently and interleaved back. The discretization size adapts:
// starting from a seed scaled by bandwidth and highest requested order,
// it doubles until the trailing coefficients of the requested modes are
// negligible, with a fixed cap on the number of refinements.
//
// # Usage
//
// Compute evaluable approximants together with the operator
// eigenvalues:
//
//	res, err := pswf.Compute([]int{0, 1, 2}, 10)
//	// res.Funs[k].Eval(x), res.Eigenvalues[k]
//
// For raw Legendre coefficients instead of approximants:
//
//	res, err := pswf.Coefficients([]int{0, 1, 2}, 10)
//	// res.Coeffs[k] holds the Legendre coefficient column of order k
//
// If the refinement cap is reached before the convergence test passes,
// the last computed result is returned with Result.Converged set to
// false; no error is raised.
package pswf
