// Package approx provides evaluable function approximants built from
// Chebyshev series coefficients over an interval.
//
// A [Fun] stores its coefficients together with a change of variable
// between the unit interval [-1, 1] and its own interval. The change of
// variable is selected once, at construction: finite intervals use a
// linear map, intervals with one or two infinite endpoints use an
// algebraic map.
package approx
