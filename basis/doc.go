// Package basis provides orthogonal-polynomial series primitives:
// evaluation of Legendre and Chebyshev series, second-kind Chebyshev
// point grids, transforms between point values and Chebyshev
// coefficients, and conversion of Legendre coefficient vectors to the
// Chebyshev basis.
//
// Conventions:
//
//   - Coefficient vectors are ordered by increasing degree.
//   - Chebyshev point grids are ascending, from -1 to 1.
//   - [ChebyshevCoeffs] and [ChebyshevValues] are exact inverses for
//     polynomial data up to floating tolerance.
//
// The values-to-coefficients transform runs through a mirrored complex
// FFT when the mirror length is a power of two, and falls back to
// direct cosine sums otherwise.
package basis
