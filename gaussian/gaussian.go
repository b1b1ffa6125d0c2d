// Package gaussian provides the standard normal density, cumulative
// distribution, and inverse cumulative distribution functions used
// throughout the pricing and Monte Carlo packages. It is deliberately
// stdlib-only: math.Erf/Erfinv give the accuracy the closed-form and
// surface-generation code needs without pulling in a statistics library
// for three formulas (see DESIGN.md).
package gaussian

import "math"

// Cdf returns the standard normal cumulative distribution function at x.
func Cdf(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// Dens returns the standard normal probability density function at x.
func Dens(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}

// InvCdf returns the standard normal inverse cumulative distribution
// function (quantile) at probability p, p in (0,1).
func InvCdf(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
