// Package pricing implements the closed-form and characteristic-function
// option pricers consumed by volsurface as the external comparison and
// local-vol-surface-generation models. None of this package touches the
// tape: it is a peripheral collaborator, always evaluated in plain
// float64 ahead of the AAD Monte Carlo run.
package pricing

import (
	"math"

	"github.com/ucthesis/tapedmc/gaussian"
)

// BlackScholesCall returns the Black-Scholes price of a European call.
func BlackScholesCall(spot, strike, vol, mat, rate, div float64) float64 {
	if mat <= 0 || vol <= 0 {
		return math.Max(spot-strike, 0)
	}
	fwd := spot * math.Exp((rate-div)*mat)
	d1 := (math.Log(fwd/strike) + 0.5*vol*vol*mat) / (vol * math.Sqrt(mat))
	d2 := d1 - vol*math.Sqrt(mat)
	disc := math.Exp(-rate * mat)
	return disc * (fwd*gaussian.Cdf(d1) - strike*gaussian.Cdf(d2))
}

// ImpliedVol inverts BlackScholesCall for vol by bisection. Returns 0 if
// the premium is at or below the discounted intrinsic value, matching
// the original implementation's convention for unpriceable quotes.
func ImpliedVol(spot, strike, premium, mat, rate, div float64) float64 {
	const eps = 1e-12
	intrinsic := math.Max(0, spot*math.Exp(-div*mat)-strike*math.Exp(-rate*mat))
	if premium <= intrinsic+eps {
		return 0
	}

	lo, hi := 1e-8, 1.0
	for BlackScholesCall(spot, strike, hi, mat, rate, div) < premium {
		hi *= 2
		if hi > 1e6 {
			break
		}
	}
	for i := 0; i < 200; i++ {
		mid := 0.5 * (lo + hi)
		if BlackScholesCall(spot, strike, mid, mat, rate, div) < premium {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < eps {
			break
		}
	}
	return 0.5 * (lo + hi)
}
