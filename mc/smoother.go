// Package mc implements the Monte Carlo pricers for the three supported
// products (European call, up-and-out barrier call, auto-callable note),
// each in a plain float64 form and an AAD form built on package ad's
// mark/reset tape checkpointing.
package mc

import "github.com/ucthesis/tapedmc/ad"

// minSmootherEps is the threshold below which Smooth degenerates to a
// hard step, matching the reference implementation's behavior for a
// caller-requested epsilon too small to matter numerically.
const minSmootherEps = 1e-4

// Smooth approximates the step function that jumps from xneg to xpos at
// x=0 with a piecewise-linear ramp of width eps, centered on 0. It is
// used to keep discontinuous payoffs (barrier knock-out, auto-call
// trigger) differentiable.
func Smooth(x, xpos, xneg, eps float64) float64 {
	if eps < minSmootherEps {
		if x >= 0 {
			return xpos
		}
		return xneg
	}
	t := x + eps/2
	if t < 0 {
		t = 0
	} else if t > eps {
		t = eps
	}
	return xneg + (xpos-xneg)/eps*t
}

// SmootherT is Smooth with every argument taped: the general form, used
// wherever the ramp's endpoints are themselves sensitivities (e.g. the
// auto-callable's capital-protection leg, whose breach payoff depends on
// the simulated spot).
func SmootherT(x, xpos, xneg ad.TNum, eps float64) ad.TNum {
	if eps < minSmootherEps {
		if x.Value() >= 0 {
			return xpos
		}
		return xneg
	}
	t := ad.AddC(x, eps/2)
	t = ad.MaxC(t, 0)
	t = ad.MinC(t, eps)
	return ad.Add(xneg, ad.Mul(ad.DivC(ad.Sub(xpos, xneg), eps), t))
}

// SmoothT is SmootherT for constant (non-taped) xpos/xneg bounds — the
// common case, since most of this package's indicators ramp between two
// fixed payoff constants (0 and 1).
func SmoothT(x ad.TNum, xpos, xneg, eps float64) ad.TNum {
	return SmootherT(x, ad.NewLeaf(xpos), ad.NewLeaf(xneg), eps)
}
