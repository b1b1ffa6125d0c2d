package mc

import (
	"math"

	"github.com/ucthesis/tapedmc/ad"
	"github.com/ucthesis/tapedmc/rng"
	"github.com/ucthesis/tapedmc/volsurface"
)

// barrierEpsilon is the default smoothing width for the up-and-out
// knock-out indicator.
const barrierEpsilon = 5.0

// UpAndOutCallPrice prices an up-and-out barrier call by plain Monte
// Carlo, checking the barrier at every observation on the product's
// timeline with a smoothed (piecewise-linear) indicator so price is
// continuous in the spot path.
func UpAndOutCallPrice(p UpAndOutCall, spot, rate, div float64, surface *volsurface.Surface, paths int, gen rng.Generator) float64 {
	timeline := p.Timeline()
	dt := dts(timeline)
	mu := rate - div
	gen.Init(len(timeline))
	gaussians := make([]float64, len(timeline))

	var price float64
	for path := 0; path < paths; path++ {
		gen.NextGaussians(gaussians)
		s := spot
		alive := 1.0
		for j, d := range dt {
			vol := volsurface.LocalVolAtFloat(surface, j, s)
			s *= math.Exp((mu-0.5*vol*vol)*d + vol*math.Sqrt(d)*gaussians[j])
			alive *= Smooth(s-p.Upper, 0, 1, barrierEpsilon)
		}
		if s > p.Strike {
			price += alive * (s - p.Strike) / float64(paths)
		}
	}
	return price
}

// UpAndOutCallPriceAAD is UpAndOutCallPrice's AAD counterpart, using the
// same per-path tape mark/reset discipline as EuropeanCallPriceAAD.
// strike is a tape leaf so its adjoint (the dual delta) is recoverable
// alongside spot/rate/div's.
func UpAndOutCallPriceAAD(p UpAndOutCall, spot, rate, div, strike ad.TNum, surface *volsurface.TapedSurface, paths int, gen rng.Generator) float64 {
	timeline := p.Timeline()
	dt := dts(timeline)
	mu := ad.Sub(rate, div)

	ad.SetMark()

	gen.Init(len(timeline))
	gaussians := make([]float64, len(timeline))

	var price float64
	for path := 0; path < paths; path++ {
		gen.NextGaussians(gaussians)
		s := spot
		alive := ad.NewLeaf(1.0)
		for j, d := range dt {
			vol := volsurface.LocalVolAt(surface, j, s.Value())
			drift := ad.Add(ad.MulC(ad.Mul(vol, vol), -0.5*d), ad.MulC(mu, d))
			diffusion := ad.MulC(vol, math.Sqrt(d)*gaussians[j])
			s = ad.Mul(s, ad.Exp(ad.Add(drift, diffusion)))
			alive = ad.Mul(alive, SmoothT(ad.SubC(s, p.Upper), 0, 1, barrierEpsilon))
		}

		var payoff ad.TNum
		if s.Value() > strike.Value() {
			payoff = ad.DivC(ad.Mul(alive, ad.Sub(s, strike)), float64(paths))
		} else {
			payoff = ad.NewLeaf(0)
		}
		price += payoff.Value()

		ad.PropagateToMark(payoff)
		ad.ResetToMark()
	}

	ad.PropagateFromMarkToStart()
	return price
}
