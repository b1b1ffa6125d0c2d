package mc

import (
	"math"

	"github.com/ucthesis/tapedmc/ad"
	"github.com/ucthesis/tapedmc/rng"
	"github.com/ucthesis/tapedmc/volsurface"
)

// autocallEpsilon is the default smoothing width for both the call
// trigger and the capital-protection breach indicator.
const autocallEpsilon = 5.0

// AutoCallablePrice prices an auto-callable note by plain Monte Carlo: at
// every observation the note pays Coupon and is called away (alive drops
// to 0 for the remainder of the path) once the spot is at or above
// Upper; if it survives to the final observation without being called,
// it additionally returns -(Anchor-spot) should the spot have fallen
// below Lower (capital protection breach).
func AutoCallablePrice(p AutoCallable, spot, rate, div float64, surface *volsurface.Surface, paths int, gen rng.Generator) float64 {
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
		var payoff float64
		for j, d := range dt {
			vol := volsurface.LocalVolAtFloat(surface, j, s)
			s *= math.Exp((mu-0.5*vol*vol)*d + vol*math.Sqrt(d)*gaussians[j])

			called := Smooth(s-p.Upper, 1, 0, autocallEpsilon)
			payoff += alive * called * p.Coupon
			alive *= 1 - called

			if j == len(dt)-1 {
				payoff += alive * Smooth(p.Lower-s, -(p.Anchor - s), 0, autocallEpsilon)
			}
		}
		price += payoff / float64(paths)
	}
	return price
}

// AutoCallablePriceAAD is AutoCallablePrice's AAD counterpart.
func AutoCallablePriceAAD(p AutoCallable, spot, rate, div ad.TNum, surface *volsurface.TapedSurface, paths int, gen rng.Generator) float64 {
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
		payoff := ad.NewLeaf(0.0)
		for j, d := range dt {
			vol := volsurface.LocalVolAt(surface, j, s.Value())
			drift := ad.Add(ad.MulC(ad.Mul(vol, vol), -0.5*d), ad.MulC(mu, d))
			diffusion := ad.MulC(vol, math.Sqrt(d)*gaussians[j])
			s = ad.Mul(s, ad.Exp(ad.Add(drift, diffusion)))

			called := SmoothT(ad.SubC(s, p.Upper), 1, 0, autocallEpsilon)
			payoff = ad.Add(payoff, ad.MulC(ad.Mul(alive, called), p.Coupon))
			alive = ad.Mul(alive, ad.CSub(1, called))

			if j == len(dt)-1 {
				breach := SmootherT(ad.CSub(p.Lower, s), ad.SubC(s, p.Anchor), ad.NewLeaf(0.0), autocallEpsilon)
				payoff = ad.Add(payoff, ad.Mul(alive, breach))
			}
		}
		payoff = ad.DivC(payoff, float64(paths))
		price += payoff.Value()
		ad.PropagateToMark(payoff)
		ad.ResetToMark()
	}

	ad.PropagateFromMarkToStart()
	return price
}
