package mc

import (
	"math"

	"github.com/ucthesis/tapedmc/ad"
	"github.com/ucthesis/tapedmc/rng"
	"github.com/ucthesis/tapedmc/volsurface"
)

// EuropeanCallPrice prices a European call by plain (non-AAD) Monte
// Carlo, walking the local-vol surface row for each observation step.
func EuropeanCallPrice(p European, spot, rate, div float64, surface *volsurface.Surface, paths int, gen rng.Generator) float64 {
	timeline := p.Timeline()
	dt := dts(timeline)
	mu := rate - div
	gen.Init(len(timeline))
	gaussians := make([]float64, len(timeline))

	var price float64
	for path := 0; path < paths; path++ {
		gen.NextGaussians(gaussians)
		s := spot
		for j, d := range dt {
			vol := volsurface.LocalVolAtFloat(surface, j, s)
			s *= math.Exp((mu-0.5*vol*vol)*d + vol*math.Sqrt(d)*gaussians[j])
		}
		if s > p.Strike {
			price += (s - p.Strike) / float64(paths)
		}
	}
	return price
}

// EuropeanCallPriceAAD prices a European call by Monte Carlo with
// reverse-mode AAD, interleaving path simulation with per-path tape
// mark/reset so tape memory stays bounded to a single path rather than
// growing with the path count. spot, rate, div, strike are tape leaves
// (see ad.NewLeaf); surface must be built from the same leaves via
// volsurface.Convert. The function returns the price; every leaf's
// Adjoint() then holds the price's sensitivity to that input, including
// strike's (the dual delta).
func EuropeanCallPriceAAD(p European, spot, rate, div, strike ad.TNum, surface *volsurface.TapedSurface, paths int, gen rng.Generator) float64 {
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
		for j, d := range dt {
			vol := volsurface.LocalVolAt(surface, j, s.Value())
			drift := ad.Add(ad.MulC(ad.Mul(vol, vol), -0.5*d), ad.MulC(mu, d))
			diffusion := ad.MulC(vol, math.Sqrt(d)*gaussians[j])
			s = ad.Mul(s, ad.Exp(ad.Add(drift, diffusion)))
		}

		var payoff ad.TNum
		if s.Value() > strike.Value() {
			payoff = ad.DivC(ad.Sub(s, strike), float64(paths))
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
