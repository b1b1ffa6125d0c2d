package mc

import (
	"testing"

	"github.com/ucthesis/tapedmc/rng"
)

func TestUpAndOutPriceIsMonotoneInUpperBarrier(t *testing.T) {
	spots := []float64{100}
	p1 := UpAndOutCall{Strike: 100, Upper: 110, Maturity: 1, Freq: 0.25}
	p2 := UpAndOutCall{Strike: 100, Upper: 200, Maturity: 1, Freq: 0.25}
	surface1 := flatSurface(0.2, spots, len(p1.Timeline()))
	surface2 := flatSurface(0.2, spots, len(p2.Timeline()))

	priceTight := UpAndOutCallPrice(p1, 100, 0, 0, surface1, 20000, rng.NewMrg32k())
	priceLoose := UpAndOutCallPrice(p2, 100, 0, 0, surface2, 20000, rng.NewMrg32k())

	if priceTight > priceLoose {
		t.Fatalf("a tighter barrier should never be worth more: tight=%v loose=%v", priceTight, priceLoose)
	}
}

func TestUpAndOutPriceBelowVanillaEuropean(t *testing.T) {
	spots := []float64{100}
	barrier := UpAndOutCall{Strike: 100, Upper: 110, Maturity: 1, Freq: 0.25}
	european := European{Strike: 100, Maturity: 1}
	surfaceB := flatSurface(0.2, spots, len(barrier.Timeline()))
	surfaceE := flatSurface(0.2, spots, 1)

	barrierPrice := UpAndOutCallPrice(barrier, 100, 0, 0, surfaceB, 20000, rng.NewMrg32k())
	vanillaPrice := EuropeanCallPrice(european, 100, 0, 0, surfaceE, 20000, rng.NewMrg32k())

	if barrierPrice > vanillaPrice {
		t.Fatalf("a knock-out should never be worth more than the vanilla: barrier=%v vanilla=%v", barrierPrice, vanillaPrice)
	}
}
