package mc

import (
	"testing"

	"github.com/ucthesis/tapedmc/ad"
	"github.com/ucthesis/tapedmc/rng"
	"github.com/ucthesis/tapedmc/volsurface"
)

func autoCallableProduct() AutoCallable {
	return AutoCallable{
		Coupon:       10,
		Upper:        120,
		Lower:        50,
		Anchor:       100,
		Observations: []float64{0.5, 1.0, 1.5},
	}
}

func TestAutoCallablePriceIsNonNegativeUnderCapitalProtection(t *testing.T) {
	p := autoCallableProduct()
	spots := []float64{100}
	surface := flatSurface(0.2, spots, len(p.Timeline()))

	price := AutoCallablePrice(p, 100, 0.01, 0, surface, 20000, rng.NewMrg32k())
	if price < 0 {
		t.Fatalf("capital-protected note priced below zero: %v", price)
	}
}

func TestAutoCallableAADMatchesPlainPriceSameSeed(t *testing.T) {
	ad.Clear()
	p := autoCallableProduct()
	spots := []float64{100}
	surface := flatSurface(0.2, spots, len(p.Timeline()))
	taped := volsurface.Convert(surface)

	plainPrice := AutoCallablePrice(p, 100, 0.01, 0, surface, 3000, rng.NewMrg32k())

	spot := ad.NewLeaf(100)
	rate := ad.NewLeaf(0.01)
	div := ad.NewLeaf(0.0)
	aadPrice := AutoCallablePriceAAD(p, spot, rate, div, taped, 3000, rng.NewMrg32k())

	if !approxEqual(plainPrice, aadPrice, 1e-9) {
		t.Fatalf("plain and AAD drivers diverged with identical seeds: %v vs %v", plainPrice, aadPrice)
	}
}

func TestAutoCallableAADDeltaMatchesFiniteDifference(t *testing.T) {
	ad.Clear()
	p := autoCallableProduct()
	spots := []float64{100}
	surface := flatSurface(0.2, spots, len(p.Timeline()))
	taped := volsurface.Convert(surface)

	spot := ad.NewLeaf(100.0)
	rate := ad.NewLeaf(0.01)
	div := ad.NewLeaf(0.0)
	AutoCallablePriceAAD(p, spot, rate, div, taped, 20000, rng.NewMrg32k())

	const bump = 0.01
	up := AutoCallablePrice(p, 100+bump, 0.01, 0, surface, 20000, rng.NewMrg32k())
	down := AutoCallablePrice(p, 100-bump, 0.01, 0, surface, 20000, rng.NewMrg32k())
	fd := (up - down) / (2 * bump)

	if diff := spot.Adjoint() - fd; diff < -0.2 || diff > 0.2 {
		t.Fatalf("AAD delta = %v, want within ~0.2 of finite-difference estimate %v", spot.Adjoint(), fd)
	}
}
