package pricing

import (
	"math"
	"math/cmplx"
)

// Bates is Bates' (1996) stochastic-volatility-plus-jumps model: a
// Heston diffusion overlaid with a compensated log-normal jump process.
// It is the model cmd/pricer builds its local-vol surface from.
type Bates struct {
	S, Rate, Div float64
	V0, VT       float64
	Kappa        float64
	Sigma        float64
	Rho          float64
	Intensity    float64 // jumps per unit time
	JumpMean     float64 // mean of log(1+jump size)
	JumpStd      float64 // stdev of log(1+jump size)
}

// Spot returns the model's spot level.
func (b *Bates) Spot() float64 { return b.S }

func (b *Bates) charFunc(u complex128, mat float64) complex128 {
	diffusion := hestonCf(u, mat, b.V0, b.VT, b.Kappa, b.Sigma, b.Rho)
	return diffusion * batesJumpCf(u, mat, b.Intensity, b.JumpMean, b.JumpStd)
}

// batesJumpCf is the compensated-jump component of the Bates
// characteristic function: a Poisson(intensity) number of log-normal
// jumps, compensated so the jump term alone has zero mean contribution
// to the drift.
func batesJumpCf(u complex128, tau, intensity, mean, std float64) complex128 {
	i := complex(0, 1)
	meanJumpCompensator := math.Exp(mean+0.5*std*std) - 1
	expo := cmplx.Exp(i*u*complex(mean, 0)-complex(0.5*std*std, 0)*u*u) -
		complex(1, 0) - i*u*complex(meanJumpCompensator, 0)
	return cmplx.Exp(complex(intensity*tau, 0) * expo)
}

// Call returns the model's call price at (strike, mat), discounted to today.
func (b *Bates) Call(strike, mat float64) float64 {
	return callFromCf(b.charFunc, b.S, strike, mat, b.Rate, b.Div)
}
