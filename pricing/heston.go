package pricing

import "math/cmplx"

// Heston is a Heston (1993) stochastic-volatility model, priced via its
// characteristic function and Carr-Madan/Gil-Pelaez integration. It
// implements Model, so volsurface can build a local-vol surface from it
// exactly as it would from Bates.
type Heston struct {
	S, Rate, Div float64
	V0, VT       float64 // initial and long-run variance
	Kappa        float64 // mean-reversion speed
	Sigma        float64 // vol of vol
	Rho          float64 // spot/vol correlation
}

// Spot returns the model's spot level.
func (h *Heston) Spot() float64 { return h.S }

func (h *Heston) charFunc(u complex128, mat float64) complex128 {
	return hestonCf(u, mat, h.V0, h.VT, h.Kappa, h.Sigma, h.Rho)
}

// hestonCf evaluates the Heston characteristic function of ln(F_T/F_0)
// (forward log-return, so the spot/discount factors are applied
// separately by callFromCf).
func hestonCf(u complex128, tau, v0, theta, kappa, sigma, rho float64) complex128 {
	i := complex(0, 1)
	a := complex(kappa*theta, 0)
	b := complex(kappa, 0) - complex(rho*sigma, 0)*i*u
	d := cmplx.Sqrt(b*b + complex(sigma*sigma, 0)*(i*u+u*u))
	g := (b - d) / (b + d)
	expDTau := cmplx.Exp(-d * complex(tau, 0))

	C := a / complex(sigma*sigma, 0) * ((b-d)*complex(tau, 0) -
		complex(2, 0)*cmplx.Log((complex(1, 0)-g*expDTau)/(complex(1, 0)-g)))
	D := (b - d) / complex(sigma*sigma, 0) * ((complex(1, 0) - expDTau) / (complex(1, 0) - g*expDTau))

	return cmplx.Exp(C + D*complex(v0, 0))
}

// Call returns the model's call price at (strike, mat), discounted to today.
func (h *Heston) Call(strike, mat float64) float64 {
	return callFromCf(h.charFunc, h.S, strike, mat, h.Rate, h.Div)
}
