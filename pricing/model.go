package pricing

import "math"

// Model is a closed-form (or semi-closed-form) call pricer, the only
// interface volsurface needs to turn a stochastic-volatility model into a
// local-volatility grid.
type Model interface {
	// Spot returns the model's current spot level.
	Spot() float64
	// Call returns the model price, discounted to today, of a European
	// call at the given strike and maturity.
	Call(strike, mat float64) float64
}

// dupireH is the finite-difference step used to estimate the derivatives
// in Dupire's formula.
const dupireH = 0.0001

// ImpliedVolAt returns the Black-Scholes implied volatility of m's own
// call price at (strike, mat).
func ImpliedVolAt(m Model, strike, mat, rate, div float64) float64 {
	premium := m.Call(strike, mat)
	return ImpliedVol(m.Spot(), strike, premium, mat, rate, div)
}

// DupireLocalVol estimates the local volatility at (strike, mat) implied
// by m's call surface via Dupire's formula, using central finite
// differences for the calendar and strike-convexity derivatives.
func DupireLocalVol(m Model, strike, mat float64) float64 {
	if mat <= dupireH {
		mat = 2 * dupireH
	}
	callT := (m.Call(strike, mat+dupireH) - m.Call(strike, mat-dupireH)) / (2 * dupireH)
	callKK := (m.Call(strike+dupireH, mat) - 2*m.Call(strike, mat) + m.Call(strike-dupireH, mat)) / (dupireH * dupireH)
	localVar := 2 * callT / callKK
	return math.Sqrt(localVar) / strike
}
