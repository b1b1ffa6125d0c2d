package pricing

import (
	"math"
	"math/cmplx"
)

// integral approximates the definite integral of f over [a, b] using a
// simple midpoint Riemann sum of n steps. The characteristic-function
// pricers below integrate a smooth, rapidly-decaying integrand, so this
// simple rule is accurate enough without adaptive quadrature.
func integral(f func(u float64) float64, a, b float64, n int) float64 {
	h := (b - a) / float64(n)
	sum := 0.0
	for i := 0; i < n; i++ {
		x := a + (float64(i)+0.5)*h
		sum += f(x)
	}
	return sum * h
}

const (
	cfUpper = 200.0
	cfSteps = 400
)

// charFunc is the characteristic function of the forward log-return
// ln(S_T/F_0) under the risk neutral measure, parameterized by maturity.
type charFunc func(u complex128, mat float64) complex128

// p1Integrand and p2Integrand implement the Carr-Madan/Gil-Pelaez
// representation of the two exercise probabilities used to price a
// European call from a characteristic function: call =
// spot*exp(-div*mat)*P1 - strike*exp(-rate*mat)*P2.
func p1Integrand(cf charFunc, logStrike, mat float64) func(u float64) float64 {
	denom := cf(complex(0, -1), mat)
	return func(u float64) float64 {
		iu := complex(0, u)
		num := cmplx.Exp(complex(0, -u*logStrike)) * cf(complex(u, -1), mat)
		return real(num / (iu * denom))
	}
}

func p2Integrand(cf charFunc, logStrike, mat float64) func(u float64) float64 {
	return func(u float64) float64 {
		iu := complex(0, u)
		num := cmplx.Exp(complex(0, -u*logStrike)) * cf(complex(u, 0), mat)
		return real(num / iu)
	}
}

// callFromCf prices a European call from a characteristic function of
// ln(S_T/F_0) via P1/P2 integration, with the strike taken relative to
// the forward F_0 = spot*exp((rate-div)*mat).
func callFromCf(cf charFunc, spot, strike, mat, rate, div float64) float64 {
	logStrike := math.Log(strike / (spot * math.Exp((rate-div)*mat)))
	p1 := 0.5 + integral(p1Integrand(cf, logStrike, mat), 1e-8, cfUpper, cfSteps)/math.Pi
	p2 := 0.5 + integral(p2Integrand(cf, logStrike, mat), 1e-8, cfUpper, cfSteps)/math.Pi
	return spot*math.Exp(-div*mat)*p1 - strike*math.Exp(-rate*mat)*p2
}
