// Package rng provides the uniform/Gaussian random-vector generator
// interface consumed by the mc package, and an Mrg32k implementation of
// it with antithetic-variate reuse.
package rng

// Generator produces vectors of independent uniform(0,1) or standard
// normal draws for a Monte Carlo path of a fixed dimension. Init must be
// called once before the first NextUniforms/NextGaussians call and
// whenever the dimension changes.
type Generator interface {
	Init(dim int)
	NextUniforms(dst []float64)
	NextGaussians(dst []float64)
}
