// Package ad implements a chunked-arena tape and a taped scalar type
// (TNum) for reverse-mode algorithmic differentiation. Arithmetic and
// elementary functions on TNum are package-level functions rather than
// overloaded operators, since Go has no operator overloading; each one
// records a Node carrying the partial derivatives with respect to its
// operands.
package ad

import (
	"math"
)

// TNum is a scalar value paired with the tape node that produced it.
//
// Assigning one TNum to another (`y := x`) is an ordinary Go struct copy:
// both values then share the same *Node, exactly mirroring the original
// design's un-overridden Tdouble-to-Tdouble copy assignment. Constructing
// a TNum from a raw float64 (NewLeaf) always records a brand-new leaf
// node, mirroring Tdouble's operator=(double). See DESIGN.md's Open
// Question 1.
type TNum struct {
	value float64
	node  *Node
}

// Value returns the plain float64 carried by x, with no tape interaction.
// Comparisons (<, <=, ==, ...) are deliberately not provided on TNum:
// control flow should compare on Value() directly, since a branch
// decision is not itself a differentiable operation.
func (x TNum) Value() float64 { return x.value }

// Adjoint returns the sensitivity of the most recent propagation's root
// with respect to x, i.e. d(root)/d(x).
func (x TNum) Adjoint() float64 { return x.node.Adjoint() }

// NewLeaf records a fresh leaf node (no children) holding v and returns
// the TNum wrapping it. Use this for every free input whose sensitivity
// you want to recover: spot, strike, rate, each local-vol grid point.
func NewLeaf(v float64) TNum {
	return TNum{value: v, node: tape.record(0)}
}

func unary(value, weight float64, x TNum) TNum {
	n := tape.record(1)
	n.weights[0] = weight
	n.childAdjoints[0] = &x.node.adjoint
	return TNum{value: value, node: n}
}

func binary(value, wl, wr float64, l, r TNum) TNum {
	n := tape.record(2)
	n.weights[0], n.weights[1] = wl, wr
	n.childAdjoints[0] = &l.node.adjoint
	n.childAdjoints[1] = &r.node.adjoint
	return TNum{value: value, node: n}
}

// Add returns l + r.
func Add(l, r TNum) TNum { return binary(l.value+r.value, 1, 1, l, r) }

// AddC returns l + c.
func AddC(l TNum, c float64) TNum { return unary(l.value+c, 1, l) }

// Sub returns l - r.
func Sub(l, r TNum) TNum { return binary(l.value-r.value, 1, -1, l, r) }

// SubC returns l - c.
func SubC(l TNum, c float64) TNum { return unary(l.value-c, 1, l) }

// CSub returns c - r.
func CSub(c float64, r TNum) TNum { return unary(c-r.value, -1, r) }

// Mul returns l * r.
func Mul(l, r TNum) TNum { return binary(l.value*r.value, r.value, l.value, l, r) }

// MulC returns l * c.
func MulC(l TNum, c float64) TNum { return unary(l.value*c, c, l) }

// Div returns l / r.
func Div(l, r TNum) TNum {
	return binary(l.value/r.value, 1/r.value, -l.value/(r.value*r.value), l, r)
}

// DivC returns l / c.
func DivC(l TNum, c float64) TNum { return unary(l.value/c, 1/c, l) }

// CDiv returns c / r.
func CDiv(c float64, r TNum) TNum {
	return unary(c/r.value, -c/(r.value*r.value), r)
}

// Neg returns -x.
func Neg(x TNum) TNum { return unary(-x.value, -1, x) }

// Max returns the larger of l and r. Both operands are still recorded as
// children (the loser with a zero weight) so ties and near-ties do not
// create a discontinuity in which edges exist on the tape.
func Max(l, r TNum) TNum {
	if l.value >= r.value {
		return binary(l.value, 1, 0, l, r)
	}
	return binary(r.value, 0, 1, l, r)
}

// MaxC returns the larger of l and c.
func MaxC(l TNum, c float64) TNum {
	if l.value >= c {
		return unary(l.value, 1, l)
	}
	return unary(c, 0, l)
}

// Min returns the smaller of l and r.
func Min(l, r TNum) TNum {
	if l.value <= r.value {
		return binary(l.value, 1, 0, l, r)
	}
	return binary(r.value, 0, 1, l, r)
}

// MinC returns the smaller of l and c.
func MinC(l TNum, c float64) TNum {
	if l.value <= c {
		return unary(l.value, 1, l)
	}
	return unary(c, 0, l)
}

// Pow returns l to the power r.
func Pow(l, r TNum) TNum {
	v := math.Pow(l.value, r.value)
	wl := r.value * math.Pow(l.value, r.value-1)
	wr := 0.0
	if l.value > 0 {
		wr = v * math.Log(l.value)
	}
	return binary(v, wl, wr, l, r)
}

// PowC returns l to the power c.
func PowC(l TNum, c float64) TNum {
	v := math.Pow(l.value, c)
	return unary(v, c*math.Pow(l.value, c-1), l)
}

// CPow returns c to the power r.
func CPow(c float64, r TNum) TNum {
	v := math.Pow(c, r.value)
	w := 0.0
	if c > 0 {
		w = v * math.Log(c)
	}
	return unary(v, w, r)
}

// Sqrt returns the square root of x.
func Sqrt(x TNum) TNum {
	v := math.Sqrt(x.value)
	return unary(v, 0.5/v, x)
}

// Exp returns e to the power x.
func Exp(x TNum) TNum {
	v := math.Exp(x.value)
	return unary(v, v, x)
}

// Log returns the natural logarithm of x.
func Log(x TNum) TNum {
	return unary(math.Log(x.value), 1/x.value, x)
}

// Abs returns the absolute value of x.
func Abs(x TNum) TNum {
	w := 1.0
	if x.value < 0 {
		w = -1.0
	}
	return unary(math.Abs(x.value), w, x)
}

// Sin returns the sine of x.
func Sin(x TNum) TNum {
	return unary(math.Sin(x.value), math.Cos(x.value), x)
}

// Cos returns the cosine of x.
func Cos(x TNum) TNum {
	return unary(math.Cos(x.value), -math.Sin(x.value), x)
}

// NormalCdf returns the standard normal cumulative distribution function
// evaluated at x.
func NormalCdf(x TNum) TNum {
	v := 0.5 * (1 + math.Erf(x.value/math.Sqrt2))
	dens := math.Exp(-0.5*x.value*x.value) / math.Sqrt(2*math.Pi)
	return unary(v, dens, x)
}
