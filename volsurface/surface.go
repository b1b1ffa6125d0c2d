// Package volsurface builds a local-volatility surface from a
// pricing.Model via Dupire's formula, anchored at the model's at-the-money
// column and extrapolated flat once the finite-difference estimate
// misbehaves. It then converts that surface into ad.TNum leaves so the
// Monte Carlo driver can recover the sensitivity of price to every grid
// point.
package volsurface

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ucthesis/tapedmc/ad"
	"github.com/ucthesis/tapedmc/matrix"
	"github.com/ucthesis/tapedmc/pricing"
)

var log = logrus.WithField("component", "volsurface")

// flatTolerance is the maximum column-to-column jump in local vol allowed
// before a row switches to flat extrapolation.
const flatTolerance = 0.02

// Surface holds the implied- and local-volatility grids for a fixed set
// of spot (strike) and maturity points.
type Surface struct {
	Spots []float64
	Mats  []float64
	IVol  *matrix.Matrix[float64]
	LVol  *matrix.Matrix[float64]
}

// TapedSurface is Surface converted to ad.TNum leaves: every grid cell
// becomes an independent tape input, so propagating a Monte Carlo price
// back through it yields the price's sensitivity to that single cell.
type TapedSurface struct {
	Spots []float64
	Mats  []float64
	LVol  *matrix.Matrix[ad.TNum]
}

// Generate builds a local-volatility surface from m by Dupire's formula,
// anchored at the spots column nearest m.Spot() and extrapolated flat
// outward once the finite-difference estimate jumps by more than
// flatTolerance or stops being finite. spots and mats must each be sorted
// ascending.
func Generate(m pricing.Model, spots, mats []float64, rate, div float64) (*Surface, error) {
	atm, err := nearestIndex(spots, m.Spot())
	if err != nil {
		return nil, errors.Wrap(err, "volsurface: locating at-the-money column")
	}

	iVol := matrix.New[float64](len(mats), len(spots))
	lVol := matrix.New[float64](len(mats), len(spots))

	for r, mat := range mats {
		lVol.Set(r, atm, safeDupire(m, spots[atm], mat))
		iVol.Set(r, atm, pricing.ImpliedVolAt(m, spots[atm], mat, rate, div))

		sweep(lVol, iVol, m, spots, mat, r, atm, +1, rate, div)
		sweep(lVol, iVol, m, spots, mat, r, atm, -1, rate, div)
	}

	return &Surface{Spots: spots, Mats: mats, IVol: iVol, LVol: lVol}, nil
}

// sweep walks outward from the at-the-money column in direction dir
// (+1 or -1), copying the neighbor's value ("going flat") once the
// Dupire estimate is no longer finite or jumps by more than
// flatTolerance, and staying flat for the remainder of the row.
func sweep(lVol, iVol *matrix.Matrix[float64], m pricing.Model, spots []float64, mat float64, row, atm, dir int, rate, div float64) {
	flat := false
	prev := lVol.At(row, atm)
	for i := atm + dir; i >= 0 && i < len(spots); i += dir {
		if flat {
			lVol.Set(row, i, prev)
			iVol.Set(row, i, iVol.At(row, i-dir))
			continue
		}
		v := safeDupire(m, spots[i], mat)
		if !finite(v) || math.Abs(v-prev) > flatTolerance {
			log.WithFields(logrus.Fields{"strike": spots[i], "maturity": mat}).
				Warn("local-vol estimate misbehaved, extrapolating flat")
			flat = true
			lVol.Set(row, i, prev)
			iVol.Set(row, i, iVol.At(row, i-dir))
			continue
		}
		lVol.Set(row, i, v)
		iVol.Set(row, i, pricing.ImpliedVolAt(m, spots[i], mat, rate, div))
		prev = v
	}
}

func safeDupire(m pricing.Model, strike, mat float64) float64 {
	return pricing.DupireLocalVol(m, strike, mat)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// nearestIndex returns the index of the spots entry closest to target,
// erroring if spots is empty.
func nearestIndex(spots []float64, target float64) (int, error) {
	if len(spots) == 0 {
		return 0, errors.New("volsurface: empty spot grid")
	}
	best := 0
	bestDiff := math.Abs(spots[0] - target)
	for i, s := range spots[1:] {
		if d := math.Abs(s - target); d < bestDiff {
			best, bestDiff = i+1, d
		}
	}
	return best, nil
}

// Convert wraps every cell of s's local-vol grid as an independent
// ad.TNum leaf, recording it on the tape.
func Convert(s *Surface) *TapedSurface {
	return &TapedSurface{
		Spots: s.Spots,
		Mats:  s.Mats,
		LVol:  matrix.Convert(s.LVol, ad.NewLeaf),
	}
}

// LocalVolAt interpolates t's local vol along the spots axis of the row
// matching mat (the row index is resolved by the caller, since mats
// align with the simulation timeline by construction).
func LocalVolAt(t *TapedSurface, row int, spot float64) ad.TNum {
	cells := t.LVol.Row(row)
	// Linear interpolation on TNum values: find the bracketing spot
	// index in plain float64 (spots never carry sensitivity) and
	// interpolate the TNum cells with plain-float64 weights.
	n := len(t.Spots)
	if n == 0 {
		panic("volsurface: empty spot axis")
	}
	if spot <= t.Spots[0] {
		return cells[0]
	}
	if spot >= t.Spots[n-1] {
		return cells[n-1]
	}
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if t.Spots[mid] <= spot {
			lo = mid
		} else {
			hi = mid
		}
	}
	w := (spot - t.Spots[lo]) / (t.Spots[hi] - t.Spots[lo])
	return ad.Add(ad.MulC(cells[lo], 1-w), ad.MulC(cells[hi], w))
}

// LocalVolAtFloat interpolates s's local vol along the spots axis of
// row, for callers that only need the plain (non-AAD) pricer.
func LocalVolAtFloat(s *Surface, row int, spot float64) float64 {
	return interp(s.Spots, s.LVol.Row(row), spot)
}

// AdjointsOf extracts the per-cell adjoint (price sensitivity) grid from
// a TapedSurface after a reverse propagation.
func AdjointsOf(t *TapedSurface) *matrix.Matrix[float64] {
	return matrix.Convert(t.LVol, func(x ad.TNum) float64 { return x.Adjoint() })
}

// ValuesOf extracts the plain value grid from a TapedSurface.
func ValuesOf(t *TapedSurface) *matrix.Matrix[float64] {
	return matrix.Convert(t.LVol, func(x ad.TNum) float64 { return x.Value() })
}
