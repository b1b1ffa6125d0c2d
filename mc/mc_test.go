package mc

import (
	"math"

	"github.com/ucthesis/tapedmc/matrix"
	"github.com/ucthesis/tapedmc/volsurface"
)

// flatSurface builds a Surface whose local vol is the same constant at
// every spot and every observation row, for tests that want a known,
// noise-free volatility input rather than one derived from Dupire's
// formula.
func flatSurface(vol float64, spots []float64, nRows int) *volsurface.Surface {
	lvol := matrix.New[float64](nRows, len(spots))
	ivol := matrix.New[float64](nRows, len(spots))
	for r := 0; r < nRows; r++ {
		for c := range spots {
			lvol.Set(r, c, vol)
			ivol.Set(r, c, vol)
		}
	}
	mats := make([]float64, nRows)
	return &volsurface.Surface{Spots: spots, Mats: mats, LVol: lvol, IVol: ivol}
}

func approxEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }
