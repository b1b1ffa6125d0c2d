package mc

// Product is anything with an observation timeline: the set of times at
// which the Monte Carlo driver must stop and evaluate the payoff.
type Product interface {
	Timeline() []float64
}

// European is a single-maturity European call.
type European struct {
	Strike, Maturity float64
}

// Timeline returns the product's single exercise date.
func (e European) Timeline() []float64 { return []float64{e.Maturity} }

// UpAndOutCall is a European call that knocks out permanently if the
// spot ever touches or exceeds Upper, observed at every multiple of Freq
// up to and including Maturity.
type UpAndOutCall struct {
	Strike, Upper, Maturity, Freq float64
}

// Timeline returns the periodic observation dates up to Maturity,
// appending Maturity itself if it does not already fall on the grid.
func (u UpAndOutCall) Timeline() []float64 {
	var t []float64
	for time := u.Freq; time < u.Maturity; time += u.Freq {
		t = append(t, time)
	}
	if len(t) == 0 || t[len(t)-1] != u.Maturity {
		t = append(t, u.Maturity)
	}
	return t
}

// AutoCallable is a multi-observation note that pays a coupon at each
// observation if the spot is at or above Upper (and then redeems early),
// and otherwise, at the final observation, pays spot minus Anchor (a
// capital loss) if the spot has fallen below Lower.
type AutoCallable struct {
	Coupon, Upper, Lower, Anchor float64
	Observations                 []float64
}

// Timeline returns the note's explicit observation dates.
func (a AutoCallable) Timeline() []float64 { return a.Observations }
