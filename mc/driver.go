package mc

// dts converts an observation timeline (times measured from today) into
// the sequence of step lengths between consecutive observations, with
// the first step measured from time zero.
func dts(timeline []float64) []float64 {
	dt := make([]float64, len(timeline))
	prev := 0.0
	for i, t := range timeline {
		dt[i] = t - prev
		prev = t
	}
	return dt
}
