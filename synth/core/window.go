package core

// MoveBounds moves the half-open index window [lower, upper) over the
// ascending sequence xs so that it bounds exactly the values within
// halfWidth of center.
//
// The bounds walk from their previous positions, in either direction,
// so a sweep with increasing centers and a fixed half-width touches
// each index a bounded number of times and costs amortized linear
// time. This is the workhorse behind the moving-quantile rectifier and
// the line-profile cutoff windows, both of which scan an entire
// wavelength grid. Windows that widen between calls, as with line
// profiles of very different strength, pay only for the extra indices
// they newly cover.
//
// A center before the first or after the last element yields an empty
// window with in-range indices.
func MoveBounds(xs []float64, lower, upper int, center, halfWidth float64) (int, int) {
	for lower > 0 && xs[lower-1] >= center-halfWidth {
		lower--
	}
	for lower < len(xs) && xs[lower] < center-halfWidth {
		lower++
	}

	if upper < lower {
		upper = lower
	}

	for upper > lower && xs[upper-1] > center+halfWidth {
		upper--
	}
	for upper < len(xs) && xs[upper] <= center+halfWidth {
		upper++
	}

	return lower, upper
}
