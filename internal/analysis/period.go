package analysis

// ZeroCrossingPeriod estimates the oscillation period of values sampled at
// times from the mean spacing of upward zero crossings, linearly
// interpolated between samples. It returns 0 with fewer than two crossings.
func ZeroCrossingPeriod(times, values []float64) float64 {
	n := len(values)
	if len(times) < n {
		n = len(times)
	}

	var crossings []float64
	for i := 1; i < n; i++ {
		a, b := values[i-1], values[i]
		if a < 0 && b >= 0 {
			frac := -a / (b - a)
			crossings = append(crossings, times[i-1]+frac*(times[i]-times[i-1]))
		}
	}

	if len(crossings) < 2 {
		return 0
	}
	return (crossings[len(crossings)-1] - crossings[0]) / float64(len(crossings)-1)
}

// Amplitude is half the peak to peak range of values.
func Amplitude(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return (hi - lo) / 2
}
