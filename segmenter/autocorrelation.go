package segmenter

// autocorrelationWindowSize implements the autocorrelation-derived window
// size: x = data - mean(data); the one-sided sample ACF is computed for
// lags 1..n/2, normalised by variance*(n-lag); lags below minimumLag are
// discarded; the argmax of the remainder is taken (ACF values within 1e-9
// of the running best count as ties and keep the smaller lag), and its lag
// is returned if the ACF value there exceeds 0.5. ok is false when no lag qualifies
// (including when the data is too short to consider any lag), signalling
// the caller to fall back to the configured window size.
func autocorrelationWindowSize(data []float64, minimumLag int) (lag int, ok bool) {
	n := len(data)
	maxLag := n / 2
	if maxLag <= minimumLag {
		return 0, false
	}

	x := demean(data)

	var variance float64
	for _, v := range x {
		variance += v * v
	}
	variance /= float64(n)
	if variance == 0 {
		return 0, false
	}

	// On a clean periodic signal every multiple of the period has an ACF of
	// 1 up to rounding noise; the tolerance keeps the period itself.
	const tieTolerance = 1e-9
	bestLag := -1
	bestACF := 0.0
	for l := minimumLag; l <= maxLag; l++ {
		var sum float64
		for i := 0; i+l < n; i++ {
			sum += x[i] * x[i+l]
		}
		acf := sum / (variance * float64(n-l))
		if bestLag == -1 || acf > bestACF+tieTolerance {
			bestLag = l
			bestACF = acf
		}
	}

	if bestLag == -1 || bestACF <= 0.5 {
		return 0, false
	}
	return bestLag, true
}
