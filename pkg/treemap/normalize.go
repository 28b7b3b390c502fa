package treemap

// normalize returns a copy of weights rescaled so that the copy sums to
// area. Order and length are preserved. Weights must already be validated:
// non-empty, all positive and finite.
func normalize(weights []float64, area float64) []float64 {
	var sum float64
	for _, w := range weights {
		sum += w
	}

	factor := area / sum
	scaled := make([]float64, len(weights))
	for i, w := range weights {
		scaled[i] = w * factor
	}
	return scaled
}
