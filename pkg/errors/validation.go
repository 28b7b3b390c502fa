package errors

import "math"

// ValidateWeights validates a weight sequence before normalization.
// Layout weights must be a non-empty sequence of positive, finite values.
//
// The rules are intentionally strict: a zero weight would produce an empty
// rectangle, a negative one a negative area, and a NaN or infinite weight
// would poison every normalized value. All are rejected up front so layout
// never starts on input it cannot finish.
func ValidateWeights(weights []float64) error {
	if len(weights) == 0 {
		return New(ErrCodeInvalidWeights, "weights cannot be empty")
	}

	var sum float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return New(ErrCodeInvalidWeights, "weight %d is not finite", i)
		}
		if w <= 0 {
			return New(ErrCodeInvalidWeights, "weight %d must be positive, got %v", i, w)
		}
		sum += w
	}

	if math.IsInf(sum, 1) {
		return New(ErrCodeInvalidWeights, "weights sum overflows")
	}
	return nil
}

// ValidateFrame validates a bounding rectangle before layout.
// The origin may be any finite value; width and height must be positive
// and finite.
func ValidateFrame(x, y, dx, dy float64) error {
	for _, v := range [4]float64{x, y, dx, dy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeDegenerateRect, "frame values must be finite")
		}
	}

	if dx <= 0 || dy <= 0 {
		return New(ErrCodeDegenerateRect, "frame must have positive extent, got %gx%g", dx, dy)
	}
	return nil
}
