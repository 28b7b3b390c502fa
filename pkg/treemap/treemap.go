package treemap

import (
	"math"
	"sort"

	"github.com/matzehuels/squaremap/pkg/errors"
)

// Options controls how Layout arranges the weights.
type Options struct {
	// Sort lays the weights out in descending order instead of input
	// order. The returned rectangles then correspond to the sorted
	// weights by position. Larger-first input generally produces the
	// squarest layouts.
	Sort bool

	// Padding insets each rectangle to leave empty space between
	// neighbors. A rectangle shrinks by Padding along each axis whose
	// extent exceeds Padding (half on each side); smaller rectangles
	// keep their full extent on that axis. Zero disables the inset.
	Padding float64
}

// Layout partitions bounds into one rectangle per weight, with areas
// proportional to the weights. The i-th returned rectangle corresponds to
// weights[i], or to the i-th largest weight when opts.Sort is set. The
// input slice is never modified.
//
// Layout fails with errors.ErrCodeInvalidWeights when weights is empty or
// contains a non-positive or non-finite value, and with
// errors.ErrCodeDegenerateRect when bounds has a non-positive extent.
// Both are detected up front; Layout never returns partial results.
func Layout(weights []float64, bounds Rect, opts Options) ([]Rect, error) {
	if err := errors.ValidateFrame(bounds.X, bounds.Y, bounds.DX, bounds.DY); err != nil {
		return nil, err
	}
	if err := errors.ValidateWeights(weights); err != nil {
		return nil, err
	}

	input := weights
	if opts.Sort {
		input = append([]float64(nil), weights...)
		sort.Sort(sort.Reverse(sort.Float64Slice(input)))
	}

	scaled := normalize(input, bounds.Area())

	out := make([]Rect, 0, len(scaled))
	rem := bounds
	for len(scaled) > 0 {
		side := math.Min(rem.DX, rem.DY)
		k := stripLen(scaled, side)

		rects, next := layoutStrip(scaled[:k], rem)
		out = append(out, rects...)

		rem = next
		scaled = scaled[k:]
	}

	if opts.Padding > 0 {
		pad(out, opts.Padding)
	}
	return out, nil
}

// pad insets each rectangle in place. An axis is only inset when its
// extent exceeds p, so slivers never collapse to negative size.
func pad(rects []Rect, p float64) {
	for i := range rects {
		if rects[i].DX > p {
			rects[i].X += p / 2
			rects[i].DX -= p
		}
		if rects[i].DY > p {
			rects[i].Y += p / 2
			rects[i].DY -= p
		}
	}
}
