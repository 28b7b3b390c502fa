package treemap

import "math"

// worstRatio returns the worst aspect ratio among the rectangles of a
// strip laid along a fixed side of length side, where sum is the strip's
// total weight and min/max are its smallest and largest members.
//
// For a member m the strip produces a rectangle with sides sum/side and
// side*m/sum, so its distortion is max(side²·m/sum², sum²/(side²·m)).
// Over the whole strip that maximum is reached at the largest and the
// smallest member respectively, giving a closed form that avoids laying
// the candidate strip out just to measure it.
func worstRatio(side, sum, min, max float64) float64 {
	s2 := sum * sum
	w2 := side * side
	return math.Max(w2*max/s2, s2/(w2*min))
}

// stripLen returns how many leading weights form the next strip along a
// fixed side of length side. The strip grows one weight at a time and
// stops as soon as the next weight would strictly worsen the worst aspect
// ratio; an equal ratio keeps growing. If growth never worsens the ratio
// the whole remainder becomes one strip.
func stripLen(weights []float64, side float64) int {
	sum := weights[0]
	min, max := weights[0], weights[0]
	worst := worstRatio(side, sum, min, max)

	k := 1
	for k < len(weights) {
		w := weights[k]
		nsum := sum + w
		nmin := math.Min(min, w)
		nmax := math.Max(max, w)

		nworst := worstRatio(side, nsum, nmin, nmax)
		if nworst > worst {
			break
		}
		sum, min, max, worst = nsum, nmin, nmax, nworst
		k++
	}
	return k
}

// layoutStrip places a strip of normalized weights into the remaining
// rectangle and returns the placed rectangles together with the leftover
// rectangle.
//
// A wide remainder (DX >= DY) gets a column: a vertical slice of width
// sum/DY carved from the left edge, members stacked top to bottom. A tall
// remainder gets a row: a horizontal slice of height sum/DX carved from
// the top edge, members running left to right.
func layoutStrip(strip []float64, rem Rect) ([]Rect, Rect) {
	var sum float64
	for _, w := range strip {
		sum += w
	}

	rects := make([]Rect, 0, len(strip))

	if rem.DX >= rem.DY {
		width := sum / rem.DY
		y := rem.Y
		for _, w := range strip {
			h := w / width
			rects = append(rects, Rect{X: rem.X, Y: y, DX: width, DY: h})
			y += h
		}
		return rects, Rect{X: rem.X + width, Y: rem.Y, DX: rem.DX - width, DY: rem.DY}
	}

	height := sum / rem.DX
	x := rem.X
	for _, w := range strip {
		d := w / height
		rects = append(rects, Rect{X: x, Y: rem.Y, DX: d, DY: height})
		x += d
	}
	return rects, Rect{X: rem.X, Y: rem.Y + height, DX: rem.DX, DY: rem.DY - height}
}
