package treemap

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y),
// width DX, and height DY. All values are in caller-defined units.
type Rect struct {
	X, Y   float64
	DX, DY float64
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 { return r.DX * r.DY }

// AspectRatio returns the larger of width/height and height/width.
// A perfect square has ratio 1; the ratio grows as the rectangle
// becomes more elongated.
func (r Rect) AspectRatio() float64 {
	if r.DX >= r.DY {
		return r.DX / r.DY
	}
	return r.DY / r.DX
}
