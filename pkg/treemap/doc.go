// Package treemap computes squarified treemap layouts.
//
// Given a sequence of positive weights and a bounding rectangle, [Layout]
// partitions the rectangle into one sub-rectangle per weight, with areas
// proportional to the weights. Strips of rectangles are built greedily so
// that each rectangle stays as close to square as possible, following
// Bruls, Huizing, and van Wijk, "Squarified Treemaps":
//
//	https://www.win.tue.nl/~vanwijk/stm.pdf
//
// # Algorithm
//
// The engine runs four pure stages:
//
//  1. Normalize: rescale the weights so their sum equals the frame area.
//  2. Select: grow the next strip one weight at a time, stopping as soon
//     as adding another weight would worsen the strip's worst aspect ratio.
//  3. Place: lay the strip along the shorter side of the remaining
//     rectangle (a column when the rectangle is wide, a row when tall)
//     and carve the strip off the remaining rectangle.
//  4. Repeat until every weight is placed.
//
// # Usage
//
//	rects, err := treemap.Layout(
//	    []float64{500, 433, 78, 25, 25, 7},
//	    treemap.Rect{X: 0, Y: 0, DX: 1000, DY: 1000},
//	    treemap.Options{},
//	)
//
// Output order matches input order unless [Options].Sort is set, in which
// case the weights are laid out (and returned) in descending order.
//
// # Numeric Behavior
//
// All arithmetic is float64. Rounding drift accumulates across successive
// bands of a strip and is not redistributed; callers comparing areas or
// positions should allow a small relative tolerance.
//
// # Concurrency
//
// Layout is a pure function with no shared state and is safe to call from
// any number of goroutines concurrently.
package treemap
