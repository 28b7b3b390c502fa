package treemap

import (
	"math"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const propTol = 1e-9

// genWeights produces non-degenerate weight slices for layout properties.
func genWeights() gopter.Gen {
	return gen.SliceOf(gen.Float64Range(0.5, 1000))
}

// TestLayoutProperties verifies the layout guarantees over randomized
// inputs: counts, area conservation, proportionality, tiling, and
// determinism must hold for every valid weight sequence and frame.
func TestLayoutProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("one rectangle per weight", prop.ForAll(
		func(weights []float64, dx, dy float64) bool {
			if len(weights) == 0 {
				return true
			}
			rects, err := Layout(weights, Rect{DX: dx, DY: dy}, Options{})
			return err == nil && len(rects) == len(weights)
		},
		genWeights(),
		gen.Float64Range(1, 2000),
		gen.Float64Range(1, 2000),
	))

	properties.Property("areas sum to the frame area", prop.ForAll(
		func(weights []float64, dx, dy float64) bool {
			if len(weights) == 0 {
				return true
			}
			frame := Rect{DX: dx, DY: dy}
			rects, err := Layout(weights, frame, Options{})
			if err != nil {
				return false
			}

			var total float64
			for _, r := range rects {
				total += r.Area()
			}
			return math.Abs(total-frame.Area()) <= propTol*frame.Area()
		},
		genWeights(),
		gen.Float64Range(1, 2000),
		gen.Float64Range(1, 2000),
	))

	properties.Property("areas stay proportional to weights", prop.ForAll(
		func(weights []float64, dx, dy float64) bool {
			if len(weights) == 0 {
				return true
			}
			rects, err := Layout(weights, Rect{DX: dx, DY: dy}, Options{})
			if err != nil {
				return false
			}

			for i := range rects {
				want := weights[i] / weights[0]
				got := rects[i].Area() / rects[0].Area()
				if math.Abs(got-want) > propTol*want {
					return false
				}
			}
			return true
		},
		genWeights(),
		gen.Float64Range(1, 2000),
		gen.Float64Range(1, 2000),
	))

	properties.Property("rectangles tile the frame without overlap", prop.ForAll(
		func(weights []float64, x, y, dx, dy float64) bool {
			if len(weights) == 0 {
				return true
			}
			frame := Rect{X: x, Y: y, DX: dx, DY: dy}
			rects, err := Layout(weights, frame, Options{})
			if err != nil {
				return false
			}

			slack := propTol * math.Max(dx, dy)
			for _, r := range rects {
				if r.X < frame.X-slack || r.Y < frame.Y-slack ||
					r.X+r.DX > frame.X+frame.DX+slack ||
					r.Y+r.DY > frame.Y+frame.DY+slack {
					return false
				}
			}

			// No pair shares interior area. Together with containment
			// and area conservation this implies a gap-free tiling.
			for i := 0; i < len(rects); i++ {
				for j := i + 1; j < len(rects); j++ {
					ox := math.Min(rects[i].X+rects[i].DX, rects[j].X+rects[j].DX) -
						math.Max(rects[i].X, rects[j].X)
					oy := math.Min(rects[i].Y+rects[i].DY, rects[j].Y+rects[j].DY) -
						math.Max(rects[i].Y, rects[j].Y)
					if ox > 0 && oy > 0 && ox*oy > propTol*frame.Area() {
						return false
					}
				}
			}
			return true
		},
		genWeights(),
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(1, 2000),
		gen.Float64Range(1, 2000),
	))

	properties.Property("layout is deterministic", prop.ForAll(
		func(weights []float64, dx, dy float64, sorted bool) bool {
			if len(weights) == 0 {
				return true
			}
			frame := Rect{DX: dx, DY: dy}
			opts := Options{Sort: sorted}

			first, err1 := Layout(weights, frame, opts)
			second, err2 := Layout(weights, frame, opts)
			if err1 != nil || err2 != nil {
				return false
			}
			return reflect.DeepEqual(first, second)
		},
		genWeights(),
		gen.Float64Range(1, 2000),
		gen.Float64Range(1, 2000),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
