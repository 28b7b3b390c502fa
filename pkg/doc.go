// Package pkg provides the core libraries for squaremap treemap layouts.
//
// # Overview
//
// Squaremap computes squarified treemap layouts: area-proportional tilings
// of a rectangle that keep each tile as close to square as possible. The
// pkg directory is organized into three areas:
//
//  1. [treemap] - The layout engine (normalization, strip selection, placement)
//  2. [errors] - Structured error codes and input validation
//  3. [buildinfo] - Build-time version information
//
// # Quick Start
//
// Compute a layout for a weight sequence:
//
//	import "github.com/matzehuels/squaremap/pkg/treemap"
//
//	rects, err := treemap.Layout(
//	    []float64{500, 433, 78, 25, 25, 7},
//	    treemap.Rect{X: 0, Y: 0, DX: 1000, DY: 1000},
//	    treemap.Options{Sort: true},
//	)
//
// Each returned [treemap.Rect] corresponds to one input weight, and the
// rectangles together tile the bounding rectangle exactly (up to float64
// rounding).
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test -run Example ./...   # Examples only
//
// [treemap]: https://pkg.go.dev/github.com/matzehuels/squaremap/pkg/treemap
// [errors]: https://pkg.go.dev/github.com/matzehuels/squaremap/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/squaremap/pkg/buildinfo
package pkg
