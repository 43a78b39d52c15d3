package ui

import (
	"image"

	"github.com/ingyamilmolinar/compas/timeline"
)

// pt is a helper function to check if a point is within a rectangle.
func pt(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

// strip converts a widget's pixel bounds into the horizontal viewport the
// timeline math works in.
func strip(r image.Rectangle) timeline.Viewport {
	return timeline.Viewport{Left: float64(r.Min.X), Width: float64(r.Dx())}
}
