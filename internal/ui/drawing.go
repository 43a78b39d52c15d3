package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw primitives are variables so tests can override them to capture calls.

var drawVLine = func(dst *ebiten.Image, x, y0, y1, width float32, c color.Color) {
	vector.StrokeLine(dst, x, y0, x, y1, width, c, false)
}

var drawHLine = func(dst *ebiten.Image, x0, x1, y, width float32, c color.Color) {
	vector.StrokeLine(dst, x0, y, x1, y, width, c, false)
}

var drawRect = func(dst *ebiten.Image, r image.Rectangle, c color.Color, filled bool) {
	if filled {
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	} else {
		vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
	}
}
