package ui

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	colBG      = color.RGBA{20, 20, 30, 255}
	colRulerBG = color.RGBA{15, 15, 15, 255}

	strokeBase = color.RGBA{220, 220, 230, 255}

	// Grid line classes: bars strongest, then even steps, then odd steps.
	colBarLine  = dim(strokeBase, 0.5)
	colStepEven = dim(strokeBase, 0.25)
	colStepOdd  = dim(strokeBase, 0.125)

	colSeparator = color.RGBA{90, 90, 90, 255}
	colPlayhead  = color.RGBA{240, 240, 240, 255}
)

// dim scales a color in linear RGB, keeping alpha.
func dim(c color.RGBA, f float64) color.RGBA {
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.LinearRgb()
	out := colorful.LinearRgb(r*f, g*f, b*f).Clamped()
	rr, gg, bb := out.RGB255()
	return color.RGBA{rr, gg, bb, c.A}
}
