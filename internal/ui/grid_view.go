package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/compas/timeline"
)

// GridPane draws the bar/beat lattice over the track area.
type GridPane struct {
	API        timeline.API
	Bounds     image.Rectangle
	MinStepGap float64
}

func NewGridPane(api timeline.API, minStepGap float64) *GridPane {
	return &GridPane{API: api, MinStepGap: minStepGap}
}

func (p *GridPane) SetBounds(b image.Rectangle) { p.Bounds = b }

func (p *GridPane) Draw(dst *ebiten.Image) {
	drawRect(dst, p.Bounds, colBG, true)

	info := p.API.MusicalRulerInfo()
	top := float32(p.Bounds.Min.Y)
	bottom := float32(p.Bounds.Max.Y)
	steps := timeline.NewSteps(info, float64(p.Bounds.Dx()), p.MinStepGap)
	for {
		step, ok := steps.Next(info)
		if !ok {
			break
		}
		var c color.Color
		switch {
		case step.IndexInBar == 0:
			c = colBarLine
		case step.IndexInBar%2 == 0:
			c = colStepEven
		default:
			c = colStepOdd
		}
		x := float32(p.Bounds.Min.X) + float32(step.X)
		drawVLine(dst, x, top, bottom, 1, c)
	}
}
