package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/compas/internal/log"
	"github.com/ingyamilmolinar/compas/timeline"
)

// RulerView is the horizontal strip showing bar and beat marks. Clicking or
// dragging on it seeks the playhead through the host's interact callback.
type RulerView struct {
	API        timeline.MusicalRuler
	Bounds     image.Rectangle
	MinStepGap float64

	logger   *log.Logger
	dragging bool
	leftPrev bool
}

func NewRulerView(api timeline.MusicalRuler, minStepGap float64, logger *log.Logger) *RulerView {
	return &RulerView{API: api, MinStepGap: minStepGap, logger: logger}
}

func (r *RulerView) SetBounds(b image.Rectangle) { r.Bounds = b }

// Update handles click-and-drag seeking. A drag must start on the strip but
// keeps following the pointer until the button is released. Reports whether
// a seek was dispatched this frame.
func (r *RulerView) Update() bool {
	left := isMouseButtonPressed(ebiten.MouseButtonLeft)
	mx, my := cursorPosition()

	if left && !r.leftPrev && pt(mx, my, r.Bounds) {
		r.dragging = true
	}
	if !left {
		r.dragging = false
	}

	changed := false
	if r.dragging {
		if tick, ok := timeline.RulerClick(r.API, float64(mx), strip(r.Bounds)); ok {
			changed = true
			r.logger.Debugf("[RULER] seek to tick %.2f", tick)
		}
	}
	r.leftPrev = left
	return changed
}

// Draw paints the ruler marks: bar lines reach the vertical center of the
// strip, even steps a quarter of the height, odd steps an eighth.
func (r *RulerView) Draw(dst *ebiten.Image) {
	drawRect(dst, r.Bounds, colRulerBG, true)

	info := r.API.Info()
	top := float32(r.Bounds.Min.Y)
	h := float32(r.Bounds.Dy())
	steps := timeline.NewSteps(info, float64(r.Bounds.Dx()), r.MinStepGap)
	for {
		step, ok := steps.Next(info)
		if !ok {
			break
		}
		var (
			y float32
			c color.Color
		)
		switch {
		case step.IndexInBar == 0:
			y, c = top+h*0.5, colBarLine
		case step.IndexInBar%2 == 0:
			y, c = top+h*0.25, colStepEven
		default:
			y, c = top+h*0.125, colStepOdd
		}
		x := float32(r.Bounds.Min.X) + float32(step.X)
		drawVLine(dst, x, top, y, 1, c)
	}

	drawHLine(dst, float32(r.Bounds.Min.X), float32(r.Bounds.Max.X), float32(r.Bounds.Max.Y)-1, 1, colSeparator)
}
