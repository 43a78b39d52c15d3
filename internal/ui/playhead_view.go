package ui

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/compas/internal/log"
	"github.com/ingyamilmolinar/compas/timeline"
)

// grabZonePx widens the playhead hit zone so a 1px line stays draggable.
const grabZonePx = 4.0

// PlayheadView draws the transport position line over the timeline and lets
// the user drag it. The playhead is drawn only while inside the visible
// range but can always be dragged back in.
type PlayheadView struct {
	API    timeline.Playhead
	Config timeline.PlayheadConfig
	Bounds image.Rectangle // full timeline area, ruler included

	// TracksBottom is the y of the last occupied track's bottom edge, used
	// when the config does not extend the playhead to the full height.
	TracksBottom int

	logger   *log.Logger
	dragging bool
	leftPrev bool
}

func NewPlayheadView(api timeline.Playhead, cfg timeline.PlayheadConfig, logger *log.Logger) *PlayheadView {
	return &PlayheadView{API: api, Config: cfg, logger: logger}
}

func (p *PlayheadView) SetBounds(b image.Rectangle) { p.Bounds = b }

// Dragging reports whether a playhead drag is in progress, so sibling
// widgets can yield the pointer.
func (p *PlayheadView) Dragging() bool { return p.dragging }

func (p *PlayheadView) screenX() float64 {
	return float64(p.Bounds.Min.X) + timeline.PlayheadX(p.API)
}

// Update handles grabbing and dragging the playhead line. Reports whether
// the playhead moved this frame.
func (p *PlayheadView) Update() bool {
	left := isMouseButtonPressed(ebiten.MouseButtonLeft)
	mx, my := cursorPosition()

	if left && !p.leftPrev && p.hit(mx, my) {
		p.dragging = true
	}
	if !left {
		p.dragging = false
	}

	changed := false
	if p.dragging {
		if tick, ok := timeline.DragPlayhead(p.API, float64(mx), strip(p.Bounds)); ok {
			changed = true
			p.logger.Debugf("[PLAYHEAD] dragged to tick %.2f", tick)
		}
	}
	p.leftPrev = left
	return changed
}

func (p *PlayheadView) hit(mx, my int) bool {
	if my < p.Bounds.Min.Y || my >= p.Bounds.Max.Y {
		return false
	}
	half := math.Max(p.Config.Width, grabZonePx) / 2
	return math.Abs(float64(mx)-p.screenX()) <= half
}

func (p *PlayheadView) Draw(dst *ebiten.Image) {
	x := p.screenX()
	if !p.Config.Visible(x, strip(p.Bounds)) {
		return
	}
	top, bottom := p.Config.Extent(
		float64(p.Bounds.Min.Y), float64(p.Bounds.Max.Y), float64(p.TracksBottom))
	drawVLine(dst, float32(x), float32(top), float32(bottom), float32(p.Config.Width), colPlayhead)
}
