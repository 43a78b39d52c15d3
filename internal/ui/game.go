package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ingyamilmolinar/compas/core/model"
	"github.com/ingyamilmolinar/compas/internal/log"
	"github.com/ingyamilmolinar/compas/timeline"
)

const (
	ebitenTPS = 60 // ebiten's default update rate
	rulerH    = 24 // ruler-strip height in px
)

// Game wires the song, transport and timeline widgets into an ebiten app:
// the ruler strip pinned at the top, the grid pane below it and the playhead
// over the full timeline.
type Game struct {
	logger    *log.Logger
	song      *model.Song
	transport *model.Transport

	ruler    *RulerView
	grid     *GridPane
	playhead *PlayheadView

	winW, winH int
	spacePrev  bool
}

func New(logger *log.Logger, song *model.Song, transport *model.Transport, minStepGap float64) *Game {
	cfg := timeline.DefaultPlayheadConfig()
	cfg.ExtendToAvailableHeight = true
	return &Game{
		logger:    logger,
		song:      song,
		transport: transport,
		ruler:     NewRulerView(song, minStepGap, logger),
		grid:      NewGridPane(song, minStepGap),
		playhead:  NewPlayheadView(song, cfg, logger),
	}
}

func (g *Game) Layout(w, h int) (int, int) {
	g.winW, g.winH = w, h
	g.ruler.SetBounds(image.Rect(0, 0, w, rulerH))
	g.grid.SetBounds(image.Rect(0, rulerH, w, h))
	g.playhead.SetBounds(image.Rect(0, 0, w, h))
	g.playhead.TracksBottom = h
	return w, h
}

func (g *Game) Update() error {
	// Scroll/zoom gestures apply anywhere over the timeline.
	mx, my := cursorPosition()
	if pt(mx, my, image.Rect(0, 0, g.winW, g.winH)) {
		dx, dy := wheel()
		timeline.HandleScroll(g.song, timeline.ScrollDelta{X: dx, Y: dy}, zoomModifierHeld())
	}

	// The playhead wins the pointer over the ruler while dragged.
	moved := g.playhead.Update()
	if !g.playhead.Dragging() {
		moved = g.ruler.Update() || moved
	}
	if moved {
		g.logger.Debugf("[GAME] playhead at %.2f ticks", g.song.AbsolutePlayheadTicks())
	}

	// Space toggles the transport.
	space := isKeyPressed(ebiten.KeySpace)
	if space && !g.spacePrev {
		g.transport.Toggle()
		g.logger.Infof("[GAME] transport playing=%t", g.transport.Playing())
	}
	g.spacePrev = space

	g.song.Animate(1.0 / ebitenTPS)
	g.transport.Advance()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.grid.Draw(screen)
	g.ruler.Draw(screen)
	g.playhead.Draw(screen)
	ebitenutil.DebugPrintAt(screen, g.status(), 8, g.winH-18)
}

func (g *Game) status() string {
	state := "stopped"
	if g.transport.Playing() {
		state = "playing"
	}
	beat := g.song.AbsolutePlayheadTicks() / float64(g.song.TicksPerBeat())
	return fmt.Sprintf("%s  bpm=%.0f  beat=%.2f  zoom=%.1f pt/beat",
		state, g.transport.BPM(), beat, g.song.PointsPerBeat())
}
