// Package osc exposes the song and transport to external controllers over
// OSC, the protocol DAW-adjacent tools use for remote transport control.
package osc

import (
	"fmt"

	goosc "github.com/hypebeast/go-osc/osc"

	"github.com/ingyamilmolinar/compas/core/model"
	"github.com/ingyamilmolinar/compas/internal/log"
)

const (
	AddrPlayhead = "/compas/playhead"
	AddrPlay     = "/compas/play"
	AddrStop     = "/compas/stop"
	AddrBPM      = "/compas/bpm"
)

// Server drives the song from OSC messages. It runs on its own goroutine;
// the song and transport guard their own state.
type Server struct {
	logger    *log.Logger
	song      *model.Song
	transport *model.Transport
	addr      string
}

func NewServer(addr string, song *model.Song, transport *model.Transport, logger *log.Logger) *Server {
	return &Server{logger: logger, song: song, transport: transport, addr: addr}
}

// ListenAndServe blocks serving OSC messages until the underlying connection
// fails.
func (s *Server) ListenAndServe() error {
	d := goosc.NewStandardDispatcher()

	handlers := map[string]func(msg *goosc.Message){
		AddrPlayhead: s.handlePlayhead,
		AddrPlay:     func(*goosc.Message) { s.transport.Play() },
		AddrStop:     func(*goosc.Message) { s.transport.Stop() },
		AddrBPM:      s.handleBPM,
	}
	for addr, h := range handlers {
		if err := d.AddMsgHandler(addr, h); err != nil {
			return fmt.Errorf("register %s: %w", addr, err)
		}
	}

	s.logger.Infof("[OSC] listening on %s", s.addr)
	srv := &goosc.Server{Addr: s.addr, Dispatcher: d}
	return srv.ListenAndServe()
}

func (s *Server) handlePlayhead(msg *goosc.Message) {
	v, ok := floatArg(msg)
	if !ok {
		s.logger.Warnf("[OSC] %s: expected one numeric argument, got %v", AddrPlayhead, msg.Arguments)
		return
	}
	s.song.SeekAbsolute(v)
	s.logger.Debugf("[OSC] playhead -> %.2f ticks", v)
}

func (s *Server) handleBPM(msg *goosc.Message) {
	v, ok := floatArg(msg)
	if !ok {
		s.logger.Warnf("[OSC] %s: expected one numeric argument, got %v", AddrBPM, msg.Arguments)
		return
	}
	s.transport.SetBPM(v)
	s.logger.Debugf("[OSC] bpm -> %.1f", v)
}

func floatArg(msg *goosc.Message) (float64, bool) {
	if len(msg.Arguments) != 1 {
		return 0, false
	}
	switch v := msg.Arguments[0].(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
