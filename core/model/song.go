package model

import (
	"math"
	"sync"

	"github.com/fogleman/ease"

	"github.com/ingyamilmolinar/compas/internal/log"
	"github.com/ingyamilmolinar/compas/timeline"
)

const (
	// DefaultTicksPerBeat is the default PPQN of a new song.
	DefaultTicksPerBeat = 960
	// DefaultPointsPerBeat is the default zoom: one beat spans 16 pixels.
	DefaultPointsPerBeat = 16.0

	minPointsPerBeat = 0.5
	maxPointsPerBeat = 512.0

	zoomFactor      = 1.05
	zoomSensitivity = 0.1
	zoomAnimSeconds = 0.15
)

// SigChange assigns a time signature from a given bar index onward.
type SigChange struct {
	Bar int
	Sig timeline.TimeSig
}

// Song is the host-side musical model behind the timeline widgets. It owns
// everything the core only reaches through the timeline contracts: the
// signature map, the view start offset (pan state), the zoom and the
// playhead. The OSC bridge writes from its own goroutine, so all access is
// guarded.
type Song struct {
	mu     sync.Mutex
	logger *log.Logger

	ticksPerBeat int
	sigs         []SigChange // sorted by Bar, sigs[0].Bar == 0

	start    float64 // view origin offset in absolute ticks, >= 0
	playhead float64 // absolute ticks, >= 0

	pointsPerBeat float64 // live zoom value, animated toward zoomTarget
	zoomFrom      float64
	zoomTarget    float64
	zoomT         float64 // 0..1 animation progress, 1 = settled
}

// NewSong builds a song with the given PPQN and signature map. A nil or
// empty map defaults to 4/4 throughout; an entry for bar 0 is synthesized
// when missing.
func NewSong(logger *log.Logger, ticksPerBeat int, sigs []SigChange) *Song {
	if ticksPerBeat <= 0 {
		ticksPerBeat = DefaultTicksPerBeat
	}
	if len(sigs) == 0 || sigs[0].Bar != 0 {
		sigs = append([]SigChange{{Bar: 0, Sig: timeline.TimeSig{Top: 4, Bottom: 4}}}, sigs...)
	}
	return &Song{
		logger:        logger,
		ticksPerBeat:  ticksPerBeat,
		sigs:          sigs,
		pointsPerBeat: DefaultPointsPerBeat,
		zoomFrom:      DefaultPointsPerBeat,
		zoomTarget:    DefaultPointsPerBeat,
		zoomT:         1,
	}
}

var (
	_ timeline.MusicalRuler = (*Song)(nil)
	_ timeline.Playhead     = (*Song)(nil)
	_ timeline.API          = (*Song)(nil)
)

/* ── MusicalInfo ── */

func (s *Song) TicksPerBeat() int { return s.ticksPerBeat }

func (s *Song) TicksPerPoint() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.ticksPerBeat) / s.pointsPerBeat
}

// BarAtTicks returns the bar containing (or immediately following) the given
// view-relative tick. Bars are laid out contiguously from absolute tick 0
// following the signature map; a bar straddling the view origin comes back
// with a negative view-relative start.
func (s *Song) BarAtTicks(tick float64) timeline.Bar {
	s.mu.Lock()
	defer s.mu.Unlock()

	abs := s.start + tick
	begin := 0.0
	for i := 0; ; i++ {
		end := begin + s.barLen(i)
		if abs < end {
			return timeline.Bar{Start: begin - s.start, End: end - s.start, Sig: s.sigAt(i)}
		}
		begin = end
	}
}

// sigAt is the signature governing bar index i. Callers hold s.mu.
func (s *Song) sigAt(i int) timeline.TimeSig {
	sig := s.sigs[0].Sig
	for _, sc := range s.sigs {
		if sc.Bar > i {
			break
		}
		sig = sc.Sig
	}
	return sig
}

func (s *Song) barLen(i int) float64 {
	return s.sigAt(i).BeatsPerBar() * float64(s.ticksPerBeat)
}

/* ── ruler & playhead interaction ── */

func (s *Song) Info() timeline.MusicalInfo         { return s }
func (s *Song) Interact() timeline.MusicalInteract { return s }

// ClickAtTick seeks the playhead to the clicked ruler position.
func (s *Song) ClickAtTick(tick float64) {
	s.SetPlayheadTicks(tick)
	if s.logger != nil {
		s.logger.Debugf("[SONG] ruler click at tick %.2f", tick)
	}
}

// PlayheadTicks is the playhead position relative to the view origin. It may
// be negative when the view has been panned past the playhead.
func (s *Song) PlayheadTicks() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playhead - s.start
}

// SetPlayheadTicks places the playhead at a view-relative tick.
func (s *Song) SetPlayheadTicks(tick float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playhead = s.start + math.Max(tick, 0)
}

// MovePlayhead advances the playhead by an absolute tick amount. Used by the
// transport; negative deltas rewind, clamped at the timeline start.
func (s *Song) MovePlayhead(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playhead = math.Max(s.playhead+delta, 0)
}

// SeekAbsolute places the playhead at an absolute tick position, clamped at
// the timeline start. Used by remote control, which addresses absolute time.
func (s *Song) SeekAbsolute(ticks float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playhead = math.Max(ticks, 0)
}

// Rewind puts the playhead back at absolute tick 0.
func (s *Song) Rewind() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playhead = 0
}

/* ── timeline API ── */

func (s *Song) MusicalRulerInfo() timeline.MusicalInfo { return s }

// ShiftTimelineStart pans the view origin by the given tick amount, clamped
// so the view never starts before absolute tick 0.
func (s *Song) ShiftTimelineStart(ticks float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start = math.Max(s.start+ticks, 0)
}

// Zoom retargets the points-per-beat from a scroll delta. The live value
// eases toward the target over a few frames (see Animate) so the grid
// density changes smoothly instead of jumping.
func (s *Song) Zoom(yDelta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.zoomTarget * math.Pow(zoomFactor, yDelta*zoomSensitivity)
	if target < minPointsPerBeat {
		target = minPointsPerBeat
	} else if target > maxPointsPerBeat {
		target = maxPointsPerBeat
	}
	if target == s.zoomTarget {
		return
	}
	s.zoomFrom = s.pointsPerBeat
	s.zoomTarget = target
	s.zoomT = 0
}

// Animate advances the zoom animation by dt seconds. Call once per frame.
func (s *Song) Animate(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.zoomT >= 1 {
		return
	}
	s.zoomT += dt / zoomAnimSeconds
	if s.zoomT >= 1 {
		s.zoomT = 1
		s.pointsPerBeat = s.zoomTarget
		return
	}
	s.pointsPerBeat = s.zoomFrom + (s.zoomTarget-s.zoomFrom)*ease.OutCubic(s.zoomT)
}

// PointsPerBeat is the live zoom value.
func (s *Song) PointsPerBeat() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointsPerBeat
}

// SetPointsPerBeat jumps the zoom to a value with no animation, clamped to
// the supported range.
func (s *Song) SetPointsPerBeat(ppb float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ppb < minPointsPerBeat {
		ppb = minPointsPerBeat
	} else if ppb > maxPointsPerBeat {
		ppb = maxPointsPerBeat
	}
	s.pointsPerBeat = ppb
	s.zoomFrom = ppb
	s.zoomTarget = ppb
	s.zoomT = 1
}

// StartTicks is the view origin offset in absolute ticks.
func (s *Song) StartTicks() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start
}

// AbsolutePlayheadTicks is the playhead position from the timeline start,
// independent of panning.
func (s *Song) AbsolutePlayheadTicks() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playhead
}
