package model

import (
	"sync"
	"time"

	"k8s.io/utils/clock"
)

const (
	minBPM = 1.0
	maxBPM = 999.0
)

// Transport advances the playhead from wall time while playing. The clock is
// injected so tests can drive time by hand; playback here only moves the
// playhead in ticks, no audio is produced.
type Transport struct {
	mu      sync.Mutex
	song    *Song
	clock   clock.Clock
	bpm     float64
	playing bool
	last    time.Time
}

func NewTransport(song *Song, c clock.Clock) *Transport {
	return &Transport{song: song, clock: c, bpm: 120}
}

func (t *Transport) Play() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.playing {
		return
	}
	t.playing = true
	t.last = t.clock.Now()
}

func (t *Transport) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.playing = false
}

func (t *Transport) Toggle() {
	t.mu.Lock()
	playing := t.playing
	t.mu.Unlock()
	if playing {
		t.Stop()
	} else {
		t.Play()
	}
}

func (t *Transport) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

// SetBPM clamps to the supported range instead of rejecting.
func (t *Transport) SetBPM(bpm float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if bpm < minBPM {
		bpm = minBPM
	} else if bpm > maxBPM {
		bpm = maxBPM
	}
	t.bpm = bpm
}

func (t *Transport) BPM() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bpm
}

// Advance moves the playhead by the wall time elapsed since the previous
// call. Call once per frame; it is a no-op while stopped.
func (t *Transport) Advance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.playing {
		return
	}
	now := t.clock.Now()
	dt := now.Sub(t.last).Seconds()
	t.last = now
	if dt <= 0 {
		return
	}
	t.song.MovePlayhead(dt * t.bpm / 60 * float64(t.song.TicksPerBeat()))
}
