package ui

import (
	"image"
	"testing"

	"github.com/ingyamilmolinar/compas/timeline"
)

func TestPlayheadViewDrag(t *testing.T) {
	in := installInput(t)
	song := testSong(t)
	song.SetPlayheadTicks(120) // x = 120 / 6 = 20
	p := NewPlayheadView(song, timeline.DefaultPlayheadConfig(), testLogger())
	p.SetBounds(image.Rect(0, 0, 800, 480))

	in.x, in.y, in.left = 20, 100, true
	if !p.Update() {
		t.Fatalf("grab on the line should start a drag")
	}
	if !p.Dragging() {
		t.Fatalf("Dragging should report true while held")
	}

	in.x = 50
	p.Update()
	if got := song.PlayheadTicks(); got != 300 {
		t.Fatalf("PlayheadTicks = %v, want 300", got)
	}

	in.left = false
	p.Update()
	if p.Dragging() {
		t.Fatalf("Dragging should clear on release")
	}
}

func TestPlayheadViewGrabZone(t *testing.T) {
	in := installInput(t)
	song := testSong(t)
	song.SetPlayheadTicks(120) // x = 20
	p := NewPlayheadView(song, timeline.DefaultPlayheadConfig(), testLogger())
	p.SetBounds(image.Rect(0, 0, 800, 480))

	// Just inside the widened hit zone.
	in.x, in.y, in.left = 21, 100, true
	p.Update()
	if !p.Dragging() {
		t.Fatalf("press 1px off the line should still grab")
	}
	in.left = false
	p.Update()

	// Clearly outside.
	in.x, in.left = 25, true
	p.Update()
	if p.Dragging() {
		t.Fatalf("press 5px off the line must not grab")
	}
	if got := song.PlayheadTicks(); got != 21*6 {
		// The first drag snapped the playhead to the press position.
		t.Fatalf("PlayheadTicks = %v, want %v", got, 21*6)
	}
}
