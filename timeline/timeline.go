// Package timeline computes the musical bar/beat grid and the pixel↔tick
// coordinate mapping behind a scrollable, zoomable timeline widget. The
// package is pure computation: the host owns the musical model and the
// rendering surface and plugs in through the interfaces below.
package timeline

// MinStepGap is the default minimum gap, in pixels, between two adjacent
// grid lines.
const MinStepGap = 4.0

// TimeSig is a musical time signature.
type TimeSig struct {
	Top    int // numerator
	Bottom int // denominator, a power of two by convention
}

// BeatsPerBar is the number of beats per bar of this time signature.
func (ts TimeSig) BeatsPerBar() float64 {
	return 4 * float64(ts.Top) / float64(ts.Bottom)
}

// Bar is a contiguous half-open tick range [Start, End) governed by one time
// signature. Tick offsets are relative to the left edge of the timeline view.
type Bar struct {
	Start float64
	End   float64
	Sig   TimeSig
}

// Len is the bar length in ticks.
func (b Bar) Len() float64 { return b.End - b.Start }

// MusicalInfo supplies the musical time model the grid is computed from.
type MusicalInfo interface {
	// TicksPerBeat is the PPQN (pulses per quarter note). Must be > 0.
	TicksPerBeat() int
	// TicksPerPoint is the current zoom factor: how many ticks one pixel
	// represents. Must be finite and > 0.
	TicksPerPoint() float64
	// BarAtTicks returns the bar whose range contains or immediately follows
	// the given tick offset. Bars returned for increasing offsets must be
	// contiguous and non-overlapping; that is the caller's contract, the
	// grid generator does not defend against violations.
	BarAtTicks(tick float64) Bar
}

// MusicalInteract responds to the user clicking on the ruler.
type MusicalInteract interface {
	// ClickAtTick is invoked with the tick location that was clicked.
	ClickAtTick(tick float64)
}

// MusicalRuler is the API required by the ruler widget.
type MusicalRuler interface {
	Info() MusicalInfo
	Interact() MusicalInteract
}

// PlayheadInfo extends MusicalInfo with the playhead position.
type PlayheadInfo interface {
	MusicalInfo
	// PlayheadTicks is the playhead location in ticks relative to the left
	// edge of the timeline view.
	PlayheadTicks() float64
}

// Interaction handles interaction with the playhead.
type Interaction interface {
	SetPlayheadTicks(tick float64)
}

// Playhead provides playhead info and handles playhead interaction.
type Playhead interface {
	PlayheadInfo
	Interaction
}

// API is the host's mutable timeline model.
type API interface {
	// MusicalRulerInfo is the musical info backing the ruler and grid.
	MusicalRulerInfo() MusicalInfo
	// ShiftTimelineStart pans the timeline origin by the given tick amount.
	ShiftTimelineStart(ticks float64)
	// Zoom adjusts the zoom factor from a scroll delta taken with the zoom
	// modifier held.
	Zoom(yDelta float64)
}

// Viewport is the horizontal pixel strip a widget occupies on screen.
type Viewport struct {
	Left  float64
	Width float64
}

// Right is the right edge of the strip.
func (v Viewport) Right() float64 { return v.Left + v.Width }

// Contains reports whether x lies on the strip, both edges included.
func (v Viewport) Contains(x float64) bool {
	return x >= v.Left && x <= v.Right()
}
