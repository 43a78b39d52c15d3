package timeline

// PlayheadConfig describes the playhead geometry. Construction is decoupled
// from rendering; mutate the fields directly.
type PlayheadConfig struct {
	// Width of the playhead line in pixels.
	Width float64
	// ExtendToAvailableHeight stretches the playhead over the whole viewport
	// height instead of stopping at the last occupied track.
	ExtendToAvailableHeight bool
	// ExtendBeyondLastTrack adds a pixel margin below the last occupied
	// track. Ignored when ExtendToAvailableHeight is set.
	ExtendBeyondLastTrack float64
}

// DefaultPlayheadConfig returns the documented defaults: a 1px line that
// stops at the last occupied track with no extra margin.
func DefaultPlayheadConfig() PlayheadConfig {
	return PlayheadConfig{Width: 1.0}
}

// PlayheadX is the playhead pixel offset from the left edge of the view.
func PlayheadX(info PlayheadInfo) float64 {
	return TickToX(info.PlayheadTicks(), info.TicksPerPoint())
}

// Visible reports whether a playhead at absolute pixel position x should be
// drawn for the given strip. An off-screen playhead is not drawn but remains
// hit-testable through DragPlayhead.
func (c PlayheadConfig) Visible(x float64, vp Viewport) bool {
	return vp.Contains(x)
}

// Extent computes the vertical pixel range the playhead line covers, from
// the top of the view down to either the full view height or the occupied
// tracks' bottom plus the configured margin, whichever the config selects.
func (c PlayheadConfig) Extent(viewTop, viewBottom, tracksBottom float64) (top, bottom float64) {
	if c.ExtendToAvailableHeight {
		return viewTop, viewBottom
	}
	bottom = tracksBottom + c.ExtendBeyondLastTrack
	if bottom > viewBottom {
		bottom = viewBottom
	}
	return viewTop, bottom
}

// DragPlayhead handles one click or drag-update on the playhead: the pointer
// position is mapped through the inverse transform, clamped to zero, and
// dispatched through SetPlayheadTicks. Unlike the ruler the pointer is not
// required to stay inside the strip — a drag started on the playhead keeps
// tracking the pointer. The returned flag tells the host whether a value
// changed this pass.
func DragPlayhead(api Playhead, pointerX float64, vp Viewport) (float64, bool) {
	if vp.Width <= 0 {
		return 0, false
	}
	tick := RulerTickAt(pointerX, vp, api.TicksPerPoint())
	api.SetPlayheadTicks(tick)
	return tick, true
}
