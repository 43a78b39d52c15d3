package timeline

// ScrollDelta is one frame's worth of scroll input, in pixels.
type ScrollDelta struct {
	X float64
	Y float64
}

// HandleScroll interprets a scroll delta taken over the timeline and
// delegates it to the host's mutable model.
//
// With the zoom modifier held, both axes collapse into a single zoom signal
// (horizontal inverted). Without it, a horizontal delta pans the timeline
// origin by a tick amount proportional to the current zoom so panning feels
// zoom-invariant in pixel terms; a vertical-only delta is left untouched for
// the host's own scroll container.
//
// The return value reports whether the host must suppress its own scroll
// handling this frame, which is the case whenever the modifier is held.
func HandleScroll(api API, delta ScrollDelta, zoomMod bool) bool {
	if zoomMod {
		if delta.X != 0 || delta.Y != 0 {
			api.Zoom(delta.Y - delta.X)
		}
		return true
	}
	if delta.X != 0 {
		ticksPerPoint := api.MusicalRulerInfo().TicksPerPoint()
		api.ShiftTimelineStart(delta.X * ticksPerPoint)
	}
	return false
}
