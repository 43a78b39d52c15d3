package timeline

import "math"

// RulerTickAt maps a pointer x position to the tick under it, given the
// strip the ruler occupies and the current zoom. The result is clamped to
// zero so pointers left of the timeline origin seek to the start.
func RulerTickAt(pointerX float64, vp Viewport, ticksPerPoint float64) float64 {
	visible := VisibleTicks(vp.Width, ticksPerPoint)
	tick := ((pointerX - vp.Left) / vp.Width) * visible
	return math.Max(tick, 0)
}

// RulerClick handles one click or drag-update on the ruler strip: the
// pointer position is mapped to a tick and dispatched through the host's
// ClickAtTick callback, exactly once. Nothing is dispatched when the pointer
// lies outside the strip or the strip has no width. The returned flag tells
// the host whether a value changed this pass.
func RulerClick(api MusicalRuler, pointerX float64, vp Viewport) (float64, bool) {
	if vp.Width <= 0 || !vp.Contains(pointerX) {
		return 0, false
	}
	tick := RulerTickAt(pointerX, vp, api.Info().TicksPerPoint())
	api.Interact().ClickAtTick(tick)
	return tick, true
}
