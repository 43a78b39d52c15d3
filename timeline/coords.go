package timeline

import (
	"fmt"
	"math"
)

// TickToX converts a tick offset to a pixel offset at the given zoom factor.
func TickToX(ticks, ticksPerPoint float64) float64 {
	mustValidZoom(ticksPerPoint)
	return ticks / ticksPerPoint
}

// XToTick converts a pixel offset to a tick offset at the given zoom factor.
func XToTick(x, ticksPerPoint float64) float64 {
	mustValidZoom(ticksPerPoint)
	return x * ticksPerPoint
}

// VisibleTicks is the number of ticks spanned by a strip of the given pixel
// width.
func VisibleTicks(widthPx, ticksPerPoint float64) float64 {
	mustValidZoom(ticksPerPoint)
	return widthPx * ticksPerPoint
}

// mustValidZoom rejects zoom factors the mapping is undefined for. A
// non-positive or non-finite ticks-per-point is a host contract violation,
// not a recoverable condition.
func mustValidZoom(ticksPerPoint float64) {
	if !(ticksPerPoint > 0) || math.IsInf(ticksPerPoint, 1) {
		panic(fmt.Sprintf("timeline: ticks-per-point must be a positive finite number, got %v", ticksPerPoint))
	}
}
