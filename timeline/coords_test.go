package timeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordsRoundTrip(t *testing.T) {
	t.Parallel()

	ticks := []float64{0, 1, 7.5, 120, 480, 1e6}
	zooms := []float64{0.25, 1.0, 1.2, 16.0, 60.0}
	for _, z := range zooms {
		for _, tk := range ticks {
			got := XToTick(TickToX(tk, z), z)
			require.InDelta(t, tk, got, 1e-9*math.Max(tk, 1), "ticks=%v zoom=%v", tk, z)
		}
		for _, x := range ticks {
			got := TickToX(XToTick(x, z), z)
			require.InDelta(t, x, got, 1e-9*math.Max(x, 1), "x=%v zoom=%v", x, z)
		}
	}
}

func TestVisibleTicks(t *testing.T) {
	t.Parallel()

	require.Equal(t, 800.0, VisibleTicks(800, 1.0))
	require.Equal(t, 480.0, VisibleTicks(400, 1.2))
	require.Equal(t, 0.0, VisibleTicks(0, 2.0))
}

func TestCoordsRejectInvalidZoom(t *testing.T) {
	t.Parallel()

	for _, z := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		z := z
		require.Panics(t, func() { TickToX(1, z) }, "zoom=%v", z)
		require.Panics(t, func() { XToTick(1, z) }, "zoom=%v", z)
		require.Panics(t, func() { VisibleTicks(1, z) }, "zoom=%v", z)
	}
}

func TestTimeSigBeatsPerBar(t *testing.T) {
	t.Parallel()

	require.Equal(t, 4.0, TimeSig{Top: 4, Bottom: 4}.BeatsPerBar())
	require.Equal(t, 3.0, TimeSig{Top: 3, Bottom: 4}.BeatsPerBar())
	require.Equal(t, 3.0, TimeSig{Top: 6, Bottom: 8}.BeatsPerBar())
	require.Equal(t, 4.0, TimeSig{Top: 2, Bottom: 2}.BeatsPerBar())
	require.Equal(t, 3.5, TimeSig{Top: 7, Bottom: 8}.BeatsPerBar())
}

func TestViewportContains(t *testing.T) {
	t.Parallel()

	vp := Viewport{Left: 100, Width: 400}
	require.True(t, vp.Contains(100))
	require.True(t, vp.Contains(500))
	require.False(t, vp.Contains(99.9))
	require.False(t, vp.Contains(500.1))
	require.Equal(t, 500.0, vp.Right())
}
