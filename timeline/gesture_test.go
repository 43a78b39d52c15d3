package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleScrollZoom(t *testing.T) {
	t.Parallel()

	song := &fakeSong{tpb: 96, tpp: 2.0, sigs: []TimeSig{{Top: 4, Bottom: 4}}}
	consumed := HandleScroll(song, ScrollDelta{X: 3, Y: -2}, true)

	require.True(t, consumed)
	require.Equal(t, []float64{-5}, song.zooms)
	require.Empty(t, song.shifts)
}

func TestHandleScrollPan(t *testing.T) {
	t.Parallel()

	song := &fakeSong{tpb: 96, tpp: 2.0, sigs: []TimeSig{{Top: 4, Bottom: 4}}}
	consumed := HandleScroll(song, ScrollDelta{X: 10, Y: 0}, false)

	require.False(t, consumed)
	require.Equal(t, []float64{20}, song.shifts)
	require.Empty(t, song.zooms)
}

func TestHandleScrollVerticalLeftToHost(t *testing.T) {
	t.Parallel()

	song := &fakeSong{tpb: 96, tpp: 2.0, sigs: []TimeSig{{Top: 4, Bottom: 4}}}
	consumed := HandleScroll(song, ScrollDelta{X: 0, Y: -7}, false)

	require.False(t, consumed)
	require.Empty(t, song.shifts)
	require.Empty(t, song.zooms)
}

func TestHandleScrollModifierSuppressesScroll(t *testing.T) {
	t.Parallel()

	// Even a zero delta is consumed while the modifier is held so the host's
	// scroll container never double-handles the gesture.
	song := &fakeSong{tpb: 96, tpp: 2.0, sigs: []TimeSig{{Top: 4, Bottom: 4}}}
	consumed := HandleScroll(song, ScrollDelta{}, true)

	require.True(t, consumed)
	require.Empty(t, song.zooms)
}
