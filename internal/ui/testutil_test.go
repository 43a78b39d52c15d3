package ui

import (
	"io"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/ingyamilmolinar/compas/core/model"
	"github.com/ingyamilmolinar/compas/internal/log"
)

// testInput is a scriptable stand-in for the ebiten input functions.
type testInput struct {
	x, y   int
	left   bool
	keys   map[ebiten.Key]bool
	dx, dy float64
}

func installInput(t *testing.T) *testInput {
	t.Helper()
	in := &testInput{keys: map[ebiten.Key]bool{}}
	restore := SetInputForTest(
		func() (int, int) { return in.x, in.y },
		func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonLeft && in.left },
		func(k ebiten.Key) bool { return in.keys[k] },
		func() (float64, float64) { return in.dx, in.dy },
	)
	t.Cleanup(restore)
	return in
}

func testLogger() *log.Logger {
	return log.New(io.Discard, logrus.DebugLevel)
}

// testSong returns a song zoomed so one screen point covers six ticks.
func testSong(t *testing.T) *model.Song {
	t.Helper()
	s := model.NewSong(testLogger(), 960, nil)
	s.SetPointsPerBeat(160) // 960 / 160 = 6 ticks per point
	if got := s.TicksPerPoint(); got != 6 {
		t.Fatalf("TicksPerPoint = %v, want 6", got)
	}
	return s
}

func testTransport(s *model.Song) *model.Transport {
	return model.NewTransport(s, clocktesting.NewFakeClock(time.Now()))
}
