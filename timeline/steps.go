package timeline

import "fmt"

// Step is one grid line within the visible range.
type Step struct {
	// IndexInBar is the index of the step within its bar. Index 0 always
	// marks the start of a bar and carries that bar's time signature.
	IndexInBar int
	// Ticks is the step position in ticks from the left edge of the view.
	Ticks float64
	// X is the step position in pixels from the left edge of the view.
	X float64
}

// Steps produces the ordered grid-line positions for the visible range of a
// timeline. The subdivision is re-chosen per bar so adjacent lines never come
// closer than the configured pixel gap, whatever the zoom level or time
// signature.
//
// A Steps value is consumed by iteration and is only valid for the single
// frame it was built for; construct a fresh one every generation pass.
type Steps struct {
	ticksPerBeat  float64
	ticksPerPoint float64
	visibleTicks  float64
	minStepTicks  float64
	indexInBar    int
	stepTicks     float64
	bar           Bar
	ticks         float64
}

// NewSteps builds a generator for one pass over the visible range.
// visibleLen is the width of the view in pixels and minStepGap the smallest
// allowed pixel distance between adjacent lines.
func NewSteps(info MusicalInfo, visibleLen, minStepGap float64) *Steps {
	tpb := info.TicksPerBeat()
	if tpb <= 0 {
		panic(fmt.Sprintf("timeline: ticks-per-beat must be positive, got %d", tpb))
	}
	tpp := info.TicksPerPoint()
	mustValidZoom(tpp)
	return &Steps{
		ticksPerBeat:  float64(tpb),
		ticksPerPoint: tpp,
		visibleTicks:  VisibleTicks(visibleLen, tpp),
		minStepTicks:  XToTick(minStepGap, tpp),
		bar:           info.BarAtTicks(0),
	}
}

// Next produces the next step. It returns ok=false once the cursor has
// passed the right edge of the visible range; after that the generator is
// exhausted.
func (s *Steps) Next(info MusicalInfo) (Step, bool) {
	for {
		if s.indexInBar == 0 {
			s.ticks = s.bar.Start
			s.stepTicks = s.subdivide()
		}

		for {
			if s.ticks > s.visibleTicks {
				return Step{}, false
			}
			if s.ticks >= s.bar.End {
				// Crossed into the next bar: fetch it and re-run the
				// subdivision under its time signature.
				s.indexInBar = 0
				s.bar = info.BarAtTicks(s.bar.End + 0.5)
				break
			}
			step := Step{
				IndexInBar: s.indexInBar,
				Ticks:      s.ticks,
				X:          s.ticks / s.ticksPerPoint,
			}
			s.indexInBar++
			s.ticks += s.stepTicks
			if step.Ticks < 0 {
				// Bars straddling the view origin start left of zero; those
				// steps are computed but never emitted.
				continue
			}
			return step, true
		}
	}
}

// subdivide picks the step interval for the current bar: the densest
// power-of-two subdivision of the beat whose steps stay at least
// minStepTicks apart, or a single step spanning the whole bar when even the
// signature's natural subdivision is too fine for the current zoom.
func (s *Steps) subdivide() float64 {
	subdivs := s.bar.Sig.Bottom / 4
	if subdivs < 1 {
		// Sub-quarter-note denominators would imply zero subdivisions per
		// beat; treat them as one step per beat.
		subdivs = 1
	}
	stepTicks := s.ticksPerBeat / float64(subdivs)
	if stepTicks < s.minStepTicks {
		return s.bar.Len()
	}
	for {
		next := stepTicks / 2
		if next <= s.minStepTicks {
			return stepTicks
		}
		stepTicks = next
	}
}
