package timeline

// fakeSong is a minimal host model for tests: bars are laid out contiguously
// from a configurable view-relative origin, the signature of bar i taken from
// sigs[i] (the last entry repeating). Every callback invocation is recorded.
type fakeSong struct {
	tpb   int
	tpp   float64
	sigs  []TimeSig
	start float64 // tick offset of the first bar, may be negative

	playhead float64
	clicks   []float64
	sets     []float64
	shifts   []float64
	zooms    []float64
}

func (f *fakeSong) TicksPerBeat() int      { return f.tpb }
func (f *fakeSong) TicksPerPoint() float64 { return f.tpp }

func (f *fakeSong) BarAtTicks(tick float64) Bar {
	begin := f.start
	for i := 0; ; i++ {
		sig := f.sigs[len(f.sigs)-1]
		if i < len(f.sigs) {
			sig = f.sigs[i]
		}
		end := begin + sig.BeatsPerBar()*float64(f.tpb)
		if tick < end {
			return Bar{Start: begin, End: end, Sig: sig}
		}
		begin = end
	}
}

func (f *fakeSong) PlayheadTicks() float64 { return f.playhead }

func (f *fakeSong) SetPlayheadTicks(tick float64) {
	f.playhead = tick
	f.sets = append(f.sets, tick)
}

func (f *fakeSong) ClickAtTick(tick float64) { f.clicks = append(f.clicks, tick) }

func (f *fakeSong) Info() MusicalInfo            { return f }
func (f *fakeSong) Interact() MusicalInteract    { return f }
func (f *fakeSong) MusicalRulerInfo() MusicalInfo { return f }

func (f *fakeSong) ShiftTimelineStart(ticks float64) { f.shifts = append(f.shifts, ticks) }
func (f *fakeSong) Zoom(yDelta float64)              { f.zooms = append(f.zooms, yDelta) }

var (
	_ MusicalRuler = (*fakeSong)(nil)
	_ Playhead     = (*fakeSong)(nil)
	_ API          = (*fakeSong)(nil)
)

// collect drains a generator into a slice.
func collect(s *Steps, info MusicalInfo) []Step {
	var out []Step
	for {
		step, ok := s.Next(info)
		if !ok {
			return out
		}
		out = append(out, step)
	}
}
