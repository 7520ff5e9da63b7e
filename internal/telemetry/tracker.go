package telemetry

import "time"

// DefaultWindow is the number of samples kept when none is given.
const DefaultWindow = 40

// Sample is one render measurement.
type Sample struct {
	Duration     time.Duration
	Timestamp    time.Time
	ElementCount int
}

// Stats summarises the samples currently in the window.
type Stats struct {
	Last        time.Duration
	Average     time.Duration
	Min         time.Duration
	Max         time.Duration
	SampleCount int
	FPS         float64
}

// Tracker keeps a bounded, newest-first window of samples.
type Tracker struct {
	window  int
	samples []Sample
}

func NewTracker(window int) *Tracker {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Tracker{window: window, samples: make([]Sample, 0, window)}
}

// Record adds s as the newest sample, evicts the oldest beyond the window
// and returns statistics over what remains.
func (t *Tracker) Record(s Sample) Stats {
	if len(t.samples) < t.window {
		t.samples = append(t.samples, Sample{})
	}
	copy(t.samples[1:], t.samples[:len(t.samples)-1])
	t.samples[0] = s
	return t.Stats()
}

// Stats computes statistics over the current window without changing it.
func (t *Tracker) Stats() Stats {
	if len(t.samples) == 0 {
		return Stats{}
	}

	st := Stats{
		Last:        t.samples[0].Duration,
		Min:         t.samples[0].Duration,
		Max:         t.samples[0].Duration,
		SampleCount: len(t.samples),
	}
	var total time.Duration
	for _, s := range t.samples {
		total += s.Duration
		if s.Duration < st.Min {
			st.Min = s.Duration
		}
		if s.Duration > st.Max {
			st.Max = s.Duration
		}
	}
	st.Average = total / time.Duration(len(t.samples))
	if st.Average > 0 {
		st.FPS = float64(time.Second) / float64(st.Average)
	}
	return st
}

func (t *Tracker) Reset() {
	t.samples = t.samples[:0]
}

// Samples returns a newest-first copy of the window.
func (t *Tracker) Samples() []Sample {
	out := make([]Sample, len(t.samples))
	copy(out, t.samples)
	return out
}

func (t *Tracker) Window() int { return t.window }

// Durations returns the window durations oldest-first, the order plots want.
func (t *Tracker) Durations() []time.Duration {
	out := make([]time.Duration, len(t.samples))
	for i, s := range t.samples {
		out[len(out)-1-i] = s.Duration
	}
	return out
}

// Milliseconds converts d to fractional milliseconds for display.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
