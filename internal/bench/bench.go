package bench

import (
	"time"

	"github.com/san-kum/boardlab/internal/board"
	"github.com/san-kum/boardlab/internal/elements"
	"github.com/san-kum/boardlab/internal/logging"
	"github.com/san-kum/boardlab/internal/render"
)

const DefaultIterations = 30

type Options struct {
	Iterations      int
	IncludePoints   bool
	IncludeSegments bool
	Size            render.Size
	Seed            int64
}

func DefaultOptions() Options {
	return Options{
		Iterations:      DefaultIterations,
		IncludePoints:   true,
		IncludeSegments: true,
		Size:            render.Size{Width: 720, Height: 480},
	}
}

type Summary struct {
	Average     time.Duration
	Min         time.Duration
	Max         time.Duration
	SampleCount int
}

type Result struct {
	Durations []time.Duration
	Summary   Summary
}

// Target is the part of a board the driver talks to.
type Target interface {
	Clear()
	AddElement(e elements.Element)
	OnRenderComplete(handler func(board.RenderEvent)) func()
}

// Run clears target and then adds Iterations rounds of random elements,
// recording exactly one render duration per add. Renders caused by anything
// other than those adds, including the initial clear and nested adds made
// by subscribers, are not recorded.
// The target keeps the generated elements afterwards.
func Run(target Target, opts Options) Result {
	return RunWith(target, opts, NewSource(opts.Seed, nil))
}

// RunWith is Run with an explicit element source.
func RunWith(target Target, opts Options, src *Source) Result {
	var (
		durations []time.Duration
		capture   bool
		last      *board.RenderEvent
	)
	off := target.OnRenderComplete(func(ev board.RenderEvent) {
		if capture {
			last = &ev
		}
	})
	defer off()

	target.Clear()

	// Only the last render of an add is kept. Handlers that re-enter the
	// target render before the add's own pass completes.
	add := func(e elements.Element) {
		capture, last = true, nil
		target.AddElement(e)
		capture = false
		if last != nil {
			durations = append(durations, last.Duration)
		}
	}

	w, h := opts.Size.Width, opts.Size.Height
	for i := 0; i < opts.Iterations; i++ {
		if opts.IncludePoints {
			add(src.Point(w, h))
		}
		if opts.IncludeSegments {
			add(src.Segment(w, h))
		}
	}

	res := Result{Durations: durations, Summary: Summarize(durations)}
	logging.L().Debug("benchmark finished", "iterations", opts.Iterations,
		"samples", res.Summary.SampleCount, "avg", res.Summary.Average)
	return res
}

// Summarize reduces durations to average, min and max. An empty input
// yields a zero Summary.
func Summarize(durations []time.Duration) Summary {
	if len(durations) == 0 {
		return Summary{}
	}
	s := Summary{Min: durations[0], Max: durations[0], SampleCount: len(durations)}
	var total time.Duration
	for _, d := range durations {
		total += d
		s.Min = min(s.Min, d)
		s.Max = max(s.Max, d)
	}
	s.Average = total / time.Duration(len(durations))
	return s
}
