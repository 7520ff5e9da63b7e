package bench_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/boardlab/internal/bench"
	"github.com/san-kum/boardlab/internal/board"
	"github.com/san-kum/boardlab/internal/elements"
	"github.com/san-kum/boardlab/internal/render"
)

// fakeTarget reports a fixed, increasing duration for each render and can
// inject renders that the driver did not cause.
type fakeTarget struct {
	handlers []func(board.RenderEvent)
	els      []elements.Element
	next     time.Duration
	noise    bool
}

func (f *fakeTarget) OnRenderComplete(h func(board.RenderEvent)) func() {
	f.handlers = append(f.handlers, h)
	idx := len(f.handlers) - 1
	return func() { f.handlers[idx] = nil }
}

func (f *fakeTarget) emit() {
	f.next += time.Millisecond
	for _, h := range f.handlers {
		if h != nil {
			h(board.RenderEvent{Duration: f.next, ElementCount: len(f.els)})
		}
	}
}

func (f *fakeTarget) Clear() {
	f.els = nil
	f.emit()
}

func (f *fakeTarget) AddElement(e elements.Element) {
	f.els = append(f.els, e)
	f.emit()
	if f.noise {
		f.emit()
	}
}

func (f *fakeTarget) subscribers() int {
	n := 0
	for _, h := range f.handlers {
		if h != nil {
			n++
		}
	}
	return n
}

var _ = Describe("Run", func() {
	It("uses the documented defaults", func() {
		opts := bench.DefaultOptions()
		Expect(opts.Iterations).To(Equal(30))
		Expect(opts.IncludePoints).To(BeTrue())
		Expect(opts.IncludeSegments).To(BeTrue())
		Expect(opts.Size).To(Equal(render.Size{Width: 720, Height: 480}))
	})

	It("records one sample per driver add", func() {
		target := &fakeTarget{}
		opts := bench.Options{Iterations: 5, IncludePoints: true, Size: render.Size{Width: 10, Height: 10}, Seed: 1}

		res := bench.Run(target, opts)

		Expect(res.Durations).To(HaveLen(5))
		Expect(res.Summary.SampleCount).To(Equal(5))
		Expect(target.els).To(HaveLen(5))
		for _, e := range target.els {
			Expect(e.Kind()).To(Equal(elements.KindPoint))
		}
	})

	It("skips the clear render", func() {
		target := &fakeTarget{}
		res := bench.Run(target, bench.Options{Iterations: 2, IncludeSegments: true, Size: render.Size{Width: 5, Height: 5}, Seed: 3})

		Expect(res.Durations).To(Equal([]time.Duration{2 * time.Millisecond, 3 * time.Millisecond}))
		Expect(res.Summary.Min).To(Equal(2 * time.Millisecond))
		Expect(res.Summary.Max).To(Equal(3 * time.Millisecond))
	})

	It("keeps one sample per add when the target renders more than once", func() {
		target := &fakeTarget{noise: true}
		res := bench.Run(target, bench.Options{Iterations: 3, IncludePoints: true, Size: render.Size{Width: 5, Height: 5}, Seed: 2})

		Expect(res.Durations).To(Equal([]time.Duration{
			3 * time.Millisecond, 5 * time.Millisecond, 7 * time.Millisecond,
		}))
	})

	It("adds a point then a segment per iteration", func() {
		target := &fakeTarget{}
		bench.Run(target, bench.Options{Iterations: 2, IncludePoints: true, IncludeSegments: true, Size: render.Size{Width: 5, Height: 5}, Seed: 9})

		kinds := make([]elements.Kind, 0, len(target.els))
		for _, e := range target.els {
			kinds = append(kinds, e.Kind())
		}
		Expect(kinds).To(Equal([]elements.Kind{
			elements.KindPoint, elements.KindSegment,
			elements.KindPoint, elements.KindSegment,
		}))
	})

	It("returns a zero summary and an empty scene for zero iterations", func() {
		target := &fakeTarget{els: []elements.Element{elements.Point{ElementID: "old"}}}
		res := bench.Run(target, bench.Options{Iterations: 0, IncludePoints: true, IncludeSegments: true})

		Expect(res.Durations).To(BeEmpty())
		Expect(res.Summary).To(Equal(bench.Summary{}))
		Expect(target.els).To(BeEmpty())
	})

	It("unsubscribes when done", func() {
		target := &fakeTarget{}
		bench.Run(target, bench.Options{Iterations: 1, IncludePoints: true, Size: render.Size{Width: 1, Height: 1}, Seed: 4})

		Expect(target.subscribers()).To(BeZero())
	})

	Context("against a real board", func() {
		It("leaves the generated elements in place", func() {
			b, err := board.New(board.Config{
				Container: render.NewContainer("bench"),
				Renderer:  render.NewCanvas(),
				Size:      render.Size{Width: 64, Height: 48},
			})
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(b.Destroy)

			b.AddElement(elements.Point{ElementID: "stale"})

			res := bench.Run(b, bench.Options{Iterations: 4, IncludePoints: true, IncludeSegments: true, Size: b.Size(), Seed: 5})

			Expect(res.Summary.SampleCount).To(Equal(8))
			Expect(b.Elements()).To(HaveLen(8))
			Expect(res.Summary.Min).To(BeNumerically("<=", res.Summary.Average))
			Expect(res.Summary.Average).To(BeNumerically("<=", res.Summary.Max))
		})

		It("ignores renders from subscribers that add elements", func() {
			b, err := board.New(board.Config{
				Container: render.NewContainer("bench"),
				Renderer:  render.NewSVG(),
				Size:      render.Size{Width: 64, Height: 48},
			})
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(b.Destroy)

			factory := elements.NewFactoryWithCounter(&elements.Counter{})
			b.OnElementAdded(func(e elements.Element) {
				if p, ok := e.(elements.Point); ok {
					b.AddElement(factory.Segment(p.Position, elements.Vec2{}))
				}
			})

			var counts []int
			b.OnRenderComplete(func(ev board.RenderEvent) { counts = append(counts, ev.ElementCount) })

			res := bench.Run(b, bench.Options{Iterations: 5, IncludePoints: true, Size: b.Size(), Seed: 6})

			Expect(res.Durations).To(HaveLen(5))
			Expect(res.Summary.SampleCount).To(Equal(5))
			Expect(b.Elements()).To(HaveLen(10))
			Expect(counts).To(HaveLen(11))
		})
	})
})

var _ = Describe("Source", func() {
	It("keeps positions inside the board", func() {
		src := bench.NewSource(42, elements.NewFactoryWithCounter(&elements.Counter{}))
		for i := 0; i < 500; i++ {
			p := src.Point(720, 480)
			Expect(p.Position.X).To(And(BeNumerically(">=", 0), BeNumerically("<", 720)))
			Expect(p.Position.Y).To(And(BeNumerically(">=", 0), BeNumerically("<", 480)))

			s := src.Segment(720, 480)
			for _, v := range []elements.Vec2{s.Start, s.End} {
				Expect(v.X).To(And(BeNumerically(">=", 0), BeNumerically("<", 720)))
				Expect(v.Y).To(And(BeNumerically(">=", 0), BeNumerically("<", 480)))
			}
		}
	})

	It("is reproducible for a fixed seed", func() {
		a := bench.NewSource(7, elements.NewFactoryWithCounter(&elements.Counter{}))
		b := bench.NewSource(7, elements.NewFactoryWithCounter(&elements.Counter{}))
		Expect(a.Point(100, 100)).To(Equal(b.Point(100, 100)))
		Expect(a.Segment(100, 100)).To(Equal(b.Segment(100, 100)))
	})
})

var _ = Describe("Summarize", func() {
	It("averages, mins and maxes", func() {
		s := bench.Summarize([]time.Duration{5 * time.Millisecond, 10 * time.Millisecond, 15 * time.Millisecond})
		Expect(s).To(Equal(bench.Summary{
			Average:     10 * time.Millisecond,
			Min:         5 * time.Millisecond,
			Max:         15 * time.Millisecond,
			SampleCount: 3,
		}))
	})

	It("returns zeros for no samples", func() {
		Expect(bench.Summarize(nil)).To(Equal(bench.Summary{}))
	})
})
