package board_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/boardlab/internal/board"
	"github.com/san-kum/boardlab/internal/elements"
	"github.com/san-kum/boardlab/internal/render"
)

// recorder is a renderer that remembers what it was asked to do.
type recorder struct {
	mountErr  error
	mounted   bool
	destroyed bool
	sizes     []render.Size
	frames    [][]elements.Element
}

func (r *recorder) Kind() render.Kind { return "recorder" }

func (r *recorder) Mount(_ *render.Container, size render.Size) error {
	if r.mountErr != nil {
		return r.mountErr
	}
	r.mounted = true
	r.sizes = append(r.sizes, size)
	return nil
}

func (r *recorder) Resize(size render.Size) { r.sizes = append(r.sizes, size) }

func (r *recorder) Draw(els []elements.Element) {
	frame := make([]elements.Element, len(els))
	copy(frame, els)
	r.frames = append(r.frames, frame)
}

func (r *recorder) Destroy() { r.destroyed = true }

var _ = Describe("Board", func() {
	var (
		rec     *recorder
		b       *board.Board
		factory *elements.Factory
	)

	BeforeEach(func() {
		rec = &recorder{}
		factory = elements.NewFactoryWithCounter(&elements.Counter{})
		var err error
		b, err = board.New(board.Config{Container: render.NewContainer("test"), Renderer: rec})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("New", func() {
		It("applies the default size and name", func() {
			Expect(b.Size()).To(Equal(board.DefaultSize))
			Expect(b.Name()).To(Equal("Unnamed Board"))
			Expect(rec.sizes).To(Equal([]render.Size{{Width: 600, Height: 400}}))
		})

		It("mounts without drawing", func() {
			Expect(rec.mounted).To(BeTrue())
			Expect(rec.frames).To(BeEmpty())
		})

		It("returns mount errors unchanged", func() {
			boom := errors.New("boom")
			_, err := board.New(board.Config{Renderer: &recorder{mountErr: boom}})
			Expect(err).To(BeIdenticalTo(boom))
		})

		It("propagates a missing container from a real renderer", func() {
			_, err := board.New(board.Config{Renderer: render.NewSVG()})
			Expect(err).To(MatchError(render.ErrNoContainer))
		})
	})

	Describe("AddElement", func() {
		It("publishes one render event per add with a growing count", func() {
			var counts []int
			b.OnRenderComplete(func(ev board.RenderEvent) {
				counts = append(counts, ev.ElementCount)
			})

			for i := 0; i < 5; i++ {
				b.AddElement(factory.Point(float64(i), float64(i)))
			}

			Expect(counts).To(Equal([]int{1, 2, 3, 4, 5}))
			Expect(rec.frames).To(HaveLen(5))
			Expect(rec.frames[4]).To(HaveLen(5))
		})

		It("publishes element:add before the render pass", func() {
			var order []string
			b.OnElementAdded(func(elements.Element) { order = append(order, "add") })
			b.OnRenderComplete(func(board.RenderEvent) { order = append(order, "render") })

			b.AddElement(factory.Point(1, 1))

			Expect(order).To(Equal([]string{"add", "render"}))
		})

		It("hands the added element to subscribers", func() {
			var got elements.Element
			b.OnElementAdded(func(e elements.Element) { got = e })

			p := factory.Point(3, 4)
			b.AddElement(p)

			Expect(got).To(Equal(elements.Element(p)))
		})

		It("fills in the board name and timestamp", func() {
			var ev board.RenderEvent
			b.OnRenderComplete(func(e board.RenderEvent) { ev = e })

			b.AddElement(factory.Segment(elements.Vec2{}, elements.Vec2{X: 1, Y: 1}))

			Expect(ev.BoardName).To(Equal("Unnamed Board"))
			Expect(ev.Timestamp.IsZero()).To(BeFalse())
			Expect(ev.Duration).To(BeNumerically(">=", 0))
			Expect(ev.Sample().ElementCount).To(Equal(1))
		})
	})

	Describe("Elements", func() {
		It("returns a snapshot in insertion order", func() {
			p := factory.Point(1, 2)
			s := factory.Segment(elements.Vec2{}, elements.Vec2{X: 5})
			b.AddElement(p)
			b.AddElement(s)

			snap := b.Elements()
			Expect(snap).To(Equal([]elements.Element{p, s}))

			snap[0] = s
			Expect(b.Elements()[0]).To(Equal(elements.Element(p)))
		})

		It("does not let snapshot edits reach the next render", func() {
			p := factory.Point(1, 2)
			s := factory.Segment(elements.Vec2{}, elements.Vec2{X: 5})
			b.AddElement(p)

			snap := b.Elements()
			snap[0] = s

			q := factory.Point(3, 4)
			b.AddElement(q)

			Expect(rec.frames[len(rec.frames)-1]).To(Equal([]elements.Element{p, q}))
		})
	})

	Describe("Clear", func() {
		It("renders an empty frame without element:add", func() {
			b.AddElement(factory.Point(1, 1))

			adds := 0
			var last board.RenderEvent
			b.OnElementAdded(func(elements.Element) { adds++ })
			b.OnRenderComplete(func(ev board.RenderEvent) { last = ev })

			b.Clear()

			Expect(adds).To(BeZero())
			Expect(last.ElementCount).To(BeZero())
			Expect(b.Elements()).To(BeEmpty())
			Expect(rec.frames[len(rec.frames)-1]).To(BeEmpty())
		})
	})

	Describe("Resize", func() {
		It("forwards the size and redraws", func() {
			b.AddElement(factory.Point(1, 1))
			renders := 0
			b.OnRenderComplete(func(board.RenderEvent) { renders++ })

			next := render.Size{Width: 320, Height: 200}
			b.Resize(next)

			Expect(b.Size()).To(Equal(next))
			Expect(rec.sizes[len(rec.sizes)-1]).To(Equal(next))
			Expect(renders).To(Equal(1))
			Expect(b.Elements()).To(HaveLen(1))
		})
	})

	Describe("subscriptions", func() {
		It("stops delivering after unsubscribe", func() {
			calls := 0
			off := b.OnRenderComplete(func(board.RenderEvent) { calls++ })
			b.AddElement(factory.Point(0, 0))
			off()
			off()
			b.AddElement(factory.Point(0, 0))

			Expect(calls).To(Equal(1))
		})

		It("supports the generic On helper", func() {
			var names []string
			board.On(b, board.RenderComplete, func(ev board.RenderEvent) {
				names = append(names, ev.BoardName)
			})
			b.Clear()

			Expect(names).To(ConsistOf("Unnamed Board"))
		})
	})

	Describe("Destroy", func() {
		It("drops elements and subscriptions and destroys the renderer", func() {
			calls := 0
			b.OnElementAdded(func(elements.Element) { calls++ })
			b.AddElement(factory.Point(0, 0))

			b.Destroy()

			Expect(rec.destroyed).To(BeTrue())
			Expect(b.Elements()).To(BeEmpty())
			Expect(calls).To(Equal(1))
		})
	})

	Context("with a real SVG renderer", func() {
		It("keeps one node per element", func() {
			svg := render.NewSVG()
			c := render.NewContainer("svg")
			sb, err := board.New(board.Config{
				Container: c,
				Renderer:  svg,
				Size:      render.Size{Width: 100, Height: 50},
				Name:      "SVG Board",
			})
			Expect(err).NotTo(HaveOccurred())

			sb.AddElement(factory.Point(10, 10))
			sb.AddElement(factory.Segment(elements.Vec2{}, elements.Vec2{X: 50, Y: 50}))
			Expect(svg.Primitives()).To(Equal(2))

			sb.Clear()
			Expect(svg.Primitives()).To(BeZero())

			sb.Destroy()
			Expect(c.Len()).To(BeZero())
		})
	})
})
