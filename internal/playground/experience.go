package playground

import (
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/boardlab/internal/bench"
	"github.com/san-kum/boardlab/internal/board"
	"github.com/san-kum/boardlab/internal/elements"
	"github.com/san-kum/boardlab/internal/logging"
	"github.com/san-kum/boardlab/internal/render"
	"github.com/san-kum/boardlab/internal/telemetry"
)

const (
	DefaultLogSize             = 14
	DefaultBenchmarkIterations = 40
)

var DefaultSize = render.Size{Width: 720, Height: 480}

type Options struct {
	Size        render.Size
	StatsWindow int
	LogSize     int
	Seed        int64
	Factory     *elements.Factory
	Now         func() time.Time
}

// Experience is the interactive host around a single board. It owns the
// container the board's renderer is mounted into, a stats tracker fed by
// render events and a short newest-first event log.
type Experience struct {
	opts      Options
	container *render.Container
	board     *board.Board
	kind      render.Kind
	tracker   *telemetry.Tracker
	stats     telemetry.Stats
	last      board.RenderEvent
	subs      []func()
	log       []string
	factory   *elements.Factory
	source    *bench.Source
	bench     *bench.Result
}

func New(opts Options) *Experience {
	if !opts.Size.Valid() {
		opts.Size = DefaultSize
	}
	if opts.LogSize <= 0 {
		opts.LogSize = DefaultLogSize
	}
	if opts.Factory == nil {
		opts.Factory = elements.NewFactory()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Experience{
		opts:      opts,
		container: render.NewContainer("board-host"),
		tracker:   telemetry.NewTracker(opts.StatsWindow),
		factory:   opts.Factory,
		source:    bench.NewSource(opts.Seed, opts.Factory),
	}
}

// Attach replaces the current board with a fresh one drawn by a new
// renderer of the given kind, then seeds it. Stats, log and the last
// benchmark result are reset.
func (x *Experience) Attach(kind render.Kind) error {
	r, err := render.New(kind)
	if err != nil {
		return err
	}

	x.detach()
	x.tracker.Reset()
	x.stats = telemetry.Stats{}
	x.last = board.RenderEvent{}
	x.log = x.log[:0]
	x.bench = nil

	b, err := board.New(board.Config{
		Container: x.container,
		Renderer:  r,
		Size:      x.opts.Size,
		Name:      strings.ToUpper(kind.String()) + " Board",
	})
	if err != nil {
		return fmt.Errorf("attach %s: %w", kind, err)
	}

	x.board = b
	x.kind = kind
	x.wire(b)
	x.seed()
	logging.L().Info("board attached", "renderer", kind, "size", x.opts.Size)
	return nil
}

// Switch attaches a board for kind and records the switch in the log.
func (x *Experience) Switch(kind render.Kind) error {
	if err := x.Attach(kind); err != nil {
		return err
	}
	x.appendLog("Switched renderer to " + strings.ToUpper(kind.String()))
	return nil
}

func (x *Experience) detach() {
	for _, off := range x.subs {
		off()
	}
	x.subs = x.subs[:0]
	if x.board != nil {
		x.board.Destroy()
		x.board = nil
	}
	x.container.Empty()
}

func (x *Experience) wire(b *board.Board) {
	x.subs = append(x.subs,
		b.OnElementAdded(func(e elements.Element) {
			x.appendLog(fmt.Sprintf("Element added: %s (%s) on %s", e.Kind(), e.ID(), b.Name()))
		}),
		b.OnRenderComplete(func(ev board.RenderEvent) {
			x.last = ev
			x.stats = x.tracker.Record(ev.Sample())
		}),
	)
}

// seed adds the demo scene: a baseline, a diagonal and a centre point.
func (x *Experience) seed() {
	w, h := x.opts.Size.Width, x.opts.Size.Height
	x.board.AddElement(x.factory.Segment(elements.Vec2{X: 40, Y: h - 40}, elements.Vec2{X: w - 40, Y: h - 40}, "#495057"))
	x.board.AddElement(x.factory.Segment(elements.Vec2{X: 60, Y: h - 60}, elements.Vec2{X: w - 60, Y: 80}, "#228be6"))
	x.board.AddElement(x.factory.Point(w/2, h/2, "#fab005"))
}

func (x *Experience) appendLog(entry string) {
	line := fmt.Sprintf("[%s] %s", x.opts.Now().Format("15:04:05"), entry)
	x.log = append([]string{line}, x.log...)
	if len(x.log) > x.opts.LogSize {
		x.log = x.log[:x.opts.LogSize]
	}
}

func (x *Experience) AddRandomPoint() {
	if x.board == nil {
		return
	}
	x.board.AddElement(x.source.Point(x.opts.Size.Width, x.opts.Size.Height))
}

func (x *Experience) AddRandomSegment() {
	if x.board == nil {
		return
	}
	x.board.AddElement(x.source.Segment(x.opts.Size.Width, x.opts.Size.Height))
}

// Reset clears the board and re-adds the demo scene.
func (x *Experience) Reset() {
	if x.board == nil {
		return
	}
	x.board.Clear()
	x.seed()
	x.appendLog("Board reset")
}

// Benchmark runs the driver against the current board and then re-adds
// the demo scene on top of the generated elements. Iterations <= 0 uses
// DefaultBenchmarkIterations.
func (x *Experience) Benchmark(iterations int) bench.Result {
	if x.board == nil {
		return bench.Result{}
	}
	if iterations <= 0 {
		iterations = DefaultBenchmarkIterations
	}

	opts := bench.Options{
		Iterations:      iterations,
		IncludePoints:   true,
		IncludeSegments: true,
		Size:            x.opts.Size,
	}
	res := bench.RunWith(x.board, opts, x.source)
	x.bench = &res
	x.appendLog(fmt.Sprintf("Benchmark completed - avg %.2fms over %d samples",
		telemetry.Milliseconds(res.Summary.Average), res.Summary.SampleCount))
	x.seed()
	return res
}

func (x *Experience) Stats() telemetry.Stats        { return x.stats }
func (x *Experience) LastRender() board.RenderEvent { return x.last }
func (x *Experience) Kind() render.Kind             { return x.kind }
func (x *Experience) Board() *board.Board           { return x.board }
func (x *Experience) Container() *render.Container  { return x.container }
func (x *Experience) Tracker() *telemetry.Tracker   { return x.tracker }
func (x *Experience) Size() render.Size             { return x.opts.Size }

// LastBenchmark returns the result of the most recent Benchmark on the
// current board, if any.
func (x *Experience) LastBenchmark() (bench.Result, bool) {
	if x.bench == nil {
		return bench.Result{}, false
	}
	return *x.bench, true
}

// Log returns a newest-first copy of the event log.
func (x *Experience) Log() []string {
	out := make([]string, len(x.log))
	copy(out, x.log)
	return out
}

// Close destroys the current board.
func (x *Experience) Close() {
	x.detach()
}
