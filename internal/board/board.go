package board

import (
	"time"

	"github.com/san-kum/boardlab/internal/elements"
	"github.com/san-kum/boardlab/internal/events"
	"github.com/san-kum/boardlab/internal/logging"
	"github.com/san-kum/boardlab/internal/render"
	"github.com/san-kum/boardlab/internal/telemetry"
)

const DefaultName = "Unnamed Board"

// DefaultSize is used when Config.Size is left zero.
var DefaultSize = render.Size{Width: 600, Height: 400}

var (
	ElementAdded   = events.NewEvent[elements.Element]("element:add")
	RenderComplete = events.NewEvent[RenderEvent]("render:complete")
)

// RenderEvent describes one completed render pass.
type RenderEvent struct {
	Duration     time.Duration
	Timestamp    time.Time
	ElementCount int
	BoardName    string
}

// Sample converts the event into a telemetry sample.
func (e RenderEvent) Sample() telemetry.Sample {
	return telemetry.Sample{
		Duration:     e.Duration,
		Timestamp:    e.Timestamp,
		ElementCount: e.ElementCount,
	}
}

type Config struct {
	Container *render.Container
	Renderer  render.Renderer
	Size      render.Size
	Name      string
}

// Board owns an ordered element list and redraws all of it through its
// renderer after every mutation.
type Board struct {
	name     string
	size     render.Size
	renderer render.Renderer
	elements []elements.Element
	channel  *events.Channel
}

// New mounts cfg.Renderer into cfg.Container. Mount errors are returned
// unchanged and no board is built.
func New(cfg Config) (*Board, error) {
	if cfg.Size == (render.Size{}) {
		cfg.Size = DefaultSize
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if err := cfg.Renderer.Mount(cfg.Container, cfg.Size); err != nil {
		return nil, err
	}
	return &Board{
		name:     cfg.Name,
		size:     cfg.Size,
		renderer: cfg.Renderer,
		channel:  events.New(),
	}, nil
}

func (b *Board) AddElement(e elements.Element) {
	b.elements = append(b.elements, e)
	events.Publish(b.channel, ElementAdded, e)
	b.render()
}

func (b *Board) Clear() {
	b.elements = nil
	b.render()
}

func (b *Board) Resize(size render.Size) {
	b.size = size
	b.renderer.Resize(size)
	b.render()
}

// Elements returns a copy of the element list in insertion order.
func (b *Board) Elements() []elements.Element {
	out := make([]elements.Element, len(b.elements))
	copy(out, b.elements)
	return out
}

func (b *Board) Len() int                  { return len(b.elements) }
func (b *Board) Size() render.Size         { return b.size }
func (b *Board) Name() string              { return b.name }
func (b *Board) Renderer() render.Renderer { return b.renderer }

// On subscribes handler to ev on b's channel.
func On[T any](b *Board, ev events.Event[T], handler func(T)) func() {
	return events.Subscribe(b.channel, ev, handler)
}

func (b *Board) OnElementAdded(handler func(elements.Element)) func() {
	return On(b, ElementAdded, handler)
}

func (b *Board) OnRenderComplete(handler func(RenderEvent)) func() {
	return On(b, RenderComplete, handler)
}

// Destroy drops all elements and subscriptions and tears down the renderer.
func (b *Board) Destroy() {
	b.elements = nil
	b.channel.Clear()
	b.renderer.Destroy()
}

func (b *Board) render() {
	start := time.Now()
	b.renderer.Draw(b.elements)
	ev := RenderEvent{
		Duration:     time.Since(start),
		Timestamp:    time.Now(),
		ElementCount: len(b.elements),
		BoardName:    b.name,
	}
	logging.L().Debug("render pass", "board", b.name, "renderer", b.renderer.Kind(),
		"elements", ev.ElementCount, "duration", ev.Duration)
	events.Publish(b.channel, RenderComplete, ev)
}
