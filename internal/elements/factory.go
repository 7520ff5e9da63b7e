package elements

import (
	"strconv"
	"sync/atomic"
)

const (
	PointPrefix   = "pt"
	SegmentPrefix = "seg"

	DefaultPointColor   = "#ff6b6b"
	DefaultPointRadius  = 6.0
	DefaultSegmentColor = "#4dabf7"
	DefaultSegmentWidth = 2.0
)

// Counter hands out increasing ids. It never goes backwards and is safe
// for concurrent use.
type Counter struct {
	n atomic.Uint64
}

// Next advances the counter and returns the new value.
func (c *Counter) Next() uint64 { return c.n.Add(1) }

// Value returns the last value handed out.
func (c *Counter) Value() uint64 { return c.n.Load() }

var shared Counter

// SharedCounter returns the process-wide counter used by NewFactory.
func SharedCounter() *Counter { return &shared }

// Factory builds elements with unique ids.
type Factory struct {
	counter *Counter
}

// NewFactory returns a factory drawing ids from the process-wide counter,
// so ids stay unique across every factory built this way.
func NewFactory() *Factory {
	return &Factory{counter: &shared}
}

// NewFactoryWithCounter returns a factory bound to c.
func NewFactoryWithCounter(c *Counter) *Factory {
	if c == nil {
		c = &shared
	}
	return &Factory{counter: c}
}

// Point builds a point at (x, y). An optional non-empty color replaces the
// default.
func (f *Factory) Point(x, y float64, color ...string) Point {
	return Point{
		ElementID: f.nextID(PointPrefix),
		Position:  Vec2{X: x, Y: y},
		Radius:    DefaultPointRadius,
		Color:     pick(color, DefaultPointColor),
	}
}

// Segment builds a segment from start to end. An optional non-empty color
// replaces the default.
func (f *Factory) Segment(start, end Vec2, color ...string) Segment {
	return Segment{
		ElementID:   f.nextID(SegmentPrefix),
		Start:       start,
		End:         end,
		StrokeWidth: DefaultSegmentWidth,
		Color:       pick(color, DefaultSegmentColor),
	}
}

func (f *Factory) nextID(prefix string) string {
	return prefix + "-" + strconv.FormatUint(f.counter.Next(), 10)
}

func pick(opt []string, def string) string {
	if len(opt) > 0 && opt[0] != "" {
		return opt[0]
	}
	return def
}
