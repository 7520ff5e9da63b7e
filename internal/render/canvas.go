package render

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/san-kum/boardlab/internal/elements"
	"github.com/san-kum/boardlab/internal/logging"
)

// CanvasRenderer paints into an immediate-mode pixel surface. Every Draw
// clears the bitmap and repaints the whole list.
type CanvasRenderer struct {
	container *Container
	surface   *pixelSurface
	dc        *gg.Context
	size      Size
	painted   int
}

func NewCanvas() *CanvasRenderer {
	return &CanvasRenderer{}
}

func (r *CanvasRenderer) Kind() Kind { return KindCanvas }

func (r *CanvasRenderer) Mount(c *Container, size Size) error {
	if r.dc != nil {
		return nil
	}
	if c == nil {
		return ErrNoContainer
	}
	if !size.Valid() {
		return ErrInvalidSize
	}

	w, h := size.Pixels()
	r.dc = gg.NewContext(w, h)
	r.size = size
	r.surface = &pixelSurface{image: r.dc.Image}
	r.container = c
	c.Append(r.surface)
	return nil
}

func (r *CanvasRenderer) Resize(size Size) {
	r.size = size
	if r.dc == nil {
		return
	}
	w, h := size.Pixels()
	if err := r.dc.Resize(w, h); err != nil {
		logging.L().Warn("canvas resize failed", "size", size, "err", err)
	}
}

func (r *CanvasRenderer) Draw(els []elements.Element) {
	if r.dc == nil {
		skipDraw(KindCanvas, len(els))
		return
	}

	r.dc.ClearWithColor(gg.Hex(CanvasBackground))
	r.painted = 0
	for _, e := range els {
		switch el := e.(type) {
		case elements.Point:
			r.drawPoint(el)
		case elements.Segment:
			r.drawSegment(el)
		}
	}
}

func (r *CanvasRenderer) drawPoint(p elements.Point) {
	r.dc.SetHexColor(pointColor(p))
	r.dc.DrawCircle(p.Position.X, p.Position.Y, pointRadius(p))
	if err := r.dc.Fill(); err != nil {
		logging.L().Debug("canvas fill failed", "element", p.ID(), "err", err)
		return
	}
	r.painted++
}

func (r *CanvasRenderer) drawSegment(s elements.Segment) {
	r.dc.SetHexColor(segmentColor(s))
	r.dc.SetLineWidth(segmentWidth(s))
	r.dc.SetLineCap(gg.LineCapRound)
	r.dc.DrawLine(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	if err := r.dc.Stroke(); err != nil {
		logging.L().Debug("canvas stroke failed", "element", s.ID(), "err", err)
		return
	}
	r.painted++
}

func (r *CanvasRenderer) Destroy() {
	if r.container != nil && r.surface != nil {
		r.container.Remove(r.surface)
	}
	if r.dc != nil {
		_ = r.dc.Close()
	}
	r.container = nil
	r.surface = nil
	r.dc = nil
}

// Mounted reports whether the renderer currently owns a surface.
func (r *CanvasRenderer) Mounted() bool { return r.dc != nil }

// Size returns the last size given to Mount or Resize.
func (r *CanvasRenderer) Size() Size { return r.size }

// Primitives returns how many elements the last frame painted.
func (r *CanvasRenderer) Primitives() int { return r.painted }

// Image returns the current frame, or nil when unmounted.
func (r *CanvasRenderer) Image() image.Image {
	if r.dc == nil {
		return nil
	}
	return r.dc.Image()
}
