package render

import (
	"github.com/gogpu/gg"
	"github.com/san-kum/boardlab/internal/elements"
)

const (
	DefaultColor       = "#ffffff"
	DefaultRadius      = 5.0
	DefaultStrokeWidth = 1.0

	CanvasBackground = "#0b1620"
	SVGBackground    = "#05121c"

	// shape opacity used by the retained renderers
	shapeOpacity = 0.9
)

func pointRadius(p elements.Point) float64 {
	if p.Radius > 0 {
		return p.Radius
	}
	return DefaultRadius
}

func pointColor(p elements.Point) string {
	if p.Color != "" {
		return p.Color
	}
	return DefaultColor
}

func segmentWidth(s elements.Segment) float64 {
	if s.StrokeWidth > 0 {
		return s.StrokeWidth
	}
	return DefaultStrokeWidth
}

func segmentColor(s elements.Segment) string {
	if s.Color != "" {
		return s.Color
	}
	return DefaultColor
}

func withAlpha(hex string, a float64) gg.RGBA {
	c := gg.Hex(hex)
	c.A *= a
	return c
}
