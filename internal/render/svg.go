package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/boardlab/internal/elements"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// SVGRenderer keeps a retained node tree. Every Draw tears the tree down
// and rebuilds one node per element, so its cost grows with the element
// count.
type SVGRenderer struct {
	container *Container
	surface   *svgSurface
	root      *Node
	size      Size
}

func NewSVG() *SVGRenderer {
	return &SVGRenderer{}
}

func (r *SVGRenderer) Kind() Kind { return KindSVG }

func (r *SVGRenderer) Mount(c *Container, size Size) error {
	if r.root != nil {
		return nil
	}
	if c == nil {
		return ErrNoContainer
	}
	if !size.Valid() {
		return ErrInvalidSize
	}

	r.root = NewNode("svg")
	r.root.SetAttr("xmlns", svgNamespace)
	r.size = size
	r.applySize()
	r.root.SetAttr("style", "display:block;background:"+SVGBackground)
	r.surface = &svgSurface{root: r.root}
	r.container = c
	c.Append(r.surface)
	return nil
}

func (r *SVGRenderer) Resize(size Size) {
	r.size = size
	r.applySize()
}

func (r *SVGRenderer) applySize() {
	if r.root == nil {
		return
	}
	w, h := num(r.size.Width), num(r.size.Height)
	r.root.SetAttr("width", w)
	r.root.SetAttr("height", h)
	r.root.SetAttr("viewBox", "0 0 "+w+" "+h)
}

func (r *SVGRenderer) Draw(els []elements.Element) {
	if r.root == nil {
		skipDraw(KindSVG, len(els))
		return
	}

	for child := r.root.FirstChild(); child != nil; child = r.root.FirstChild() {
		r.root.RemoveChild(child)
	}

	for _, e := range els {
		switch el := e.(type) {
		case elements.Point:
			circle := NewNode("circle")
			circle.SetAttr("cx", num(el.Position.X))
			circle.SetAttr("cy", num(el.Position.Y))
			circle.SetAttr("r", num(pointRadius(el)))
			circle.SetAttr("fill", pointColor(el))
			circle.SetAttr("opacity", num(shapeOpacity))
			r.root.AppendChild(circle)
		case elements.Segment:
			line := NewNode("line")
			line.SetAttr("x1", num(el.Start.X))
			line.SetAttr("y1", num(el.Start.Y))
			line.SetAttr("x2", num(el.End.X))
			line.SetAttr("y2", num(el.End.Y))
			line.SetAttr("stroke", segmentColor(el))
			line.SetAttr("stroke-width", num(segmentWidth(el)))
			line.SetAttr("stroke-linecap", "round")
			r.root.AppendChild(line)
		}
	}
}

func (r *SVGRenderer) Destroy() {
	if r.container != nil && r.surface != nil {
		r.container.Remove(r.surface)
	}
	r.container = nil
	r.surface = nil
	r.root = nil
}

// Mounted reports whether the renderer currently owns a node tree.
func (r *SVGRenderer) Mounted() bool { return r.root != nil }

// Size returns the last size given to Mount or Resize.
func (r *SVGRenderer) Size() Size { return r.size }

// Root returns the root node, or nil when unmounted.
func (r *SVGRenderer) Root() *Node { return r.root }

// Primitives returns the number of nodes under the root.
func (r *SVGRenderer) Primitives() int {
	if r.root == nil {
		return 0
	}
	return len(r.root.Children)
}

type svgSurface struct {
	root *Node
}

func (s *svgSurface) Format() string { return "svg" }

func (s *svgSurface) Encode(w io.Writer) error {
	if _, err := fmt.Fprintln(w, `<?xml version="1.0" encoding="UTF-8"?>`); err != nil {
		return err
	}
	_, err := s.root.WriteTo(w)
	return err
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
