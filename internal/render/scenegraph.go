package render

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"
	"github.com/san-kum/boardlab/internal/elements"
	"github.com/san-kum/boardlab/internal/logging"
)

// SceneRenderer builds each frame as a vector scene graph and rasterises
// it onto a pixmap. The scene plays the role of the active layer; Draw
// clears it, adds one shape per element and refreshes the view.
type SceneRenderer struct {
	container *Container
	surface   *pixelSurface
	layer     *scene.Scene
	view      *scene.Renderer
	target    *gg.Pixmap
	size      Size
	shapes    int
}

func NewScene() *SceneRenderer {
	return &SceneRenderer{}
}

func (r *SceneRenderer) Kind() Kind { return KindScene }

func (r *SceneRenderer) Mount(c *Container, size Size) error {
	if r.layer != nil {
		return nil
	}
	if c == nil {
		return ErrNoContainer
	}
	if !size.Valid() {
		return ErrInvalidSize
	}

	w, h := size.Pixels()
	r.layer = scene.NewScene()
	r.view = scene.NewRenderer(w, h)
	r.target = gg.NewPixmap(w, h)
	r.size = size
	r.surface = &pixelSurface{image: r.image}
	r.container = c
	c.Append(r.surface)
	return nil
}

func (r *SceneRenderer) Resize(size Size) {
	r.size = size
	if r.layer == nil {
		return
	}
	w, h := size.Pixels()
	if r.target.Width() != w || r.target.Height() != h {
		r.target = gg.NewPixmap(w, h)
	}
	r.view.Resize(w, h)
	r.refresh()
}

func (r *SceneRenderer) Draw(els []elements.Element) {
	if r.layer == nil {
		skipDraw(KindScene, len(els))
		return
	}

	r.layer.Reset()
	r.shapes = 0
	b := scene.NewSceneBuilderFrom(r.layer)
	for _, e := range els {
		switch el := e.(type) {
		case elements.Point:
			brush := scene.SolidBrush(withAlpha(pointColor(el), shapeOpacity))
			b.FillCircle(float32(el.Position.X), float32(el.Position.Y), float32(pointRadius(el)), brush)
			r.shapes++
		case elements.Segment:
			brush := scene.SolidBrush(gg.Hex(segmentColor(el)))
			b.DrawLine(float32(el.Start.X), float32(el.Start.Y), float32(el.End.X), float32(el.End.Y),
				brush, float32(segmentWidth(el)))
			r.shapes++
		}
	}

	r.refresh()
}

// refresh repaints the pixmap from the current layer.
func (r *SceneRenderer) refresh() {
	r.target.Clear(gg.Transparent)
	if err := r.view.Render(r.target, r.layer); err != nil {
		logging.L().Warn("scene render failed", "err", err)
	}
}

func (r *SceneRenderer) Destroy() {
	if r.container != nil && r.surface != nil {
		r.container.Remove(r.surface)
	}
	if r.layer != nil {
		r.layer.Reset()
	}
	if r.view != nil {
		r.view.Close()
	}
	r.container = nil
	r.surface = nil
	r.layer = nil
	r.view = nil
	r.target = nil
}

// Mounted reports whether the renderer currently owns a scene.
func (r *SceneRenderer) Mounted() bool { return r.layer != nil }

// Size returns the last size given to Mount or Resize.
func (r *SceneRenderer) Size() Size { return r.size }

// Primitives returns the number of shapes in the active layer.
func (r *SceneRenderer) Primitives() int { return r.shapes }

// Layer returns the active scene, or nil when unmounted.
func (r *SceneRenderer) Layer() *scene.Scene { return r.layer }

// Image returns the current frame, or nil when unmounted.
func (r *SceneRenderer) Image() image.Image {
	if r.target == nil {
		return nil
	}
	return r.target.ToImage()
}

func (r *SceneRenderer) image() image.Image {
	return r.target.ToImage()
}
