package render

import (
	"image"
	"image/png"
	"io"
)

// Surface is what a renderer attaches to its container while mounted.
type Surface interface {
	// Format is the file format Encode produces ("png" or "svg").
	Format() string
	Encode(w io.Writer) error
}

// ImageSurface is a Surface backed by pixels.
type ImageSurface interface {
	Surface
	Image() image.Image
}

// Container is the host's mount point. Renderers append their surface on
// Mount and remove it on Destroy.
type Container struct {
	ID       string
	surfaces []Surface
}

// NewContainer returns an empty container.
func NewContainer(id string) *Container {
	return &Container{ID: id}
}

// Append attaches s after any existing surfaces.
func (c *Container) Append(s Surface) {
	c.surfaces = append(c.surfaces, s)
}

// Remove detaches s and reports whether it was attached.
func (c *Container) Remove(s Surface) bool {
	for i, cur := range c.surfaces {
		if cur == s {
			c.surfaces = append(c.surfaces[:i], c.surfaces[i+1:]...)
			return true
		}
	}
	return false
}

// Surfaces returns the attached surfaces in attach order.
func (c *Container) Surfaces() []Surface {
	out := make([]Surface, len(c.surfaces))
	copy(out, c.surfaces)
	return out
}

// Len returns the number of attached surfaces.
func (c *Container) Len() int { return len(c.surfaces) }

// Empty detaches every surface.
func (c *Container) Empty() {
	c.surfaces = nil
}

type pixelSurface struct {
	image func() image.Image
}

func (s *pixelSurface) Format() string { return "png" }

func (s *pixelSurface) Image() image.Image { return s.image() }

func (s *pixelSurface) Encode(w io.Writer) error {
	return png.Encode(w, s.image())
}
