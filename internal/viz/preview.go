package viz

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// DefaultThreshold is the luminance above which a preview dot is raised.
const DefaultThreshold = 0.2

// Preview scales img down to a cols x rows braille canvas. A dot is raised
// when the luminance of its scaled pixel, weighted by alpha, exceeds
// threshold.
func Preview(img image.Image, cols, rows int, threshold float64) *Canvas {
	if cols <= 0 || rows <= 0 {
		return NewCanvas(max(cols, 0), max(rows, 0))
	}
	c := NewCanvas(cols, rows)
	if img == nil || img.Bounds().Empty() {
		return c
	}

	dw, dh := c.Dots()
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			if luminance(dst, x, y) > threshold {
				c.Set(x, y)
			}
		}
	}
	return c
}

// luminance returns Rec. 601 luma in [0,1]. RGBA values are premultiplied
// so transparent pixels read as dark.
func luminance(img *image.RGBA, x, y int) float64 {
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+3 : i+3]
	return (0.299*float64(p[0]) + 0.587*float64(p[1]) + 0.114*float64(p[2])) / 255
}
