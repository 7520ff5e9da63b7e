package render

import (
	"testing"

	"github.com/san-kum/boardlab/internal/elements"
)

func benchScene(n int) []elements.Element {
	f := elements.NewFactoryWithCounter(&elements.Counter{})
	els := make([]elements.Element, 0, n)
	for i := 0; i < n; i++ {
		x, y := float64(i*37%720), float64(i*53%480)
		if i%2 == 0 {
			els = append(els, f.Point(x, y))
		} else {
			els = append(els, f.Segment(elements.Vec2{X: x, Y: y}, elements.Vec2{X: 720 - x, Y: 480 - y}))
		}
	}
	return els
}

func benchmarkDraw(b *testing.B, kind Kind, n int) {
	r, err := New(kind)
	if err != nil {
		b.Fatal(err)
	}
	if err := r.Mount(NewContainer("bench"), Size{Width: 720, Height: 480}); err != nil {
		b.Fatal(err)
	}
	defer r.Destroy()
	els := benchScene(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Draw(els)
	}
}

func BenchmarkCanvasDraw100(b *testing.B) { benchmarkDraw(b, KindCanvas, 100) }
func BenchmarkSVGDraw100(b *testing.B)    { benchmarkDraw(b, KindSVG, 100) }
func BenchmarkSceneDraw100(b *testing.B)  { benchmarkDraw(b, KindScene, 100) }

func BenchmarkCanvasDraw1000(b *testing.B) { benchmarkDraw(b, KindCanvas, 1000) }
func BenchmarkSVGDraw1000(b *testing.B)    { benchmarkDraw(b, KindSVG, 1000) }
func BenchmarkSceneDraw1000(b *testing.B)  { benchmarkDraw(b, KindScene, 1000) }
