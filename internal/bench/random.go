package bench

import (
	"math/rand"
	"time"

	"github.com/san-kum/boardlab/internal/elements"
)

// Source produces elements at uniformly random positions.
type Source struct {
	seed    int64
	rng     *rand.Rand
	factory *elements.Factory
}

// NewSource seeds a Source. A zero seed uses the current time. A nil
// factory falls back to one backed by the shared id counter.
func NewSource(seed int64, f *elements.Factory) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if f == nil {
		f = elements.NewFactory()
	}
	return &Source{seed: seed, rng: rand.New(rand.NewSource(seed)), factory: f}
}

// Seed returns the seed actually used, which differs from the argument to
// NewSource only when that was zero.
func (s *Source) Seed() int64 { return s.seed }

func (s *Source) vec(w, h float64) elements.Vec2 {
	return elements.Vec2{X: s.rng.Float64() * w, Y: s.rng.Float64() * h}
}

// Point returns a point inside [0,w) x [0,h).
func (s *Source) Point(w, h float64) elements.Point {
	p := s.vec(w, h)
	return s.factory.Point(p.X, p.Y)
}

// Segment returns a segment with both endpoints inside [0,w) x [0,h).
func (s *Source) Segment(w, h float64) elements.Segment {
	start := s.vec(w, h)
	end := s.vec(w, h)
	return s.factory.Segment(start, end)
}
