package elements

// Vec2 is a position on the board, in board units.
type Vec2 struct {
	X, Y float64
}

// Kind discriminates element variants.
type Kind string

const (
	KindPoint   Kind = "point"
	KindSegment Kind = "segment"
)

// Element is a drawable primitive. Only Point and Segment implement it, and
// both are value types: a stored element is never edited in place.
type Element interface {
	ID() string
	Kind() Kind
	element()
}

// Point is a filled circle. A zero Radius or empty Color means the
// renderer default applies.
type Point struct {
	ElementID string
	Position  Vec2
	Radius    float64
	Color     string
}

func (p Point) ID() string { return p.ElementID }
func (p Point) Kind() Kind { return KindPoint }
func (Point) element()     {}

// Segment is a stroked line between two endpoints. A zero StrokeWidth or
// empty Color means the renderer default applies.
type Segment struct {
	ElementID   string
	Start, End  Vec2
	StrokeWidth float64
	Color       string
}

func (s Segment) ID() string { return s.ElementID }
func (s Segment) Kind() Kind { return KindSegment }
func (Segment) element()     {}

// IsPoint reports whether e is a Point and returns it.
func IsPoint(e Element) (Point, bool) {
	p, ok := e.(Point)
	return p, ok
}

// IsSegment reports whether e is a Segment and returns it.
func IsSegment(e Element) (Segment, bool) {
	s, ok := e.(Segment)
	return s, ok
}
