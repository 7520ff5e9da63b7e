package render

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/san-kum/boardlab/internal/elements"
	"github.com/san-kum/boardlab/internal/logging"
)

// Kind selects a renderer implementation.
type Kind string

const (
	KindCanvas Kind = "canvas"
	KindSVG    Kind = "svg"
	KindScene  Kind = "scene"
)

func (k Kind) String() string { return string(k) }

// Size is a surface size in board units.
type Size struct {
	Width  float64 `yaml:"width" toml:"width" json:"width"`
	Height float64 `yaml:"height" toml:"height" json:"height"`
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0 && !math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0)
}

// Pixels returns the integer surface dimensions, truncated, at least 1.
func (s Size) Pixels() (int, int) {
	w, h := int(s.Width), int(s.Height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Renderer draws a full element list into a surface mounted in a Container.
//
// Mount is a no-op on an already mounted renderer. Resize never draws.
// Draw renders exactly the given list and keeps no memory of earlier frames
// beyond what the surface itself retains. After Destroy no other method may
// be called.
type Renderer interface {
	Kind() Kind
	Mount(c *Container, size Size) error
	Resize(size Size)
	Draw(els []elements.Element)
	Destroy()
}

// Inspector exposes renderer state for hosts and tests. Every built-in
// renderer implements it.
type Inspector interface {
	Mounted() bool
	Primitives() int
	Size() Size
}

var factories = map[Kind]func() Renderer{
	KindCanvas: func() Renderer { return NewCanvas() },
	KindSVG:    func() Renderer { return NewSVG() },
	KindScene:  func() Renderer { return NewScene() },
}

// New builds a fresh, unmounted renderer of the given kind.
func New(kind Kind) (Renderer, error) {
	fn, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return fn(), nil
}

// ParseKind maps a user supplied name to a Kind. "paper" is accepted as an
// alias for the scene renderer.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if k == "paper" {
		k = KindScene
	}
	if _, ok := factories[k]; !ok {
		return "", fmt.Errorf("%w: %s (available: %v)", ErrUnknownKind, name, Kinds())
	}
	return k, nil
}

// Kinds lists the registered renderer kinds in a stable order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func skipDraw(kind Kind, n int) {
	logging.L().Warn("draw skipped: renderer not mounted", "renderer", kind, "elements", n)
}
