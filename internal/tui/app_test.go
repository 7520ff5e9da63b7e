package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/boardlab/internal/elements"
	"github.com/san-kum/boardlab/internal/playground"
	"github.com/san-kum/boardlab/internal/render"
)

func testModel(t *testing.T) model {
	t.Helper()
	m, err := newModel(Options{
		Playground: playground.Options{
			Size:    render.Size{Width: 160, Height: 90},
			Seed:    3,
			Factory: elements.NewFactoryWithCounter(&elements.Counter{}),
		},
		Renderer:        render.KindSVG,
		BenchIterations: 2,
	})
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	t.Cleanup(m.x.Close)
	return m
}

func press(m model, key string) model {
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(model)
}

func TestKeysDriveBoard(t *testing.T) {
	m := testModel(t)

	m = press(m, "p")
	m = press(m, "s")
	if got := len(m.x.Board().Elements()); got != 5 {
		t.Errorf("elements = %d, want 5", got)
	}

	m = press(m, "r")
	if got := len(m.x.Board().Elements()); got != 3 {
		t.Errorf("elements after reset = %d, want 3", got)
	}

	m = press(m, "b")
	if _, ok := m.x.LastBenchmark(); !ok {
		t.Error("benchmark did not run")
	}
}

func TestRendererSwitching(t *testing.T) {
	m := testModel(t)

	m = press(m, "1")
	if m.x.Kind() != render.KindCanvas {
		t.Errorf("kind = %s, want canvas", m.x.Kind())
	}
	m = press(m, "tab")
	if m.x.Kind() != render.KindScene {
		t.Errorf("kind = %s, want scene", m.x.Kind())
	}
	m = press(m, "tab")
	if m.x.Kind() != render.KindSVG {
		t.Errorf("kind = %s, want svg", m.x.Kind())
	}
}

func TestQuit(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestViewShowsState(t *testing.T) {
	for _, k := range render.Kinds() {
		m := testModel(t)
		if err := m.x.Switch(k); err != nil {
			t.Fatal(err)
		}
		out := m.View()
		for _, want := range []string{"Render Telemetry", "Event Log", strings.ToUpper(k.String()) + " Board"} {
			if !strings.Contains(out, want) {
				t.Errorf("%s view missing %q", k, want)
			}
		}
	}
}

func TestThemeCycle(t *testing.T) {
	m := testModel(t)
	first := m.theme.Name
	m = press(m, "t")
	if m.theme.Name == first {
		t.Error("theme did not change")
	}
}
