package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/boardlab/internal/playground"
	"github.com/san-kum/boardlab/internal/render"
	"github.com/san-kum/boardlab/internal/telemetry"
	"github.com/san-kum/boardlab/internal/viz"
)

type Options struct {
	Playground      playground.Options
	Renderer        render.Kind
	Theme           string
	BenchIterations int
}

type model struct {
	x          *playground.Experience
	kinds      []render.Kind
	theme      viz.Theme
	styles     viz.Styles
	iterations int
	err        error
	help       bool

	width  int
	height int
}

func newModel(opts Options) (model, error) {
	if opts.Renderer == "" {
		opts.Renderer = render.KindCanvas
	}
	x := playground.New(opts.Playground)
	if err := x.Attach(opts.Renderer); err != nil {
		return model{}, err
	}
	theme := viz.GetTheme(opts.Theme)
	return model{
		x:          x,
		kinds:      render.Kinds(),
		theme:      theme,
		styles:     viz.NewStyles(theme),
		iterations: opts.BenchIterations,
		width:      100,
		height:     32,
	}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.err = nil
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.x.AddRandomPoint()
	case "s":
		m.x.AddRandomSegment()
	case "r":
		m.x.Reset()
	case "b":
		m.x.Benchmark(m.iterations)
	case "tab":
		m.err = m.x.Switch(m.nextKind())
	case "1", "2", "3":
		i := int(msg.String()[0] - '1')
		if i < len(m.kinds) {
			m.err = m.x.Switch(m.kinds[i])
		}
	case "t":
		m.theme = viz.NextTheme(m.theme)
		m.styles = viz.NewStyles(m.theme)
	case "?":
		m.help = !m.help
	}
	return m, nil
}

func (m model) nextKind() render.Kind {
	for i, k := range m.kinds {
		if k == m.x.Kind() {
			return m.kinds[(i+1)%len(m.kinds)]
		}
	}
	return m.kinds[0]
}

func (m model) View() string {
	st := m.styles
	var b strings.Builder

	b.WriteString("\n " + st.Title.Render("boardlab") + "  " + m.renderers() + "\n\n")

	left := st.Panel.Render(m.preview())
	right := lipgloss.JoinVertical(lipgloss.Left,
		st.Panel.Render(m.statsView()),
		st.Panel.Render(m.benchView()),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right) + "\n")
	b.WriteString(st.Panel.Render(m.logView()) + "\n")

	if m.err != nil {
		b.WriteString(" " + lipgloss.NewStyle().Foreground(m.theme.Bad).Render(m.err.Error()) + "\n")
	}
	b.WriteString(" " + m.hints() + "\n")
	return b.String()
}

func (m model) renderers() string {
	parts := make([]string, len(m.kinds))
	for i, k := range m.kinds {
		label := fmt.Sprintf("%d %s", i+1, k)
		if k == m.x.Kind() {
			parts[i] = m.styles.Active.Render("▸ " + label)
		} else {
			parts[i] = m.styles.Subtle.Render("  " + label)
		}
	}
	return strings.Join(parts, " ")
}

// previewCells picks a braille grid that keeps the board's aspect ratio.
func (m model) previewCells() (int, int) {
	size := m.x.Size()
	cols := min(max(m.width-44, 24), 96)
	rows := int(float64(cols) * 2 * size.Height / size.Width / 4)
	rows = min(max(rows, 6), max(m.height-16, 6))
	return cols, rows
}

func (m model) preview() string {
	cols, rows := m.previewCells()
	var c *viz.Canvas
	if surfaces := m.x.Container().Surfaces(); len(surfaces) > 0 {
		if is, ok := surfaces[0].(render.ImageSurface); ok {
			c = viz.Preview(is.Image(), cols, rows, viz.DefaultThreshold)
		}
	}
	if c == nil {
		c = viz.NewCanvas(cols, rows)
		if b := m.x.Board(); b != nil {
			c.Sketch(b.Elements(), b.Size())
		}
	}

	title := m.styles.Title.Render(m.x.LastRender().BoardName)
	return title + "\n" + m.styles.Preview.Render(strings.TrimSuffix(c.String(), "\n"))
}

func (m model) statsView() string {
	st := m.styles
	stats := m.x.Stats()
	ev := m.x.LastRender()

	lines := []string{
		st.Title.Render("Render Telemetry"),
		st.Metric("Last render ", viz.Ms(stats.Last)),
		st.Metric("Avg render  ", viz.Ms(stats.Average)),
		st.Metric("Min / Max   ", viz.Ms(stats.Min)+" / "+viz.Ms(stats.Max)),
		st.Metric("Approx. FPS ", fmt.Sprintf("%.1f", stats.FPS)),
		st.Metric("Elements    ", fmt.Sprintf("%d", ev.ElementCount)),
		st.Metric("Window      ", fmt.Sprintf("%d/%d", stats.SampleCount, m.x.Tracker().Window())),
	}

	values := msValues(m.x.Tracker())
	lines = append(lines, st.Sparkline(values, 32))
	if len(values) >= 2 {
		lines = append(lines, asciigraph.Plot(values,
			asciigraph.Height(5),
			asciigraph.Width(30),
			asciigraph.Caption("render ms"),
		))
	}
	return strings.Join(lines, "\n")
}

func msValues(t *telemetry.Tracker) []float64 {
	durations := t.Durations()
	values := make([]float64, len(durations))
	for i, d := range durations {
		values[i] = telemetry.Milliseconds(d)
	}
	return values
}

func (m model) benchView() string {
	st := m.styles
	res, ok := m.x.LastBenchmark()
	if !ok {
		return st.Title.Render("Benchmark") + "\n" + st.Hint.Render("press b to run")
	}
	s := res.Summary
	return strings.Join([]string{
		st.Title.Render("Benchmark"),
		st.Metric("Renderer ", strings.ToUpper(m.x.Kind().String())),
		st.Metric("Samples  ", fmt.Sprintf("%d", s.SampleCount)),
		st.Metric("Average  ", viz.Ms(s.Average)),
		st.Metric("Min / Max", viz.Ms(s.Min)+" / "+viz.Ms(s.Max)),
	}, "\n")
}

func (m model) logView() string {
	lines := []string{m.styles.Title.Render("Event Log")}
	for _, l := range m.x.Log() {
		lines = append(lines, m.styles.Subtle.Render(l))
	}
	return strings.Join(lines, "\n")
}

func (m model) hints() string {
	if !m.help {
		return m.styles.Hint.Render("p point  s segment  r reset  b benchmark  tab renderer  ? help  q quit")
	}
	return m.styles.Hint.Render(strings.Join([]string{
		"p      add random point",
		" s      add random segment",
		" r      clear and reseed the board",
		" b      run benchmark on the current renderer",
		" tab    next renderer, 1-3 pick one",
		" t      cycle theme",
		" q      quit",
	}, "\n"))
}

// Run starts the playground and blocks until the user quits.
func Run(opts Options) error {
	m, err := newModel(opts)
	if err != nil {
		return err
	}
	defer m.x.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
