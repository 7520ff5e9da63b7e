package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/boardlab/internal/telemetry"
)

// Styles is the set of lipgloss styles derived from a Theme.
type Styles struct {
	Panel     lipgloss.Style
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Hint      lipgloss.Style
	Active    lipgloss.Style
	Subtle    lipgloss.Style
	Preview   lipgloss.Style
	sparkHigh lipgloss.Style
	sparkMid  lipgloss.Style
	sparkLow  lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label:     lipgloss.NewStyle().Foreground(t.Muted),
		Value:     lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Hint:      lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		Active:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Subtle:    lipgloss.NewStyle().Foreground(t.Muted),
		Preview:   lipgloss.NewStyle().Foreground(t.Text),
		sparkHigh: lipgloss.NewStyle().Foreground(t.Bad),
		sparkMid:  lipgloss.NewStyle().Foreground(t.Warn),
		sparkLow:  lipgloss.NewStyle().Foreground(t.Good),
	}
}

// Metric renders "label value" with the label and value styles.
func (s Styles) Metric(label, value string) string {
	return s.Label.Render(label+" ") + s.Value.Render(value)
}

// Ms formats a duration as milliseconds with three decimals.
func Ms(d time.Duration) string {
	return fmt.Sprintf("%.3fms", telemetry.Milliseconds(d))
}

// Sparkline renders values as block characters, sampling down to width.
// Slow frames are colored hot, fast ones cool.
func (s Styles) Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	step := max(len(values)/width, 1)
	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / span
		idx := min(max(int(norm*float64(len(chars)-1)), 0), len(chars)-1)
		c := string(chars[idx])
		switch {
		case norm > 0.7:
			b.WriteString(s.sparkHigh.Render(c))
		case norm > 0.3:
			b.WriteString(s.sparkMid.Render(c))
		default:
			b.WriteString(s.sparkLow.Render(c))
		}
	}
	return b.String()
}
