package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/boardlab/internal/telemetry"
)

// DurationsSVG plots render durations in sample order as a polyline with
// a dashed line at the mean. Fewer than two samples yield "".
func DurationsSVG(durations []time.Duration, width, height int, strokeColor string) string {
	if len(durations) < 2 {
		return ""
	}

	values := make([]float64, len(durations))
	var sum float64
	maxV := 0.0
	for i, d := range durations {
		values[i] = telemetry.Milliseconds(d)
		sum += values[i]
		maxV = max(maxV, values[i])
	}
	if maxV == 0 {
		maxV = 1
	}
	maxV *= 1.1
	mean := sum / float64(len(values))

	w, h := float64(width), float64(height)
	xAt := func(i int) float64 { return float64(i) / float64(len(values)-1) * w }
	yAt := func(v float64) float64 { return h - v/maxV*h }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#05121c"/>
<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#495057" stroke-dasharray="4 4"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, yAt(mean), width, yAt(mean), strokeColor)

	for i, v := range values {
		if i > 0 {
			sb.WriteString(" L")
		}
		fmt.Fprintf(&sb, "%.1f,%.1f", xAt(i), yAt(v))
	}

	fmt.Fprintf(&sb, `"/>
<text x="4" y="14" fill="#adb5bd" font-family="monospace" font-size="12">max %.3fms  mean %.3fms  n=%d</text>
</svg>`, maxV/1.1, mean, len(values))
	return sb.String()
}
