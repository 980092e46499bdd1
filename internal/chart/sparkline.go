package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Eight vertical levels per cell.
var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders values as a one-line block chart followed by the change
// from the first to the last value, e.g. "▅▄██▄▄▁ ↓38.5%".
func Sparkline(values []float64, color string) string {
	if len(values) == 0 {
		return ""
	}
	minY, maxY := values[0], values[0]
	for _, v := range values[1:] {
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}

	var b strings.Builder
	for _, v := range values {
		idx := 3 // flat data sits mid-height
		if maxY > minY {
			idx = int(math.Round((v - minY) / (maxY - minY) * 7))
		}
		b.WriteRune(sparkBlocks[clamp(idx, 0, 7)])
	}

	out := b.String()
	if color != "" {
		out = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(out)
	}
	return out + " " + Delta(values[0], values[len(values)-1])
}

// Delta formats the relative change from prev to curr with an arrow.
func Delta(prev, curr float64) string {
	var pct float64
	switch {
	case prev != 0:
		pct = (curr - prev) / math.Abs(prev) * 100
	case curr > 0:
		pct = 100
	case curr < 0:
		pct = -100
	}
	switch {
	case pct > 0:
		return fmt.Sprintf("↑%.1f%%", pct)
	case pct < 0:
		return fmt.Sprintf("↓%.1f%%", -pct)
	default:
		return "→0.0%"
	}
}

func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e6 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
