// Package chart draws the Data page: a labelled line chart and a compact
// sparkline summary, both from a site.Dataset.
package chart

import (
	"fmt"
	"math"
	"strings"

	"folio/internal/site"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	pointRune  = '●'
	traceRune  = '·'
	yAxisWidth = 5 // "  81 " gutter
)

// Style controls chart decoration.
type Style struct {
	Title  lipgloss.Style
	Axis   lipgloss.Style
	Legend lipgloss.Style
	// DefaultColor is used for series without a color of their own.
	DefaultColor string
}

// DefaultStyle is uncoloured apart from series colours.
func DefaultStyle() Style {
	return Style{
		Title:        lipgloss.NewStyle().Bold(true),
		Axis:         lipgloss.NewStyle(),
		Legend:       lipgloss.NewStyle(),
		DefaultColor: "#64B5F6",
	}
}

// Line renders ds as a line chart roughly width columns wide with a plot
// area height rows tall. Series are drawn in order; later series win where
// points overlap.
func Line(ds site.Dataset, width, height int, st Style) string {
	n := len(ds.Labels)
	if n == 0 || len(ds.Series) == 0 {
		return st.Axis.Render("(no data)")
	}
	if height < 2 {
		height = 2
	}
	plotW := max(width-yAxisWidth-1, n)

	minY, maxY := rangeOf(ds.Series)
	grid := make([][]rune, height)
	colors := make([][]string, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", plotW))
		colors[r] = make([]string, plotW)
	}

	for _, s := range ds.Series {
		color := s.Color
		if color == "" {
			color = st.DefaultColor
		}
		plotSeries(grid, colors, s.Values, minY, maxY, color)
	}

	var b strings.Builder
	if ds.Title != "" {
		b.WriteString(st.Title.Render(center(ds.Title, plotW+yAxisWidth+1)))
		b.WriteString("\n")
	}
	for r := range grid {
		var label string
		switch r {
		case 0:
			label = formatValue(maxY)
		case height - 1:
			label = formatValue(minY)
		}
		b.WriteString(st.Axis.Render(fmt.Sprintf("%*s │", yAxisWidth-1, label)))
		b.WriteString(renderRow(grid[r], colors[r]))
		b.WriteString("\n")
	}
	b.WriteString(st.Axis.Render(strings.Repeat(" ", yAxisWidth) + "└" + strings.Repeat("─", plotW)))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", yAxisWidth+1))
	b.WriteString(st.Axis.Render(xLabels(ds.Labels, plotW)))
	b.WriteString("\n\n")
	b.WriteString(legend(ds.Series, st))
	return b.String()
}

// column maps point i of n onto a plot of width w.
func column(i, n, w int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Round(float64(i) * float64(w-1) / float64(n-1)))
}

// row maps v onto a plot of height h; row 0 is the top.
func row(v, minY, maxY float64, h int) int {
	if maxY <= minY {
		return h / 2
	}
	norm := (v - minY) / (maxY - minY)
	r := int(math.Round(norm * float64(h-1)))
	return h - 1 - clamp(r, 0, h-1)
}

func plotSeries(grid [][]rune, colors [][]string, values []float64, minY, maxY float64, color string) {
	h, w := len(grid), len(grid[0])
	n := len(values)
	for i := 0; i+1 < n; i++ {
		c0, c1 := column(i, n, w), column(i+1, n, w)
		for c := c0 + 1; c < c1; c++ {
			t := float64(c-c0) / float64(c1-c0)
			v := values[i] + t*(values[i+1]-values[i])
			r := row(v, minY, maxY, h)
			if grid[r][c] == ' ' {
				grid[r][c] = traceRune
				colors[r][c] = color
			}
		}
	}
	for i, v := range values {
		c, r := column(i, n, w), row(v, minY, maxY, h)
		grid[r][c] = pointRune
		colors[r][c] = color
	}
}

func renderRow(cells []rune, colors []string) string {
	var b strings.Builder
	for i, ch := range cells {
		if colors[i] == "" {
			b.WriteRune(ch)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Render(string(ch)))
	}
	return b.String()
}

// xLabels places abbreviated labels under their columns, skipping labels
// that would collide with the previous one.
func xLabels(labels []string, w int) string {
	line := []rune(strings.Repeat(" ", w))
	next := 0
	for i, l := range labels {
		short := []rune(abbrev(l))
		c := column(i, len(labels), w)
		start := c - len(short)/2
		start = clamp(start, 0, max(0, w-len(short)))
		if start < next {
			continue
		}
		copy(line[start:], short)
		next = start + len(short) + 1
	}
	return strings.TrimRight(string(line), " ")
}

func abbrev(s string) string {
	r := []rune(s)
	if len(r) > 3 {
		return string(r[:3])
	}
	return s
}

func legend(series []site.Series, st Style) string {
	parts := make([]string, 0, len(series))
	for _, s := range series {
		color := s.Color
		if color == "" {
			color = st.DefaultColor
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("──●──")
		parts = append(parts, swatch+" "+st.Legend.Render(s.Label))
	}
	return strings.Join(parts, "   ")
}

func rangeOf(series []site.Series) (minY, maxY float64) {
	first := true
	for _, s := range series {
		for _, v := range s.Values {
			if first {
				minY, maxY = v, v
				first = false
				continue
			}
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
	}
	return minY, maxY
}

func center(s string, w int) string {
	pad := (w - ansi.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
