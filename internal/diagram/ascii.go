// Package diagram renders beam analysis results as terminal plots and
// exports them as image files.
package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/strucalc/strucalc/internal/beam"
)

// Terminal plot dimensions.
const (
	plotHeight = 10
	plotWidth  = 60
)

// Curve renders one sampled curve as an ASCII line chart with a caption.
func Curve(caption string, values []float64) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// BeamDiagrams renders shear, moment and deflection diagrams stacked, in
// the units engineers read them in (kN, kN·m, mm).
func BeamDiagrams(d *beam.Diagrams) string {
	var sb strings.Builder

	sb.WriteString("\n  SHEAR DIAGRAM (kN)\n\n")
	sb.WriteString(Curve("position along span", scaled(d.Shear, 1e-3)))
	sb.WriteString("\n\n  MOMENT DIAGRAM (kN·m)\n\n")
	sb.WriteString(Curve("position along span", scaled(d.Moment, 1e-3)))
	sb.WriteString("\n\n  DEFLECTION (mm, downward positive)\n\n")
	sb.WriteString(Curve("position along span", scaled(d.Deflection, 1e3)))
	sb.WriteString("\n")

	return sb.String()
}

func scaled(values []float64, factor float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * factor
	}
	return out
}

// SummaryBox draws a titled box around result lines. Widths are measured
// in runes so unit symbols keep the edges aligned.
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-4-utf8.RuneCountInString(s))
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
