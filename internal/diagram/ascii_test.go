package diagram

import (
	"strings"
	"testing"

	"github.com/strucalc/strucalc/internal/beam"
)

func TestBeamDiagramsRendersAllCurves(t *testing.T) {
	d := &beam.Diagrams{
		X:          []float64{0, 1.25, 2.5, 3.75, 5},
		Shear:      []float64{25e3, 12.5e3, 0, -12.5e3, -25e3},
		Moment:     []float64{0, 23.4e3, 31.25e3, 23.4e3, 0},
		Deflection: []float64{0, 3.5e-3, 5e-3, 3.5e-3, 0},
	}
	out := BeamDiagrams(d)
	for _, want := range []string{"SHEAR DIAGRAM", "MOMENT DIAGRAM", "DEFLECTION"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestCurveEmptyInput(t *testing.T) {
	if out := Curve("nothing", nil); out != "" {
		t.Errorf("empty input produced output %q", out)
	}
}

func TestSummaryBox(t *testing.T) {
	out := SummaryBox("BEAM ANALYSIS", []string{"Mmax = 31.25 kN·m", "OK"})
	if !strings.Contains(out, "BEAM ANALYSIS") {
		t.Error("title missing")
	}
	if !strings.Contains(out, "Mmax = 31.25 kN·m") {
		t.Error("line missing")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	width := len([]rune(lines[0]))
	for _, l := range lines {
		if len([]rune(l)) != width {
			t.Errorf("ragged box edge: %q", l)
		}
	}
}
