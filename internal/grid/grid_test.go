package grid

import (
	"math"
	"testing"

	"github.com/strucalc/strucalc/internal/model"
)

func testParams() model.BuildingParameters {
	return model.BuildingParameters{
		Length:             20,
		Width:              12,
		Height:             9,
		Storeys:            3,
		ColumnsAlongLength: 5, // dx = 5 m
		ColumnsAlongWidth:  4, // dz = 4 m
		SlabLoad:           6000,
	}
}

func TestBuildSpacing(t *testing.T) {
	g, err := Build(testParams())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if g.Dx != 5 {
		t.Errorf("dx = %v, want 5", g.Dx)
	}
	if g.Dz != 4 {
		t.Errorf("dz = %v, want 4", g.Dz)
	}
	if len(g.BeamLines) != 4+5 {
		t.Errorf("beam lines = %d, want 9", len(g.BeamLines))
	}
	if len(g.Columns) != 20 {
		t.Errorf("columns = %d, want 20", len(g.Columns))
	}
}

func TestBuildRejectsSingleColumn(t *testing.T) {
	p := testParams()
	p.ColumnsAlongWidth = 1
	if _, err := Build(p); err == nil {
		t.Error("expected error for single-column axis")
	}
}

func TestTributaryWidths(t *testing.T) {
	g, _ := Build(testParams())

	for _, line := range g.BeamLines {
		full := g.Dz
		if !line.AlongLength {
			full = g.Dx
		}
		want := full
		if line.Edge {
			want = full / 2
		}
		if line.TributaryWidth != want {
			t.Errorf("line (along=%v edge=%v) tributary = %v, want %v",
				line.AlongLength, line.Edge, line.TributaryWidth, want)
		}
	}
}

func TestColumnTributaryAreas(t *testing.T) {
	g, _ := Build(testParams())

	var total float64
	for _, c := range g.Columns {
		total += c.TributaryArea

		switch {
		case c.Corner:
			if want := g.Dx / 2 * g.Dz / 2; c.TributaryArea != want {
				t.Errorf("corner column (%d,%d) area = %v, want %v", c.Row, c.Col, c.TributaryArea, want)
			}
		case c.Edge:
			// Half spacing in exactly one direction.
			wantA := g.Dx / 2 * g.Dz
			wantB := g.Dx * g.Dz / 2
			if c.TributaryArea != wantA && c.TributaryArea != wantB {
				t.Errorf("edge column (%d,%d) area = %v, want %v or %v",
					c.Row, c.Col, c.TributaryArea, wantA, wantB)
			}
		default:
			if want := g.Dx * g.Dz; c.TributaryArea != want {
				t.Errorf("interior column (%d,%d) area = %v, want %v", c.Row, c.Col, c.TributaryArea, want)
			}
		}
	}

	// Tributary areas tile the footprint exactly.
	if footprint := 20.0 * 12.0; math.Abs(total-footprint) > 1e-9 {
		t.Errorf("total tributary area = %v, want %v", total, footprint)
	}
}

func TestColumnAxialLoad(t *testing.T) {
	g, _ := Build(testParams())

	// Interior column: 5*4 = 20 m² per storey, 3 storeys at 6 kPa.
	for _, c := range g.Columns {
		if c.Corner || c.Edge {
			continue
		}
		want := 6000.0 * 20 * 3
		if got := c.AxialLoad(6000, 3); math.Abs(got-want) > 1e-9 {
			t.Errorf("interior axial load = %v, want %v", got, want)
		}
	}
}

func TestLineLoad(t *testing.T) {
	line := BeamLine{TributaryWidth: 2.5}
	if got := line.LineLoad(4000); got != 10000 {
		t.Errorf("line load = %v, want 10000", got)
	}
}
