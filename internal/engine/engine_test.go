package engine

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/strucalc/strucalc/internal/code"
	"github.com/strucalc/strucalc/internal/foundation"
	"github.com/strucalc/strucalc/internal/model"
	"github.com/strucalc/strucalc/internal/seismic"
	"github.com/strucalc/strucalc/internal/soil"
)

func testParams() model.BuildingParameters {
	return model.BuildingParameters{
		Length:             10,
		Width:              10,
		Height:             6,
		Storeys:            2,
		ColumnsAlongLength: 3,
		ColumnsAlongWidth:  3,
		BeamsAlongLength:   3,
		BeamsAlongWidth:    3,
		SlabThickness:      0.2,
		SlabLoad:           5e3,
		LiveLoad:           2e3,
		BeamWidth:          0.3,
		BeamHeight:         0.5,
		ColumnWidth:        0.4,
		ColumnDepth:        0.4,
		Material:           "C25/30",
		DesignCode:         "ASCE7-16",
		Units:              model.UnitsMetric,
	}
}

func TestAnalyzeBasic(t *testing.T) {
	r, err := Analyze(testParams(), nil, Options{})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// 3 beam lines in each direction, 3x3 columns.
	if len(r.Beams) != 6 {
		t.Errorf("got %d beam lines, want 6", len(r.Beams))
	}
	if len(r.ColumnLoads) != 9 {
		t.Errorf("got %d column loads, want 9", len(r.ColumnLoads))
	}

	// 1.2D + 1.6L governs over 1.4D for these loads.
	if r.Governing.Name != "LRFD-2" {
		t.Errorf("governing combination = %s, want LRFD-2", r.Governing.Name)
	}
	wantFactored := 1.2*5e3 + 1.6*2e3
	if math.Abs(r.FactoredSurfaceLoad-wantFactored) > 1e-9 {
		t.Errorf("factored load = %v, want %v", r.FactoredSurfaceLoad, wantFactored)
	}

	// Interior column: full 5x5 m tributary area per storey, two storeys.
	wantMax := wantFactored * 25 * 2
	if math.Abs(r.MaxColumnLoad-wantMax) > 1e-6*wantMax {
		t.Errorf("max column load = %v, want %v", r.MaxColumnLoad, wantMax)
	}

	if r.Checks == nil {
		t.Fatal("expected code checks")
	}
	if !r.Checks.DeflectionOK || !r.Checks.StressOK {
		t.Errorf("modest frame should pass serviceability: %+v", r.Checks)
	}
	if r.Buckling == nil {
		t.Fatal("expected a buckling summary")
	}
	if !r.Buckling.Passes || r.Buckling.MinBucklingFactor <= 1 {
		t.Errorf("stocky concrete columns should pass Euler: %+v", r.Buckling)
	}
	if r.Dynamic != nil || r.Foundation != nil {
		t.Error("optional sub-records must be nil when not requested")
	}
	if r.Units != model.UnitsMetric {
		t.Errorf("units = %q, want metric", r.Units)
	}
}

func TestAnalyzeDiagrams(t *testing.T) {
	r, err := Analyze(testParams(), nil, Options{Diagrams: true})
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range r.Beams {
		if len(b.X) != DefaultStations || len(b.Moment) != DefaultStations ||
			len(b.Shear) != DefaultStations || len(b.Deflection) != DefaultStations {
			t.Errorf("beam %d: diagram length %d, want %d", i, len(b.X), DefaultStations)
		}
	}

	plain, err := Analyze(testParams(), nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if plain.Beams[0].X != nil {
		t.Error("diagrams present without being requested")
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	opts := Options{Diagrams: true, Seismic: &seismic.Parameters{SpectralAcceleration: 1.0}}
	a, err := Analyze(testParams(), nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Analyze(testParams(), nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different results")
	}
}

func TestAnalyzeValidationError(t *testing.T) {
	p := testParams()
	p.ColumnsAlongLength = 1
	_, err := Analyze(p, nil, Options{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want a ValidationError", err)
	}
	if len(verr.Errors) != 1 {
		t.Errorf("got %d validation errors, want exactly 1: %v", len(verr.Errors), verr.Errors)
	}
}

func TestAnalyzeUnknownMaterial(t *testing.T) {
	p := testParams()
	p.Material = "unobtainium"
	if _, err := Analyze(p, nil, Options{}); err == nil {
		t.Error("unknown material accepted")
	}
}

func TestAnalyzeUnknownDesignCode(t *testing.T) {
	p := testParams()
	p.DesignCode = "BS 8110"
	if _, err := Analyze(p, nil, Options{}); err == nil {
		t.Error("unknown design code accepted")
	}
}

func TestAnalyzeSeismic(t *testing.T) {
	r, err := Analyze(testParams(), nil, Options{
		Seismic: &seismic.Parameters{SpectralAcceleration: 1.0},
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.Dynamic == nil {
		t.Fatal("expected a dynamic analysis")
	}
	if r.Dynamic.BaseShear <= 0 {
		t.Errorf("base shear = %v, want > 0", r.Dynamic.BaseShear)
	}
	if len(r.Dynamic.Modes) == 0 {
		t.Error("expected approximated modes")
	}
}

func TestAnalyzeFoundation(t *testing.T) {
	r, err := Analyze(testParams(), nil, Options{
		Foundation: &FoundationOptions{Soil: soil.Properties{Type: "medium-clay"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.Foundation == nil {
		t.Fatal("expected a designed foundation")
	}
	// Light two-storey frame on medium clay sizes as isolated footings.
	if r.Foundation.Type != foundation.SpreadFooting {
		t.Errorf("foundation type = %v, want spread footing", r.Foundation.Type)
	}
	if r.Foundation.MaxSoilPressure > r.Foundation.BearingCapacity {
		t.Errorf("pressure %v exceeds capacity %v",
			r.Foundation.MaxSoilPressure, r.Foundation.BearingCapacity)
	}
}

func TestAnalyzeEurocode(t *testing.T) {
	p := testParams()
	p.DesignCode = string(code.Eurocode)
	r, err := Analyze(p, nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if r.Code != code.Eurocode {
		t.Errorf("code = %v, want Eurocode", r.Code)
	}
	// 1.35G + 1.5Q governs for these loads.
	want := 1.35*p.SlabLoad + 1.5*p.LiveLoad
	if math.Abs(r.FactoredSurfaceLoad-want) > 1e-9 {
		t.Errorf("factored load = %v, want %v", r.FactoredSurfaceLoad, want)
	}
}
