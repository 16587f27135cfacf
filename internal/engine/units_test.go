package engine

import (
	"math"
	"testing"

	"github.com/strucalc/strucalc/internal/model"
	"github.com/strucalc/strucalc/internal/seismic"
	"github.com/strucalc/strucalc/internal/soil"
)

func fullResults(t *testing.T) *CalculationResults {
	t.Helper()
	r, err := Analyze(testParams(), nil, Options{
		Diagrams:   true,
		Seismic:    &seismic.Parameters{SpectralAcceleration: 1.0},
		Foundation: &FoundationOptions{Soil: soil.Properties{Type: "medium-clay"}},
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	return r
}

func TestConvertResultsFactors(t *testing.T) {
	r := fullResults(t)
	imp, err := ConvertResults(r, model.UnitsMetric, model.UnitsImperial)
	if err != nil {
		t.Fatalf("ConvertResults failed: %v", err)
	}

	if imp.Units != model.UnitsImperial {
		t.Errorf("units = %q, want imperial", imp.Units)
	}
	if got, want := imp.MaxDeflection, r.MaxDeflection*3.28084; math.Abs(got-want) > 1e-12*math.Abs(want) {
		t.Errorf("deflection = %v, want %v", got, want)
	}
	if got, want := imp.MaxStress, r.MaxStress*0.000145038; math.Abs(got-want) > 1e-12*math.Abs(want) {
		t.Errorf("stress = %v, want %v", got, want)
	}
	if got, want := imp.MaxColumnLoad, r.MaxColumnLoad*0.224809; math.Abs(got-want) > 1e-12*math.Abs(want) {
		t.Errorf("column load = %v, want %v", got, want)
	}
	// Moments pick up both factors.
	wantM := r.Beams[0].MaxMoment * 0.224809 * 3.28084
	if got := imp.Beams[0].MaxMoment; math.Abs(got-wantM) > 1e-12*math.Abs(wantM) {
		t.Errorf("moment = %v, want %v", got, wantM)
	}
	// The original record is untouched.
	if r.Units != model.UnitsMetric {
		t.Error("conversion mutated its input")
	}
}

func TestConvertResultsRoundTrip(t *testing.T) {
	r := fullResults(t)
	imp, err := ConvertResults(r, model.UnitsMetric, model.UnitsImperial)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ConvertResults(imp, model.UnitsImperial, model.UnitsMetric)
	if err != nil {
		t.Fatal(err)
	}

	check := func(name string, a, b float64) {
		t.Helper()
		tol := 1e-9 * math.Max(math.Abs(a), 1)
		if math.Abs(a-b) > tol {
			t.Errorf("%s: %v != %v after round trip", name, a, b)
		}
	}

	check("max deflection", r.MaxDeflection, back.MaxDeflection)
	check("max stress", r.MaxStress, back.MaxStress)
	check("allowable deflection", r.AllowableDeflection, back.AllowableDeflection)
	check("allowable stress", r.AllowableStress, back.AllowableStress)
	check("max column load", r.MaxColumnLoad, back.MaxColumnLoad)
	check("factored load", r.FactoredSurfaceLoad, back.FactoredSurfaceLoad)
	check("building length", r.Params.Length, back.Params.Length)
	check("elastic modulus", r.Params.ElasticModulus, back.Params.ElasticModulus)

	for i := range r.Beams {
		check("beam span", r.Beams[i].Span, back.Beams[i].Span)
		check("beam moment", r.Beams[i].MaxMoment, back.Beams[i].MaxMoment)
		for j := range r.Beams[i].X {
			check("station x", r.Beams[i].X[j], back.Beams[i].X[j])
			check("station moment", r.Beams[i].Moment[j], back.Beams[i].Moment[j])
			check("station shear", r.Beams[i].Shear[j], back.Beams[i].Shear[j])
			check("station deflection", r.Beams[i].Deflection[j], back.Beams[i].Deflection[j])
		}
	}
	for i := range r.ColumnLoads {
		check("column load", r.ColumnLoads[i], back.ColumnLoads[i])
	}

	check("critical load", r.Buckling.CriticalLoad, back.Buckling.CriticalLoad)
	check("base shear", r.Dynamic.BaseShear, back.Dynamic.BaseShear)
	check("footing width", r.Foundation.Width, back.Foundation.Width)
	check("bearing capacity", r.Foundation.BearingCapacity, back.Foundation.BearingCapacity)
}

func TestConvertResultsIdentity(t *testing.T) {
	r := fullResults(t)
	same, err := ConvertResults(r, model.UnitsMetric, model.UnitsMetric)
	if err != nil {
		t.Fatal(err)
	}
	if same.MaxDeflection != r.MaxDeflection || same.Beams[0].MaxMoment != r.Beams[0].MaxMoment {
		t.Error("metric to metric conversion changed values")
	}
}

func TestConvertResultsRejectsUnknownSystem(t *testing.T) {
	r := fullResults(t)
	if _, err := ConvertResults(r, "cubits", model.UnitsMetric); err == nil {
		t.Error("unknown unit system accepted")
	}
	if _, err := ConvertResults(nil, model.UnitsMetric, model.UnitsImperial); err == nil {
		t.Error("nil results accepted")
	}
}
