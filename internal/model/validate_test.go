package model

import (
	"strings"
	"testing"
)

// validParams is a parameter set that passes every check.
func validParams() BuildingParameters {
	return BuildingParameters{
		Length:             20,
		Width:              12,
		Height:             9,
		Storeys:            3,
		ColumnsAlongLength: 5,
		ColumnsAlongWidth:  4,
		BeamsAlongLength:   4,
		BeamsAlongWidth:    3,
		SlabThickness:      0.2,
		SlabLoad:           7000,
		LiveLoad:           2000,
		BeamWidth:          0.3,
		BeamHeight:         0.5,
		ColumnWidth:        0.4,
		ColumnDepth:        0.4,
		Material:           "C25/30",
		DesignCode:         "ASCE7-16",
		Units:              UnitsMetric,
	}
}

func TestValidateAccepts(t *testing.T) {
	report := Validate(validParams())
	if !report.Valid {
		t.Fatalf("valid parameters rejected: %v", report.Errors)
	}
	if len(report.Errors) != 0 {
		t.Errorf("errors = %v, want none", report.Errors)
	}
}

func TestValidateSingleColumnAxis(t *testing.T) {
	p := validParams()
	p.ColumnsAlongLength = 1

	report := Validate(p)
	if report.Valid {
		t.Fatal("expected invalid report")
	}
	if len(report.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", report.Errors)
	}
	if !strings.Contains(report.Errors[0], "at least 2 columns") {
		t.Errorf("error = %q, want column-count message", report.Errors[0])
	}
}

func TestValidateAccumulates(t *testing.T) {
	p := validParams()
	p.Length = 0
	p.Width = -3
	p.Storeys = 0
	p.ColumnsAlongWidth = 1

	report := Validate(p)
	if report.Valid {
		t.Fatal("expected invalid report")
	}
	// Zero length, negative width, bad storey count, bad column count, and
	// the storey-height check losing its denominator all surface together.
	if len(report.Errors) < 4 {
		t.Errorf("errors = %v, want at least 4 accumulated", report.Errors)
	}
}

func TestValidateStoreyHeight(t *testing.T) {
	cases := []struct {
		name    string
		height  float64
		storeys int
		ok      bool
	}{
		{"typical office", 21, 6, true},
		{"tall lobby storeys", 30, 5, true},
		{"crawl space", 6, 4, false},
		{"airship hangar", 40, 2, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			p.Height = tc.height
			p.Storeys = tc.storeys
			report := Validate(p)
			if report.Valid != tc.ok {
				t.Errorf("valid = %v, want %v (errors: %v)", report.Valid, tc.ok, report.Errors)
			}
		})
	}
}
