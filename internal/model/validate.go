package model

import "fmt"

// Storey heights outside this band indicate a unit mix-up or a typo
// rather than an unusual building.
const (
	minStoreyHeight = 2.2 // m
	maxStoreyHeight = 6.0 // m
)

// ValidationReport accumulates every violated constraint found in a
// parameter set. Calculation must not be invoked when Valid is false.
type ValidationReport struct {
	Valid  bool
	Errors []string
}

func (r *ValidationReport) addf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Valid = false
}

// Validate checks a parameter set against the model invariants. All
// violations are collected; it never stops at the first failure.
func Validate(p BuildingParameters) ValidationReport {
	report := ValidationReport{Valid: true}

	positive := []struct {
		name  string
		value float64
	}{
		{"length", p.Length},
		{"width", p.Width},
		{"height", p.Height},
		{"slab thickness", p.SlabThickness},
		{"slab load", p.SlabLoad},
		{"beam width", p.BeamWidth},
		{"beam height", p.BeamHeight},
		{"column width", p.ColumnWidth},
		{"column depth", p.ColumnDepth},
	}
	for _, f := range positive {
		if f.value <= 0 {
			report.addf("%s must be positive, got %g", f.name, f.value)
		}
	}

	if p.Storeys < 1 {
		report.addf("storey count must be at least 1, got %d", p.Storeys)
	}
	if p.ColumnsAlongLength < 2 {
		report.addf("at least 2 columns required along the length, got %d", p.ColumnsAlongLength)
	}
	if p.ColumnsAlongWidth < 2 {
		report.addf("at least 2 columns required along the width, got %d", p.ColumnsAlongWidth)
	}
	if p.BeamsAlongLength < 0 || p.BeamsAlongWidth < 0 {
		report.addf("beam counts must not be negative, got %d and %d", p.BeamsAlongLength, p.BeamsAlongWidth)
	}
	if p.LiveLoad < 0 {
		report.addf("live load must not be negative, got %g", p.LiveLoad)
	}
	if p.ElasticModulus < 0 {
		report.addf("elastic modulus must not be negative, got %g", p.ElasticModulus)
	}
	if p.ElasticModulus == 0 && p.Material == "" {
		report.addf("either an elastic modulus or a catalog material is required")
	}

	if p.Storeys >= 1 && p.Height > 0 {
		sh := p.StoreyHeight()
		if sh < minStoreyHeight || sh > maxStoreyHeight {
			report.addf("storey height %.2f m is outside the plausible range %.1f–%.1f m",
				sh, minStoreyHeight, maxStoreyHeight)
		}
	}

	return report
}
