package engine

import (
	"github.com/strucalc/strucalc/internal/code"
	"github.com/strucalc/strucalc/internal/foundation"
	"github.com/strucalc/strucalc/internal/model"
	"github.com/strucalc/strucalc/internal/seismic"
)

// BeamResult is the response of one beam line of the grid. The sampled
// diagram slices are present only when diagrams were requested and then
// all share the engine's station count.
type BeamResult struct {
	AlongLength bool
	Edge        bool
	Span        float64 // m, single segment
	Segments    int

	LineLoad float64 // factored distributed load (N/m)

	MaxDeflection float64 // m
	MaxMoment     float64 // N·m
	MaxShear      float64 // N
	MaxStress     float64 // Pa
	ReactionLeft  float64 // N
	ReactionRight float64 // N

	// Demand-to-capacity ratios against the code allowables.
	BendingUtilization    float64
	DeflectionUtilization float64
	Utilization           float64

	// Sampled diagrams, nil unless requested.
	X          []float64
	Shear      []float64
	Moment     []float64
	Deflection []float64
}

// BucklingSummary condenses the column checks to the governing case.
type BucklingSummary struct {
	CriticalLoad      float64 // Euler Pcr of the column section (N)
	MaxAxialLoad      float64 // heaviest factored column load (N)
	MinBucklingFactor float64
	Slenderness       float64
	Passes            bool
}

// CalculationResults aggregates one complete building analysis. A value is
// produced per Analyze call and never mutated afterwards; optional
// sub-records are nil when their analysis was not requested.
type CalculationResults struct {
	Params model.BuildingParameters
	Code   code.DesignCode
	Units  model.UnitSystem

	// Governing combination and the factored surface load it produced (Pa).
	Governing           code.LoadCombination
	FactoredSurfaceLoad float64

	Beams []BeamResult

	// ColumnLoads are factored axial loads at the base of every grid
	// column, in grid order (N).
	ColumnLoads   []float64
	MaxColumnLoad float64

	// Governing peak values across all beams.
	MaxDeflection float64 // m
	MaxStress     float64 // Pa

	AllowableDeflection float64 // m
	AllowableStress     float64 // Pa

	Checks     *code.CheckResult
	Buckling   *BucklingSummary
	Dynamic    *seismic.Analysis
	Foundation *foundation.Foundation

	Warnings []string
}
