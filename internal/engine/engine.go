// Package engine orchestrates a full building analysis: grid resolution,
// beam and column checks under the governing load combination, and the
// optional seismic and foundation studies. Every entry point is a pure
// function of its inputs.
package engine

import (
	"fmt"
	"strings"

	"github.com/strucalc/strucalc/internal/beam"
	"github.com/strucalc/strucalc/internal/catalog"
	"github.com/strucalc/strucalc/internal/code"
	"github.com/strucalc/strucalc/internal/column"
	"github.com/strucalc/strucalc/internal/foundation"
	"github.com/strucalc/strucalc/internal/grid"
	"github.com/strucalc/strucalc/internal/model"
	"github.com/strucalc/strucalc/internal/seismic"
	"github.com/strucalc/strucalc/internal/soil"
)

// DefaultStations is the diagram resolution the engine samples beams at.
const DefaultStations = 21

const gravity = 9.81 // m/s²

// FoundationOptions asks the engine to size a foundation as part of the
// analysis. An empty Type lets the recommendation engine pick one.
type FoundationOptions struct {
	Type foundation.Type
	Soil soil.Properties

	// BearingCapacity overrides the presumptive value for the soil type.
	BearingCapacity float64
}

// Options tune an Analyze call. The zero value runs an ASCE LRFD analysis
// without diagrams, seismic response or foundation design.
type Options struct {
	// Stations for the sampled beam diagrams; defaults to DefaultStations.
	Stations int

	// Diagrams enables sampled shear/moment/deflection curves per beam.
	Diagrams bool

	Combination code.CombinationType

	// Seismic enables the modal estimate when non-nil.
	Seismic *seismic.Parameters

	// Foundation enables foundation design when non-nil.
	Foundation *FoundationOptions
}

// ValidationError carries the accumulated parameter violations. It is
// distinct from calculation failures: the input never reached the solver.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid building parameters: %s", strings.Join(e.Errors, "; "))
}

// Analyze runs the complete analysis of a building. The catalog supplies
// material properties; nil selects the built-in catalog.
func Analyze(params model.BuildingParameters, cat *catalog.Catalog, opts Options) (*CalculationResults, error) {
	if report := model.Validate(params); !report.Valid {
		return nil, &ValidationError{Errors: report.Errors}
	}
	if cat == nil {
		cat = catalog.Default()
	}
	if opts.Stations == 0 {
		opts.Stations = DefaultStations
	}
	if opts.Combination == "" {
		opts.Combination = code.LRFD
	}

	mat, err := cat.Material(params.Material)
	if err != nil {
		return nil, err
	}
	e := params.ElasticModulus
	if e == 0 {
		e = mat.ElasticModulus
	}

	dc, err := designCode(params.DesignCode)
	if err != nil {
		return nil, err
	}

	g, err := grid.Build(params)
	if err != nil {
		return nil, err
	}

	combos, err := code.Combinations(dc, opts.Combination)
	if err != nil {
		return nil, err
	}
	loads := code.Loads{Dead: params.SlabLoad, Live: params.LiveLoad}
	factored, governing := code.Governing(loads, combos)

	r := &CalculationResults{
		Params:              params,
		Code:                dc,
		Units:               model.UnitsMetric,
		Governing:           governing,
		FactoredSurfaceLoad: factored,
	}

	if err := analyzeBeams(r, g, dc, e, mat.YieldStrength, params, factored, opts); err != nil {
		return nil, err
	}
	if err := analyzeColumns(r, g, e, params, factored); err != nil {
		return nil, err
	}

	checks, err := code.VerifyDesign(dc, longestSpan(g), r.MaxDeflection, r.MaxStress, mat.YieldStrength)
	if err != nil {
		return nil, err
	}
	r.Checks = checks
	r.AllowableDeflection = checks.AllowableDeflection
	r.AllowableStress = checks.AllowableStress

	if opts.Seismic != nil {
		dyn, err := seismic.Analyze(lumpedBuilding(params, g, e), *opts.Seismic)
		if err != nil {
			return nil, fmt.Errorf("seismic analysis: %w", err)
		}
		r.Dynamic = dyn
	}

	if opts.Foundation != nil {
		f, warnings, err := designFoundation(params, g, *opts.Foundation)
		if err != nil {
			return nil, fmt.Errorf("foundation design: %w", err)
		}
		r.Foundation = f
		r.Warnings = append(r.Warnings, warnings...)
	}

	return r, nil
}

func designCode(name string) (code.DesignCode, error) {
	switch name {
	case "", string(code.ASCE716):
		return code.ASCE716, nil
	case string(code.Eurocode):
		return code.Eurocode, nil
	}
	return "", fmt.Errorf("unknown design code %q", name)
}

// analyzeBeams solves every beam line under its factored tributary load
// and records the governing peaks.
func analyzeBeams(r *CalculationResults, g *grid.Grid, dc code.DesignCode, e, yield float64, params model.BuildingParameters, factored float64, opts Options) error {
	inertia := params.BeamWidth * params.BeamHeight * params.BeamHeight * params.BeamHeight / 12

	for _, line := range g.BeamLines {
		w := line.LineLoad(factored)

		support := beam.Simple
		if line.Segments > 1 {
			support = beam.Continuous
		}
		span, err := beam.NewSpan(line.Span, w, e, inertia, params.BeamHeight, support)
		if err != nil {
			return err
		}
		res, err := span.Solve()
		if err != nil {
			return err
		}

		br := BeamResult{
			AlongLength:   line.AlongLength,
			Edge:          line.Edge,
			Span:          line.Span,
			Segments:      line.Segments,
			LineLoad:      w,
			MaxDeflection: res.MaxDeflection,
			MaxMoment:     res.MaxMoment,
			MaxShear:      res.MaxShear,
			MaxStress:     res.MaxStress,
			ReactionLeft:  res.ReactionLeft,
			ReactionRight: res.ReactionRight,
		}

		check, err := code.VerifyDesign(dc, line.Span, res.MaxDeflection, res.MaxStress, yield)
		if err != nil {
			return err
		}
		br.BendingUtilization = check.StressRatio
		br.DeflectionUtilization = check.DeflectionRatio
		br.Utilization = br.BendingUtilization
		if br.DeflectionUtilization > br.Utilization {
			br.Utilization = br.DeflectionUtilization
		}

		if opts.Diagrams {
			d, err := span.Diagrams(opts.Stations, nil, nil)
			if err != nil {
				return err
			}
			br.X = d.X
			br.Shear = d.Shear
			br.Moment = d.Moment
			br.Deflection = d.Deflection
		}

		if res.MaxDeflection > r.MaxDeflection {
			r.MaxDeflection = res.MaxDeflection
		}
		if res.MaxStress > r.MaxStress {
			r.MaxStress = res.MaxStress
		}
		r.Beams = append(r.Beams, br)
	}
	return nil
}

// analyzeColumns evaluates the Euler buckling of every grid column under
// its factored tributary load and condenses the worst case.
func analyzeColumns(r *CalculationResults, g *grid.Grid, e float64, params model.BuildingParameters, factored float64) error {
	w, d := params.ColumnWidth, params.ColumnDepth
	weak := w * d * d * d / 12
	if alt := d * w * w * w / 12; alt < weak {
		weak = alt
	}
	col, err := column.New(params.StoreyHeight(), e, weak, w*d, column.KPinnedPinned)
	if err != nil {
		return err
	}

	for _, c := range g.Columns {
		load := c.AxialLoad(factored, params.Storeys)
		r.ColumnLoads = append(r.ColumnLoads, load)
		if load > r.MaxColumnLoad {
			r.MaxColumnLoad = load
		}
	}

	check, err := col.Evaluate(r.MaxColumnLoad)
	if err != nil {
		return err
	}
	r.Buckling = &BucklingSummary{
		CriticalLoad:      check.CriticalLoad,
		MaxAxialLoad:      r.MaxColumnLoad,
		MinBucklingFactor: check.BucklingFactor,
		Slenderness:       check.Slenderness,
		Passes:            check.Passes,
	}
	return nil
}

func longestSpan(g *grid.Grid) float64 {
	if g.Dx > g.Dz {
		return g.Dx
	}
	return g.Dz
}

// lumpedBuilding reduces the frame to the uniform storey model the modal
// estimator works on. Storey mass comes from the dead surface load; the
// lateral stiffness sums the sway stiffness of every column.
func lumpedBuilding(params model.BuildingParameters, g *grid.Grid, e float64) seismic.Building {
	h := params.StoreyHeight()
	mass := params.SlabLoad / gravity * params.FootprintArea()

	w, d := params.ColumnWidth, params.ColumnDepth
	icol := w * d * d * d / 12
	stiffness := float64(len(g.Columns)) * 12 * e * icol / (h * h * h)

	return seismic.Building{
		Storeys:          params.Storeys,
		StoreyHeight:     h,
		StoreyMass:       mass,
		StoreyStiffness:  stiffness,
		FlexuralRigidity: float64(len(g.Columns)) * e * icol,
	}
}

// designFoundation sizes a foundation for the building under service
// loads. An unset type is resolved by the recommendation engine first.
func designFoundation(params model.BuildingParameters, g *grid.Grid, opts FoundationOptions) (*foundation.Foundation, []string, error) {
	service := params.SlabLoad + params.LiveLoad
	total := service * params.FootprintArea() * float64(params.Storeys)

	maxColumn := 0.0
	for _, c := range g.Columns {
		if load := c.AxialLoad(service, params.Storeys); load > maxColumn {
			maxColumn = load
		}
	}

	capacity := opts.BearingCapacity
	if capacity == 0 {
		capacity = soil.PresumptiveBearing(opts.Soil.Type)
	}

	var warnings []string
	ft := opts.Type
	if ft == "" || ft == foundation.None {
		rec, err := foundation.Recommend(total, params.FootprintArea(), params.Height,
			foundation.SiteConditions{Soil: opts.Soil})
		if err != nil {
			return nil, nil, err
		}
		ft = rec.Type
		warnings = append(warnings, rec.SpecialConsiderations...)
	}

	var f *foundation.Foundation
	var err error
	switch ft {
	case foundation.SpreadFooting:
		f, err = foundation.DesignSpreadFooting(foundation.SpreadInput{
			AxialLoad:       maxColumn,
			BearingCapacity: capacity,
			ColumnWidth:     params.ColumnWidth,
			ColumnDepth:     params.ColumnDepth,
		})
	case foundation.StripFooting:
		// One strip under a full column line along the length.
		perLine := total / float64(params.ColumnsAlongWidth)
		f, err = foundation.DesignStripFooting(foundation.StripInput{
			TotalLoad:       perLine,
			WallLength:      params.Length,
			ColumnSpacing:   g.Dx,
			BearingCapacity: capacity,
			WallThickness:   params.ColumnWidth,
		})
	case foundation.MatFoundation:
		f, err = foundation.DesignMatFoundation(foundation.MatInput{
			BuildingLength:  params.Length,
			BuildingWidth:   params.Width,
			TotalLoad:       total,
			MaxColumnLoad:   maxColumn,
			ColumnWidth:     params.ColumnWidth,
			ColumnDepth:     params.ColumnDepth,
			ColumnSpacing:   (g.Dx + g.Dz) / 2,
			BearingCapacity: capacity,
		})
	case foundation.PileFoundation:
		f, err = foundation.DesignPileGroup(foundation.PileInput{
			AxialLoad: maxColumn,
			Soil:      opts.Soil,
		})
	default:
		return nil, nil, fmt.Errorf("unknown foundation type %q", ft)
	}
	if err != nil {
		return nil, nil, err
	}
	warnings = append(warnings, f.Warnings...)
	return f, warnings, nil
}
