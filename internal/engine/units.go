package engine

import (
	"fmt"

	"github.com/strucalc/strucalc/internal/foundation"
	"github.com/strucalc/strucalc/internal/model"
	"github.com/strucalc/strucalc/internal/seismic"
)

// Metric-to-imperial conversion factors.
const (
	metresToFeet   = 3.28084
	newtonsToPound = 0.224809
	pascalsToPSI   = 0.000145038
)

// scale holds the multipliers applied when converting between unit
// systems. Derived quantities combine the base factors.
type scale struct {
	length float64
	force  float64
	stress float64
}

func (s scale) moment() float64 {
	return s.force * s.length
}

func (s scale) linearLoad() float64 {
	return s.force / s.length
}

// ConvertResults returns a deep copy of r with every dimensioned field
// converted between unit systems, including nested per-beam arrays.
// Converting back restores the original values within floating-point
// tolerance. Pile settlement remains in millimetres in both systems.
func ConvertResults(r *CalculationResults, from, to model.UnitSystem) (*CalculationResults, error) {
	if r == nil {
		return nil, fmt.Errorf("convert: results are required")
	}
	s, err := conversion(from, to)
	if err != nil {
		return nil, err
	}

	out := *r
	out.Units = to
	if s == (scale{1, 1, 1}) {
		return &out, nil
	}

	out.Params = convertParams(r.Params, s)
	out.FactoredSurfaceLoad = r.FactoredSurfaceLoad * s.stress
	out.MaxDeflection = r.MaxDeflection * s.length
	out.MaxStress = r.MaxStress * s.stress
	out.AllowableDeflection = r.AllowableDeflection * s.length
	out.AllowableStress = r.AllowableStress * s.stress
	out.MaxColumnLoad = r.MaxColumnLoad * s.force
	out.ColumnLoads = scaledCopy(r.ColumnLoads, s.force)

	out.Beams = make([]BeamResult, len(r.Beams))
	for i, b := range r.Beams {
		out.Beams[i] = convertBeam(b, s)
	}

	if r.Checks != nil {
		c := *r.Checks
		c.AllowableDeflection *= s.length
		c.AllowableStress *= s.stress
		out.Checks = &c
	}
	if r.Buckling != nil {
		b := *r.Buckling
		b.CriticalLoad *= s.force
		b.MaxAxialLoad *= s.force
		out.Buckling = &b
	}
	if r.Dynamic != nil {
		out.Dynamic = convertDynamic(r.Dynamic, s)
	}
	if r.Foundation != nil {
		out.Foundation = convertFoundation(r.Foundation, s)
	}
	return &out, nil
}

func conversion(from, to model.UnitSystem) (scale, error) {
	valid := func(u model.UnitSystem) bool {
		return u == model.UnitsMetric || u == model.UnitsImperial
	}
	if !valid(from) || !valid(to) {
		return scale{}, fmt.Errorf("convert: unknown unit system %q -> %q", from, to)
	}
	switch {
	case from == to:
		return scale{1, 1, 1}, nil
	case from == model.UnitsMetric:
		return scale{metresToFeet, newtonsToPound, pascalsToPSI}, nil
	default:
		return scale{1 / metresToFeet, 1 / newtonsToPound, 1 / pascalsToPSI}, nil
	}
}

func convertParams(p model.BuildingParameters, s scale) model.BuildingParameters {
	p.Length *= s.length
	p.Width *= s.length
	p.Height *= s.length
	p.SlabThickness *= s.length
	p.BeamWidth *= s.length
	p.BeamHeight *= s.length
	p.ColumnWidth *= s.length
	p.ColumnDepth *= s.length
	p.SlabLoad *= s.stress
	p.LiveLoad *= s.stress
	p.ElasticModulus *= s.stress
	return p
}

func convertBeam(b BeamResult, s scale) BeamResult {
	b.Span *= s.length
	b.LineLoad *= s.linearLoad()
	b.MaxDeflection *= s.length
	b.MaxMoment *= s.moment()
	b.MaxShear *= s.force
	b.MaxStress *= s.stress
	b.ReactionLeft *= s.force
	b.ReactionRight *= s.force
	b.X = scaledCopy(b.X, s.length)
	b.Shear = scaledCopy(b.Shear, s.force)
	b.Moment = scaledCopy(b.Moment, s.moment())
	b.Deflection = scaledCopy(b.Deflection, s.length)
	return b
}

func convertDynamic(d *seismic.Analysis, s scale) *seismic.Analysis {
	out := *d
	out.BaseShear *= s.force
	out.BuildingWeight *= s.force
	out.StoreyDrifts = scaledCopy(d.StoreyDrifts, s.length)
	// Drift ratios, frequencies and participation factors are
	// dimensionless or in Hz; copy the remaining slices untouched.
	out.DriftRatios = scaledCopy(d.DriftRatios, 1)
	out.Modes = append([]seismic.Mode(nil), d.Modes...)
	out.CriticalElements = append([]seismic.CriticalElement(nil), d.CriticalElements...)
	return &out
}

func convertFoundation(f *foundation.Foundation, s scale) *foundation.Foundation {
	out := *f
	out.Length *= s.length
	out.Width *= s.length
	out.Depth *= s.length
	out.DepthBelowGrade *= s.length
	out.PileLength *= s.length
	out.PileDiameter *= s.length
	out.BearingCapacity *= s.stress
	out.MaxSoilPressure *= s.stress
	out.MinSoilPressure *= s.stress
	out.Warnings = append([]string(nil), f.Warnings...)
	return &out
}

func scaledCopy(values []float64, factor float64) []float64 {
	if values == nil {
		return nil
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * factor
	}
	return out
}
