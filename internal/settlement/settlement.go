// Package settlement estimates immediate, primary consolidation and
// secondary settlement of a designed foundation from soil index
// properties. Each component is reported in millimetres and the total is
// the sum of the per-component values rounded to whole millimetres.
package settlement

import (
	"errors"
	"fmt"
	"math"

	"github.com/strucalc/strucalc/internal/foundation"
	"github.com/strucalc/strucalc/internal/soil"
)

// Risk classifies the differential-settlement hazard of a foundation.
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// Unit weight assumed for the overburden above the consolidating layer.
const soilUnitWeight = 18e3 // N/m³

// designLife is the reference period for secondary compression.
const designLife = 50 // years

// Recompression index as a fraction of the compression index.
const recompressionFraction = 1.0 / 6.0

// Settlement thresholds used by the risk classification (mm).
const (
	elevatedSettlement = 40.0
	moderateSettlement = 25.0
)

// profileThreshold is the total settlement above which a spatial profile
// is produced for mat foundations (mm).
const profileThreshold = 10.0

// Input groups the loads the settlement analysis responds to.
type Input struct {
	AxialLoad float64 // N, total sustained load on the foundation
	Moment    float64 // N·m, sustained moment (drives eccentricity)
}

// Result carries the three settlement components in millimetres, the
// time to 90% primary consolidation in years, the differential risk
// class and, for mat foundations settling more than 10 mm, a 3x3
// corner/edge/centre settlement profile.
type Result struct {
	Immediate     float64 // mm
	Consolidation float64 // mm
	Secondary     float64 // mm
	Total         float64 // mm, sum of rounded components

	TimeTo90 float64 // years, zero when no consolidation occurs

	Risk    Risk
	Profile *[3][3]float64 // mm, nil unless produced

	// Notes records estimated soil properties and analysis remarks.
	Notes []string
}

// Analyze computes the settlement of a designed foundation. Missing soil
// properties are estimated from the soil-type correlation tables before
// any formula runs; the estimation notes are carried in the result.
func Analyze(f *foundation.Foundation, props soil.Properties, in Input) (*Result, error) {
	if f == nil {
		return nil, errors.New("settlement: foundation is required")
	}
	if in.AxialLoad <= 0 {
		return nil, errors.New("settlement: axial load must be positive")
	}
	if f.Width <= 0 || f.Length <= 0 {
		return nil, errors.New("settlement: foundation plan dimensions must be positive")
	}

	overburden := soilUnitWeight * f.DepthBelowGrade
	props, notes := soil.Estimate(props, overburden)
	if props.ElasticModulus <= 0 {
		return nil, fmt.Errorf("settlement: no elastic modulus for soil type %q", props.Type)
	}

	r := &Result{Notes: notes}

	q := in.AxialLoad / (f.Length * f.Width)
	r.Immediate = immediate(f, props, q)

	if soil.IsCohesive(props.Type) {
		var err error
		r.Consolidation, r.TimeTo90, err = consolidation(f, props, in.AxialLoad)
		if err != nil {
			return nil, err
		}
	}

	if creeps(props) && r.Consolidation > 0 {
		r.Secondary = secondary(f, props, r.TimeTo90)
	}

	r.Total = math.Round(r.Immediate) + math.Round(r.Consolidation) + math.Round(r.Secondary)
	r.Risk = classify(f, props, in, r.Total)

	if f.Type == foundation.MatFoundation && r.Total > profileThreshold {
		r.Profile = profile(f, in, r.Total)
		r.Notes = append(r.Notes, "settlement profile generated for mat foundation")
	}
	return r, nil
}

// immediate is the elastic settlement q·B·(1−ν²)·If·Df/Es in mm.
func immediate(f *foundation.Foundation, props soil.Properties, q float64) float64 {
	b := math.Min(f.Width, f.Length)
	shape := shapeFactor(f)
	depth := math.Max(0.5, 1-0.5*f.DepthBelowGrade/b)
	s := q * b * (1 - props.PoissonRatio*props.PoissonRatio) * shape * depth / props.ElasticModulus
	return s * 1000
}

// shapeFactor returns the rigid-foundation influence factor by foundation
// type and plan aspect ratio.
func shapeFactor(f *foundation.Foundation) float64 {
	switch f.Type {
	case foundation.StripFooting:
		return 2.0
	case foundation.MatFoundation:
		return 0.85
	case foundation.PileFoundation:
		// Load reaches the soil at depth through the group.
		return 0.50
	}
	aspect := math.Max(f.Length, f.Width) / math.Min(f.Length, f.Width)
	switch {
	case aspect <= 1.5:
		return 0.82
	case aspect <= 5:
		return 1.12
	default:
		return 1.60
	}
}

// consolidation computes primary consolidation of the cohesive influence
// layer under the loaded foundation, distinguishing normally consolidated,
// partially overconsolidated and fully overconsolidated stress paths.
// Returns the settlement in mm and the time to 90% consolidation in years.
func consolidation(f *foundation.Foundation, props soil.Properties, p float64) (float64, float64, error) {
	if props.CompressionIndex <= 0 || props.VoidRatio <= 0 {
		return 0, 0, nil
	}
	b := math.Min(f.Width, f.Length)
	h := influenceDepth(f, b)

	// Stress at mid-depth of the layer: 2:1 load spread plus overburden.
	z := h / 2
	deltaSigma := p / ((f.Length + z) * (f.Width + z))
	sigma0 := soilUnitWeight * (f.DepthBelowGrade + z)
	sigmaF := sigma0 + deltaSigma
	if sigma0 <= 0 || deltaSigma <= 0 {
		return 0, 0, nil
	}

	pc := props.PreconsolidationPressure
	if pc < sigma0 {
		pc = sigma0
	}
	cc := props.CompressionIndex
	cr := cc * recompressionFraction
	factor := h / (1 + props.VoidRatio)

	var s float64
	switch {
	case sigmaF <= pc:
		// Fully overconsolidated: recompression only.
		s = factor * cr * math.Log10(sigmaF/sigma0)
	case sigma0 >= pc:
		// Normally consolidated.
		s = factor * cc * math.Log10(sigmaF/sigma0)
	default:
		// Loading crosses the preconsolidation pressure.
		s = factor * (cr*math.Log10(pc/sigma0) + cc*math.Log10(sigmaF/pc))
	}
	if s < 0 {
		s = 0
	}

	var t90 float64
	if cv := soil.ConsolidationCoefficient(props.Type); cv > 0 {
		// Double drainage: the drainage path is half the layer.
		d := h / 2
		t90 = 0.848 * d * d / cv
	}
	return s * 1000, t90, nil
}

// influenceDepth is the thickness of the compressible layer assumed to
// respond to the foundation load.
func influenceDepth(f *foundation.Foundation, b float64) float64 {
	switch f.Type {
	case foundation.StripFooting:
		return 3 * b
	case foundation.MatFoundation:
		return 1.0 * b
	case foundation.PileFoundation:
		// Only the soil beneath the pile tips consolidates.
		return 0.5 * b
	default:
		return 2 * b
	}
}

// creeps reports whether secondary compression applies: organic soils,
// peat, and high-plasticity clays.
func creeps(props soil.Properties) bool {
	return soil.IsOrganic(props.Type) || props.PlasticityIndex > 40
}

// Secondary compression indices for soils with tabulated values.
var secondaryIndex = map[string]float64{
	"organic": 0.060,
	"peat":    0.080,
}

// secondary is the creep settlement between the end of primary
// consolidation and the design life, in mm.
func secondary(f *foundation.Foundation, props soil.Properties, t90 float64) float64 {
	if t90 <= 0 || t90 >= designLife {
		return 0
	}
	ca, ok := secondaryIndex[props.Type]
	if !ok {
		ca = props.CompressionIndex * 0.04
	}
	b := math.Min(f.Width, f.Length)
	h := influenceDepth(f, b)
	s := ca * h / (1 + props.VoidRatio) * math.Log10(designLife/t90)
	if s < 0 {
		s = 0
	}
	return s * 1000
}

// classify assigns the differential-settlement risk class.
func classify(f *foundation.Foundation, props soil.Properties, in Input, total float64) Risk {
	ecc := 0.0
	if in.AxialLoad > 0 {
		ecc = math.Abs(in.Moment) / in.AxialLoad
	}
	switch {
	case ecc > f.Width/6 || ecc > f.Length/6:
		return RiskHigh
	case soil.IsSoft(props.Type) || soil.IsOrganic(props.Type):
		return RiskHigh
	case total > elevatedSettlement:
		return RiskHigh
	case total > moderateSettlement:
		return RiskMedium
	case ecc > f.Width/12:
		return RiskMedium
	default:
		return RiskLow
	}
}

// profile builds a 3x3 corner/edge/centre settlement grid for a mat
// foundation. The centre settles the computed total; corners and edges
// settle less, skewed toward the moment side when load is eccentric.
func profile(f *foundation.Foundation, in Input, total float64) *[3][3]float64 {
	base := [3][3]float64{
		{0.70, 0.85, 0.70},
		{0.85, 1.00, 0.85},
		{0.70, 0.85, 0.70},
	}
	ecc := 0.0
	if in.AxialLoad > 0 {
		ecc = in.Moment / in.AxialLoad
	}
	// Linear skew across the plan, at most ±30%.
	skew := 3 * ecc / f.Width
	if skew > 0.3 {
		skew = 0.3
	} else if skew < -0.3 {
		skew = -0.3
	}

	var grid [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			grid[i][j] = total * base[i][j] * (1 + skew*float64(j-1))
		}
	}
	return &grid
}
