// Package soil defines soil index properties and the correlation tables
// that estimate missing values from the soil-type label. The estimation is
// part of the engine contract: foundation and settlement calculations call
// it explicitly before using any property.
package soil

// Properties holds the index properties of a soil deposit. Zero-valued
// optional fields mean "not measured"; Estimate fills them from the
// correlation tables.
type Properties struct {
	// Type is the descriptive label, e.g. "soft-clay", "dense-sand".
	Type string

	ElasticModulus           float64 // Es, Pa
	PoissonRatio             float64
	CompressionIndex         float64 // Cc
	VoidRatio                float64 // e0
	PreconsolidationPressure float64 // pc, Pa
	WaterContent             float64 // fraction of dry weight
	PlasticityIndex          float64 // PI, percent
	LiquidLimit              float64 // LL, percent
	SPTValue                 float64 // N, blows/300 mm
}

// profile is one row of the soil-type correlation table.
type profile struct {
	elasticModulus float64 // Pa
	poisson        float64
	sptValue       float64
	waterContent   float64
	liquidLimit    float64
	plasticity     float64
	cohesive       bool
	organic        bool
	bearing        float64 // presumptive allowable bearing, Pa
	consolidation  float64 // Cv, m²/year
}

var profiles = map[string]profile{
	"soft-clay":   {5e6, 0.40, 4, 0.45, 55, 30, true, false, 75e3, 1.0},
	"medium-clay": {20e6, 0.35, 10, 0.32, 45, 25, true, false, 150e3, 3.0},
	"stiff-clay":  {50e6, 0.30, 20, 0.24, 40, 20, true, false, 300e3, 8.0},
	"loose-sand":  {15e6, 0.30, 8, 0.18, 0, 0, false, false, 100e3, 0},
	"medium-sand": {35e6, 0.30, 18, 0.14, 0, 0, false, false, 200e3, 0},
	"dense-sand":  {70e6, 0.25, 35, 0.10, 0, 0, false, false, 400e3, 0},
	"gravel":      {120e6, 0.25, 40, 0.08, 0, 0, false, false, 500e3, 0},
	"silt":        {12e6, 0.35, 8, 0.28, 35, 12, true, false, 100e3, 2.0},
	"organic":     {2e6, 0.42, 3, 0.80, 80, 45, true, true, 50e3, 0.5},
	"peat":        {1e6, 0.45, 2, 2.00, 120, 60, true, true, 25e3, 0.3},
	"fill":        {8e6, 0.35, 5, 0.20, 0, 0, false, false, 75e3, 0},
	"rock":        {500e6, 0.20, 60, 0.05, 0, 0, false, false, 1000e3, 0},
}

const defaultType = "medium-clay"

func lookup(soilType string) profile {
	if p, ok := profiles[soilType]; ok {
		return p
	}
	return profiles[defaultType]
}

// IsCohesive reports whether the soil type consolidates under sustained
// load (clays, silts, organics).
func IsCohesive(soilType string) bool {
	return lookup(soilType).cohesive
}

// IsOrganic reports whether the soil type creeps (organic soils and peat).
func IsOrganic(soilType string) bool {
	return lookup(soilType).organic
}

// IsSoft reports soil types with poor bearing that raise differential
// settlement risk.
func IsSoft(soilType string) bool {
	switch soilType {
	case "soft-clay", "organic", "peat", "fill":
		return true
	}
	return false
}

// PresumptiveBearing returns the tabulated allowable bearing capacity (Pa)
// for a soil type.
func PresumptiveBearing(soilType string) float64 {
	return lookup(soilType).bearing
}

// ConsolidationCoefficient returns Cv in m²/year, zero for free-draining
// soils.
func ConsolidationCoefficient(soilType string) float64 {
	return lookup(soilType).consolidation
}
