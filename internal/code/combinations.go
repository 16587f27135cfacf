// Package code holds the design-code load combination catalogs and the
// deflection/stress verification rules.
package code

import "fmt"

// DesignCode identifies which code's provisions apply.
type DesignCode string

const (
	ASCE716  DesignCode = "ASCE7-16"
	Eurocode DesignCode = "Eurocode"
)

// CombinationType distinguishes strength-level from allowable-stress
// combinations. Eurocode ULS combinations are strength-level.
type CombinationType string

const (
	LRFD CombinationType = "LRFD"
	ASD  CombinationType = "ASD"
)

// LoadType keys the factor map of a combination.
type LoadType string

const (
	Dead    LoadType = "dead"
	Live    LoadType = "live"
	Snow    LoadType = "snow"
	Wind    LoadType = "wind"
	Seismic LoadType = "seismic"
)

// Loads holds the unfactored load components, each reduced to a single
// representative scalar (wind and seismic included).
type Loads struct {
	Dead    float64
	Live    float64
	Snow    float64
	Wind    float64
	Seismic float64
}

// LoadCombination is one named factored combination. Catalog entries are
// static and never mutated.
type LoadCombination struct {
	Name    string
	Formula string
	Factors map[LoadType]float64
	Code    DesignCode
	Type    CombinationType
}

// Apply returns the combined load scalar: the factor-weighted sum of the
// present components.
func (lc LoadCombination) Apply(loads Loads) float64 {
	return lc.Factors[Dead]*loads.Dead +
		lc.Factors[Live]*loads.Live +
		lc.Factors[Snow]*loads.Snow +
		lc.Factors[Wind]*loads.Wind +
		lc.Factors[Seismic]*loads.Seismic
}

// ASCE 7-16 Section 2.3.1 strength combinations.
var asceLRFD = []LoadCombination{
	{"LRFD-1", "1.4D", map[LoadType]float64{Dead: 1.4}, ASCE716, LRFD},
	{"LRFD-2", "1.2D + 1.6L", map[LoadType]float64{Dead: 1.2, Live: 1.6}, ASCE716, LRFD},
	{"LRFD-3", "1.2D + 1.6L + 0.5S", map[LoadType]float64{Dead: 1.2, Live: 1.6, Snow: 0.5}, ASCE716, LRFD},
	{"LRFD-4", "1.2D + 1.6S + 1.0L", map[LoadType]float64{Dead: 1.2, Snow: 1.6, Live: 1.0}, ASCE716, LRFD},
	{"LRFD-5", "1.2D + 1.0W + 1.0L + 0.5S", map[LoadType]float64{Dead: 1.2, Wind: 1.0, Live: 1.0, Snow: 0.5}, ASCE716, LRFD},
	{"LRFD-6", "1.2D + 1.0E + 1.0L + 0.2S", map[LoadType]float64{Dead: 1.2, Seismic: 1.0, Live: 1.0, Snow: 0.2}, ASCE716, LRFD},
	{"LRFD-7", "0.9D + 1.0W", map[LoadType]float64{Dead: 0.9, Wind: 1.0}, ASCE716, LRFD},
	{"LRFD-8", "0.9D + 1.0E", map[LoadType]float64{Dead: 0.9, Seismic: 1.0}, ASCE716, LRFD},
}

// ASCE 7-16 Section 2.4.1 allowable stress combinations.
var asceASD = []LoadCombination{
	{"ASD-1", "D", map[LoadType]float64{Dead: 1.0}, ASCE716, ASD},
	{"ASD-2", "D + L", map[LoadType]float64{Dead: 1.0, Live: 1.0}, ASCE716, ASD},
	{"ASD-3", "D + 0.75L + 0.75S", map[LoadType]float64{Dead: 1.0, Live: 0.75, Snow: 0.75}, ASCE716, ASD},
	{"ASD-4", "D + 0.6W", map[LoadType]float64{Dead: 1.0, Wind: 0.6}, ASCE716, ASD},
	{"ASD-5", "D + 0.7E", map[LoadType]float64{Dead: 1.0, Seismic: 0.7}, ASCE716, ASD},
	{"ASD-6", "0.6D + 0.6W", map[LoadType]float64{Dead: 0.6, Wind: 0.6}, ASCE716, ASD},
}

// EN 1990 ultimate limit state combinations (simplified set).
var eurocodeULS = []LoadCombination{
	{"ULS-1", "1.35G", map[LoadType]float64{Dead: 1.35}, Eurocode, LRFD},
	{"ULS-2", "1.35G + 1.5Q", map[LoadType]float64{Dead: 1.35, Live: 1.5}, Eurocode, LRFD},
	{"ULS-3", "1.35G + 1.5Q + 0.9W", map[LoadType]float64{Dead: 1.35, Live: 1.5, Wind: 0.9}, Eurocode, LRFD},
	{"ULS-4", "1.0G + 1.5W", map[LoadType]float64{Dead: 1.0, Wind: 1.5}, Eurocode, LRFD},
}

// Combinations returns the catalog for a code and combination type.
func Combinations(dc DesignCode, ct CombinationType) ([]LoadCombination, error) {
	switch {
	case dc == ASCE716 && ct == LRFD:
		return asceLRFD, nil
	case dc == ASCE716 && ct == ASD:
		return asceASD, nil
	case dc == Eurocode && ct == LRFD:
		return eurocodeULS, nil
	case dc == Eurocode && ct == ASD:
		return nil, fmt.Errorf("eurocode has no allowable-stress combination set")
	}
	return nil, fmt.Errorf("unknown design code %q", dc)
}

// Governing applies every combination in the set and returns the largest
// combined load together with the combination that produced it.
func Governing(loads Loads, combinations []LoadCombination) (float64, LoadCombination) {
	var max float64
	var governing LoadCombination
	for _, lc := range combinations {
		if v := lc.Apply(loads); v > max {
			max = v
			governing = lc
		}
	}
	return max, governing
}
