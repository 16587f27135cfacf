package foundation

import (
	"fmt"

	"github.com/strucalc/strucalc/internal/soil"
)

// SiteConditions carries the constructability context for a foundation
// recommendation.
type SiteConditions struct {
	Soil               soil.Properties
	WaterTableDepth    float64 // m below grade, zero = unknown/deep
	AdjacentStructures bool
	TightSchedule      bool
}

// Recommendation is the outcome of the foundation-type selection.
type Recommendation struct {
	Type                  Type
	PressureRatio         float64 // demand pressure / presumptive capacity
	Rationale             []string
	SpecialConsiderations []string
}

// pressureRatioPileThreshold forces piles whatever the soil label says.
const pressureRatioPileThreshold = 1.5

// Recommend selects a foundation strategy from the demand-to-capacity
// pressure ratio and the building height, with soil and constructability
// factors shaping the rationale. Same inputs always give the same answer.
func Recommend(totalLoad, footprintArea, height float64, site SiteConditions) (*Recommendation, error) {
	if totalLoad <= 0 || footprintArea <= 0 {
		return nil, fmt.Errorf("invalid load %g or footprint %g", totalLoad, footprintArea)
	}

	capacity := soil.PresumptiveBearing(site.Soil.Type)
	ratio := totalLoad / footprintArea / capacity

	r := &Recommendation{PressureRatio: ratio}

	switch {
	case ratio > pressureRatioPileThreshold:
		r.Type = PileFoundation
		r.Rationale = append(r.Rationale,
			fmt.Sprintf("demand pressure is %.1fx the presumptive capacity of %s; no shallow foundation can carry it", ratio, site.Soil.Type))

	case soil.IsOrganic(site.Soil.Type):
		r.Type = PileFoundation
		r.Rationale = append(r.Rationale,
			fmt.Sprintf("%s is compressible and creeps; loads must reach competent strata", site.Soil.Type))

	case ratio > 0.8:
		r.Type = MatFoundation
		r.Rationale = append(r.Rationale,
			"individual footings would nearly touch at this pressure ratio; a mat shares the load")

	case soil.IsSoft(site.Soil.Type) && ratio > 0.4:
		r.Type = MatFoundation
		r.Rationale = append(r.Rationale,
			fmt.Sprintf("a mat bridges local weak zones in %s and evens out differential settlement", site.Soil.Type))

	case height > 40:
		r.Type = MatFoundation
		r.Rationale = append(r.Rationale,
			fmt.Sprintf("building height %.0f m needs a continuous base against overturning", height))

	default:
		r.Type = SpreadFooting
		r.Rationale = append(r.Rationale,
			fmt.Sprintf("pressure ratio %.2f leaves comfortable margin for isolated footings", ratio))
	}

	if site.WaterTableDepth > 0 && site.WaterTableDepth < 2 {
		r.SpecialConsiderations = append(r.SpecialConsiderations,
			fmt.Sprintf("water table at %.1f m: plan dewatering and waterproofing", site.WaterTableDepth))
	}
	if site.AdjacentStructures {
		if r.Type == PileFoundation {
			r.SpecialConsiderations = append(r.SpecialConsiderations,
				"adjacent structures: prefer bored piles over driven to limit vibration")
		} else {
			r.SpecialConsiderations = append(r.SpecialConsiderations,
				"adjacent structures: monitor excavation-induced movement")
		}
	}
	if site.TightSchedule && r.Type == PileFoundation {
		r.SpecialConsiderations = append(r.SpecialConsiderations,
			"schedule conflict: pile mobilization and testing add weeks; early procurement required")
	}
	if soil.IsSoft(site.Soil.Type) && r.Type != PileFoundation {
		r.SpecialConsiderations = append(r.SpecialConsiderations,
			fmt.Sprintf("%s: verify settlement tolerance before final design", site.Soil.Type))
	}

	return r, nil
}
