// Package cost converts a designed foundation into construction
// quantities and prices them against regional unit rates.
package cost

import (
	"fmt"
	"sort"

	"github.com/strucalc/strucalc/internal/foundation"
)

// Quantities is the takeoff derived from the foundation geometry.
type Quantities struct {
	ConcreteVolume   float64 // m³
	SteelMass        float64 // kg
	ExcavationVolume float64 // m³
	FormworkArea     float64 // m²
	PilingLength     float64 // m
}

// Breakdown prices each quantity line and totals them.
type Breakdown struct {
	Region string
	Scale  Scale

	Quantities Quantities

	Concrete   float64
	Steel      float64
	Excavation float64
	Formwork   float64
	Piling     float64
	Total      float64
}

// Regions lists the known regional rate tables, sorted.
func Regions() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Estimate prices the foundation for a region and project scale. An empty
// region selects the default table; an empty scale prices at medium.
func Estimate(f *foundation.Foundation, region string, scale Scale) (*Breakdown, error) {
	if f == nil {
		return nil, fmt.Errorf("cost: foundation is required")
	}
	if region == "" {
		region = defaultRegion
	}
	rates, ok := regions[region]
	if !ok {
		return nil, fmt.Errorf("cost: unknown region %q (known: %v)", region, Regions())
	}
	if scale == "" {
		scale = ScaleMedium
	}
	factor, ok := scaleFactors[scale]
	if !ok {
		return nil, fmt.Errorf("cost: unknown project scale %q", scale)
	}

	q, err := takeoff(f)
	if err != nil {
		return nil, err
	}

	b := &Breakdown{
		Region:     region,
		Scale:      scale,
		Quantities: q,
		Concrete:   q.ConcreteVolume * rates.Concrete * factor,
		Steel:      q.SteelMass * rates.Steel * factor,
		Excavation: q.ExcavationVolume * rates.Excavation * factor,
		Formwork:   q.FormworkArea * rates.Formwork * factor,
		Piling:     q.PilingLength * rates.Piling * factor,
	}
	b.Total = b.Concrete + b.Steel + b.Excavation + b.Formwork + b.Piling
	return b, nil
}

// takeoff measures the foundation. Shallow types excavate to the founding
// level with working space; pile groups add the driven length and use the
// heavier pile-cap reinforcement density.
func takeoff(f *foundation.Foundation) (Quantities, error) {
	if f.Length <= 0 || f.Width <= 0 || f.Depth <= 0 {
		return Quantities{}, fmt.Errorf("cost: foundation has non-positive dimensions")
	}

	var q Quantities
	q.ConcreteVolume = f.Length * f.Width * f.Depth

	digDepth := f.DepthBelowGrade
	if digDepth < f.Depth {
		digDepth = f.Depth
	}
	q.ExcavationVolume = (f.Length + 2*workingSpace) * (f.Width + 2*workingSpace) * digDepth
	q.FormworkArea = 2 * (f.Length + f.Width) * f.Depth

	steelDensity := footingSteelDensity
	if f.Type == foundation.PileFoundation {
		steelDensity = pileCapSteelDensity
		q.PilingLength = float64(f.PileCount) * f.PileLength
	}
	q.SteelMass = q.ConcreteVolume * steelDensity
	return q, nil
}
