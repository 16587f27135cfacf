package soil

import "fmt"

// Specific gravity of soil solids assumed for the void-ratio correlation.
const specificGravity = 2.70

// Estimate fills every unmeasured (zero) field of p from the soil-type
// correlation tables and returns the completed copy plus a note for each
// estimated field. Measured values are never overwritten.
//
// Correlations used:
//   - Es, ν, N, w, LL, PI: tabulated per soil type
//   - Cc = 0.009 (LL − 10)            (Terzaghi & Peck)
//   - e0 = w · Gs  with Gs = 2.70     (saturated deposit)
//   - pc = 1.2 × effective overburden (lightly overconsolidated default)
func Estimate(p Properties, overburden float64) (Properties, []string) {
	prof := lookup(p.Type)
	var notes []string
	note := func(field string, v float64) {
		notes = append(notes, fmt.Sprintf("%s estimated from soil type %q: %g", field, p.Type, v))
	}

	if p.ElasticModulus == 0 {
		p.ElasticModulus = prof.elasticModulus
		note("elastic modulus", p.ElasticModulus)
	}
	if p.PoissonRatio == 0 {
		p.PoissonRatio = prof.poisson
		note("poisson ratio", p.PoissonRatio)
	}
	if p.SPTValue == 0 {
		p.SPTValue = prof.sptValue
		note("SPT N-value", p.SPTValue)
	}
	if p.WaterContent == 0 {
		p.WaterContent = prof.waterContent
		note("water content", p.WaterContent)
	}
	if p.LiquidLimit == 0 {
		p.LiquidLimit = prof.liquidLimit
		note("liquid limit", p.LiquidLimit)
	}
	if p.PlasticityIndex == 0 {
		p.PlasticityIndex = prof.plasticity
		note("plasticity index", p.PlasticityIndex)
	}
	if p.CompressionIndex == 0 && prof.cohesive {
		p.CompressionIndex = 0.009 * (p.LiquidLimit - 10)
		if p.CompressionIndex < 0 {
			p.CompressionIndex = 0
		}
		note("compression index", p.CompressionIndex)
	}
	if p.VoidRatio == 0 {
		p.VoidRatio = p.WaterContent * specificGravity
		note("void ratio", p.VoidRatio)
	}
	if p.PreconsolidationPressure == 0 && overburden > 0 {
		p.PreconsolidationPressure = 1.2 * overburden
		note("preconsolidation pressure", p.PreconsolidationPressure)
	}

	return p, notes
}
