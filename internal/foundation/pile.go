package foundation

import (
	"fmt"
	"math"

	"github.com/strucalc/strucalc/internal/soil"
)

// PileInput describes a pile-group foundation problem.
type PileInput struct {
	AxialLoad float64 // N, service
	Moment    float64 // N·m

	Soil soil.Properties

	PileDiameter     float64 // default 0.45 m
	DepthBelowGrade  float64 // cap embedment, default 1.5
	ConcreteStrength float64
	SteelYield       float64
}

const (
	pileSafetyFactor = 2.0
	pileSpacingRatio = 3.0  // centre spacing as multiple of diameter
	maxPileLength    = 30.0 // m
	minPileLength    = 6.0  // m

	// Settlement of the group is capped; beyond this the estimate formula
	// is outside its calibration range anyway.
	maxPileSettlementMM = 50.0

	// Eccentricity (M/P) beyond this adds piles to the moment side.
	pileEccentricityLimit = 0.1 // m
)

// DesignPileGroup runs the multi-step pile design: pile length from the
// SPT record, single-pile capacity by the α (cohesive) or β (granular)
// method, pile count and arrangement, Converse-Labarre group efficiency,
// cap thickness from punching, and an empirical settlement estimate.
func DesignPileGroup(in PileInput) (*Foundation, error) {
	if in.AxialLoad <= 0 {
		return nil, fmt.Errorf("invalid axial load %g", in.AxialLoad)
	}
	if in.Moment < 0 {
		return nil, fmt.Errorf("invalid moment %g", in.Moment)
	}
	if in.PileDiameter == 0 {
		in.PileDiameter = 0.45
	}
	if in.PileDiameter < 0.2 || in.PileDiameter > 2.0 {
		return nil, fmt.Errorf("pile diameter %g m outside the buildable range", in.PileDiameter)
	}
	if in.DepthBelowGrade == 0 {
		in.DepthBelowGrade = 1.5
	}
	if in.ConcreteStrength == 0 {
		in.ConcreteStrength = defaultConcreteStrength
	}
	if in.SteelYield == 0 {
		in.SteelYield = defaultSteelYield
	}

	// Overburden at the cap level seeds the preconsolidation correlation.
	props, _ := soil.Estimate(in.Soil, 18e3*in.DepthBelowGrade)
	cohesive := soil.IsCohesive(props.Type)

	length := pileLength(props, cohesive)
	qAllowable := singlePileCapacity(props, in.PileDiameter, length, cohesive)
	if qAllowable <= 0 {
		return nil, fmt.Errorf("soil %q provides no usable pile capacity", props.Type)
	}

	e := in.Moment / in.AxialLoad
	biased := e > pileEccentricityLimit

	// Size the group against the efficiency-reduced capacity: each pass
	// recomputes the count the current efficiency demands, bounded since
	// efficiency has a floor.
	count := int(math.Ceil(in.AxialLoad / qAllowable))
	if count < 2 {
		count = 2
	}
	rows, cols := arrangePiles(count, biased)
	count = rows * cols
	efficiency := converseLabarre(rows, cols, in.PileDiameter)
	converged := false
	for iter := 0; iter < maxResizeAttempts; iter++ {
		if float64(count)*qAllowable*efficiency >= in.AxialLoad {
			converged = true
			break
		}
		needed := int(math.Ceil(in.AxialLoad / (qAllowable * efficiency)))
		if needed <= count {
			needed = count + 1
		}
		rows, cols = arrangePiles(needed, biased)
		count = rows * cols
		efficiency = converseLabarre(rows, cols, in.PileDiameter)
	}
	if !converged && float64(count)*qAllowable*efficiency < in.AxialLoad {
		return nil, &ConvergenceError{
			Attempts:      maxResizeAttempts,
			PressureRatio: in.AxialLoad / (float64(count) * qAllowable * efficiency),
		}
	}

	// Extra piles on the moment side once the concentric group is sized.
	var warnings []string
	if biased {
		extra := int(math.Ceil(float64(count) * 0.2))
		if extra < 1 {
			extra = 1
		}
		rows, cols = arrangePiles(count+extra, true)
		count = rows * cols
		efficiency = converseLabarre(rows, cols, in.PileDiameter)
		warnings = append(warnings,
			fmt.Sprintf("eccentricity %.2f m exceeds %.1f m; %d piles added toward the moment side",
				e, pileEccentricityLimit, extra))
	}

	spacing := pileSpacingRatio * in.PileDiameter
	capLength := float64(cols-1)*spacing + 2*in.PileDiameter
	capWidth := float64(rows-1)*spacing + 2*in.PileDiameter

	// Cap thickness from punching of the most loaded pile through the cap.
	pileReaction := in.AxialLoad / float64(count) / efficiency
	dCap := capPunchingDepth(pileReaction, in.PileDiameter, in.ConcreteStrength)
	capThickness := roundUp(math.Max(dCap/effectiveDepthRatio, 0.60), thicknessIncrement)

	settlement := pileGroupSettlement(in.AxialLoad, capLength, capWidth, props)

	as := math.Max(
		pileReaction*spacing/8/(phiFlexure*in.SteelYield*0.9*capThickness*effectiveDepthRatio),
		minimumSteelPerMetre(capThickness))

	return &Foundation{
		Type:            PileFoundation,
		Length:          capLength,
		Width:           capWidth,
		Depth:           capThickness,
		Material:        "reinforced concrete cap on bored piles",
		BearingCapacity: qAllowable,
		DepthBelowGrade: in.DepthBelowGrade,
		PileCount:       count,
		PileLength:      length,
		PileDiameter:    in.PileDiameter,
		GroupEfficiency: efficiency,
		EstimatedSettlement: settlement,
		Reinforcement: fmt.Sprintf("%d piles Ø%.0f mm in %dx%d layout at %.2f m spacing, group efficiency %.2f; cap governed by punching shear, As = %s each way",
			count, in.PileDiameter*1e3, rows, cols, spacing, efficiency, describeSteel(as)),
		Warnings: warnings,
	}, nil
}

// pileLength estimates the embedment from the SPT record: stronger soil
// reaches set sooner.
func pileLength(props soil.Properties, cohesive bool) float64 {
	n := props.SPTValue
	var l float64
	if cohesive {
		l = 30 - 0.5*n
	} else {
		l = 25 - 0.4*n
	}
	return math.Min(maxPileLength, math.Max(minPileLength, l))
}

// singlePileCapacity returns the allowable load of one pile:
// (end bearing + skin friction) / safety factor.
func singlePileCapacity(props soil.Properties, diameter, length float64, cohesive bool) float64 {
	tip := math.Pi * diameter * diameter / 4
	shaft := math.Pi * diameter * length
	n := props.SPTValue

	var endBearing, skin float64
	if cohesive {
		// α-method: cu correlated from the SPT record.
		cu := 6e3 * n
		endBearing = 9 * cu * tip
		skin = 0.55 * cu * shaft
	} else {
		// β-method with Meyerhof-style end bearing on the SPT record.
		endBearing = math.Min(100e3*n, 10e6) * tip
		sigmaV := 9e3 * length / 2 // effective stress at mid-shaft
		skin = 0.30 * sigmaV * shaft
	}

	return (endBearing + skin) / pileSafetyFactor
}

// capPunchingDepth finds the cap effective depth where a single pile
// reaction can no longer punch through the critical perimeter at d/2
// around the pile head.
func capPunchingDepth(v, pileSize float64, fc float64) float64 {
	vc := shearStrength(0.33, fc)
	for d := 0.20; d < 2.0; d += 0.005 {
		b0 := 4 * (pileSize + d)
		if v <= phiShear*vc*b0*d {
			return d
		}
	}
	return 2.0
}

// arrangePiles picks a rows x cols grid covering the count. With a
// significant moment the grid is biased longer in the moment direction
// (more columns than rows).
func arrangePiles(count int, biased bool) (rows, cols int) {
	if count < 2 {
		count = 2
	}
	rows = int(math.Floor(math.Sqrt(float64(count))))
	if rows < 1 {
		rows = 1
	}
	cols = int(math.Ceil(float64(count) / float64(rows)))
	if biased && cols < rows {
		rows, cols = cols, rows
	}
	return rows, cols
}

// converseLabarre is the standard group-efficiency reduction for piles at
// spacing s in an m x n grid.
func converseLabarre(rows, cols int, diameter float64) float64 {
	if rows*cols <= 1 {
		return 1
	}
	theta := math.Atan(1/pileSpacingRatio) * 180 / math.Pi
	m, n := float64(cols), float64(rows)
	eff := 1 - theta*((n-1)*m+(m-1)*n)/(90*m*n)
	return math.Max(0.4, eff)
}

// pileGroupSettlement is an empirical SPT-based estimate in millimetres,
// capped at maxPileSettlementMM.
func pileGroupSettlement(load, capLength, capWidth float64, props soil.Properties) float64 {
	b := math.Min(capLength, capWidth)
	qkPa := load / (capLength * capWidth) / 1e3
	n := math.Max(props.SPTValue, 1)

	s := 0.9 * qkPa * math.Sqrt(b) / n
	return math.Min(maxPileSettlementMM, math.Max(0, s))
}
