package foundation

import (
	"fmt"
	"math"
)

// MatInput describes a mat (raft) foundation problem. The footprint is
// fixed to the building footprint; only thickness and reinforcement are
// designed.
type MatInput struct {
	BuildingLength float64 // m
	BuildingWidth  float64 // m

	TotalLoad       float64 // N, whole building
	MaxColumnLoad   float64 // N, heaviest single column
	ColumnWidth     float64 // default 0.4
	ColumnDepth     float64 // default 0.4
	ColumnSpacing   float64 // m, average grid spacing
	BearingCapacity float64 // Pa
	DepthBelowGrade float64 // default 2.0

	ConcreteStrength float64
	SteelYield       float64
}

// matOverdesignFraction triggers the advisory warning: an average pressure
// this far below capacity suggests individual footings would be cheaper.
const matOverdesignFraction = 0.35

// DesignMatFoundation designs a raft covering the building footprint.
// Thickness is governed by punching around the heaviest column or by
// flexure over the average column spacing.
func DesignMatFoundation(in MatInput) (*Foundation, error) {
	if in.BuildingLength <= 0 || in.BuildingWidth <= 0 {
		return nil, fmt.Errorf("invalid footprint %gx%g", in.BuildingLength, in.BuildingWidth)
	}
	if in.TotalLoad <= 0 {
		return nil, fmt.Errorf("invalid total load %g", in.TotalLoad)
	}
	if in.BearingCapacity <= 0 {
		return nil, fmt.Errorf("invalid bearing capacity %g", in.BearingCapacity)
	}
	if in.MaxColumnLoad <= 0 {
		in.MaxColumnLoad = in.TotalLoad / 4
	}
	if in.ColumnWidth == 0 {
		in.ColumnWidth = 0.4
	}
	if in.ColumnDepth == 0 {
		in.ColumnDepth = 0.4
	}
	if in.ColumnSpacing <= 0 {
		in.ColumnSpacing = 5.0
	}
	if in.DepthBelowGrade == 0 {
		in.DepthBelowGrade = 2.0
	}
	if in.ConcreteStrength == 0 {
		in.ConcreteStrength = defaultConcreteStrength
	}
	if in.SteelYield == 0 {
		in.SteelYield = defaultSteelYield
	}

	area := in.BuildingLength * in.BuildingWidth
	q := in.TotalLoad / area
	if q > in.BearingCapacity {
		return nil, fmt.Errorf("average mat pressure %.1f kPa exceeds bearing capacity %.1f kPa; a mat cannot carry this building on this soil",
			q/1e3, in.BearingCapacity/1e3)
	}

	var warnings []string
	if q < matOverdesignFraction*in.BearingCapacity {
		warnings = append(warnings,
			fmt.Sprintf("average pressure %.1f kPa is well under half of capacity %.1f kPa; individual spread footings may be more economical",
				q/1e3, in.BearingCapacity/1e3))
	}

	// Punching of the heaviest column through the mat: the demand is the
	// column load spread over its tributary cell, less the relief inside
	// the critical perimeter.
	qPunch := in.MaxColumnLoad / (in.ColumnSpacing * in.ColumnSpacing)
	dPunch := punchingDepth(qPunch, in.ColumnSpacing*in.ColumnSpacing,
		in.ColumnWidth, in.ColumnDepth, in.ConcreteStrength)

	// Flexure over the average spacing, continuous both ways.
	mu := q * in.ColumnSpacing * in.ColumnSpacing / 10
	dFlex := math.Sqrt(mu / (0.145 * in.ConcreteStrength))

	d, governing := dPunch, "two-way (punching) shear at the heaviest column"
	if dFlex > d {
		d, governing = dFlex, "flexure over the column grid"
	}
	thickness := roundUp(math.Max(d/effectiveDepthRatio, 0.40), thicknessIncrement)

	as := math.Max(mu/(phiFlexure*in.SteelYield*0.9*thickness*effectiveDepthRatio),
		minimumSteelPerMetre(thickness))

	return &Foundation{
		Type:            MatFoundation,
		Length:          in.BuildingLength,
		Width:           in.BuildingWidth,
		Depth:           thickness,
		Material:        "reinforced concrete",
		BearingCapacity: in.BearingCapacity,
		DepthBelowGrade: in.DepthBelowGrade,
		MaxSoilPressure: q,
		MinSoilPressure: q,
		Reinforcement: fmt.Sprintf("thickness governed by %s; As = %s each way, top and bottom mats",
			governing, describeSteel(as)),
		Warnings: warnings,
	}, nil
}
